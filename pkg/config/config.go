// Package config loads optional per-module settings from a .tftarget.yaml
// file in the Terraform working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".tftarget.yaml"

// Config holds per-module settings. The zero value is a valid
// configuration with all defaults.
type Config struct {
	// TerraformBin overrides the terraform binary, like --terraform-bin.
	TerraformBin string `yaml:"terraform_bin"`

	// Exclude lists address prefixes to drop from the inventory before
	// the tree is built. A resource is excluded when its address equals a
	// prefix or continues it with "." or "[".
	Exclude []string `yaml:"exclude"`

	// IncludeDataSources lists data sources alongside managed resources.
	IncludeDataSources bool `yaml:"include_data_sources"`
}

// Load reads the configuration file from the given working directory. A
// missing file is not an error and yields the zero Config.
func Load(workdir string) (Config, error) {
	path := filepath.Join(workdir, FileName)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Filter returns the addresses not matched by the Exclude prefixes,
// preserving order.
func (c Config) Filter(addresses []string) []string {
	if len(c.Exclude) == 0 {
		return addresses
	}

	var kept []string
	for _, addr := range addresses {
		if !c.excludes(addr) {
			kept = append(kept, addr)
		}
	}
	return kept
}

func (c Config) excludes(addr string) bool {
	for _, prefix := range c.Exclude {
		if addr == prefix {
			return true
		}
		if strings.HasPrefix(addr, prefix+".") || strings.HasPrefix(addr, prefix+"[") {
			return true
		}
	}
	return false
}
