package terraform

import (
	"fmt"
	"os"
	"os/exec"
)

// An Option configures how Terraform commands are run.
type Option func(*settings)

type settings struct {
	workdir            string
	terraformBin       string
	skipInit           bool
	skipRefresh        bool
	includeDataSources bool
	targets            []string
}

func defaultOptions() []Option {
	return []Option{
		WithTerraformBin("terraform"),
	}
}

// WithTerraformBin overrides the `terraform` binary used to run commands.
// If this option is not provided, the `terraform` binary found in the PATH
// is used.
func WithTerraformBin(path string) Option {
	return func(s *settings) {
		s.terraformBin = path
	}
}

// WithSkipInit configures whether to skip initializing the module before
// running other Terraform commands. By default, the module is initialized.
//
// Skipping the init step saves time, but subsequent steps may fail if the
// module was not already initialized.
func WithSkipInit(skip bool) Option {
	return func(s *settings) {
		s.skipInit = skip
	}
}

// WithSkipRefresh configures whether to skip refreshing the module's state
// before computing a plan. By default, the state is refreshed.
//
// Skipping the refresh step saves time, but can result in Terraform basing
// its plan on stale data.
func WithSkipRefresh(skip bool) Option {
	return func(s *settings) {
		s.skipRefresh = skip
	}
}

// WithIncludeDataSources configures whether data sources appear in the
// resource listing. By default, only managed resources are listed.
func WithIncludeDataSources(include bool) Option {
	return func(s *settings) {
		s.includeDataSources = include
	}
}

// WithTargets restricts a plan to the given resource addresses, like
// passing -target flags to `terraform plan`.
func WithTargets(addresses ...string) Option {
	return func(s *settings) {
		s.targets = append(s.targets, addresses...)
	}
}

func (s *settings) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

func (s *settings) validate() error {
	if !isDirectory(s.workdir) {
		return fmt.Errorf("target directory %q not found", s.workdir)
	}

	if !isInPath(s.terraformBin) {
		return fmt.Errorf("executable %q not found in PATH", s.terraformBin)
	}

	return nil
}

func isDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

func isInPath(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
