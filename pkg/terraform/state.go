// Package terraform runs Terraform commands and renders Terraform command
// lines. It is the only package that talks to the outside world.
package terraform

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/terraform-exec/tfexec"
	tfjson "github.com/hashicorp/terraform-json"

	"github.com/megakid/Terraform/pkg/pretty"
)

// ListResources returns the addresses of all resources in the state of the
// module in the given working directory, sorted. Data sources are excluded
// unless WithIncludeDataSources is passed.
func ListResources(ctx context.Context, workdir string, opts ...Option) ([]string, error) {
	var s settings
	s.apply(append(defaultOptions(), opts...))
	s.workdir = workdir

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	tf, err := tfexec.NewTerraform(s.workdir, s.terraformBin)
	if err != nil {
		return nil, fmt.Errorf("failed to create Terraform executor: %w", err)
	}

	if !s.skipInit {
		logCommand(s.workdir, "terraform init")

		if err := tf.Init(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize Terraform: %w", err)
		}
	}

	logCommand(s.workdir, "terraform show")

	state, err := tf.Show(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read Terraform state: %w", err)
	}

	return stateAddresses(state, s.includeDataSources), nil
}

// stateAddresses walks the state's module tree and returns resource
// addresses in sorted order. A nil or empty state yields no addresses.
func stateAddresses(state *tfjson.State, includeDataSources bool) []string {
	if state == nil || state.Values == nil || state.Values.RootModule == nil {
		return nil
	}

	var addrs []string
	collectModule(state.Values.RootModule, includeDataSources, &addrs)

	sort.Strings(addrs)
	return addrs
}

func collectModule(m *tfjson.StateModule, includeDataSources bool, out *[]string) {
	for _, r := range m.Resources {
		if r.Mode == tfjson.DataResourceMode && !includeDataSources {
			continue
		}
		*out = append(*out, r.Address)
	}

	for _, child := range m.ChildModules {
		collectModule(child, includeDataSources, out)
	}
}

func logCommand(workdir, command string) {
	if workdir == "." {
		workdir = "current directory"
	}
	os.Stderr.WriteString(pretty.Colorf("running [bold]%s[reset] in [bold]%s[reset]...", command, workdir) + "\n")
}
