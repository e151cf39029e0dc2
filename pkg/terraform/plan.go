package terraform

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/terraform-exec/tfexec"
	tfjson "github.com/hashicorp/terraform-json"
)

// GetPlan obtains a Terraform plan from the module in the given working
// directory. It does so by running a series of Terraform commands.
func GetPlan(ctx context.Context, workdir string, opts ...Option) (*tfjson.Plan, error) {
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

	if !s.skipRefresh {
		logCommand(s.workdir, "terraform refresh")

		if err := tf.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("failed to refresh Terraform state: %w", err)
		}
	}

	logCommand(s.workdir, "terraform plan")

	planFile, err := os.CreateTemp("", "tftarget.*.plan")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file to store raw plan: %w", err)
	}
	defer os.Remove(planFile.Name())

	planOpts := []tfexec.PlanOption{tfexec.Out(planFile.Name())}
	for _, target := range s.targets {
		planOpts = append(planOpts, tfexec.Target(target))
	}

	_, err = tf.Plan(ctx, planOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute Terraform plan: %w", err)
	}

	plan, err := tf.ShowPlanFile(ctx, planFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read raw Terraform plan: %w", err)
	}

	return plan, nil
}
