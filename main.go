package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/megakid/Terraform/pkg/config"
	"github.com/megakid/Terraform/pkg/engine"
	"github.com/megakid/Terraform/pkg/hierarchy"
	"github.com/megakid/Terraform/pkg/logger"
	"github.com/megakid/Terraform/pkg/pretty"
	"github.com/megakid/Terraform/pkg/terraform"
	"github.com/megakid/Terraform/pkg/tui"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString(pretty.Error(err) + "\n")
		os.Exit(1)
	}
}

//go:embed VERSION
var tftargetVersion string

func run() error {
	parseFlags()

	if noColor {
		pretty.DisableColors()
	}

	if printVersion {
		fmt.Println(tftargetVersion)
		return nil
	}

	workdir := "."
	if flag.NArg() > 0 {
		workdir = flag.Arg(0)
	}

	cfg, err := config.Load(workdir)
	if err != nil {
		return err
	}

	bin := terraformBin
	if !flag.CommandLine.Changed("terraform-bin") && cfg.TerraformBin != "" {
		bin = cfg.TerraformBin
	}

	ctx := context.Background()

	if suggestMoves {
		return runSuggestMoves(ctx, workdir, bin)
	}

	return runSelectTargets(ctx, workdir, bin, cfg)
}

func runSelectTargets(ctx context.Context, workdir, bin string, cfg config.Config) error {
	addresses, err := terraform.ListResources(ctx, workdir,
		terraform.WithTerraformBin(bin),
		terraform.WithSkipInit(skipInit),
		terraform.WithIncludeDataSources(includeDataSources || cfg.IncludeDataSources),
	)
	if err != nil {
		return err
	}

	addresses = cfg.Filter(addresses)
	if len(addresses) == 0 {
		logger.Warn("no resources in state, nothing to select")
		return nil
	}

	forest := hierarchy.Build(addresses)
	forest.Compact(hierarchy.CollapseChains)

	var selection []*hierarchy.Node
	if len(selectAddresses) > 0 {
		selection, err = resolveSelection(forest, selectAddresses)
	} else {
		selection, err = tui.Pick(forest)
	}
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("selection aborted")
		return nil
	}
	if err != nil {
		return err
	}

	if len(selection) == 0 {
		logger.Info("nothing selected")
		return nil
	}

	targets := hierarchy.Addresses(hierarchy.Factorize(selection))

	if !quiet {
		os.Stderr.WriteString("\n" + pretty.TargetSummary(targets, len(selection)) + "\n\n")
	}

	switch outputFormat {
	case "args":
		return terraform.WriteTargetArgs(os.Stdout, targets)
	case "command":
		if verb != "plan" && verb != "apply" {
			return fmt.Errorf("unknown verb %q (want \"plan\" or \"apply\")", verb)
		}
		return terraform.WriteCommand(os.Stdout, verb, workdir, targets)
	default:
		return fmt.Errorf("unknown output format %q (want \"args\" or \"command\")", outputFormat)
	}
}

// resolveSelection maps --select addresses to leaves of the compacted
// forest. Unknown addresses are an error: silently targeting less than the
// operator asked for would be worse.
func resolveSelection(forest *hierarchy.Forest, addresses []string) ([]*hierarchy.Node, error) {
	leafByAddress := make(map[string]*hierarchy.Node)
	for _, leaf := range forest.Leaves() {
		leafByAddress[leaf.Address()] = leaf
	}

	var selection []*hierarchy.Node
	for _, addr := range addresses {
		leaf, ok := leafByAddress[addr]
		if !ok {
			return nil, fmt.Errorf("no resource with address %q in state", addr)
		}
		selection = append(selection, leaf)
	}

	return selection, nil
}

func runSuggestMoves(ctx context.Context, workdir, bin string) error {
	plan, err := terraform.GetPlan(ctx, workdir,
		terraform.WithTerraformBin(bin),
		terraform.WithSkipInit(skipInit),
		terraform.WithSkipRefresh(skipRefresh),
	)
	if err != nil {
		return err
	}

	suggestions := engine.SuggestMoves(engine.SummarizePlan(plan))
	if len(suggestions) == 0 {
		logger.Info("the plan contains no resources worth moving")
		return nil
	}

	moves, err := tui.PickMoves(suggestions)
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("selection aborted")
		return nil
	}
	if err != nil {
		return err
	}

	if len(moves) == 0 {
		logger.Info("no moves accepted")
		return nil
	}

	if !quiet {
		pairs := make([][2]string, len(moves))
		for i, m := range moves {
			pairs[i] = [2]string{m.FromAddress, m.ToAddress}
		}
		os.Stderr.WriteString("\n" + pretty.MoveSummary(pairs) + "\n\n")
	}

	return terraform.WriteMoveCommands(os.Stdout, moves)
}

// Flags
var (
	includeDataSources bool
	noColor            bool
	outputFormat       string
	printVersion       bool
	quiet              bool
	selectAddresses    []string
	skipInit           bool
	skipRefresh        bool
	suggestMoves       bool
	terraformBin       string
	verb               string
)

func parseFlags() {
	flag.BoolVar(&includeDataSources, "include-data-sources", false, "list data sources alongside managed resources")
	flag.BoolVar(&noColor, "no-color", false, "disable color in output")
	flag.StringVarP(&outputFormat, "output", "o", "args", "output `format` of targets (\"args\" or \"command\")")
	flag.BoolVarP(&printVersion, "version", "V", false, "print version and exit")
	flag.BoolVarP(&quiet, "quiet", "q", false, "suppress all human-readable output")
	flag.StringSliceVar(&selectAddresses, "select", nil, "select a resource `address` without the interactive picker (can be specified multiple times)")
	flag.BoolVarP(&skipInit, "skip-init", "s", false, "skip running terraform init")
	flag.BoolVarP(&skipRefresh, "skip-refresh", "S", false, "skip running terraform refresh")
	flag.BoolVar(&suggestMoves, "suggest-moves", false, "suggest state moves based on the plan instead of selecting targets")
	flag.StringVar(&terraformBin, "terraform-bin", "terraform", "terraform binary to use")
	flag.StringVar(&verb, "verb", "plan", "terraform `subcommand` used with the command output format (\"plan\" or \"apply\")")

	flag.Parse()
}
