package terraform

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteTargetArgs writes one -target argument per address, one per line,
// ready for substitution into a Terraform command. Shell quoting beyond
// double quotes is the caller's responsibility.
func WriteTargetArgs(w io.Writer, addresses []string) error {
	for _, addr := range addresses {
		_, err := fmt.Fprintf(w, "-target=%q\n", addr)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteCommand writes a complete Terraform command line using the given
// verb ("plan" or "apply") and target addresses.
func WriteCommand(w io.Writer, verb, workdir string, addresses []string) error {
	var sb strings.Builder

	sb.WriteString("terraform ")
	if workdir != "." {
		fmt.Fprintf(&sb, "-chdir=%q ", workdir)
	}
	sb.WriteString(verb)

	for _, addr := range addresses {
		fmt.Fprintf(&sb, " -target=%q", addr)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// A Move represents a `terraform state mv` operation within one module:
// a resource leaving one address for another.
type Move struct {
	// The resource's address before the move.
	FromAddress string
	// The resource's address after the move.
	ToAddress string
}

// WriteMoveCommands writes one `terraform state mv` command per move.
func WriteMoveCommands(w io.Writer, moves []Move) error {
	for _, m := range moves {
		_, err := fmt.Fprintf(w, "terraform state mv %q %q\n", m.FromAddress, m.ToAddress)
		if err != nil {
			return err
		}
	}

	return nil
}

// SortMoves puts the given moves in an arbitrary, deterministic order.
func SortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]

		switch {
		case a.FromAddress != b.FromAddress:
			return a.FromAddress < b.FromAddress
		case a.ToAddress != b.ToAddress:
			return a.ToAddress < b.ToAddress
		default:
			return false // a == b so it doesn't matter what we return here
		}
	})
}
