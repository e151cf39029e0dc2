package pretty

import "strings"

// TargetSummary renders the outcome of a selection: how many resources
// were picked and the minimal target set that covers them.
func TargetSummary(targets []string, numSelected int) string {
	var sb strings.Builder

	sb.WriteString(Colorf("[bold]%d resources[reset] selected, covered by %s:", numSelected, StyledNumTargets(len(targets))))
	sb.WriteString("\n\n")

	items := make([]string, len(targets))
	for i, t := range targets {
		items[i] = styledAddress(t)
	}

	sb.WriteString(BoxItems("targets", items, "green"))

	return sb.String()
}

// MoveSummary renders suggested state moves, one source/destination pair
// per item.
func MoveSummary(pairs [][2]string) string {
	items := make([]string, len(pairs))
	for i, p := range pairs {
		items[i] = Colorf("%s\n[bold]->[reset] %s", styledAddress(p[0]), styledAddress(p[1]))
	}

	return BoxItems("suggested moves", items, "yellow")
}

func styledAddress(addr string) string {
	return Colorf("[bold]%s", addr)
}
