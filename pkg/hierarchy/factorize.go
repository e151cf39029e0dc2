package hierarchy

import "sort"

// Factorize computes the minimal set of nodes whose combined leaf
// descendants equal exactly the given leaf selection. A selected leaf is
// generalized to its highest ancestor whose every leaf descendant is also
// selected; leaves sharing such an ancestor collapse to a single entry.
//
// No node in the result is an ancestor or descendant of another, and the
// union of the result's leaf closures is exactly the input set. The result
// is sorted by address so output is deterministic.
//
// The selection must consist of leaves drawn from a single forest; passing
// anything else is the caller's bug.
func Factorize(selected []*Node) []*Node {
	isSelected := make(map[*Node]bool, len(selected))
	for _, leaf := range selected {
		isSelected[leaf] = true
	}

	seen := make(map[*Node]bool)
	var result []*Node

	for _, leaf := range selected {
		candidate := leaf
		for candidate.Parent != nil && covered(candidate.Parent, isSelected) {
			candidate = candidate.Parent
		}

		if !seen[candidate] {
			seen[candidate] = true
			result = append(result, candidate)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Address() < result[j].Address()
	})

	return result
}

// covered reports whether every leaf descendant of n is selected.
func covered(n *Node, isSelected map[*Node]bool) bool {
	if n.IsLeaf() {
		return isSelected[n]
	}

	for _, c := range n.Children {
		if !covered(c, isSelected) {
			return false
		}
	}
	return true
}

// Addresses maps nodes to their full addresses, preserving order. A nil
// or empty input yields nil.
func Addresses(nodes []*Node) []string {
	var addrs []string
	for _, n := range nodes {
		addrs = append(addrs, n.Address())
	}
	return addrs
}
