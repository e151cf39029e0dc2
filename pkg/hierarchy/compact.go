package hierarchy

import (
	"github.com/megakid/Terraform/pkg/address"
)

// A CollapseMode decides how far Compact folds chains of single-child
// nodes. The two modes only differ on chains of three or more nodes.
type CollapseMode int

const (
	// CollapseChains folds a node until it has zero or at least two
	// children before descending, so no single-child node survives
	// anywhere in the forest. This is the mode callers should want.
	CollapseChains CollapseMode = iota

	// CollapseOnce folds each node at most once before descending into
	// its adopted children. A grandparent left with a single child after
	// its one fold is never re-checked, so chains of depth three or more
	// keep one extra level.
	CollapseOnce
)

// Compact merges every single-child node into its parent: the parent takes
// on the child's name (joined like an address) and adopts the child's
// children. Compaction changes how the forest is presented, not which
// resources it contains: the set of leaf addresses is preserved.
//
// Compacting an already-compacted forest is a no-op under CollapseChains.
func (f *Forest) Compact(mode CollapseMode) {
	for _, r := range f.Roots {
		compact(r, mode)
	}
}

func compact(n *Node, mode CollapseMode) {
	switch mode {
	case CollapseOnce:
		if len(n.Children) == 1 {
			fold(n)
		}
	default:
		for len(n.Children) == 1 {
			fold(n)
		}
	}

	for _, c := range n.Children {
		compact(c, mode)
	}
}

// fold merges n's only child into n. The child stops being separately
// addressable; its children are reparented to n.
func fold(n *Node) {
	child := n.Children[0]

	n.Name = address.Join(n.Name, child.Name)
	n.Children = child.Children
	for _, grandchild := range n.Children {
		grandchild.Parent = n
	}
}
