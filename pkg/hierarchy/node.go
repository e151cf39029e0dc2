// Package hierarchy turns a flat list of Terraform resource addresses into
// a forest of nodes sharing common prefixes, collapses chains of
// single-child nodes, and computes minimal covering sets over leaf
// selections.
package hierarchy

import (
	"github.com/megakid/Terraform/pkg/address"
)

// A Node is one vertex of the forest. Its name is a single address segment
// after building, possibly several segments merged together after
// compaction.
//
// Invariants: sibling names are unique under any parent, a node's Parent
// pointer and its presence in Parent.Children stay consistent, and no node
// is its own ancestor.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node
}

// Address returns the full resource address of the node: the names on the
// path from its root down to itself, joined with the separator rule from
// the address package.
func (n *Node) Address() string {
	var segments []string
	for cur := n; cur != nil; cur = cur.Parent {
		segments = append(segments, cur.Name)
	}

	// The walk collected names leaf-first.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return address.Join(segments...)
}

// Depth returns the node's distance from its root. Roots have depth 0.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// IsLeaf reports whether the node has no children. A leaf corresponds to
// one concrete resource instance.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the node's leaf descendants in depth-first child order.
// A leaf returns itself.
func (n *Node) Leaves() []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}

	var leaves []*Node
	for _, c := range n.Children {
		leaves = append(leaves, c.Leaves()...)
	}
	return leaves
}

func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// A Forest is a collection of independent trees built from one inventory
// snapshot.
type Forest struct {
	Roots []*Node
}

// Leaves returns every leaf in the forest, in depth-first root order.
func (f *Forest) Leaves() []*Node {
	var leaves []*Node
	for _, r := range f.Roots {
		leaves = append(leaves, r.Leaves()...)
	}
	return leaves
}

func (f *Forest) root(name string) *Node {
	for _, r := range f.Roots {
		if r.Name == name {
			return r
		}
	}
	return nil
}
