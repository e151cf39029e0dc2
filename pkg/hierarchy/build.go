package hierarchy

import (
	"github.com/megakid/Terraform/pkg/address"
)

// Build folds a list of resource addresses into a forest. Addresses
// sharing a prefix of segments merge into the same subtree; identical
// addresses fold onto a single node. The forest's shape depends only on
// the set of addresses, not their order — order only decides which address
// creates a shared node first.
func Build(addresses []string) *Forest {
	f := &Forest{}

	for _, addr := range addresses {
		segments := address.Split(addr)
		if len(segments) == 0 {
			continue
		}

		cursor := f.root(segments[0])
		if cursor == nil {
			cursor = &Node{Name: segments[0]}
			f.Roots = append(f.Roots, cursor)
		}

		for _, segment := range segments[1:] {
			next := cursor.child(segment)
			if next == nil {
				next = &Node{Name: segment, Parent: cursor}
				cursor.Children = append(cursor.Children, next)
			}
			cursor = next
		}
	}

	return f
}
