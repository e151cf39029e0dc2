package hierarchy

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// leafByAddress finds a leaf in the forest, failing the test if absent.
func leafByAddress(t *testing.T, f *Forest, addr string) *Node {
	t.Helper()
	for _, leaf := range f.Leaves() {
		if leaf.Address() == addr {
			return leaf
		}
	}
	t.Fatalf("no leaf with address %q in forest", addr)
	return nil
}

func TestFactorize(t *testing.T) {
	addresses := []string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
		"module.vpc.aws_subnet.public[0]",
		"module.vpc.aws_internet_gateway.this",
		"module.dns.aws_route53_record.www",
		"aws_instance.web",
		"aws_instance.db",
	}

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{
			name:     "single leaf stays a leaf",
			selected: []string{"module.vpc.aws_subnet.private[0]"},
			want:     []string{"module.vpc.aws_subnet.private[0]"},
		},
		{
			name: "fully selected siblings generalize to their parent",
			selected: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.private[1]",
			},
			want: []string{"module.vpc.aws_subnet.private"},
		},
		{
			name: "partially selected siblings stay separate",
			selected: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.public[0]",
			},
			want: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.public[0]",
			},
		},
		{
			name: "a fully covered module generalizes to its root",
			selected: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.private[1]",
				"module.vpc.aws_subnet.public[0]",
				"module.vpc.aws_internet_gateway.this",
			},
			want: []string{"module.vpc"},
		},
		{
			name: "everything selected factorizes to the roots",
			selected: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.private[1]",
				"module.vpc.aws_subnet.public[0]",
				"module.vpc.aws_internet_gateway.this",
				"module.dns.aws_route53_record.www",
				"aws_instance.web",
				"aws_instance.db",
			},
			want: []string{
				"aws_instance.db",
				"aws_instance.web",
				"module.dns.aws_route53_record.www",
				"module.vpc",
			},
		},
		{
			name:     "empty selection factorizes to nothing",
			selected: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Build(addresses)
			f.Compact(CollapseChains)

			var selected []*Node
			for _, addr := range tt.selected {
				selected = append(selected, leafByAddress(t, f, addr))
			}

			got := Addresses(Factorize(selected))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Factorize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Without compaction the chain above the two instances is still separate
// nodes, so a full selection climbs all the way to the root "module.vpc".
// After compaction the chain is a single node, so the same selection
// factorizes to "module.vpc.aws_subnet.private".
func TestFactorizeDependsOnForestShape(t *testing.T) {
	addresses := []string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
	}

	t.Run("uncompacted", func(t *testing.T) {
		f := Build(addresses)
		selected := []*Node{
			leafByAddress(t, f, addresses[0]),
			leafByAddress(t, f, addresses[1]),
		}

		got := Addresses(Factorize(selected))
		want := []string{"module.vpc"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("compacted", func(t *testing.T) {
		f := Build(addresses)
		f.Compact(CollapseChains)
		selected := []*Node{
			leafByAddress(t, f, addresses[0]),
			leafByAddress(t, f, addresses[1]),
		}

		got := Addresses(Factorize(selected))
		want := []string{"module.vpc.aws_subnet.private"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFactorizeDeduplicates(t *testing.T) {
	f := Build([]string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
	})
	f.Compact(CollapseChains)

	// Both leaves generalize to the same ancestor; it must appear once.
	selected := f.Leaves()
	got := Factorize(selected)
	if len(got) != 1 {
		t.Fatalf("got %d nodes, want 1: %v", len(got), Addresses(got))
	}
}

// Coverage and minimality, checked over every subset of a small forest's
// leaves: the factorized set's leaf closure is exactly the selection, and
// no result node is an ancestor of another.
func TestFactorizeCoversExactly(t *testing.T) {
	f := Build([]string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
		"module.vpc.aws_internet_gateway.this",
		"aws_instance.web",
	})
	f.Compact(CollapseChains)

	leaves := f.Leaves()

	for mask := 0; mask < 1<<len(leaves); mask++ {
		var selected []*Node
		for i, leaf := range leaves {
			if mask&(1<<i) != 0 {
				selected = append(selected, leaf)
			}
		}

		result := Factorize(selected)

		var coveredLeaves []string
		for _, n := range result {
			coveredLeaves = append(coveredLeaves, Addresses(n.Leaves())...)
		}
		sort.Strings(coveredLeaves)

		wantLeaves := Addresses(selected)
		sort.Strings(wantLeaves)

		if diff := cmp.Diff(wantLeaves, coveredLeaves); diff != "" {
			t.Errorf("mask %b: leaf closure mismatch (-selected +covered):\n%s", mask, diff)
		}

		for _, a := range result {
			for _, b := range result {
				if a != b && isAncestor(a, b) {
					t.Errorf("mask %b: %q is an ancestor of %q", mask, a.Address(), b.Address())
				}
			}
		}
	}
}

func isAncestor(ancestor, n *Node) bool {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
