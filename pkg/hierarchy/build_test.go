package hierarchy

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sketch renders a forest as one indented line per node, in depth-first
// order. Tests compare forests by comparing sketches.
func sketch(f *Forest) []string {
	var lines []string

	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		lines = append(lines, strings.Repeat("  ", depth)+n.Name)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}

	for _, r := range f.Roots {
		walk(r, 0)
	}

	return lines
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
		want      []string
	}{
		{
			name:      "single resource",
			addresses: []string{"aws_instance.web"},
			want:      []string{"aws_instance.web"},
		},
		{
			name: "two instances of one resource share a subtree",
			addresses: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.vpc.aws_subnet.private[1]",
			},
			want: []string{
				"module.vpc",
				"  aws_subnet.private",
				"    [0]",
				"    [1]",
			},
		},
		{
			name: "resources in different modules stay separate",
			addresses: []string{
				"module.vpc.aws_subnet.private[0]",
				"module.dns.aws_route53_record.www",
				"aws_instance.web",
			},
			want: []string{
				"module.vpc",
				"  aws_subnet.private",
				"    [0]",
				"module.dns",
				"  aws_route53_record.www",
				"aws_instance.web",
			},
		},
		{
			name: "duplicate addresses fold onto one node",
			addresses: []string{
				"aws_instance.web",
				"aws_instance.web",
			},
			want: []string{"aws_instance.web"},
		},
		{
			name:      "empty and unparseable addresses are skipped",
			addresses: []string{"", "...", "aws_instance.web"},
			want:      []string{"aws_instance.web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Build(tt.addresses)
			if diff := cmp.Diff(tt.want, sketch(f)); diff != "" {
				t.Errorf("forest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildIsOrderIndependent(t *testing.T) {
	addresses := []string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
		"module.vpc.aws_internet_gateway.this",
		"aws_instance.web",
	}

	forward := Build(addresses)

	reversed := make([]string, len(addresses))
	for i, addr := range addresses {
		reversed[len(addresses)-1-i] = addr
	}
	backward := Build(reversed)

	// Shape must match; only sibling order may differ, so compare sorted
	// node addresses rather than sketches.
	if diff := cmp.Diff(allAddresses(forward), allAddresses(backward)); diff != "" {
		t.Errorf("forest shape depends on address order (-forward +backward):\n%s", diff)
	}
}

func allAddresses(f *Forest) []string {
	var addrs []string

	var walk func(n *Node)
	walk = func(n *Node) {
		addrs = append(addrs, n.Address())
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range f.Roots {
		walk(r)
	}

	sort.Strings(addrs)
	return addrs
}

func TestNodeAddressRoundTrip(t *testing.T) {
	addresses := []string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
		`module.cluster.kubernetes_namespace.apps["staging"]`,
		"aws_instance.web",
	}

	f := Build(addresses)

	got := make(map[string]bool)
	for _, leaf := range f.Leaves() {
		got[leaf.Address()] = true
	}

	for _, addr := range addresses {
		if !got[addr] {
			t.Errorf("leaf address %q not reproduced by Address()", addr)
		}
	}
}

func TestParentChildConsistency(t *testing.T) {
	f := Build([]string{
		"module.vpc.aws_subnet.private[0]",
		"module.vpc.aws_subnet.private[1]",
		"module.vpc.aws_internet_gateway.this",
	})

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Parent != n {
				t.Errorf("node %q has parent %v, want %q", c.Name, c.Parent, n.Name)
			}
			walk(c)
		}
	}
	for _, r := range f.Roots {
		if r.Parent != nil {
			t.Errorf("root %q has non-nil parent", r.Name)
		}
		walk(r)
	}
}

func TestNodeDepth(t *testing.T) {
	f := Build([]string{"module.vpc.aws_subnet.private[0]"})

	n := f.Roots[0]
	for wantDepth := 0; n != nil; wantDepth++ {
		if got := n.Depth(); got != wantDepth {
			t.Errorf("node %q depth = %d, want %d", n.Name, got, wantDepth)
		}
		if len(n.Children) == 0 {
			break
		}
		n = n.Children[0]
	}
}
