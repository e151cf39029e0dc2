// Package engine analyzes Terraform plans to suggest state moves. It
// compares the addresses of resources a plan would create against those it
// would delete: a deleted resource whose address is close to a created
// resource of the same type is probably the same resource after a
// refactor.
package engine

import (
	"sort"

	tfjson "github.com/hashicorp/terraform-json"

	"github.com/megakid/Terraform/pkg/slices"
)

// A Summary holds the addresses of resources a plan would create and
// delete, grouped by resource type. A resource being replaced in place
// appears in both groups.
type Summary struct {
	CreatedByType map[string][]string
	DeletedByType map[string][]string
}

// SummarizePlan extracts created and deleted resource addresses from a
// plan. Addresses within each type are sorted.
func SummarizePlan(plan *tfjson.Plan) Summary {
	s := Summary{
		CreatedByType: make(map[string][]string),
		DeletedByType: make(map[string][]string),
	}

	for _, rc := range plan.ResourceChanges {
		if rc.Change == nil {
			continue
		}

		if slices.Contains(rc.Change.Actions, tfjson.ActionCreate) {
			s.CreatedByType[rc.Type] = append(s.CreatedByType[rc.Type], rc.Address)
		}
		if slices.Contains(rc.Change.Actions, tfjson.ActionDelete) {
			s.DeletedByType[rc.Type] = append(s.DeletedByType[rc.Type], rc.Address)
		}
	}

	for _, addrs := range s.CreatedByType {
		sort.Strings(addrs)
	}
	for _, addrs := range s.DeletedByType {
		sort.Strings(addrs)
	}

	return s
}
