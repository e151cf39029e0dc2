package engine

import (
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// A Candidate is a possible destination for a resource planned for
// deletion: a resource of the same type the plan would create, with the
// edit distance between the two addresses.
type Candidate struct {
	Address  string
	Distance int
}

// A Suggestion ranks the possible destinations of one resource planned
// for deletion, nearest address first. Whether to accept a candidate, or
// none of them, is the operator's call.
type Suggestion struct {
	FromAddress string
	Candidates  []Candidate
}

// Best returns the nearest candidate.
func (s Suggestion) Best() Candidate {
	return s.Candidates[0]
}

// SuggestMoves builds one suggestion per deleted resource that has at
// least one created resource of the same type to move to. Suggestions are
// sorted by source address and candidates by distance, so the result is
// deterministic.
func SuggestMoves(s Summary) []Suggestion {
	dmp := diffmatchpatch.New()

	var suggestions []Suggestion

	for typ, deleted := range s.DeletedByType {
		created := s.CreatedByType[typ]
		if len(created) == 0 {
			continue
		}

		for _, from := range deleted {
			candidates := make([]Candidate, 0, len(created))
			for _, to := range created {
				if to == from {
					// A replacement in place is not a move.
					continue
				}

				diffs := dmp.DiffMain(from, to, false)
				candidates = append(candidates, Candidate{
					Address:  to,
					Distance: dmp.DiffLevenshtein(diffs),
				})
			}

			if len(candidates) == 0 {
				continue
			}

			sort.SliceStable(candidates, func(i, j int) bool {
				if candidates[i].Distance != candidates[j].Distance {
					return candidates[i].Distance < candidates[j].Distance
				}
				return candidates[i].Address < candidates[j].Address
			})

			suggestions = append(suggestions, Suggestion{
				FromAddress: from,
				Candidates:  candidates,
			})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].FromAddress < suggestions[j].FromAddress
	})

	return suggestions
}
