package pipeline

import (
	"strings"

	"github.com/botpilothq/console/internal/entity"
)

// FilterAll disables the status predicate in Visible.
const FilterAll = "all"

// Visible derives the table view: leads matching both the status filter and
// the free-text query, in snapshot order. Both predicates AND together and
// neither re-sorts the input.
func Visible(leads []entity.Lead, statusFilter string, query string) []entity.Lead {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if statusFilter != FilterAll && string(l.Status) != statusFilter {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// matchesQuery checks name, email and company. Company is optional on the
// record; an empty one simply never matches.
func matchesQuery(l entity.Lead, q string) bool {
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Email), q) ||
		strings.Contains(strings.ToLower(l.Company), q)
}

// VisibleIDs is a convenience for select-all, which operates on the visible
// subset rather than the whole cache.
func VisibleIDs(leads []entity.Lead, statusFilter string, query string) []int64 {
	visible := Visible(leads, statusFilter, query)
	ids := make([]int64, len(visible))
	for i, l := range visible {
		ids[i] = l.ID
	}
	return ids
}
