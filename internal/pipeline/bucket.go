package pipeline

import (
	"github.com/botpilothq/console/internal/entity"
)

// BoardStages are the five Kanban columns, in display order. lost is not a
// column: lost leads are reachable only through the table view's status
// filter.
var BoardStages = []entity.LeadStatus{
	entity.StatusNew,
	entity.StatusContacted,
	entity.StatusQualified,
	entity.StatusProposal,
	entity.StatusWon,
}

// Board maps each displayed stage to its leads in snapshot order. Every
// stage key is present even when empty.
type Board map[entity.LeadStatus][]entity.Lead

// Buckets partitions the snapshot by exact status match. A lead lands in
// exactly one bucket, or in none when its status is lost.
func Buckets(leads []entity.Lead) Board {
	board := make(Board, len(BoardStages))
	for _, stage := range BoardStages {
		board[stage] = []entity.Lead{}
	}

	for _, l := range leads {
		if bucket, ok := board[l.Status]; ok {
			board[l.Status] = append(bucket, l)
		}
	}
	return board
}
