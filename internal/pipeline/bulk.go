package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/queue"
)

// ActivityPublisher fans lead changes out to the notifications feed. Always
// best effort: a publish failure is logged, never surfaced.
type ActivityPublisher interface {
	PublishLeadActivity(ctx context.Context, ev queue.LeadActivityEvent) error
}

// BulkResult reports what actually happened instead of silently pretending
// every call succeeded.
type BulkResult struct {
	Requested  int     `json:"requested"`
	Applied    int     `json:"applied"`
	FailedIDs  []int64 `json:"failed_ids,omitempty"`
	SkippedIDs []int64 `json:"skipped_ids,omitempty"`
}

// BulkCoordinator applies one status to every selected lead, one remote
// call at a time in selection order. The cache reflects each change only
// after its call is confirmed, and the selection is cleared once the loop
// finishes no matter how many calls failed.
type BulkCoordinator struct {
	store  *Store
	svc    LeadService
	policy TransitionPolicy
	events ActivityPublisher
	log    *zap.Logger
}

func NewBulkCoordinator(store *Store, svc LeadService, policy TransitionPolicy, events ActivityPublisher, log *zap.Logger) *BulkCoordinator {
	return &BulkCoordinator{
		store:  store,
		svc:    svc,
		policy: policy,
		events: events,
		log:    log,
	}
}

func (c *BulkCoordinator) SetStatus(ctx context.Context, sel *Selection, target entity.LeadStatus) (BulkResult, error) {
	if !target.Valid() {
		return BulkResult{}, fmt.Errorf("bulk set status: invalid status %q", target)
	}

	ids := sel.IDs()
	defer sel.Clear()

	res := BulkResult{Requested: len(ids)}
	for _, id := range ids {
		// Orphaned selection entries (filtered out of view, or already
		// deleted) still get their call; the record store is the judge.
		if cur, ok := c.store.Get(id); ok && !c.policy.Allowed(cur.Status, target) {
			c.log.Info("bulk move rejected by transition policy",
				zap.Int64("lead", id),
				zap.String("from", string(cur.Status)),
				zap.String("to", string(target)))
			res.SkippedIDs = append(res.SkippedIDs, id)
			continue
		}

		if err := c.svc.PatchLead(ctx, id, entity.StatusPatch(target)); err != nil {
			c.log.Warn("bulk status call failed",
				zap.Int64("lead", id), zap.String("to", string(target)), zap.Error(err))
			res.FailedIDs = append(res.FailedIDs, id)
			continue
		}

		c.store.ReplaceOne(id, entity.StatusPatch(target))
		res.Applied++

		c.publish(ctx, queue.LeadActivityEvent{
			LeadID: id,
			Event:  queue.EventStatusChanged,
			Status: string(target),
		})
	}

	return res, nil
}

func (c *BulkCoordinator) publish(ctx context.Context, ev queue.LeadActivityEvent) {
	if err := c.events.PublishLeadActivity(ctx, ev); err != nil {
		c.log.Warn("lead activity publish failed", zap.Int64("lead", ev.LeadID), zap.Error(err))
	}
}
