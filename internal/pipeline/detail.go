package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/queue"
)

var (
	ErrLeadNotFound   = errors.New("lead not in cache")
	ErrNotConfirmed   = errors.New("delete not confirmed")
	ErrMoveNotAllowed = errors.New("status move not allowed")
)

// DetailEditor is the single-record edit surface: status and notes in one
// patch, plus delete. Cache updates are confirmed-before-reflect, the same
// policy bulk mutation uses.
type DetailEditor struct {
	store  *Store
	svc    LeadService
	policy TransitionPolicy
	events ActivityPublisher
	log    *zap.Logger
}

func NewDetailEditor(store *Store, svc LeadService, policy TransitionPolicy, events ActivityPublisher, log *zap.Logger) *DetailEditor {
	return &DetailEditor{
		store:  store,
		svc:    svc,
		policy: policy,
		events: events,
		log:    log,
	}
}

// Save sends status and notes in one mutation call, then merges the patch
// into the cache.
func (e *DetailEditor) Save(ctx context.Context, id int64, status entity.LeadStatus, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("save lead %d: invalid status %q", id, status)
	}

	cur, ok := e.store.Get(id)
	if !ok {
		return fmt.Errorf("save lead %d: %w", id, ErrLeadNotFound)
	}
	if !e.policy.Allowed(cur.Status, status) {
		return fmt.Errorf("save lead %d (%s -> %s): %w", id, cur.Status, status, ErrMoveNotAllowed)
	}

	patch := entity.LeadPatch{Status: &status, Notes: &notes}
	if err := e.svc.PatchLead(ctx, id, patch); err != nil {
		return fmt.Errorf("save lead %d: %w", id, err)
	}

	e.store.ReplaceOne(id, patch)

	if cur.Status != status {
		e.publish(ctx, queue.LeadActivityEvent{
			LeadID: id,
			Event:  queue.EventStatusChanged,
			Status: string(status),
		})
	}
	return nil
}

// Delete removes the record remotely, then from the cache. The confirmed
// flag carries the operator's interactive confirmation; nothing is deleted
// without it.
func (e *DetailEditor) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := e.svc.DeleteLead(ctx, id); err != nil {
		return fmt.Errorf("delete lead %d: %w", id, err)
	}

	e.store.RemoveOne(id)
	e.publish(ctx, queue.LeadActivityEvent{LeadID: id, Event: queue.EventDeleted})
	return nil
}

func (e *DetailEditor) publish(ctx context.Context, ev queue.LeadActivityEvent) {
	if err := e.events.PublishLeadActivity(ctx, ev); err != nil {
		e.log.Warn("lead activity publish failed", zap.Int64("lead", ev.LeadID), zap.Error(err))
	}
}

// ActivityEntry is one line of the detail view's trail.
type ActivityEntry struct {
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}

// ActivityTrail derives the synthetic two-entry history shown on the detail
// view. There is no persisted audit log; the trail is reconstructed from
// the record's own timestamps every time.
func ActivityTrail(l entity.Lead) []ActivityEntry {
	return []ActivityEntry{
		{Label: "record created", At: l.CreatedAt},
		{Label: fmt.Sprintf("status now: %s", l.Status), At: l.UpdatedAt},
	}
}
