package pipeline

import (
	"context"
	"time"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/queue"
)

type patchCall struct {
	ID    int64
	Patch entity.LeadPatch
}

// fakeLeadService records every call so tests can assert call counts and
// ordering against the record-store contract.
type fakeLeadService struct {
	listFn      func() ([]entity.Lead, error)
	patchErr    map[int64]error
	deleteErr   error
	patchCalls  []patchCall
	deleteCalls []int64
}

func (f *fakeLeadService) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn()
}

func (f *fakeLeadService) PatchLead(ctx context.Context, id int64, patch entity.LeadPatch) error {
	f.patchCalls = append(f.patchCalls, patchCall{ID: id, Patch: patch})
	if err, ok := f.patchErr[id]; ok {
		return err
	}
	return nil
}

func (f *fakeLeadService) DeleteLead(ctx context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

type fakePublisher struct {
	events []queue.LeadActivityEvent
	err    error
}

func (f *fakePublisher) PublishLeadActivity(_ context.Context, ev queue.LeadActivityEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func lead(id int64, name string, status entity.LeadStatus) entity.Lead {
	return entity.Lead{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Status:    status,
		Priority:  entity.PriorityMedium,
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

// funnelFixture is the five-lead cache used across the view tests:
// statuses new, new, contacted, won, lost in store order.
func funnelFixture() []entity.Lead {
	return []entity.Lead{
		lead(1, "Ada", entity.StatusNew),
		lead(2, "Bo", entity.StatusNew),
		lead(3, "Cy", entity.StatusContacted),
		lead(4, "Dee", entity.StatusWon),
		lead(5, "Eli", entity.StatusLost),
	}
}
