package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
)

// LeadService is the slice of the record-store contract the pipeline needs.
// The full client in infra/integration/recordstore satisfies it.
type LeadService interface {
	ListLeads(ctx context.Context) ([]entity.Lead, error)
	PatchLead(ctx context.Context, id int64, patch entity.LeadPatch) error
	DeleteLead(ctx context.Context, id int64) error
}

// Store holds the working copy of the lead collection for one mounted view.
// It is the single source every derivation (filter, board, export) reads
// from; consumers get snapshots, never the backing slice.
type Store struct {
	mu     sync.RWMutex
	svc    LeadService
	log    *zap.Logger
	leads  []entity.Lead
	loaded bool
}

func NewStore(svc LeadService, log *zap.Logger) *Store {
	return &Store{svc: svc, log: log}
}

// Load fetches the full collection and replaces the cache wholesale. On
// failure the previous contents stay in place (empty on first load) and the
// store still counts as loaded, so the view degrades instead of blocking.
func (s *Store) Load(ctx context.Context) error {
	leads, err := s.svc.ListLeads(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		s.log.Warn("lead list refresh failed, keeping previous cache",
			zap.Int("cached", len(s.leads)), zap.Error(err))
		return fmt.Errorf("load leads: %w", err)
	}

	s.leads = leads
	return nil
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a copy of the cached collection in store order.
func (s *Store) Snapshot() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

func (s *Store) Get(id int64) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// ReplaceOne merges a confirmed patch into the matching cached entry.
// Unknown identifiers are a no-op: the record may have been deleted or the
// cache replaced since the call was issued.
func (s *Store) ReplaceOne(id int64, patch entity.LeadPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			patch.Apply(&s.leads[i])
			return
		}
	}
}

// RemoveOne drops the matching entry after a confirmed delete.
func (s *Store) RemoveOne(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return
		}
	}
}
