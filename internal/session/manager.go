package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/pipeline"
)

// View is one mounted pipeline: a lead cache loaded once at mount plus the
// selection and mutation machinery scoped to it. Views are never shared;
// two browser tabs get two views and two caches.
type View struct {
	ID        string
	Store     *pipeline.Store
	Selection *pipeline.Selection
	Bulk      *pipeline.BulkCoordinator
	Editor    *pipeline.DetailEditor

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serializes selection and mutation work within one view. Reads of the
// store go through its own lock and do not need this.
func (v *View) Lock()   { v.mu.Lock() }
func (v *View) Unlock() { v.mu.Unlock() }

// Manager owns the live views and evicts the ones nobody touched within
// the TTL.
type Manager struct {
	mu     sync.Mutex
	views  map[string]*View
	ttl    time.Duration
	svc    pipeline.LeadService
	policy pipeline.TransitionPolicy
	events pipeline.ActivityPublisher
	log    *zap.Logger
}

func NewManager(svc pipeline.LeadService, policy pipeline.TransitionPolicy, events pipeline.ActivityPublisher, ttl time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		views:  make(map[string]*View),
		ttl:    ttl,
		svc:    svc,
		policy: policy,
		events: events,
		log:    log,
	}
}

// Mount creates a view and loads its cache once. The view is usable even
// when the initial load fails (empty cache, error returned for surfacing).
func (m *Manager) Mount(ctx context.Context) (*View, error) {
	store := pipeline.NewStore(m.svc, m.log)
	v := &View{
		ID:        uuid.New().String(),
		Store:     store,
		Selection: pipeline.NewSelection(),
		Bulk:      pipeline.NewBulkCoordinator(store, m.svc, m.policy, m.events, m.log),
		Editor:    pipeline.NewDetailEditor(store, m.svc, m.policy, m.events, m.log),
		lastSeen:  time.Now(),
	}

	err := store.Load(ctx)

	m.mu.Lock()
	m.views[v.ID] = v
	m.mu.Unlock()

	return v, err
}

func (m *Manager) Get(id string) (*View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.views[id]
	if ok {
		v.lastSeen = time.Now()
	}
	return v, ok
}

func (m *Manager) Unmount(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, id)
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}

// StartSweeper evicts idle views until the context ends.
func (m *Manager) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, v := range m.views {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.views, id)
			m.log.Info("evicted idle view", zap.String("view", id))
		}
	}
}
