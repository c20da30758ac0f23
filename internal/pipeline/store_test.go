package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
)

func TestStoreLoadReplacesWholesale(t *testing.T) {
	first := funnelFixture()
	second := []entity.Lead{lead(9, "Zed", entity.StatusQualified)}

	lists := [][]entity.Lead{first, second}
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) {
		next := lists[0]
		lists = lists[1:]
		return next, nil
	}}
	store := NewStore(svc, zap.NewNop())

	assert.False(t, store.Loaded())

	assert.NoError(t, store.Load(context.Background()))
	assert.True(t, store.Loaded())
	assert.Len(t, store.Snapshot(), 5)

	// The second load is a full replace, not a merge.
	assert.NoError(t, store.Load(context.Background()))
	snap := store.Snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, int64(9), snap[0].ID)
}

func TestStoreLoadFailureKeepsPreviousCache(t *testing.T) {
	calls := 0
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("store unreachable")
		}
		return funnelFixture(), nil
	}}
	store := NewStore(svc, zap.NewNop())

	assert.NoError(t, store.Load(context.Background()))
	err := store.Load(context.Background())

	assert.Error(t, err)
	assert.True(t, store.Loaded())
	assert.Len(t, store.Snapshot(), 5, "failed refresh must not drop the working set")
}

func TestStoreFirstLoadFailureLeavesEmptyButDone(t *testing.T) {
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) {
		return nil, errors.New("store unreachable")
	}}
	store := NewStore(svc, zap.NewNop())

	assert.Error(t, store.Load(context.Background()))
	assert.True(t, store.Loaded(), "loading indicator must still resolve")
	assert.Empty(t, store.Snapshot())
}

func TestStoreReplaceOne(t *testing.T) {
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) { return funnelFixture(), nil }}
	store := NewStore(svc, zap.NewNop())
	assert.NoError(t, store.Load(context.Background()))

	store.ReplaceOne(3, entity.StatusPatch(entity.StatusQualified))

	got, ok := store.Get(3)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusQualified, got.Status)
	assert.Equal(t, "Cy", got.Name, "untouched fields survive the merge")
}

func TestStoreReplaceOneUnknownIDIsNoop(t *testing.T) {
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) { return funnelFixture(), nil }}
	store := NewStore(svc, zap.NewNop())
	assert.NoError(t, store.Load(context.Background()))

	store.ReplaceOne(404, entity.StatusPatch(entity.StatusWon))
	assert.Equal(t, funnelFixture(), store.Snapshot())
}

func TestStoreRemoveOne(t *testing.T) {
	svc := &fakeLeadService{listFn: func() ([]entity.Lead, error) { return funnelFixture(), nil }}
	store := NewStore(svc, zap.NewNop())
	assert.NoError(t, store.Load(context.Background()))

	store.RemoveOne(2)

	assert.Equal(t, 4, store.Len())
	_, ok := store.Get(2)
	assert.False(t, ok)

	// Removing an absent identifier changes nothing.
	store.RemoveOne(2)
	assert.Equal(t, 4, store.Len())
}
