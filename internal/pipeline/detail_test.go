package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/queue"
)

func newEditor(t *testing.T, svc *fakeLeadService, events *fakePublisher) (*DetailEditor, *Store) {
	t.Helper()
	store := loadedStore(t, svc)
	return NewDetailEditor(store, svc, AnyTransition, events, zap.NewNop()), store
}

func TestDetailSaveSendsBothFieldsInOnePatch(t *testing.T) {
	svc := &fakeLeadService{}
	editor, store := newEditor(t, svc, &fakePublisher{})

	err := editor.Save(context.Background(), 1, entity.StatusContacted, "called twice, promising")
	assert.NoError(t, err)

	assert.Len(t, svc.patchCalls, 1, "status and notes travel together")
	call := svc.patchCalls[0]
	assert.Equal(t, int64(1), call.ID)
	assert.Equal(t, entity.StatusContacted, *call.Patch.Status)
	assert.Equal(t, "called twice, promising", *call.Patch.Notes)

	got, _ := store.Get(1)
	assert.Equal(t, entity.StatusContacted, got.Status)
	assert.Equal(t, "called twice, promising", got.Notes)
}

// Confirmed-before-reflect: a failed call leaves the cache untouched.
func TestDetailSaveFailureLeavesCacheUntouched(t *testing.T) {
	svc := &fakeLeadService{patchErr: map[int64]error{1: errors.New("store down")}}
	editor, store := newEditor(t, svc, &fakePublisher{})

	err := editor.Save(context.Background(), 1, entity.StatusWon, "nope")
	assert.Error(t, err)

	got, _ := store.Get(1)
	assert.Equal(t, entity.StatusNew, got.Status)
	assert.Empty(t, got.Notes)
}

func TestDetailSaveUnknownLead(t *testing.T) {
	svc := &fakeLeadService{}
	editor, _ := newEditor(t, svc, &fakePublisher{})

	err := editor.Save(context.Background(), 404, entity.StatusWon, "")
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Empty(t, svc.patchCalls)
}

func TestDetailSavePublishesOnlyOnStatusChange(t *testing.T) {
	svc := &fakeLeadService{}
	events := &fakePublisher{}
	editor, _ := newEditor(t, svc, events)

	// Notes-only edit: status stays new, no activity event.
	assert.NoError(t, editor.Save(context.Background(), 1, entity.StatusNew, "just notes"))
	assert.Empty(t, events.events)

	assert.NoError(t, editor.Save(context.Background(), 1, entity.StatusContacted, "moved"))
	assert.Len(t, events.events, 1)
	assert.Equal(t, queue.EventStatusChanged, events.events[0].Event)
}

func TestDetailDeleteRequiresConfirmation(t *testing.T) {
	svc := &fakeLeadService{}
	editor, store := newEditor(t, svc, &fakePublisher{})

	err := editor.Delete(context.Background(), 1, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, svc.deleteCalls, "nothing reaches the wire unconfirmed")
	assert.Equal(t, 5, store.Len())
}

func TestDetailDeleteRemovesFromCacheAfterAck(t *testing.T) {
	svc := &fakeLeadService{}
	editor, store := newEditor(t, svc, &fakePublisher{})

	assert.NoError(t, editor.Delete(context.Background(), 5, true))
	assert.Equal(t, []int64{5}, svc.deleteCalls)
	_, ok := store.Get(5)
	assert.False(t, ok)
}

func TestDetailDeleteFailureKeepsRecord(t *testing.T) {
	svc := &fakeLeadService{deleteErr: errors.New("store down")}
	editor, store := newEditor(t, svc, &fakePublisher{})

	assert.Error(t, editor.Delete(context.Background(), 5, true))
	_, ok := store.Get(5)
	assert.True(t, ok, "unacknowledged delete keeps the cached record")
}

func TestActivityTrailIsSyntheticTwoEntries(t *testing.T) {
	l := lead(7, "Ada", entity.StatusProposal)

	trail := ActivityTrail(l)

	assert.Len(t, trail, 2)
	assert.Equal(t, "record created", trail[0].Label)
	assert.Equal(t, l.CreatedAt, trail[0].At)
	assert.Equal(t, "status now: proposal", trail[1].Label)
	assert.Equal(t, l.UpdatedAt, trail[1].At)
}
