package recordstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
)

func TestListLeadsNormalizesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/leads", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		io.WriteString(w, `[
			{"id": 1, "name": "Ada", "email": "ada@example.com", "status": "new"},
			{"id": 2, "name": "Bo", "email": "bo@example.com", "status": "won", "source": "Referral", "priority": "high"}
		]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zap.NewNop())
	leads, err := c.ListLeads(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, entity.DefaultSource, leads[0].Source, "omitted source defaults to Website")
	assert.Equal(t, entity.DefaultPriority, leads[0].Priority, "omitted priority defaults to medium")
	assert.Equal(t, "Referral", leads[1].Source)
	assert.Equal(t, entity.PriorityHigh, leads[1].Priority)
}

func TestCreateLeadForcesStatusNew(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new", body["status"])
		assert.Equal(t, "Ada", body["name"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": 42, "name": "Ada", "email": "ada@example.com", "status": "new"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zap.NewNop())
	lead, err := c.CreateLead(context.Background(), CreateLeadInput{Name: "Ada", Email: "ada@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), lead.ID)
}

func TestPatchLeadSendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/leads/7", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "qualified", body["status"])
		_, hasNotes := body["notes"]
		assert.False(t, hasNotes, "unset fields stay off the wire")

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zap.NewNop())
	err := c.PatchLead(context.Background(), 7, entity.StatusPatch(entity.StatusQualified))
	assert.NoError(t, err)
}

func TestDeleteLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/leads/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zap.NewNop())
	assert.NoError(t, c.DeleteLead(context.Background(), 7))
}

func TestNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong-token", zap.NewNop())

	_, err := c.ListLeads(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")

	err = c.PatchLead(context.Background(), 1, entity.StatusPatch(entity.StatusWon))
	assert.Error(t, err)
}

func TestGetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		io.WriteString(w, `{"total_leads": 12, "new_leads": 3, "unread_notifications": 2}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zap.NewNop())
	stats, err := c.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalLeads)
	assert.Equal(t, 2, stats.UnreadNotifications)
}
