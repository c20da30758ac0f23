package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/botpilothq/console/internal/infra/http/middleware"
	"github.com/botpilothq/console/internal/session"
	"github.com/botpilothq/console/internal/usecase"
)

// LeadHandler owns lead creation. Everything else about leads goes through
// a mounted view.
type LeadHandler struct {
	createUC *usecase.CreateLeadUseCase
	sessions *session.Manager
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, sessions *session.Manager) *LeadHandler {
	return &LeadHandler{createUC: createUC, sessions: sessions}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		middleware.RecordIntegrationError("recordstore")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	// A create refreshes the caller's mounted view wholesale, by convention.
	if viewID := r.URL.Query().Get("view"); viewID != "" {
		if v, ok := h.sessions.Get(viewID); ok {
			err := v.Store.Load(r.Context())
			middleware.RecordCacheLoad(err == nil)
		}
	}

	writeJSON(w, http.StatusCreated, lead)
}
