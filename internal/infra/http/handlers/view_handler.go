package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/http/middleware"
	"github.com/botpilothq/console/internal/pipeline"
	"github.com/botpilothq/console/internal/session"
)

// ViewHandler exposes the lead pipeline over HTTP. A view is mounted once,
// addressed by ID, and carries its own cache and selection; everything here
// reads or mutates exactly one view.
type ViewHandler struct {
	sessions *session.Manager
}

func NewViewHandler(sessions *session.Manager) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

type mountResponse struct {
	ViewID    string `json:"view_id"`
	Total     int    `json:"total"`
	LoadError string `json:"load_error,omitempty"`
}

func (h *ViewHandler) Mount(w http.ResponseWriter, r *http.Request) {
	v, err := h.sessions.Mount(r.Context())
	middleware.RecordCacheLoad(err == nil)

	resp := mountResponse{ViewID: v.ID, Total: v.Store.Len()}
	if err != nil {
		// The view still mounts; the cache is just empty or stale.
		resp.LoadError = err.Error()
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ViewHandler) Unmount(w http.ResponseWriter, r *http.Request) {
	h.sessions.Unmount(chi.URLParam(r, "viewID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) view(w http.ResponseWriter, r *http.Request) (*session.View, bool) {
	v, ok := h.sessions.Get(chi.URLParam(r, "viewID"))
	if !ok {
		writeError(w, http.StatusNotFound, "view not mounted")
		return nil, false
	}
	return v, true
}

// Refresh reloads the cache wholesale. Called after an explicit create; the
// pipeline never polls on its own.
func (h *ViewHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	err := v.Store.Load(r.Context())
	middleware.RecordCacheLoad(err == nil)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"total": v.Store.Len()})
}

type boardResponse struct {
	Stages  []entity.LeadStatus `json:"stages"`
	Buckets pipeline.Board      `json:"buckets"`
}

func (h *ViewHandler) Board(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, boardResponse{
		Stages:  pipeline.BoardStages,
		Buckets: pipeline.Buckets(v.Store.Snapshot()),
	})
}

type tableResponse struct {
	Leads    []entity.Lead `json:"leads"`
	Total    int           `json:"total"`
	Selected []int64       `json:"selected"`
}

func (h *ViewHandler) Table(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	visible := pipeline.Visible(v.Store.Snapshot(), statusFilter(r), r.URL.Query().Get("q"))

	v.Lock()
	selected := v.Selection.IDs()
	v.Unlock()

	writeJSON(w, http.StatusOK, tableResponse{
		Leads:    visible,
		Total:    len(visible),
		Selected: selected,
	})
}

type selectionRequest struct {
	Action string `json:"action"` // toggle, all, clear
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Query  string `json:"q,omitempty"`
}

// Selection mutates the view's selection set. "all" selects exactly the
// currently visible identifiers, so the caller passes its active filter.
func (h *ViewHandler) Selection(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	v.Lock()
	defer v.Unlock()

	switch req.Action {
	case "toggle":
		v.Selection.Toggle(req.ID)
	case "all":
		filter := req.Status
		if filter == "" {
			filter = pipeline.FilterAll
		}
		v.Selection.SelectAll(pipeline.VisibleIDs(v.Store.Snapshot(), filter, req.Query))
	case "clear":
		v.Selection.Clear()
	default:
		writeError(w, http.StatusBadRequest, "action must be toggle, all or clear")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"selected": v.Selection.IDs()})
}

type bulkStatusRequest struct {
	Status entity.LeadStatus `json:"status"`
}

func (h *ViewHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	var req bulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	v.Lock()
	defer v.Unlock()

	res, err := v.Bulk.SetStatus(r.Context(), v.Selection, req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.RecordBulkMutation(res.Applied, len(res.FailedIDs))
	writeJSON(w, http.StatusOK, res)
}

// Export streams the CSV extract for the current filter and selection.
func (h *ViewHandler) Export(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	visible := pipeline.Visible(v.Store.Snapshot(), statusFilter(r), r.URL.Query().Get("q"))

	v.Lock()
	rows := pipeline.ExportRows(visible, v.Selection)
	v.Unlock()

	middleware.RecordExport()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+pipeline.ExportFileName(time.Now()))
	pipeline.WriteCSV(w, rows)
}

type detailRequest struct {
	Status entity.LeadStatus `json:"status"`
	Notes  string            `json:"notes"`
}

func (h *ViewHandler) SaveDetail(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var req detailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := v.Editor.Save(r.Context(), id, req.Status, req.Notes); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := v.Editor.Delete(r.Context(), id, confirmed); err != nil {
		if err == pipeline.ErrNotConfirmed {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) Activity(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	id, err := leadID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	lead, found := v.Store.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "lead not in cache")
		return
	}
	writeJSON(w, http.StatusOK, pipeline.ActivityTrail(lead))
}

func statusFilter(r *http.Request) string {
	if s := r.URL.Query().Get("status"); s != "" {
		return s
	}
	return pipeline.FilterAll
}

func leadID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "leadID"), 10, 64)
}
