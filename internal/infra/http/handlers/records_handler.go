package handlers

import (
	"net/http"

	"github.com/botpilothq/console/internal/infra/http/middleware"
	"github.com/botpilothq/console/internal/infra/integration/recordstore"
	"github.com/botpilothq/console/internal/infra/worker"
)

// RecordsHandler proxies the read-mostly collections the console lists next
// to the pipeline: clients, referrals, subscribers, audit checks,
// notifications and the dashboard stats.
type RecordsHandler struct {
	store *recordstore.Client
	stats *worker.StatsPoller
}

func NewRecordsHandler(store *recordstore.Client, stats *worker.StatsPoller) *RecordsHandler {
	return &RecordsHandler{store: store, stats: stats}
}

func (h *RecordsHandler) Clients(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListClients(r.Context())
	h.respond(w, out, err)
}

func (h *RecordsHandler) Referrals(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListReferrals(r.Context())
	h.respond(w, out, err)
}

func (h *RecordsHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListSubscribers(r.Context())
	h.respond(w, out, err)
}

func (h *RecordsHandler) AuditChecks(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListAuditChecks(r.Context())
	h.respond(w, out, err)
}

func (h *RecordsHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.ListNotifications(r.Context())
	h.respond(w, out, err)
}

// Stats serves the poller's cached value so the sidebar badges never block
// on the remote collaborator. Falls through to a direct call before the
// first poll lands.
func (h *RecordsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if s := h.stats.Latest(); s != nil {
		writeJSON(w, http.StatusOK, s)
		return
	}

	out, err := h.store.GetStats(r.Context())
	h.respond(w, out, err)
}

func (h *RecordsHandler) respond(w http.ResponseWriter, body any, err error) {
	if err != nil {
		middleware.RecordIntegrationError("recordstore")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, body)
}
