package handlers

import (
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/botpilothq/console/internal/session"
)

type HealthHandler struct {
	RecordStoreURL string
	RabbitMQ       *amqp091.Connection
	Sessions       *session.Manager
	StartTime      time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	MountedViews int               `json:"mounted_views"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(recordStoreURL string, rabbitMQ *amqp091.Connection, sessions *session.Manager) *HealthHandler {
	return &HealthHandler{
		RecordStoreURL: recordStoreURL,
		RabbitMQ:       rabbitMQ,
		Sessions:       sessions,
		StartTime:      time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.RecordStoreURL != "" {
		deps["recordstore"] = "configured"
	} else {
		deps["recordstore"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		MountedViews: h.Sessions.Count(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
