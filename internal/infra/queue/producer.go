package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventCreated       = "lead.created"
	EventStatusChanged = "lead.status-changed"
	EventDeleted       = "lead.deleted"
)

// LeadActivityEvent is what the notifications collaborator consumes off the
// queue. Status is only set for status changes.
type LeadActivityEvent struct {
	LeadID int64     `json:"lead_id"`
	Event  string    `json:"event"`
	Status string    `json:"status,omitempty"`
	At     time.Time `json:"at"`
}

type Producer struct {
	ch *amqp.Channel
}

func NewProducer(rmq *RabbitMQ) *Producer {
	return &Producer{ch: rmq.Ch}
}

func (p *Producer) PublishLeadActivity(ctx context.Context, ev LeadActivityEvent) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal lead activity: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lead activity: %w", err)
	}
	return nil
}

// Discard is the publisher used when no broker is configured. The console
// keeps working; the notifications feed just goes quiet.
type Discard struct{}

func (Discard) PublishLeadActivity(context.Context, LeadActivityEvent) error { return nil }
