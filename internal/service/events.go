package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Event subjects emitted by the assignment engine, relative to the configured base.
const (
	EventAssignmentCreated   = "assignment.created"
	EventAssignmentCompleted = "assignment.completed"
	EventAssignmentScored    = "assignment.scored"
)

// EventPublisher broadcasts domain events to interested consumers.
type EventPublisher interface {
	Publish(event string, payload interface{})
}

type natsPublisher struct {
	conn        *nats.Conn
	subjectBase string
	logger      zerolog.Logger
}

type eventEnvelope struct {
	ID      string      `json:"id"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	SentAt  time.Time   `json:"sent_at"`
}

// NewEventPublisher builds a NATS-backed publisher. A nil connection disables
// publishing; failures are logged and never propagated to callers.
func NewEventPublisher(conn *nats.Conn, subjectBase string, logger zerolog.Logger) EventPublisher {
	return &natsPublisher{
		conn:        conn,
		subjectBase: strings.TrimSuffix(subjectBase, "."),
		logger:      logger.With().Str("component", "event_publisher").Logger(),
	}
}

func (p *natsPublisher) Publish(event string, payload interface{}) {
	if p.conn == nil {
		return
	}

	subject := event
	if p.subjectBase != "" {
		subject = p.subjectBase + "." + event
	}

	data, err := json.Marshal(eventEnvelope{
		ID:      uuid.NewString(),
		Event:   event,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("event", event).Msg("failed to encode event payload")
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}
