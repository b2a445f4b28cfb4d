package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectMissionSignup      = "mission.signup"
	SubjectContactMessage     = "contact.message"
	SubjectPartnerApplication = "partner.application"
)

// Event is the envelope published for every accepted submission.
type Event struct {
	Subject    string          `json:"subject"`
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEvent(subject, id string, occurredAt time.Time, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encoding %s payload: %w", subject, err)
	}
	return Event{Subject: subject, ID: id, OccurredAt: occurredAt.UTC(), Payload: data}, nil
}

type Publisher interface {
	Publish(e Event) error
	Close()
}

type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(natsURL string, logger *zap.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name("wavecleanup"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", natsURL, err)
	}

	logger.Info("connected to NATS", zap.String("url", natsURL))
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func (p *NATSPublisher) Publish(e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding event %s: %w", e.ID, err)
	}
	if err := p.conn.Publish(e.Subject, data); err != nil {
		return fmt.Errorf("publishing %s: %w", e.Subject, err)
	}
	p.logger.Debug("published event", zap.String("subject", e.Subject), zap.String("id", e.ID))
	return nil
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
		p.logger.Info("disconnected from NATS")
	}
}

func (p *NATSPublisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// NopPublisher drops every event. Used when NATS_URL is empty.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) error { return nil }
func (NopPublisher) Close()              {}
