package messaging

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

const (
	SubjectUserCreated   = "user.created"
	SubjectUserCompleted = "user.completed"
)

// Publisher emits user lifecycle events. A nil Publisher is valid and drops
// every event, so the server runs fine without a broker.
type Publisher struct {
	nc *nats.Conn
}

// Connect establishes the NATS connection. Call with an empty URL is a
// configuration error; callers decide whether messaging is enabled.
func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("Connected to NATS.")
	return &Publisher{nc: nc}, nil
}

// Publish marshals the event payload and sends it on the subject. Events are
// best-effort: failures are returned for logging, never retried.
func (p *Publisher) Publish(subject string, payload any) error {
	if p == nil || p.nc == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

// Close closes the NATS connection gracefully.
func (p *Publisher) Close() {
	if p != nil && p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		log.Println("NATS connection closed.")
	}
}
