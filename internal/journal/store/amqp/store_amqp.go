// Package amqp publishes journal records to a topic exchange for downstream
// consumers.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"grouper/internal/journal"
)

// routingPrefix namespaces outcome messages on the exchange; the record
// status completes the key.
const routingPrefix = "enroll.outcome."

// message is the wire shape of one journal record.
type message struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Status    string    `json:"status"`
	DMStatus  string    `json:"dm_status,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// Store publishes each appended record as a persistent JSON message. It is
// meant as a tee beside a durable primary sink, not as the only journal.
type Store struct {
	conn     *amqp091.Connection
	exchange string
}

// New dials the broker and declares the durable topic exchange.
func New(url, exchange string) (*Store, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Store{conn: conn, exchange: exchange}, nil
}

// Append implements journal.Store, publishing the record with routing key
// enroll.outcome.<status>.
func (s *Store) Append(ctx context.Context, rec journal.Record) error {
	ch, err := s.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(message{
		RunID:     rec.RunID.String(),
		Timestamp: rec.Timestamp.UTC(),
		Phone:     rec.Phone,
		UserID:    rec.UserID,
		Username:  rec.Username,
		Status:    rec.Status,
		DMStatus:  rec.DMStatus,
		Note:      rec.Note,
	})
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	err = ch.PublishWithContext(ctx, s.exchange, routingPrefix+rec.Status, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    rec.Timestamp.UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish record for %s: %w", rec.Phone, err)
	}
	return nil
}

// Close tears down the broker connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
