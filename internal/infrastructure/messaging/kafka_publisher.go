// Package messaging publishes domain events for downstream workers.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// EventContactSubmitted is the type field of contact events.
const EventContactSubmitted = "contact.submitted"

// ContactSubmittedEvent is the JSON value written to the contact topic.
type ContactSubmittedEvent struct {
	Type       string                  `json:"type"`
	OccurredAt time.Time               `json:"occurred_at"`
	Message    entities.ContactMessage `json:"message"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaContactPublisher struct {
	w   MessageWriter
	now func() time.Time
}

var _ interfaces.IContactEventPublisher = (*KafkaContactPublisher)(nil)

// NewKafkaWriter keys messages by contact id so events of one message stay on
// one partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}

func NewKafkaContactPublisher(w MessageWriter) *KafkaContactPublisher {
	return &KafkaContactPublisher{w: w, now: time.Now}
}

func (p *KafkaContactPublisher) PublishContactSubmitted(ctx context.Context, m entities.ContactMessage) error {
	data, err := json.Marshal(ContactSubmittedEvent{
		Type:       EventContactSubmitted,
		OccurredAt: p.now().UTC(),
		Message:    m,
	})
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.ID),
		Value: data,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(EventContactSubmitted)},
			{Key: "source", Value: []byte(m.Source)},
		},
	})
}

func (p *KafkaContactPublisher) Close() error {
	return p.w.Close()
}

// NoopContactPublisher drops events. Used when no brokers are configured.
type NoopContactPublisher struct{}

var _ interfaces.IContactEventPublisher = NoopContactPublisher{}

func (NoopContactPublisher) PublishContactSubmitted(context.Context, entities.ContactMessage) error {
	return nil
}
