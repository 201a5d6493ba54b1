package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Publisher sends generated-catalog events to Kafka. Publishes are
// fire-and-forget from the caller's point of view: the handler logs
// failures and keeps serving.
type Publisher struct {
	broker string
	topic  string
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{broker: broker, topic: topic}
}

// writer constructs a kafka-go producer with async batching; large
// generated payloads need the raised batch ceiling.
func (p *Publisher) writer() *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(p.broker),
		Topic:        p.topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchBytes:   104857600,
	}
}

// PublishCatalogGenerated publishes one event, keyed by transaction ID so
// payloads for the same test transaction land on the same partition.
func (p *Publisher) PublishCatalogGenerated(ctx context.Context, evt model.CatalogGenerated) error {
	w := p.writer()
	defer w.Close()

	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.TransactionID),
		Value: data,
		Time:  time.Now(),
	})
}
