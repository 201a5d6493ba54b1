package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Handler processes one consumed event. Returning an error logs and moves
// on; the archive is best-effort.
type Handler func(ctx context.Context, evt model.CatalogGenerated) error

func reader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3,
		MaxBytes:       104857600,
		CommitInterval: time.Second,
	})
}

// ConsumeGenerated reads generated-catalog events until the context is
// cancelled, handing each to the handler.
func ConsumeGenerated(ctx context.Context, broker, topic, groupID string, handle Handler) error {
	r := reader(broker, topic, groupID)
	defer r.Close()

	log.Info().Str("topic", topic).Str("group", groupID).Msg("consuming generated-catalog events")

	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			return err
		}
		var evt model.CatalogGenerated
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Warn().Err(err).Msg("skipping malformed generated-catalog event")
			continue
		}
		if err := handle(ctx, evt); err != nil {
			log.Error().Err(err).Str("transaction_id", evt.TransactionID).Msg("event handler failed")
		}
	}
}
