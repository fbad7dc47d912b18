package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAudit publishes a record-mutation event. Publishing is best
// effort: failures are logged and never surfaced to the caller.
func publishAudit(ctx context.Context, w KafkaWriter, entity, action string, recordID int64) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping audit event", "entity", entity, "action", action)
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Entity:    entity,
		Action:    action,
		RecordID:  recordID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Audit event published", "event_id", event.EventID, "entity", entity, "action", action, "record_id", recordID)
	}
}
