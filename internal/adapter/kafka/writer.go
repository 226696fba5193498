package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

// Writer publishes dashboard snapshots to a Kafka topic.
// It implements dashboard.SnapshotPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the snapshot topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes one snapshot. Snapshots built from the same document share a
// key and therefore a partition.
func (w *Writer) Publish(ctx context.Context, snapshot domain.Snapshot) error {
	msg, err := serializeToMessage(snapshot)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	w.logger.Debug("snapshot published",
		"topic", w.writer.Topic,
		"last_updated", snapshot.LastUpdated,
		"fallback", snapshot.Fallback,
	)
	return nil
}

// Close flushes pending writes and releases the producer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

func serializeToMessage(snapshot domain.Snapshot) (kafkago.Message, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize snapshot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(snapshot.LastUpdated),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "fallback", Value: []byte(strconv.FormatBool(snapshot.Fallback))},
			{Key: "generated_at", Value: []byte(snapshot.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
