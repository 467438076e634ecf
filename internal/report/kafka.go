package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"synaudit/internal/core"
)

const (
	defaultBatchSize    = 100
	defaultBatchTimeout = 100 * time.Millisecond
	defaultMaxAttempts  = 3
)

// KafkaConfig configures the Kafka report sink.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	Compression  string // none|gzip|snappy|lz4|zstd, default snappy
	BatchSize    int
	BatchTimeout time.Duration
	MaxAttempts  int
}

// KafkaSink publishes one JSON record per connection, keyed by the canonical
// endpoint pair so records for the same connection land on the same
// partition, followed by a summary record with an empty key.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(cfg KafkaConfig) (*KafkaSink, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka sink requires at least one broker")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka sink requires a topic")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = defaultBatchTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	writerConfig := kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		Async:        false,
	}

	switch cfg.Compression {
	case "none":
		writerConfig.CompressionCodec = nil
	case "gzip":
		writerConfig.CompressionCodec = compress.Gzip.Codec()
	case "snappy", "":
		writerConfig.CompressionCodec = compress.Snappy.Codec()
	case "lz4":
		writerConfig.CompressionCodec = compress.Lz4.Codec()
	case "zstd":
		writerConfig.CompressionCodec = compress.Zstd.Codec()
	default:
		return nil, fmt.Errorf("unsupported compression: %s", cfg.Compression)
	}

	return &KafkaSink{writer: kafka.NewWriter(writerConfig)}, nil
}

func (s *KafkaSink) Write(rep *core.Report) error {
	doc := toDoc(rep)
	msgs := make([]kafka.Message, 0, len(doc.Connections)+1)
	for _, conn := range doc.Connections {
		value, err := json.Marshal(conn)
		if err != nil {
			return fmt.Errorf("marshal connection record: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(conn.EndpointA + "|" + conn.EndpointB),
			Value: value,
		})
	}
	value, err := json.Marshal(doc.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary record: %w", err)
	}
	msgs = append(msgs, kafka.Message{Value: value})

	if err := s.writer.WriteMessages(context.Background(), msgs...); err != nil {
		return fmt.Errorf("write to kafka: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
