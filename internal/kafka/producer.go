package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_kafka

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

type writerProducer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) Producer {
	return &writerProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *writerProducer) Publish(ctx context.Context, topic string, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *writerProducer) Close() error {
	return p.writer.Close()
}

// consoleProducer stands in when no brokers are configured: messages go to the
// log instead of a topic, so a dev setup works without Kafka.
type consoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) Producer {
	return &consoleProducer{logger: logger}
}

func (p *consoleProducer) Publish(_ context.Context, topic string, key, value []byte) error {
	p.logger.Info("audit message",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value),
	)
	return nil
}

func (p *consoleProducer) Close() error {
	return nil
}
