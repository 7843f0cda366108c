package kafka

import (
	"context"
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
