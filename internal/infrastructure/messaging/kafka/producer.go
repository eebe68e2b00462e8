package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"goggles_shop/internal/config"
	domain "goggles_shop/internal/domain/order"
	"goggles_shop/internal/infrastructure/encoding/avro"
	"goggles_shop/pkg/logger"
)

// OrderProducer publishes order-confirmed events, Avro-encoded, to Kafka.
type OrderProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewOrderProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderProducer, error) {
	encoder, err := avro.NewEncoder(avro.OrderConfirmedSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic),
	)

	return &OrderProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.OrderTopic,
		log:     log,
	}, nil
}

func (p *OrderProducer) PublishOrderConfirmed(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	payload, err := p.encoder.EncodeNative(avro.OrderConfirmedNative(o))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(o.ID),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *OrderProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
