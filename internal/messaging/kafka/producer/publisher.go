package producer

import (
	"context"
	"encoding/json"

	"go-garment-store/internal/checkout"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const topicCheckout = "storefront.checkout"

// Publisher menerbitkan event storefront ke Kafka. Fire-and-forget:
// checkout tidak pernah gagal gara-gara event tidak terkirim.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger.Named("kafka.publisher")}
}

func (p *Publisher) CheckoutCompleted(ctx context.Context, ev checkout.CheckoutEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: topicCheckout,
		Key:   []byte(ev.SessionID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("CHECKOUT_COMPLETED")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("publish checkout event failed", zap.Error(err))
		return err
	}
	return nil
}
