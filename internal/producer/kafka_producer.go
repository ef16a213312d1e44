package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/esc4n0rx/Integra/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderProducer публикует событие о созданном заказе; используется
// опционально — без брокеров сервис работает так же
type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	return &OrderProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *OrderProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID.String()),
		Value: value,
	})
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}
