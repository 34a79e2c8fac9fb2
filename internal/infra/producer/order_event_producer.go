package producer

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/schoolshop/internal/event"
	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("producer closed")

type Producer interface {
	ProduceOrderEvent(ctx context.Context, evt event.Event) error
	Close() error
}

// OrderEventProducer 發送訂單事件到kafka
// key用訂單ID，同一筆訂單的事件會進同一個partition保持順序
type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		Compression:  kafka.Snappy,
	}
	return &OrderEventProducer{writer: writer}
}

// ProduceOrderEvent 同步發送，會block到訊息寫入
func (p *OrderEventProducer) ProduceOrderEvent(ctx context.Context, evt event.Event) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(evt.GetAggregateID()),
		Value: payload,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt.Type()),
			},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

var _ Producer = (*OrderEventProducer)(nil)
