package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/RoyceAzure/lab/schoolshop/internal/event"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type ConsumerError error

var (
	ErrConsumerClosed     = errors.New("consumer closed")
	ErrUnknownEventFormat = errors.New("unknown event format")
)

// OrderEventHandler 訂單事件的處理端
// 出貨系統等外部來源發布的狀態事件由這裡回寫
type OrderEventHandler interface {
	HandleOrderStatusChanged(ctx context.Context, evt *event.OrderStatusChangedEvent) error
}

type IOrderEventConsumer interface {
	Start(ctx context.Context) error
	Stop()
}

// OrderEventConsumer 消費訂單事件topic
type OrderEventConsumer struct {
	reader    *kafka.Reader
	handler   OrderEventHandler
	logger    *zerolog.Logger
	closeOnce sync.Once
	closeChan chan struct{}
}

func NewOrderEventConsumer(brokers []string, topic, groupID string, handler OrderEventHandler, logger *zerolog.Logger) *OrderEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	return &OrderEventConsumer{
		reader:    reader,
		handler:   handler,
		logger:    logger,
		closeChan: make(chan struct{}),
	}
}

// Start blocking消費迴圈，ctx取消或Stop時返回
func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		select {
		case <-c.closeChan:
			return ErrConsumerClosed
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.logger.Error().Err(err).Msg("fetch order event failed")
			continue
		}

		if err := c.dispatch(ctx, msg); err != nil {
			// 處理失敗不commit，留待下次重新消費
			c.logger.Error().Err(err).Str("key", string(msg.Key)).Msg("handle order event failed")
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error().Err(err).Msg("commit order event failed")
		}
	}
}

func (c *OrderEventConsumer) dispatch(ctx context.Context, msg kafka.Message) error {
	eventType := headerValue(msg, "event_type")
	switch event.EventType(eventType) {
	case event.OrderStatusChangedEventName:
		var evt event.OrderStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			return ErrUnknownEventFormat
		}
		return c.handler.HandleOrderStatusChanged(ctx, &evt)
	default:
		// 其他事件類型這裡不處理，直接commit略過
		return nil
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *OrderEventConsumer) Stop() {
	c.closeOnce.Do(func() {
		close(c.closeChan)
		c.reader.Close()
	})
}

var _ IOrderEventConsumer = (*OrderEventConsumer)(nil)
