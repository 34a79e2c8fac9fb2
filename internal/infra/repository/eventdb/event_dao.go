package eventdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EventStore/EventStore-Client-Go/v4/esdb"
	"github.com/RoyceAzure/lab/schoolshop/internal/event"
)

// EventDao 訂單事件日誌
// 每筆訂單一條stream，後台稽核訂單歷程用
type EventDao struct {
	client *esdb.Client
}

func NewEventDao(client *esdb.Client) *EventDao {
	return &EventDao{client: client}
}

func orderStreamID(orderID string) string {
	return fmt.Sprintf("order-%s", orderID)
}

// AppendOrderEvent 寫入訂單事件
func (dao *EventDao) AppendOrderEvent(ctx context.Context, evt event.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	eventData := esdb.EventData{
		ContentType: esdb.ContentTypeJson,
		EventType:   string(evt.Type()),
		Data:        payload,
	}
	_, err = dao.client.AppendToStream(ctx, orderStreamID(evt.GetAggregateID()), esdb.AppendToStreamOptions{}, eventData)
	return err
}

// ReadOrderEvents 讀取單筆訂單的事件歷程
func (dao *EventDao) ReadOrderEvents(ctx context.Context, orderID string) ([]*esdb.ResolvedEvent, error) {
	stream, err := dao.client.ReadStream(ctx, orderStreamID(orderID), esdb.ReadStreamOptions{}, 100)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var events []*esdb.ResolvedEvent
	for {
		resolved, err := stream.Recv()
		if err != nil {
			break
		}
		events = append(events, resolved)
	}
	return events, nil
}

// DeleteOrderStream 硬刪除訂單時一併刪除事件流
func (dao *EventDao) DeleteOrderStream(ctx context.Context, orderID string) error {
	_, err := dao.client.DeleteStream(ctx, orderStreamID(orderID), esdb.DeleteStreamOptions{})
	return err
}
