package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"orderflow/internal/domain"
	"orderflow/internal/order"
	"orderflow/internal/review"
)

// KafkaOrderPublisher emits order status events keyed by order id so a
// given order's events stay in partition order.
type KafkaOrderPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaOrderPublisher(writer *kafka.Writer) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{Writer: writer}
}

func (p *KafkaOrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}

type KafkaRatingPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaRatingPublisher(writer *kafka.Writer) *KafkaRatingPublisher {
	return &KafkaRatingPublisher{Writer: writer}
}

func (p *KafkaRatingPublisher) PublishRating(ctx context.Context, msg domain.RatingMessage) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.RestaurantID)),
		Value: payload,
	})
}

var (
	_ order.EventPublisher   = (*KafkaOrderPublisher)(nil)
	_ review.RatingPublisher = (*KafkaRatingPublisher)(nil)
)
