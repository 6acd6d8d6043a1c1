package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"orderflow/internal/domain"
)

// Consumer watches committed status events and bumps the feed signal for
// every audience the transition notified, so polling clients refresh
// without hammering the notification rows.
type Consumer struct {
	Reader *kafka.Reader
	Feed   FeedSignal
}

func NewConsumer(reader *kafka.Reader, feed FeedSignal) *Consumer {
	return &Consumer{Reader: reader, Feed: feed}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting notification feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderEventStatusChanged {
		return
	}

	order := domain.Order{
		ID:           event.OrderID,
		RestaurantID: event.RestaurantID,
		OrderNumber:  event.OrderNumber,
	}
	requests := OnTransition(&order, event.From, event.To)
	if len(requests) == 0 {
		return
	}

	for _, req := range requests {
		if err := c.Feed.Bump(ctx, req.RestaurantID, req.Audience); err != nil {
			log.Printf("Error bumping feed for restaurant %d audience %s: %v",
				req.RestaurantID, req.Audience, err)
		}
	}
	log.Printf("Feed bumped for order %d (%s -> %s)", event.OrderID, event.From, event.To)
}
