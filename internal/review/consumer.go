package review

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"orderflow/internal/domain"
)

// Consumer folds published rating messages back into the cached summary
// so readers get the aggregate without touching the rows.
type Consumer struct {
	Reader     *kafka.Reader
	Repository RatingRepository
	Cache      RatingCache
}

func NewConsumer(reader *kafka.Reader, repository RatingRepository, cache RatingCache) *Consumer {
	return &Consumer{
		Reader:     reader,
		Repository: repository,
		Cache:      cache,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting rating aggregation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.RatingMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessRating(ctx, msg)
	}
}

func (c *Consumer) ProcessRating(ctx context.Context, msg domain.RatingMessage) {
	if msg.Type != domain.RatingMessageNew {
		return
	}
	log.Printf("Processing rating: restaurant=%d target=%s/%d rating=%d",
		msg.RestaurantID, msg.Target, msg.TargetID, msg.Rating)

	events, err := c.Repository.ListAllRatings(ctx, msg.RestaurantID)
	if err != nil {
		log.Printf("Error loading ratings for restaurant %d: %v", msg.RestaurantID, err)
		return
	}

	summary := Aggregate(events)
	if err := c.Cache.SetSummary(ctx, msg.RestaurantID, summary); err != nil {
		log.Printf("Error caching summary for restaurant %d: %v", msg.RestaurantID, err)
		return
	}

	log.Printf("Refreshed rating summary for restaurant %d", msg.RestaurantID)
}
