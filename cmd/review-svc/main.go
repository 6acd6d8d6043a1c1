package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"orderflow/config"
	httpapi "orderflow/internal/api/http"
	"orderflow/internal/review"
	"orderflow/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	ratingWriter := config.NewKafkaWriter("ratings")
	defer ratingWriter.Close()

	ratingReader := config.NewKafkaReader("ratings", "review-svc")
	defer ratingReader.Close()

	repo := storage.NewRatingRepository(db)
	cache := storage.NewRedisRatingCache(rdb, 7*24*time.Hour)
	service := review.NewService(repo, cache, storage.NewKafkaRatingPublisher(ratingWriter))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := review.NewConsumer(ratingReader, repo, cache)
	go consumer.Start(ctx)

	router := httpapi.NewRouter(httpapi.NewReviewHandler(service))
	httpapi.StartServer(":"+config.Getenv("PORT", "8082"), router)
}
