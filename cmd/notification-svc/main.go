package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"orderflow/config"
	"orderflow/internal/notify"
	"orderflow/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "notification-svc")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notify.NewConsumer(reader, storage.NewRedisFeedSignal(rdb))
	consumer.Start(ctx)

	log.Println("Notification feed consumer stopped")
}
