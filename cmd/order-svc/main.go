package main

import (
	"orderflow/config"
	httpapi "orderflow/internal/api/http"
	"orderflow/internal/notify"
	"orderflow/internal/order"
	"orderflow/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	orderWriter := config.NewKafkaWriter("order-events")
	defer orderWriter.Close()

	orderRepo := storage.NewOrderRepository(db)
	orderService := order.NewService(orderRepo, storage.NewKafkaOrderPublisher(orderWriter))

	notificationRepo := storage.NewNotificationRepository(db)
	feed := storage.NewRedisFeedSignal(rdb)
	notificationService := notify.NewService(notificationRepo, feed)

	router := httpapi.NewRouter(
		httpapi.NewOrderHandler(orderService),
		httpapi.NewNotificationHandler(notificationService),
	)

	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), router)
}
