package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Getenv reads an environment variable with a fallback for local runs.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		Getenv("POSTGRES_HOST", "localhost"),
		Getenv("POSTGRES_PORT", "5432"),
		Getenv("POSTGRES_USER", "orderflow"),
		Getenv("POSTGRES_PASSWORD", "orderflow"),
		Getenv("POSTGRES_DB", "orderflow"),
		Getenv("POSTGRES_SSLMODE", "disable"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("postgres open: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("postgres ping: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	addr := Getenv("REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("redis ping %s: %v", addr, err)
	}
	return client
}

func kafkaBroker() string {
	return Getenv("KAFKA_BROKER", "localhost:9092")
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{kafkaBroker()},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker()),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
