package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"myfooddesk/config"
	"myfooddesk/internal/service"
	"myfooddesk/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[aggregator] no .env file found, using environment")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "sales-aggregator")
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewRedisStore(rdb))
	consumer.Start(context.Background())
}
