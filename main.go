package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"rms-backend/config"
	httpapi "rms-backend/internal/api/http"
	"rms-backend/internal/service"
	"rms-backend/internal/storage"
)

const eventsTopic = "rms-events"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedDemo(); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	var cache service.OrderTokenCache
	if rdb := config.InitRedis(); rdb != nil {
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, 24*time.Hour)
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(eventsTopic); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	accounts := service.NewAccountService(repo)
	restaurants := service.NewRestaurantService(repo, repo, publisher)
	orders := service.NewOrderService(repo, repo, cache, publisher, service.DefaultQRGenerator{
		BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:5000"),
	})

	handler := httpapi.NewHandler(accounts, restaurants, orders)
	handler.Ping = repo.Ping

	addr := ":" + config.GetEnv("PORT", "5000")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
