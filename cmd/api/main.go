package main

import (
	"log"

	"github.com/joho/godotenv"

	"myfooddesk/config"
	httpapi "myfooddesk/internal/api/http"
	"myfooddesk/internal/service"
	"myfooddesk/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[api] no .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisStore := storage.NewRedisStore(rdb)

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	clock := service.SystemClock{}
	scheduleValidator := service.NewScheduleValidator(clock)
	qrGenerator := service.DefaultQRGenerator{BaseURL: "http://localhost"}

	productSvc := service.NewProductService(repo)
	zoneSvc := service.NewZoneService(repo)
	cartSvc := service.NewCartService(redisStore, repo)
	shopSvc := service.NewShopStatusService(redisStore, clock)
	checkoutSvc := service.NewCheckoutService(cartSvc, repo, repo, shopSvc, scheduleValidator, publisher, qrGenerator, clock)
	orderSvc := service.NewOrderService(repo, publisher, qrGenerator, clock)
	dashboardSvc := service.NewDashboardService(repo, repo, redisStore, clock)
	authSvc := service.NewAuthService(repo)

	handler := httpapi.NewHandler(productSvc, zoneSvc, cartSvc, checkoutSvc, orderSvc, dashboardSvc, shopSvc, authSvc, scheduleValidator)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(config.ListenAddr(), router)
}
