package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rsaliba/exchange-service/internal/auth"
	"github.com/rsaliba/exchange-service/internal/config"
	"github.com/rsaliba/exchange-service/internal/delivery/http/route"
	"github.com/rsaliba/exchange-service/internal/infrastructure/kafka"
	"github.com/rsaliba/exchange-service/internal/infrastructure/metrics"
	"github.com/rsaliba/exchange-service/internal/infrastructure/migrate"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/repository"
	"github.com/rsaliba/exchange-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Settlement event publisher
	var publisher usecase.SettlementPublisher
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		kafkaPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Optional redis-backed idempotency store
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	exchangeMetrics := metrics.NewExchangeMetrics(prometheus.DefaultRegisterer)

	// Init repositories
	offerRepo := repository.NewDefaultOfferRepository(db)
	requestRepo := repository.NewDefaultTransactionRequestRepository(db)
	trxRepo := repository.NewDefaultTransactionRepository(db)

	// Init usecases
	offerUsecase := usecase.NewDefaultOfferUsecase(
		offerRepo,
		requestRepo,
		publisher,
		exchangeMetrics,
		usecase.OfferPolicy{StrictOwnership: cfg.Policy.StrictOfferOwnership},
	)
	trxUsecase := usecase.NewDefaultTransactionUsecase(trxRepo, publisher, exchangeMetrics)

	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.Default()
	route.SetupRoutes(app, route.Deps{
		Tokens:       tokens,
		OfferUsecase: offerUsecase,
		TrxUsecase:   trxUsecase,
		Redis:        rdb,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("exchange service listening on %s\n", addr)
	if err := app.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
