package postgres

import (
	"log"

	"github.com/rsaliba/exchange-service/internal/config"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ExchangeConfig) *gorm.DB {
	dsn := cfg.ExchangeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionRequestModel{}, &models.OfferModel{}, &models.TransactionModel{})

	return db
}
