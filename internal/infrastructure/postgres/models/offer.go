package models

import "time"

type OfferModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"type:uuid;index"`
	TellerID      string `gorm:"type:uuid;index"`
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
