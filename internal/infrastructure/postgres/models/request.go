package models

import "time"

type TransactionRequestModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	UserID    string  `gorm:"type:uuid;index"`
	Amount    float64 `gorm:"index:idx_request_amount"`
	UsdToLbp  bool
	NumOffers int64
	Offers    []OfferModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time    `gorm:"index:idx_request_created_at"`
	UpdatedAt time.Time
}
