package models

import "time"

// TransactionModel rows are append-only: nothing in the service updates or
// deletes them once written.
type TransactionModel struct {
	ID        string `gorm:"primaryKey"`
	UsdToLbp  bool
	UsdAmount float64
	LbpAmount float64
	TellerID  string  `gorm:"type:uuid;index"`
	UserID    *string `gorm:"type:uuid;index"`
	AddedDate time.Time `gorm:"index:idx_transaction_added_date"`
}
