package domain

import "time"

// Transaction is the immutable record of a completed conversion. UserID is
// nil for manual teller-entered transactions with no counterpart user.
type Transaction struct {
	ID        string
	UsdToLbp  bool
	UsdAmount float64
	LbpAmount float64
	TellerID  string
	UserID    *string
	AddedDate time.Time
}

// TransactionRepository is append-only: settled transactions are never
// updated or deleted.
type TransactionRepository interface {
	CreateTransaction(trx *Transaction) error
	GetAllTransactions() ([]*Transaction, error)
	GetTransactionsByUserID(userID string) ([]*Transaction, error)
}
