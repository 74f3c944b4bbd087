package domain

import "time"

// TransactionRequest is an open ask for USD<->LBP conversion awaiting offers.
// NumOffers caches the live offer count: incremented on offer creation,
// decremented on rejection. Teller deletion leaves it untouched.
type TransactionRequest struct {
	ID        string
	UserID    string
	Amount    float64
	UsdToLbp  bool
	NumOffers int64
	Offers    []Offer
	CreatedAt time.Time
}

type TransactionRequestRepository interface {
	CreateRequest(request *TransactionRequest) error
	// GetRequestByID resolves a request together with its offers.
	GetRequestByID(requestID string) (*TransactionRequest, error)
	// GetRequestsByTellerOffers returns every open request holding at least
	// one offer from the given teller.
	GetRequestsByTellerOffers(tellerID string) ([]*TransactionRequest, error)
}
