package httpdto

import (
	"time"

	"github.com/rsaliba/exchange-service/internal/domain"
)

// Responses are explicit field allowlists. Entities never reach the encoder
// directly, so redaction decisions made on the domain objects are the only
// thing that controls what leaves the service.

type OfferResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	TellerID      *string   `json:"teller_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionRequestResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Amount    float64         `json:"amount"`
	UsdToLbp  bool            `json:"usd_to_lbp"`
	NumOffers int64           `json:"num_offers"`
	Offers    []OfferResponse `json:"offers"`
	CreatedAt time.Time       `json:"created_at"`
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	UsdToLbp  bool      `json:"usd_to_lbp"`
	UsdAmount float64   `json:"usd_amount"`
	LbpAmount float64   `json:"lbp_amount"`
	TellerID  string    `json:"teller_id"`
	UserID    *string   `json:"user_id"`
	AddedDate time.Time `json:"added_date"`
}

func FromDomainOffer(offer *domain.Offer) OfferResponse {
	resp := OfferResponse{
		ID:            offer.ID,
		TransactionID: offer.TransactionID,
		Amount:        offer.Amount,
		CreatedAt:     offer.CreatedAt,
	}
	// A cleared teller id was redacted upstream and serializes as null.
	if offer.TellerID != "" {
		tellerID := offer.TellerID
		resp.TellerID = &tellerID
	}
	return resp
}

func FromDomainRequest(request *domain.TransactionRequest) TransactionRequestResponse {
	offers := make([]OfferResponse, len(request.Offers))
	for i := range request.Offers {
		offers[i] = FromDomainOffer(&request.Offers[i])
	}
	return TransactionRequestResponse{
		ID:        request.ID,
		UserID:    request.UserID,
		Amount:    request.Amount,
		UsdToLbp:  request.UsdToLbp,
		NumOffers: request.NumOffers,
		Offers:    offers,
		CreatedAt: request.CreatedAt,
	}
}

func FromDomainRequests(requests []*domain.TransactionRequest) []TransactionRequestResponse {
	responses := make([]TransactionRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = FromDomainRequest(request)
	}
	return responses
}

func FromDomainTransaction(trx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        trx.ID,
		UsdToLbp:  trx.UsdToLbp,
		UsdAmount: trx.UsdAmount,
		LbpAmount: trx.LbpAmount,
		TellerID:  trx.TellerID,
		UserID:    trx.UserID,
		AddedDate: trx.AddedDate,
	}
}

func FromDomainTransactions(trxs []*domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(trxs))
	for i, trx := range trxs {
		responses[i] = FromDomainTransaction(trx)
	}
	return responses
}
