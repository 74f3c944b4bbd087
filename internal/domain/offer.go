package domain

import "time"

// Offer is a teller's counter-amount against an open transaction request.
type Offer struct {
	ID            string
	TransactionID string
	TellerID      string
	Amount        float64
	CreatedAt     time.Time
}

// OfferRepository bundles every write that must stay atomic with its
// counter/sibling bookkeeping into a single method, so implementations can
// wrap them in one storage transaction.
type OfferRepository interface {
	// CreateOffer inserts the offer and increments the parent request's
	// NumOffers as one unit.
	CreateOffer(offer *Offer) error
	GetOfferByID(offerID string) (*Offer, error)
	// DeleteOffer removes the offer without touching NumOffers.
	DeleteOffer(offerID string) error
	// RejectOffer removes the offer and decrements the parent request's
	// NumOffers as one unit.
	RejectOffer(offer *Offer) error
	// SettleOffer persists the transaction, purges every sibling offer of the
	// accepted one and deletes the parent request, all as one unit.
	SettleOffer(offer *Offer, trx *Transaction) error
}
