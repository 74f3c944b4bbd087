package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/kafka"
	"github.com/rsaliba/exchange-service/internal/infrastructure/metrics"
	offerdto "github.com/rsaliba/exchange-service/internal/usecase/dto/offer"
)

// SettlementPublisher is satisfied by the kafka publisher; tests fake it.
type SettlementPublisher interface {
	PublishSettlement(event kafka.SettlementEvent) error
}

type OfferUsecase interface {
	CreateRequest(caller domain.Caller, input *offerdto.CreateRequestInput) (*domain.TransactionRequest, error)
	GetRequestWithOffers(caller domain.Caller, requestID string) (*domain.TransactionRequest, error)
	ListRequestsByTellerOffers(caller domain.Caller) ([]*domain.TransactionRequest, error)
	CreateOffer(caller domain.Caller, input *offerdto.CreateOfferInput) error
	DeleteOffer(caller domain.Caller, offerID string) (*domain.Offer, error)
	AcceptOffer(caller domain.Caller, offerID string) (*domain.Offer, error)
	RejectOffer(caller domain.Caller, offerID string) (*domain.Offer, error)
}

// OfferPolicy carries behavior switches that used to be implicit in the
// original system. StrictOwnership limits offer deletion to the owning
// teller; historically any teller could delete any offer.
type OfferPolicy struct {
	StrictOwnership bool
}

type DefaultOfferUsecase struct {
	offerRepo   domain.OfferRepository
	requestRepo domain.TransactionRequestRepository
	publisher   SettlementPublisher
	metrics     *metrics.ExchangeMetrics
	policy      OfferPolicy
}

func NewDefaultOfferUsecase(
	offerRepo domain.OfferRepository,
	requestRepo domain.TransactionRequestRepository,
	publisher SettlementPublisher,
	exchangeMetrics *metrics.ExchangeMetrics,
	policy OfferPolicy,
) *DefaultOfferUsecase {
	return &DefaultOfferUsecase{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		publisher:   publisher,
		metrics:     exchangeMetrics,
		policy:      policy,
	}
}

func (uc *DefaultOfferUsecase) CreateRequest(caller domain.Caller, input *offerdto.CreateRequestInput) (*domain.TransactionRequest, error) {
	if caller.IsTeller {
		return nil, domain.ErrForbidden
	}
	request := &domain.TransactionRequest{
		ID:        uuid.New().String(),
		UserID:    caller.ID,
		Amount:    input.Amount,
		UsdToLbp:  input.UsdToLbp,
		CreatedAt: time.Now(),
	}
	if err := uc.requestRepo.CreateRequest(request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetRequestWithOffers resolves one request with its offers. Tellers see
// teller_id only on their own offers: foreign ids are cleared on a copy of
// the entity before any projection happens. The requesting user, as the
// offer recipient, sees every bidder.
func (uc *DefaultOfferUsecase) GetRequestWithOffers(caller domain.Caller, requestID string) (*domain.TransactionRequest, error) {
	if requestID == "" {
		return nil, domain.ErrNotFound
	}
	request, err := uc.requestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}
	if caller.IsTeller {
		return redactForeignTellers(request, caller.ID), nil
	}
	return request, nil
}

// ListRequestsByTellerOffers returns the caller's active bids: every request
// the teller currently has an offer on, with the same redaction applied.
func (uc *DefaultOfferUsecase) ListRequestsByTellerOffers(caller domain.Caller) ([]*domain.TransactionRequest, error) {
	if !caller.IsTeller {
		return nil, domain.ErrForbidden
	}
	requests, err := uc.requestRepo.GetRequestsByTellerOffers(caller.ID)
	if err != nil {
		return nil, err
	}
	redacted := make([]*domain.TransactionRequest, len(requests))
	for i, request := range requests {
		redacted[i] = redactForeignTellers(request, caller.ID)
	}
	return redacted, nil
}

func (uc *DefaultOfferUsecase) CreateOffer(caller domain.Caller, input *offerdto.CreateOfferInput) error {
	if !caller.IsTeller {
		return domain.ErrForbidden
	}
	request, err := uc.requestRepo.GetRequestByID(input.TransactionID)
	if err != nil {
		return err
	}

	offer := &domain.Offer{
		ID:            uuid.New().String(),
		TransactionID: request.ID,
		TellerID:      caller.ID,
		Amount:        input.Amount,
		CreatedAt:     time.Now(),
	}
	if err := uc.offerRepo.CreateOffer(offer); err != nil {
		return err
	}

	uc.metrics.OffersCreatedTotal.WithLabelValues(metrics.Direction(request.UsdToLbp)).Inc()
	return nil
}

func (uc *DefaultOfferUsecase) DeleteOffer(caller domain.Caller, offerID string) (*domain.Offer, error) {
	if !caller.IsTeller {
		return nil, domain.ErrForbidden
	}
	offer, err := uc.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if uc.policy.StrictOwnership && offer.TellerID != caller.ID {
		return nil, domain.ErrForbidden
	}
	if err := uc.offerRepo.DeleteOffer(offerID); err != nil {
		return nil, err
	}

	uc.metrics.OffersDeletedTotal.Inc()
	return offer, nil
}

// AcceptOffer converts exactly one offer into exactly one settled
// transaction. The side in the request's native currency comes from the
// request amount and the counter currency from the offer amount, selected by
// the request's direction flag. The chosen offer, its siblings and the
// request disappear in the same storage transaction.
func (uc *DefaultOfferUsecase) AcceptOffer(caller domain.Caller, offerID string) (*domain.Offer, error) {
	if caller.IsTeller {
		return nil, domain.ErrForbidden
	}
	offer, err := uc.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	request, err := uc.requestRepo.GetRequestByID(offer.TransactionID)
	if err != nil {
		return nil, err
	}

	trxID, err := newTransactionID()
	if err != nil {
		return nil, err
	}
	userID := request.UserID
	trx := &domain.Transaction{
		ID:        trxID,
		UsdToLbp:  request.UsdToLbp,
		TellerID:  offer.TellerID,
		UserID:    &userID,
		AddedDate: time.Now(),
	}
	if request.UsdToLbp {
		trx.UsdAmount = request.Amount
		trx.LbpAmount = offer.Amount
	} else {
		trx.UsdAmount = offer.Amount
		trx.LbpAmount = request.Amount
	}

	if err := uc.offerRepo.SettleOffer(offer, trx); err != nil {
		return nil, err
	}

	uc.metrics.OffersAcceptedTotal.Inc()
	uc.metrics.TransactionsSettledTotal.WithLabelValues("market").Inc()
	uc.metrics.SettledAmountTotal.WithLabelValues("usd").Add(trx.UsdAmount)
	uc.metrics.SettledAmountTotal.WithLabelValues("lbp").Add(trx.LbpAmount)

	if uc.publisher != nil {
		event := kafka.SettlementEvent{
			TransactionID: trx.ID,
			TellerID:      trx.TellerID,
			UserID:        request.UserID,
			UsdAmount:     trx.UsdAmount,
			LbpAmount:     trx.LbpAmount,
			UsdToLbp:      trx.UsdToLbp,
			Source:        "market",
		}
		if err := uc.publisher.PublishSettlement(event); err != nil {
			slog.Error("settlement event publish failed", "transaction_id", trx.ID, "error", err.Error())
		}
	}

	return offer, nil
}

func (uc *DefaultOfferUsecase) RejectOffer(caller domain.Caller, offerID string) (*domain.Offer, error) {
	if caller.IsTeller {
		return nil, domain.ErrForbidden
	}
	offer, err := uc.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if err := uc.offerRepo.RejectOffer(offer); err != nil {
		return nil, err
	}

	uc.metrics.OffersRejectedTotal.Inc()
	return offer, nil
}

// redactForeignTellers works on copies so repository-held entities are never
// mutated in place.
func redactForeignTellers(request *domain.TransactionRequest, tellerID string) *domain.TransactionRequest {
	redacted := *request
	redacted.Offers = make([]domain.Offer, len(request.Offers))
	for i, offer := range request.Offers {
		if offer.TellerID != tellerID {
			offer.TellerID = ""
		}
		redacted.Offers[i] = offer
	}
	return &redacted
}

func newTransactionID() (string, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}
	return idGenerator(), nil
}
