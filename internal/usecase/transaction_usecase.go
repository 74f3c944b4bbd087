package usecase

import (
	"log/slog"
	"time"

	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/kafka"
	"github.com/rsaliba/exchange-service/internal/infrastructure/metrics"
	transactiondto "github.com/rsaliba/exchange-service/internal/usecase/dto/transaction"
)

type TransactionUsecase interface {
	CreateTransaction(caller domain.Caller, input *transactiondto.CreateTransactionInput) (*domain.Transaction, error)
	ListTransactions(caller domain.Caller) ([]*domain.Transaction, error)
}

type DefaultTransactionUsecase struct {
	trxRepo   domain.TransactionRepository
	publisher SettlementPublisher
	metrics   *metrics.ExchangeMetrics
}

func NewDefaultTransactionUsecase(
	trxRepo domain.TransactionRepository,
	publisher SettlementPublisher,
	exchangeMetrics *metrics.ExchangeMetrics,
) *DefaultTransactionUsecase {
	return &DefaultTransactionUsecase{
		trxRepo:   trxRepo,
		publisher: publisher,
		metrics:   exchangeMetrics,
	}
}

// CreateTransaction records a manual, teller-initiated exchange. There is no
// counterpart user, so UserID stays nil.
func (uc *DefaultTransactionUsecase) CreateTransaction(caller domain.Caller, input *transactiondto.CreateTransactionInput) (*domain.Transaction, error) {
	if !caller.IsTeller {
		return nil, domain.ErrForbidden
	}

	trxID, err := newTransactionID()
	if err != nil {
		return nil, err
	}
	trx := &domain.Transaction{
		ID:        trxID,
		UsdToLbp:  input.UsdToLbp,
		UsdAmount: input.UsdAmount,
		LbpAmount: input.LbpAmount,
		TellerID:  caller.ID,
		UserID:    nil,
		AddedDate: time.Now(),
	}
	if err := uc.trxRepo.CreateTransaction(trx); err != nil {
		return nil, err
	}

	uc.metrics.TransactionsSettledTotal.WithLabelValues("manual").Inc()
	uc.metrics.SettledAmountTotal.WithLabelValues("usd").Add(trx.UsdAmount)
	uc.metrics.SettledAmountTotal.WithLabelValues("lbp").Add(trx.LbpAmount)

	if uc.publisher != nil {
		event := kafka.SettlementEvent{
			TransactionID: trx.ID,
			TellerID:      trx.TellerID,
			UsdAmount:     trx.UsdAmount,
			LbpAmount:     trx.LbpAmount,
			UsdToLbp:      trx.UsdToLbp,
			Source:        "manual",
		}
		if err := uc.publisher.PublishSettlement(event); err != nil {
			slog.Error("settlement event publish failed", "transaction_id", trx.ID, "error", err.Error())
		}
	}

	return trx, nil
}

// ListTransactions: tellers see the whole book, regular users only records
// they were party to.
func (uc *DefaultTransactionUsecase) ListTransactions(caller domain.Caller) ([]*domain.Transaction, error) {
	if caller.IsTeller {
		return uc.trxRepo.GetAllTransactions()
	}
	return uc.trxRepo.GetTransactionsByUserID(caller.ID)
}
