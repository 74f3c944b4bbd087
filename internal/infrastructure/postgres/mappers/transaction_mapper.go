package mappers

import (
	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:        model.ID,
		UsdToLbp:  model.UsdToLbp,
		UsdAmount: model.UsdAmount,
		LbpAmount: model.LbpAmount,
		TellerID:  model.TellerID,
		UserID:    model.UserID,
		AddedDate: model.AddedDate,
	}
}

func ToGORMTransaction(trx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:        trx.ID,
		UsdToLbp:  trx.UsdToLbp,
		UsdAmount: trx.UsdAmount,
		LbpAmount: trx.LbpAmount,
		TellerID:  trx.TellerID,
		UserID:    trx.UserID,
		AddedDate: trx.AddedDate,
	}
}
