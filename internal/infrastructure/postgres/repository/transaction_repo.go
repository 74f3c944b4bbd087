package repository

import (
	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	db *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{db: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(trx *domain.Transaction) error {
	trxModel := mappers.ToGORMTransaction(trx)
	return r.db.Create(trxModel).Error
}

func (r *DefaultTransactionRepository) GetAllTransactions() ([]*domain.Transaction, error) {
	var trxModels []models.TransactionModel
	if err := r.db.Order("added_date DESC").Find(&trxModels).Error; err != nil {
		return nil, err
	}

	return toDomainTransactions(trxModels), nil
}

func (r *DefaultTransactionRepository) GetTransactionsByUserID(userID string) ([]*domain.Transaction, error) {
	var trxModels []models.TransactionModel
	if err := r.db.Where("user_id = ?", userID).Order("added_date DESC").Find(&trxModels).Error; err != nil {
		return nil, err
	}

	return toDomainTransactions(trxModels), nil
}

func toDomainTransactions(trxModels []models.TransactionModel) []*domain.Transaction {
	trxs := make([]*domain.Transaction, len(trxModels))
	for i, trxModel := range trxModels {
		trxs[i] = mappers.ToDomainTransaction(&trxModel)
	}
	return trxs
}
