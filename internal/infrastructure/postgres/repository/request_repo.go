package repository

import (
	"errors"

	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRequestRepository struct {
	db *gorm.DB
}

func NewDefaultTransactionRequestRepository(db *gorm.DB) *DefaultTransactionRequestRepository {
	return &DefaultTransactionRequestRepository{db: db}
}

func (r *DefaultTransactionRequestRepository) CreateRequest(request *domain.TransactionRequest) error {
	requestModel := mappers.ToGORMRequest(request)
	return r.db.Create(requestModel).Error
}

func (r *DefaultTransactionRequestRepository) GetRequestByID(requestID string) (*domain.TransactionRequest, error) {
	var requestModel models.TransactionRequestModel
	if err := r.db.Preload("Offers").First(&requestModel, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultTransactionRequestRepository) GetRequestsByTellerOffers(tellerID string) ([]*domain.TransactionRequest, error) {
	var requestModels []models.TransactionRequestModel
	if err := r.db.Model(&models.TransactionRequestModel{}).
		Joins("JOIN offer_models ON offer_models.transaction_id = transaction_request_models.id").
		Where("offer_models.teller_id = ?", tellerID).
		Distinct("transaction_request_models.*").
		Preload("Offers").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*domain.TransactionRequest, len(requestModels))
	for i, requestModel := range requestModels {
		requests[i] = mappers.ToDomainRequest(&requestModel)
	}

	return requests, nil
}
