package mappers

import (
	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainRequest(model *models.TransactionRequestModel) *domain.TransactionRequest {
	offers := make([]domain.Offer, len(model.Offers))
	for i, offerModel := range model.Offers {
		offers[i] = *ToDomainOffer(&offerModel)
	}
	return &domain.TransactionRequest{
		ID:        model.ID,
		UserID:    model.UserID,
		Amount:    model.Amount,
		UsdToLbp:  model.UsdToLbp,
		NumOffers: model.NumOffers,
		Offers:    offers,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMRequest(request *domain.TransactionRequest) *models.TransactionRequestModel {
	return &models.TransactionRequestModel{
		ID:        request.ID,
		UserID:    request.UserID,
		Amount:    request.Amount,
		UsdToLbp:  request.UsdToLbp,
		NumOffers: request.NumOffers,
		CreatedAt: request.CreatedAt,
	}
}
