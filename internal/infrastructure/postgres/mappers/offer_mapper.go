package mappers

import (
	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		TellerID:      model.TellerID,
		Amount:        model.Amount,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMOffer(offer *domain.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:            offer.ID,
		TransactionID: offer.TransactionID,
		TellerID:      offer.TellerID,
		Amount:        offer.Amount,
		CreatedAt:     offer.CreatedAt,
	}
}
