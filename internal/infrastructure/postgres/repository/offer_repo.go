package repository

import (
	"errors"
	"fmt"

	"github.com/rsaliba/exchange-service/internal/domain"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/rsaliba/exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOfferRepository struct {
	db *gorm.DB
}

func NewDefaultOfferRepository(db *gorm.DB) *DefaultOfferRepository {
	return &DefaultOfferRepository{db: db}
}

// CreateOffer inserts the offer and bumps the parent request's counter in a
// single transaction, so the cached count can never drift ahead of a failed
// insert.
func (r *DefaultOfferRepository) CreateOffer(offer *domain.Offer) error {
	offerModel := mappers.ToGORMOffer(offer)
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TransactionRequestModel{}).
			Where("id = ?", offer.TransactionID).
			UpdateColumn("num_offers", gorm.Expr("num_offers + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("incrementing offer count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Create(offerModel).Error
	})
}

func (r *DefaultOfferRepository) GetOfferByID(offerID string) (*domain.Offer, error) {
	var offerModel models.OfferModel
	if err := r.db.First(&offerModel, "id = ?", offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOffer(&offerModel), nil
}

// DeleteOffer removes the offer only. The parent counter is deliberately
// left alone: rejection is the path that reconciles it.
func (r *DefaultOfferRepository) DeleteOffer(offerID string) error {
	res := r.db.Delete(&models.OfferModel{}, "id = ?", offerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultOfferRepository) RejectOffer(offer *domain.Offer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OfferModel{}, "id = ?", offer.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Model(&models.TransactionRequestModel{}).
			Where("id = ?", offer.TransactionID).
			UpdateColumn("num_offers", gorm.Expr("num_offers - ?", 1)).Error
	})
}

// SettleOffer converts the accepted offer into a settled transaction: the
// transaction row is written, every offer on the request is purged and the
// request itself is deleted, all in one transaction with rollback on any
// failure. A concurrent accept or reject on a sibling loses the race and
// observes ErrNotFound.
func (r *DefaultOfferRepository) SettleOffer(offer *domain.Offer, trx *domain.Transaction) error {
	trxModel := mappers.ToGORMTransaction(trx)
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.OfferModel{}, "transaction_id = ?", offer.TransactionID)
		if res.Error != nil {
			return fmt.Errorf("purging offers: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Delete(&models.TransactionRequestModel{}, "id = ?", offer.TransactionID).Error; err != nil {
			return fmt.Errorf("deleting request: %w", err)
		}
		return tx.Create(trxModel).Error
	})
}
