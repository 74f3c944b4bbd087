package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rsaliba/exchange-service/internal/delivery/http/middleware"
	"github.com/rsaliba/exchange-service/internal/domain"
	httpdto "github.com/rsaliba/exchange-service/internal/delivery/http/dto"
	"github.com/rsaliba/exchange-service/internal/usecase"
	offerdto "github.com/rsaliba/exchange-service/internal/usecase/dto/offer"
)

type OfferHandler struct {
	offerUsecase usecase.OfferUsecase
}

func NewOfferHandler(offerUsecase usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{offerUsecase: offerUsecase}
}

// GetOffers serves GET /offers/?request-id=ID. A teller without a request-id
// gets its active bids; everyone else resolves a single request. For regular
// users the parameter is mandatory.
func (h *OfferHandler) GetOffers(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	requestID := c.Query("request-id")

	if caller.IsTeller && requestID == "" {
		requests, err := h.offerUsecase.ListRequestsByTellerOffers(caller)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, httpdto.FromDomainRequests(requests))
		return
	}

	request, err := h.offerUsecase.GetRequestWithOffers(caller, requestID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainRequest(request))
}

// CreateOffer serves POST /offer/. The success path carries no body,
// matching the original service.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req httpdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer payload"})
		return
	}

	input := &offerdto.CreateOfferInput{
		TransactionID: req.TransactionID,
		Amount:        *req.Amount,
	}
	if err := h.offerUsecase.CreateOffer(caller, input); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteOffer serves DELETE /offer/?offer-id=ID and returns the removed
// offer's last value.
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	caller := middleware.CallerFromContext(c)
	offerID := c.Query("offer-id")

	offer, err := h.offerUsecase.DeleteOffer(caller, offerID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainOffer(offer))
}

// AcceptOffer serves POST /offer/accept.
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req httpdto.OfferDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer_id is required"})
		return
	}

	offer, err := h.offerUsecase.AcceptOffer(caller, req.OfferID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainOffer(offer))
}

// RejectOffer serves POST /offer/reject.
func (h *OfferHandler) RejectOffer(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req httpdto.OfferDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer_id is required"})
		return
	}

	offer, err := h.offerUsecase.RejectOffer(caller, req.OfferID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainOffer(offer))
}

// CreateRequest serves POST /request.
func (h *OfferHandler) CreateRequest(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req httpdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	input := &offerdto.CreateRequestInput{
		Amount:   *req.Amount,
		UsdToLbp: *req.UsdToLbp,
	}
	request, err := h.offerUsecase.CreateRequest(caller, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FromDomainRequest(request))
}

// writeDomainError keeps the original wire compatibility: role mismatches
// are 403, everything else including unresolvable entities is 400.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
