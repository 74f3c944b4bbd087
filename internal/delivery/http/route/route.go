package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rsaliba/exchange-service/internal/auth"
	"github.com/rsaliba/exchange-service/internal/delivery/http/handler"
	"github.com/rsaliba/exchange-service/internal/delivery/http/middleware"
	"github.com/rsaliba/exchange-service/internal/usecase"
)

type Deps struct {
	Tokens       *auth.TokenService
	OfferUsecase usecase.OfferUsecase
	TrxUsecase   usecase.TransactionUsecase
	// Redis is optional; when nil the idempotency layer is skipped.
	Redis *redis.Client
}

func SetupRoutes(app *gin.Engine, deps Deps) {
	offerHandler := handler.NewOfferHandler(deps.OfferUsecase)
	trxHandler := handler.NewTransactionHandler(deps.TrxUsecase)

	authed := middleware.AuthRequired(deps.Tokens)

	idempotent := func(c *gin.Context) { c.Next() }
	if deps.Redis != nil {
		idempotent = middleware.Idempotency(deps.Redis)
	}

	app.GET("/offers/", authed, offerHandler.GetOffers)
	app.POST("/offer/", authed, offerHandler.CreateOffer)
	app.DELETE("/offer/", authed, offerHandler.DeleteOffer)
	app.POST("/offer/accept", authed, idempotent, offerHandler.AcceptOffer)
	app.POST("/offer/reject", authed, offerHandler.RejectOffer)

	app.POST("/request", authed, offerHandler.CreateRequest)

	app.POST("/transaction", authed, idempotent, trxHandler.CreateTransaction)
	app.GET("/transaction", authed, trxHandler.GetTransactions)

	app.GET("/metrics", gin.WrapH(promhttp.Handler()))
	app.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}
