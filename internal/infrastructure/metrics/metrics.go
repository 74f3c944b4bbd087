package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics groups every collector the offer lifecycle and transaction
// recording touch.
type ExchangeMetrics struct {
	// Counters over the offer lifecycle
	OffersCreatedTotal  *prometheus.CounterVec
	OffersAcceptedTotal prometheus.Counter
	OffersRejectedTotal prometheus.Counter
	OffersDeletedTotal  prometheus.Counter

	// Settled transactions, partitioned by how they entered the book
	TransactionsSettledTotal *prometheus.CounterVec
	SettledAmountTotal       *prometheus.CounterVec
}

func NewExchangeMetrics(reg prometheus.Registerer) *ExchangeMetrics {
	factory := promauto.With(reg)
	return &ExchangeMetrics{
		OffersCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_offers_created_total",
			Help: "Number of offers posted by tellers",
		}, []string{"direction"}),
		OffersAcceptedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_offers_accepted_total",
			Help: "Number of offers accepted by requesting users",
		}),
		OffersRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_offers_rejected_total",
			Help: "Number of offers rejected by requesting users",
		}),
		OffersDeletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_offers_deleted_total",
			Help: "Number of offers withdrawn by tellers",
		}),
		TransactionsSettledTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_transactions_settled_total",
			Help: "Number of settled transactions",
		}, []string{"source"}),
		SettledAmountTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_settled_amount_total",
			Help: "Settled amount totals per currency",
		}, []string{"currency"}),
	}
}

// Direction returns the label value for a request's conversion direction.
func Direction(usdToLbp bool) string {
	if usdToLbp {
		return "usd_to_lbp"
	}
	return "lbp_to_usd"
}
