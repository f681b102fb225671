package http

import (
	"errors"

	"vinylshop/internal/core/application/usecases/commands"
	"vinylshop/internal/core/domain/model/kernel"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments of the order API.
type Metrics struct {
	payments *prometheus.CounterVec
}

// NewMetrics registers the API metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		payments: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "vinylshop",
			Name:      "order_payments_total",
			Help:      "Payment attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// ObservePayment counts one payment attempt under its outcome label.
func (m *Metrics) ObservePayment(err error) {
	m.payments.WithLabelValues(paymentOutcomeLabel(err)).Inc()
}

func paymentOutcomeLabel(err error) string {
	switch {
	case err == nil:
		return "succeeded"
	case errors.Is(err, commands.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, commands.ErrOrderAlreadyPaid):
		return "already_paid"
	case errors.Is(err, commands.ErrIncorrectAmount):
		return "incorrect_amount"
	case errors.Is(err, kernel.ErrCurrencyMismatch):
		return "currency_mismatch"
	default:
		return "error"
	}
}
