package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/salepointhq/salepoint-backend/pkg/money"
)

// RegisterMetrics records checkout outcomes for the POS register.
type RegisterMetrics struct {
	salesCompleted *prometheus.CounterVec
	saleTotal      *prometheus.HistogramVec
	cartRejections *prometheus.CounterVec
}

// NewRegisterMetrics registers the register metrics on the provided registerer.
func NewRegisterMetrics(reg prometheus.Registerer) *RegisterMetrics {
	if reg == nil {
		return &RegisterMetrics{}
	}
	salesCompleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_completed_total",
		Help: "Completed sales by payment method.",
	}, []string{"payment_method"})
	saleTotal := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sale_total_dollars",
		Help:    "Final sale totals in major currency units.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"payment_method"})
	cartRejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_rejections_total",
		Help: "Rejected cart operations by reason.",
	}, []string{"reason"})
	reg.MustRegister(salesCompleted, saleTotal, cartRejections)
	return &RegisterMetrics{
		salesCompleted: salesCompleted,
		saleTotal:      saleTotal,
		cartRejections: cartRejections,
	}
}

// ObserveSale records one completed sale.
func (m *RegisterMetrics) ObserveSale(paymentMethod string, total money.Cents) {
	if m == nil || m.salesCompleted == nil {
		return
	}
	label := normalizeLabel(paymentMethod)
	m.salesCompleted.WithLabelValues(label).Inc()
	m.saleTotal.WithLabelValues(label).Observe(total.Decimal().InexactFloat64())
}

// IncRejection counts a rejected cart operation.
func (m *RegisterMetrics) IncRejection(reason string) {
	if m == nil || m.cartRejections == nil {
		return
	}
	m.cartRejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
