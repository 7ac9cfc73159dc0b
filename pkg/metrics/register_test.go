package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveSale(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewRegisterMetrics(reg)

	m.ObserveSale("cash", 324)
	m.ObserveSale("cash", 500)
	m.ObserveSale("card", 14999)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if got := counterValue(families, "sales_completed_total", "payment_method", "cash"); got != 2 {
		t.Fatalf("cash sales = %v", got)
	}
	if got := counterValue(families, "sales_completed_total", "payment_method", "card"); got != 1 {
		t.Fatalf("card sales = %v", got)
	}
}

func TestIncRejectionNormalizesLabel(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewRegisterMetrics(reg)

	m.IncRejection(" Stock_Exceeded ")
	m.IncRejection("")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if got := counterValue(families, "cart_rejections_total", "reason", "stock_exceeded"); got != 1 {
		t.Fatalf("stock_exceeded rejections = %v", got)
	}
	if got := counterValue(families, "cart_rejections_total", "reason", "unknown"); got != 1 {
		t.Fatalf("unknown rejections = %v", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *RegisterMetrics
	m.ObserveSale("cash", 100)
	m.IncRejection("empty_cart")

	unregistered := NewRegisterMetrics(nil)
	unregistered.ObserveSale("card", 100)
	unregistered.IncRejection("empty_cart")
}

func counterValue(families []*dto.MetricFamily, name, labelName, labelValue string) float64 {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return -1
}
