package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records metadata for the ordering flow.
type OrderMetrics struct {
	completed  prometheus.Counter
	total      prometheus.Histogram
	lineItems  prometheus.Counter
	rejections *prometheus.CounterVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Orders confirmed and archived.",
	})
	total := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_pesos",
		Help:    "Monetary total of completed orders.",
		Buckets: prometheus.ExponentialBuckets(50, 2, 10),
	})
	lineItems := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_line_items_total",
		Help: "Line items added to carts.",
	})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "selection_rejections_total",
		Help: "Accompaniment selections rejected by policy.",
	}, []string{"policy"})
	reg.MustRegister(completed, total, lineItems, rejections)
	return &OrderMetrics{
		completed:  completed,
		total:      total,
		lineItems:  lineItems,
		rejections: rejections,
	}
}

// IncCompleted increments the completed order counter.
func (o *OrderMetrics) IncCompleted() {
	if o == nil || o.completed == nil {
		return
	}
	o.completed.Inc()
}

// ObserveTotal records the monetary total of a completed order.
func (o *OrderMetrics) ObserveTotal(total float64) {
	if o == nil || o.total == nil {
		return
	}
	o.total.Observe(total)
}

// IncLineItems adds to the line item counter.
func (o *OrderMetrics) IncLineItems(count int) {
	if o == nil || o.lineItems == nil {
		return
	}
	o.lineItems.Add(float64(count))
}

// IncRejection increments the rejection counter for the named policy.
func (o *OrderMetrics) IncRejection(policy string) {
	if o == nil || o.rejections == nil {
		return
	}
	o.rejections.WithLabelValues(normalizeLabel(policy)).Inc()
}

func normalizeLabel(policy string) string {
	if policy == "" {
		return "unknown"
	}
	return policy
}
