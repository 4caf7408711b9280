package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestOrderMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewOrderMetrics(reg)
	metrics.IncCompleted()
	metrics.ObserveTotal(480)
	metrics.IncLineItems(3)
	metrics.IncRejection("jager-bottle")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "orders_completed_total", "", ""); err != nil {
		t.Fatalf("fetch completed: %v", err)
	} else if got != 1 {
		t.Fatalf("expected completed=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "order_line_items_total", "", ""); err != nil {
		t.Fatalf("fetch line items: %v", err)
	} else if got != 3 {
		t.Fatalf("expected line_items=3, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "selection_rejections_total", "policy", "jager-bottle"); err != nil {
		t.Fatalf("fetch rejections: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejections=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "order_total_pesos"); err != nil {
		t.Fatalf("fetch total: %v", err)
	} else if got != 480 {
		t.Fatalf("expected total sum 480, got %f", got)
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if label == "" || matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		return metric.GetHistogram().GetSampleSum(), nil
	}
	return 0, fmt.Errorf("histogram %q has no samples", name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
