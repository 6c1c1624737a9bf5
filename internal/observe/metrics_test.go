package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

// collect gathers all metric data from the reader.
func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// findMetric searches for a metric by name across all scope metrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// counterValue extracts the value of the data point carrying the given
// attribute, or -1 when absent.
func counterValue(sum metricdata.Sum[int64], key, value string) int64 {
	for _, dp := range sum.DataPoints {
		for _, kv := range dp.Attributes.ToSlice() {
			if string(kv.Key) == key && kv.Value.AsString() == value {
				return dp.Value
			}
		}
	}
	return -1
}

func TestNewMetrics_CreatesWithoutError(t *testing.T) {
	m, _ := newTestMetrics(t)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
}

func TestCorrectionDurationHistogram(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordCorrectionDuration(ctx, 0.003)
	m.RecordCorrectionDuration(ctx, 0.012)

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.correction.duration")
	if met == nil {
		t.Fatal("metric not found")
	}
	hist, ok := met.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("metric is not a histogram")
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if got := hist.DataPoints[0].Count; got != 2 {
		t.Errorf("sample count = %d, want 2", got)
	}
}

func TestCorrectionsCounterByMethod(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordCorrection(ctx, "exact")
	m.RecordCorrection(ctx, "exact")
	m.RecordCorrection(ctx, "fuzzy")

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.corrections")
	if met == nil {
		t.Fatal("metric not found")
	}
	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("metric is not a sum")
	}
	if got := counterValue(sum, "method", "exact"); got != 2 {
		t.Errorf("exact corrections = %d, want 2", got)
	}
	if got := counterValue(sum, "method", "fuzzy"); got != 1 {
		t.Errorf("fuzzy corrections = %d, want 1", got)
	}
}

func TestCacheLookupObserver(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.cache.lookups")
	if met == nil {
		t.Fatal("metric not found")
	}
	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("metric is not a sum")
	}
	if got := counterValue(sum, "result", "hit"); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
	if got := counterValue(sum, "result", "miss"); got != 2 {
		t.Errorf("misses = %d, want 2", got)
	}
}

func TestIndexRebuildObserver(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.IndexRebuild(42)

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.index.rebuilds")
	if met == nil {
		t.Fatal("metric not found")
	}
	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("metric is not a sum")
	}
	if len(sum.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	dp := sum.DataPoints[0]
	if dp.Value != 1 {
		t.Errorf("counter value = %d, want 1", dp.Value)
	}
	foundSize := false
	for _, kv := range dp.Attributes.ToSlice() {
		if string(kv.Key) == "size" && kv.Value.AsInt64() == 42 {
			foundSize = true
		}
	}
	if !foundSize {
		t.Error("missing size attribute on index rebuild")
	}
}

func TestTokensSkippedCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordTokenSkipped(ctx, "protected")
	m.RecordTokenSkipped(ctx, "protected")
	m.RecordTokenSkipped(ctx, "too_long")

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.tokens.skipped")
	if met == nil {
		t.Fatal("metric not found")
	}
	sum, ok := met.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("metric is not a sum")
	}
	if got := counterValue(sum, "reason", "protected"); got != 2 {
		t.Errorf("protected skips = %d, want 2", got)
	}
	if got := counterValue(sum, "reason", "too_long"); got != 1 {
		t.Errorf("too_long skips = %d, want 1", got)
	}
}

func TestHTTPRequestDuration(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.HTTPRequestDuration.Record(ctx, 0.05,
		metric.WithAttributes(
			attribute.String("method", "GET"),
			attribute.String("path", "/healthz"),
		),
	)

	rm := collect(t, reader)
	met := findMetric(rm, "hearsay.http.request.duration")
	if met == nil {
		t.Fatal("metric not found")
	}
	hist, ok := met.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("metric is not a histogram")
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if got := hist.DataPoints[0].Count; got != 1 {
		t.Errorf("sample count = %d, want 1", got)
	}
}

func TestDefaultMetrics_ReturnsSameInstance(t *testing.T) {
	// DefaultMetrics uses the global OTel provider so we just check
	// that repeated calls return the same pointer.
	a := DefaultMetrics()
	b := DefaultMetrics()
	if a != b {
		t.Error("DefaultMetrics returned different pointers")
	}
}
