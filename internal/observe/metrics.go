// Package observe provides application-wide observability primitives for
// Hearsay: OpenTelemetry metrics, distributed tracing, structured logging,
// and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hearsay-tools/hearsay/internal/transcript/fuzzy"
)

// meterName is the instrumentation scope name used for all Hearsay metrics.
const meterName = "github.com/hearsay-tools/hearsay"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// CorrectionDuration tracks wall-clock latency of one Correct call.
	CorrectionDuration metric.Float64Histogram

	// Corrections counts applied corrections. Use with attribute:
	//   attribute.String("method", ...): exact, variation, fuzzy, or fallback.
	Corrections metric.Int64Counter

	// CacheLookups counts match-memo consultations. Use with attribute:
	//   attribute.String("result", ...): hit or miss.
	CacheLookups metric.Int64Counter

	// IndexRebuilds counts candidate-index rebuilds caused by dictionary
	// snapshot changes. Use with attribute:
	//   attribute.Int("size", ...): the snapshot's entry count.
	IndexRebuilds metric.Int64Counter

	// TokensSkipped counts tokens excluded from correction. Use with attribute:
	//   attribute.String("reason", ...): protected or too_long.
	TokensSkipped metric.Int64Counter

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// Metrics doubles as the fuzzy matcher's event sink.
var _ fuzzy.Observer = (*Metrics)(nil)

// latencyBuckets defines histogram bucket boundaries (in seconds) optimised
// for per-utterance correction latencies, which sit well under a second.
var latencyBuckets = []float64{
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.CorrectionDuration, err = m.Float64Histogram("hearsay.correction.duration",
		metric.WithDescription("Latency of one transcript correction call."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Corrections, err = m.Int64Counter("hearsay.corrections",
		metric.WithDescription("Total applied corrections by method."),
	); err != nil {
		return nil, err
	}
	if met.CacheLookups, err = m.Int64Counter("hearsay.cache.lookups",
		metric.WithDescription("Total match-memo lookups by result."),
	); err != nil {
		return nil, err
	}
	if met.IndexRebuilds, err = m.Int64Counter("hearsay.index.rebuilds",
		metric.WithDescription("Total candidate-index rebuilds."),
	); err != nil {
		return nil, err
	}
	if met.TokensSkipped, err = m.Int64Counter("hearsay.tokens.skipped",
		metric.WithDescription("Total tokens excluded from correction by reason."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("hearsay.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordCorrection records one applied correction with its method attribute.
func (m *Metrics) RecordCorrection(ctx context.Context, method string) {
	m.Corrections.Add(ctx, 1,
		metric.WithAttributes(attribute.String("method", method)),
	)
}

// RecordTokenSkipped records a token excluded from correction.
func (m *Metrics) RecordTokenSkipped(ctx context.Context, reason string) {
	m.TokensSkipped.Add(ctx, 1,
		metric.WithAttributes(attribute.String("reason", reason)),
	)
}

// RecordCorrectionDuration records the wall-clock duration of one Correct
// call, in seconds.
func (m *Metrics) RecordCorrectionDuration(ctx context.Context, seconds float64) {
	m.CorrectionDuration.Record(ctx, seconds)
}

// CacheLookup implements [fuzzy.Observer].
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("result", result)),
	)
}

// IndexRebuild implements [fuzzy.Observer]. The dictionary size rides along
// as an attribute so rebuild churn can be correlated with snapshot growth.
func (m *Metrics) IndexRebuild(size int) {
	m.IndexRebuilds.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("size", size)),
	)
}
