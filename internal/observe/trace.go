package observe

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope under which correction spans are
// recorded.
const tracerName = "github.com/hearsay-tools/hearsay"

// StartSpan starts a span on the globally registered tracer provider. The
// pipeline opens one span per Correct call under the HTTP server span, so a
// slow request can be split into transport time and matching time. The
// caller must End the returned span.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, opts...)
}

// CorrelationID returns the hex trace ID of the active span, or "" when ctx
// carries none. This is the value the middleware echoes back in the
// X-Correlation-ID response header: a client reporting a bad correction can
// quote the header and the matching trace and log lines are one lookup away.
func CorrelationID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// Logger returns the default logger bound to the active span's trace_id and
// span_id. When ctx has no span the plain default logger is returned.
func Logger(ctx context.Context) *slog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return slog.Default()
	}
	return slog.Default().With(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
}
