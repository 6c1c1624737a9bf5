package observe

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installTestTracer registers an in-memory tracer provider as the global one
// for the duration of the test and returns its exporter.
func installTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	orig := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(orig)
		_ = tp.Shutdown(context.Background())
	})
	return exp
}

func TestStartSpan_RecordsCorrectionSpan(t *testing.T) {
	exp := installTestTracer(t)

	ctx, span := StartSpan(context.Background(), "correct")
	if CorrelationID(ctx) == "" {
		t.Error("span context has no trace ID")
	}
	span.End()

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if spans[0].Name != "correct" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "correct")
	}
	if got := spans[0].InstrumentationScope.Name; got != tracerName {
		t.Errorf("instrumentation scope = %q, want %q", got, tracerName)
	}
}

func TestCorrelationID_NoActiveSpan(t *testing.T) {
	if got := CorrelationID(context.Background()); got != "" {
		t.Errorf("CorrelationID = %q, want empty", got)
	}
}

func TestCorrelationID_MatchesRecordedTrace(t *testing.T) {
	exp := installTestTracer(t)

	ctx, span := StartSpan(context.Background(), "correct.batch")
	cid := CorrelationID(ctx)
	span.End()

	if len(cid) != 32 {
		t.Fatalf("correlation ID length = %d, want 32", len(cid))
	}
	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != cid {
		t.Errorf("trace ID = %q, correlation ID = %q, want equal", got, cid)
	}
}

func TestCorrelationID_DistinctPerRequest(t *testing.T) {
	installTestTracer(t)

	seen := make(map[string]struct{}, 50)
	for range 50 {
		ctx, span := StartSpan(context.Background(), "correct")
		cid := CorrelationID(ctx)
		span.End()
		if _, dup := seen[cid]; dup {
			t.Fatalf("correlation ID %s issued twice", cid)
		}
		seen[cid] = struct{}{}
	}
}

func TestLogger_BindsTraceIdentifiers(t *testing.T) {
	installTestTracer(t)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx, span := StartSpan(context.Background(), "correct")
	defer span.End()

	Logger(ctx).Info("corrected", "tokens", 3)

	out := buf.String()
	if !strings.Contains(out, "trace_id="+CorrelationID(ctx)) {
		t.Errorf("log line missing trace_id, got: %s", out)
	}
	if !strings.Contains(out, "span_id=") {
		t.Errorf("log line missing span_id, got: %s", out)
	}
}

func TestLogger_PlainWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	Logger(context.Background()).Info("corrected")

	if strings.Contains(buf.String(), "trace_id") {
		t.Errorf("log line unexpectedly carries trace_id: %s", buf.String())
	}
}
