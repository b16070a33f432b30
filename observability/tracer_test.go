package observability

import (
	"context"
	"testing"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("llmkit-test")
	if cfg.ServiceName != "llmkit-test" {
		t.Errorf("expected service name, got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected full sampling by default, got %v", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected insecure default for development")
	}
}

func TestInitTracer_InstallsGlobalProvider(t *testing.T) {
	// The OTLP HTTP exporter does not dial until spans are exported, so
	// initialization succeeds without a collector listening.
	tp, err := InitTracer(context.Background(), DefaultTracerConfig("llmkit-test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := Tracer("test")
	_, span := tracer.Start(context.Background(), "op")
	if !span.SpanContext().IsValid() {
		t.Error("expected recording span from installed provider")
	}
	span.End()
}
