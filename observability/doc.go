// Package observability bootstraps an OpenTelemetry tracer provider
// exporting over OTLP/HTTP. The SDK's dispatch layer creates spans
// through the installed provider; applications that skip InitTracer
// get no-op spans.
package observability
