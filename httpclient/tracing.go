package httpclient

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kbukum/llmkit/httpclient"

// startSpan opens a client span covering the whole dispatch, retries included.
func (c *Client) startSpan(ctx context.Context, req Request, requestID string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, req.Method+" "+req.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
			attribute.String("llmkit.request_id", requestID),
			attribute.String("llmkit.client", c.config.Name),
		),
	)
}

// recordRetry marks a retry attempt on the dispatch span.
func recordRetry(span trace.Span, attempt int, err error, backoff time.Duration) {
	span.AddEvent("retry", trace.WithAttributes(
		attribute.Int("attempt", attempt),
		attribute.String("error", err.Error()),
		attribute.Int64("backoff_ms", backoff.Milliseconds()),
	))
}

// recordOutcome records the final status of the dispatch on the span.
func recordOutcome(span trace.Span, resp *Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", apiErr.StatusCode))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
