package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/llmkit/logger"
	"github.com/kbukum/llmkit/resilience"
)

// Client is a configurable HTTP client with built-in auth, retry, and tracing.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracer     trace.Tracer
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithLogger sets the logger used for dispatch logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// dispatch spans. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithTransport replaces the underlying HTTP transport.
// Intended for tests that stub out the network.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    logger.Nop(),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent(cfg.Name)

	return c, nil
}

// Name returns the client name.
func (c *Client) Name() string {
	return c.config.Name
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// GetConfig returns the client's configuration.
func (c *Client) GetConfig() Config {
	return c.config
}

// Do executes an HTTP request and returns the complete response.
// Transient failures are retried per the configured retry policy; each
// attempt is recorded on the dispatch span and in the log stream. A non-2xx
// status yields a typed *Error carrying the response body text.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.NewString()
	ctx, span := c.startSpan(ctx, req, requestID)
	defer span.End()

	log := c.log.WithFields(map[string]interface{}{
		logger.FieldRequestID: requestID,
		logger.FieldPath:      req.Path,
	})

	send := func() (*Response, error) {
		return c.executeRequest(ctx, req, requestID)
	}

	var resp *Response
	var err error
	if c.config.Retry != nil {
		retryCfg := *c.config.Retry
		if retryCfg.RetryIf == nil {
			retryCfg.RetryIf = IsRetryable
		}
		next := retryCfg.OnRetry
		retryCfg.OnRetry = func(attempt int, attemptErr error, backoff time.Duration) {
			recordRetry(span, attempt, attemptErr, backoff)
			log.Warn("retrying request", logger.Fields(
				logger.FieldAttempt, attempt,
				logger.FieldBackoff, backoff.Milliseconds(),
				logger.FieldError, attemptErr.Error(),
			))
			if next != nil {
				next(attempt, attemptErr, backoff)
			}
		}
		resp, err = resilience.Retry(ctx, retryCfg, send)
	} else {
		resp, err = send()
	}

	recordOutcome(span, resp, err)

	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode > 0 {
			log.Error("API request failed", logger.Fields(
				logger.FieldStatus, apiErr.StatusCode,
				"body", string(apiErr.Body),
			))
		} else {
			log.Error("request failed", logger.ErrorFields(req.Method+" "+req.Path, err))
		}
		return resp, err
	}

	log.Debug("request completed", logger.Fields(logger.FieldStatus, resp.StatusCode))
	return resp, nil
}

// executeRequest builds and sends a single HTTP request.
func (c *Client) executeRequest(ctx context.Context, req Request, requestID string) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Default headers, then request-specific overrides
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("X-Request-ID", requestID)

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.config.Auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case *MultipartBody:
		return v.encode()
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
