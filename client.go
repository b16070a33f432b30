package llmkit

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/llmkit/config"
	"github.com/kbukum/llmkit/httpclient"
	"github.com/kbukum/llmkit/logger"
)

const userAgent = "llmkit/" + Version

// Config configures the SDK client.
type Config struct {
	// BaseURL is the API base URL. Defaults to the provider's production
	// endpoint, https://api.openai.com/v1.
	BaseURL string
	// Token is the bearer token. Empty means unauthenticated: no
	// Authorization header is sent.
	Token string
	// MaxRetries is the transient-failure retry budget. Zero means the
	// default of 3; a negative value disables retries.
	MaxRetries int
	// Timeout is the per-request send timeout. Defaults to 30s.
	Timeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = config.DefaultBaseURL
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = config.DefaultMaxRetries
	}
	if c.Timeout <= 0 {
		c.Timeout = config.DefaultTimeout
	}
}

// Option customizes a Client at construction time.
type Option func(*options)

type options struct {
	httpOpts []httpclient.Option
}

// WithLogger sets the logger used for dispatch logging. Defaults to a
// no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.httpOpts = append(o.httpOpts, httpclient.WithLogger(l))
	}
}

// WithTracerProvider sets the tracer provider for dispatch spans.
// Defaults to the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.httpOpts = append(o.httpOpts, httpclient.WithTracerProvider(tp))
	}
}

// WithTransport replaces the underlying HTTP transport. Intended for
// tests that stub out the network.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.httpOpts = append(o.httpOpts, httpclient.WithTransport(rt))
	}
}

// Client is a typed client for the provider's HTTP API. It is immutable
// after construction and safe for concurrent use; all calls share one
// transport handle.
type Client struct {
	http *httpclient.Client
}

// New creates a client from the given configuration. This is the one
// canonical constructor: every field, including MaxRetries, always
// takes effect.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.applyDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hcfg := httpclient.Config{
		Name:    "llmkit",
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{"User-Agent": userAgent},
	}
	if cfg.Token != "" {
		hcfg.Auth = httpclient.BearerAuth(cfg.Token)
	}
	if cfg.MaxRetries > 0 {
		retry := httpclient.DefaultRetryConfig()
		retry.MaxRetries = cfg.MaxRetries
		hcfg.Retry = retry
	}

	hc, err := httpclient.New(hcfg, o.httpOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewWithToken creates a client with defaults for everything but the token.
func NewWithToken(token string, opts ...Option) (*Client, error) {
	return New(Config{Token: token}, opts...)
}

// FromSettings creates a client from loaded configuration settings.
func FromSettings(s *config.Settings, opts ...Option) (*Client, error) {
	return New(Config{
		BaseURL:    s.BaseURL,
		Token:      s.APIKey,
		MaxRetries: s.MaxRetries,
		Timeout:    s.Timeout,
	}, opts...)
}

// HTTP returns the underlying dispatch client for advanced use cases.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// apiRequest is implemented by every typed request value.
type apiRequest interface {
	// Validate reports missing or invalid fields before any network call.
	Validate() error
	// intoRequest converts the typed value into an outbound HTTP request.
	intoRequest() (httpclient.Request, error)
}

// dispatch validates a request and sends it through the resilient client.
func (c *Client) dispatch(ctx context.Context, req apiRequest) (*httpclient.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, httpclient.NewValidationError(err.Error())
	}
	hreq, err := req.intoRequest()
	if err != nil {
		return nil, err
	}
	return c.http.Do(ctx, hreq)
}

// ChatCompletion creates a model response for a chat conversation.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	out, err := httpclient.DecodeJSON[ChatCompletionResponse](resp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateImage generates images from a text prompt.
func (c *Client) CreateImage(ctx context.Context, req *CreateImageRequest) (*CreateImageResponse, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	out, err := httpclient.DecodeJSON[CreateImageResponse](resp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Speech synthesizes audio from text and returns the raw audio bytes.
func (c *Client) Speech(ctx context.Context, req *SpeechRequest) ([]byte, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Whisper transcribes or translates audio. The response is decoded
// when the requested format is json or verbose_json; text, srt, and
// vtt come back verbatim in the response's Text field.
func (c *Client) Whisper(ctx context.Context, req *WhisperRequest) (*WhisperResponse, error) {
	format := req.effectiveFormat()
	isJSON := format == WhisperFormatJSON || format == WhisperFormatVerboseJSON
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if isJSON {
		out, err := httpclient.DecodeJSON[WhisperResponse](resp)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	return &WhisperResponse{Text: string(resp.Body)}, nil
}

// Embedding creates an embedding vector for the given input.
func (c *Client) Embedding(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	resp, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	out, err := httpclient.DecodeJSON[EmbeddingResponse](resp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
