// Package httpclient provides a configurable HTTP client with built-in
// bearer authentication, transient-failure retry with exponential backoff,
// and OpenTelemetry tracing.
//
// The client is immutable after construction and safe for concurrent use;
// the underlying transport (connection pool) is shared read-only across
// calls. Each dispatch opens a client span, tags it with a generated
// request ID, and records every retry attempt as a span event.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com/v1",
//	    Auth:    httpclient.BearerAuth(token),
//	    Retry:   httpclient.DefaultRetryConfig(),
//	})
//
//	resp, err := httpclient.Post[MyResponse](ctx, client, "/things", body)
//
// Multipart form bodies are supported by passing a *MultipartBody as the
// request Body.
package httpclient
