// Package resilience provides retry with exponential backoff for
// transient failures.
//
// Retry wraps a fallible operation and re-executes it with increasing,
// jittered delays until it succeeds, the configured retry budget is
// spent, or the context is cancelled:
//
//	cfg := resilience.DefaultRetryConfig()
//	cfg.RetryIf = httpclient.IsRetryable
//	resp, err := resilience.Retry(ctx, cfg, func() (*Response, error) {
//	    return send(ctx, req)
//	})
package resilience
