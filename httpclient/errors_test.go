package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status    int
		wantCode  ErrorCode
		retryable bool
		wantNil   bool
	}{
		{200, 0, false, true},
		{201, 0, false, true},
		{204, 0, false, true},
		{400, ErrCodeAPI, false, false},
		{401, ErrCodeAuth, false, false},
		{403, ErrCodeAuth, false, false},
		{404, ErrCodeNotFound, false, false},
		{422, ErrCodeAPI, false, false},
		{429, ErrCodeRateLimit, true, false},
		{500, ErrCodeServer, true, false},
		{502, ErrCodeServer, true, false},
		{503, ErrCodeServer, true, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := ClassifyStatusCode(tt.status, []byte("body"))
			if tt.wantNil {
				if err != nil {
					t.Errorf("expected nil for %d, got %v", tt.status, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error for %d", tt.status)
			}
			if err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, err.Code)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("expected retryable=%v, got %v", tt.retryable, err.Retryable)
			}
			if err.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, err.StatusCode)
			}
		})
	}
}

func TestClassifyStatusCode_CarriesBody(t *testing.T) {
	body := []byte(`{"error":"bad prompt"}`)
	err := ClassifyStatusCode(400, body)
	if string(err.Body) != string(body) {
		t.Errorf("expected body preserved, got %s", err.Body)
	}
	if err.Message != string(body) {
		t.Errorf("expected message carrying body text, got %s", err.Message)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose cause")
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsRateLimit(ClassifyStatusCode(429, nil)) {
		t.Error("429 should be rate limit")
	}
	if !IsAuth(ClassifyStatusCode(401, nil)) {
		t.Error("401 should be auth")
	}
	if !IsServerError(ClassifyStatusCode(500, nil)) {
		t.Error("500 should be server")
	}
	if !IsValidation(NewValidationError("missing field")) {
		t.Error("expected validation classification")
	}
	if IsRetryable(NewValidationError("missing field")) {
		t.Error("validation errors must not be retryable")
	}
	if !IsTimeout(NewTimeoutError(errors.New("deadline"))) {
		t.Error("expected timeout classification")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors should not be retryable")
	}
}

func TestError_MessageFormat(t *testing.T) {
	err := ClassifyStatusCode(500, []byte("upstream exploded"))
	got := err.Error()
	want := "httpclient: server (HTTP 500): upstream exploded"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
