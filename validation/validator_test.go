package validation

import (
	"errors"
	"strings"
	"testing"
)

type testRequest struct {
	Prompt      string   `json:"prompt" validate:"required"`
	Model       string   `json:"model" validate:"required"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
	Format      string   `json:"response_format,omitempty" validate:"omitempty,oneof=json text"`
}

func TestValidate_Passes(t *testing.T) {
	req := testRequest{Prompt: "hello", Model: "gpt-3.5-turbo"}
	if err := Validate(req); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidate_EnumeratesAllMissingFields(t *testing.T) {
	err := Validate(testRequest{})
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(verr.Fields), verr)
	}
	msg := err.Error()
	if !strings.Contains(msg, "prompt: is required") {
		t.Errorf("expected prompt failure with json tag name, got %q", msg)
	}
	if !strings.Contains(msg, "model: is required") {
		t.Errorf("expected model failure, got %q", msg)
	}
}

func TestValidate_RangeConstraint(t *testing.T) {
	temp := 2.5
	err := Validate(testRequest{Prompt: "p", Model: "m", Temperature: &temp})
	if err == nil {
		t.Fatal("expected range error")
	}
	if !strings.Contains(err.Error(), "temperature") {
		t.Errorf("expected temperature failure, got %q", err.Error())
	}
}

func TestValidate_OneOfConstraint(t *testing.T) {
	err := Validate(testRequest{Prompt: "p", Model: "m", Format: "xml"})
	if err == nil {
		t.Fatal("expected oneof error")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("expected oneof message, got %q", err.Error())
	}
}

func TestValidate_NilOptionalSkipped(t *testing.T) {
	err := Validate(testRequest{Prompt: "p", Model: "m"})
	if err != nil {
		t.Errorf("nil optional should be skipped, got %v", err)
	}
}
