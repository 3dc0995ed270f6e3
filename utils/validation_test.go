package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestSanitizeValidationErrorNil(t *testing.T) {
	if msg := SanitizeValidationError(nil); msg != "" {
		t.Errorf("expected empty message for nil error, got %q", msg)
	}
}

func TestSanitizeValidationErrorNonValidator(t *testing.T) {
	msg := SanitizeValidationError(errors.New("json: cannot unmarshal string into Go value"))
	if msg != "Invalid request body" {
		t.Errorf("expected 'Invalid request body', got %q", msg)
	}
}

func TestSanitizeValidationErrorRequired(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerPayload{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "email is required") {
		t.Errorf("expected message to mention email, got %q", msg)
	}
	if !strings.Contains(msg, "password is required") {
		t.Errorf("expected message to mention password, got %q", msg)
	}
}

func TestSanitizeValidationErrorEmail(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerPayload{Email: "not-an-email", Password: "password123"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := SanitizeValidationError(err)
	if msg != "email must be a valid email address" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSanitizeValidationErrorMin(t *testing.T) {
	v := validator.New()
	err := v.Struct(registerPayload{Email: "a@b.com", Password: "short"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := SanitizeValidationError(err)
	if msg != "password must be at least 8 characters" {
		t.Errorf("unexpected message: %q", msg)
	}
}
