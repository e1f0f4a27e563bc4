package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractionError_Error(t *testing.T) {
	err := NewExtractionError(KindNoCaptions, "video has no caption tracks")

	expected := "extraction failed (no_captions): video has no caption tracks"
	if err.Error() != expected {
		t.Errorf("ExtractionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExtractionError_ErrorWithStatus(t *testing.T) {
	err := NewServiceError(503, "reader service is down")

	expected := "extraction failed (service_error, status 503): reader service is down"
	if err.Error() != expected {
		t.Errorf("ExtractionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestNewServiceError(t *testing.T) {
	err := NewServiceError(502, "bad gateway")

	if err.Kind != KindServiceError {
		t.Errorf("Kind = %v, want %v", err.Kind, KindServiceError)
	}
	if err.StatusCode != 502 {
		t.Errorf("StatusCode = %v, want 502", err.StatusCode)
	}
}

func TestIsExtraction_True(t *testing.T) {
	err := NewExtractionError(KindPageBlocked, "block page detected")

	if !IsExtraction(err) {
		t.Error("IsExtraction() = false, want true")
	}
}

func TestIsExtraction_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer context: %w", NewExtractionError(KindUnreachable, "connection refused"))

	if !IsExtraction(err) {
		t.Error("IsExtraction() = false for wrapped error, want true")
	}
}

func TestIsExtraction_False(t *testing.T) {
	if IsExtraction(errors.New("plain error")) {
		t.Error("IsExtraction() = true for plain error, want false")
	}
	if IsExtraction(nil) {
		t.Error("IsExtraction() = true for nil, want false")
	}
}

func TestExtractionKindOf(t *testing.T) {
	kind, ok := ExtractionKindOf(NewExtractionError(KindContentTooShort, "too short"))
	if !ok || kind != KindContentTooShort {
		t.Errorf("ExtractionKindOf() = %v, %v, want %v, true", kind, ok, KindContentTooShort)
	}

	kind, ok = ExtractionKindOf(fmt.Errorf("wrapped: %w", NewExtractionError(KindSiteBlocked, "blocked")))
	if !ok || kind != KindSiteBlocked {
		t.Errorf("ExtractionKindOf() on wrapped error = %v, %v, want %v, true", kind, ok, KindSiteBlocked)
	}

	if _, ok := ExtractionKindOf(errors.New("plain error")); ok {
		t.Error("ExtractionKindOf() matched a plain error")
	}
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "collection",
		ID:       "123",
	}

	expected := "collection not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid URL format",
	}

	expected := "validation error on field 'url': invalid URL format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "collection", ID: "abc"}

	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound() = true for plain error, want false")
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "required"}

	if !IsValidation(err) {
		t.Error("IsValidation() = false, want true")
	}
	if IsValidation(errors.New("other")) {
		t.Error("IsValidation() = true for plain error, want false")
	}
}

func TestWrapError(t *testing.T) {
	inner := errors.New("inner failure")
	wrapped := WrapError(inner, "loading collection")

	if wrapped.Error() != "loading collection: inner failure" {
		t.Errorf("WrapError() = %v", wrapped.Error())
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should match inner with errors.Is")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
