// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for extraction failures and API responses

package errors

import (
	"errors"
	"fmt"
)

// ExtractionKind classifies an extraction failure
type ExtractionKind string

const (
	// KindInvalidInput means the URL does not resolve to an extractable shape
	KindInvalidInput ExtractionKind = "invalid_input"

	// KindUnreachable means an upstream service could not be reached
	KindUnreachable ExtractionKind = "unreachable"

	// KindServiceError means an upstream returned an unmapped error status
	KindServiceError ExtractionKind = "service_error"

	// KindInvalidURL means the reader service rejected the URL
	KindInvalidURL ExtractionKind = "invalid_url"

	// KindSiteBlocked means the reader service refuses to serve the site
	KindSiteBlocked ExtractionKind = "site_blocked"

	// KindPageLoadFailed means the reader service could not load the page
	KindPageLoadFailed ExtractionKind = "page_load_failed"

	// KindInvalidResponse means an upstream body was malformed
	KindInvalidResponse ExtractionKind = "invalid_response"

	// KindUnavailable means the video is not playable under any client profile
	KindUnavailable ExtractionKind = "unavailable"

	// KindNoCaptions means the video has no caption tracks
	KindNoCaptions ExtractionKind = "no_captions"

	// KindEmptyTranscript means the caption track decoded to nothing
	KindEmptyTranscript ExtractionKind = "empty_transcript"

	// KindPageInaccessible means the underlying page was unreachable or gated
	KindPageInaccessible ExtractionKind = "page_inaccessible"

	// KindPageBlocked means the page looks like a block or CAPTCHA wall
	KindPageBlocked ExtractionKind = "page_blocked"

	// KindContentTooShort means the extracted body failed the length gate
	KindContentTooShort ExtractionKind = "content_too_short"
)

// ExtractionError represents a terminal failure of one extraction call
type ExtractionError struct {
	Kind       ExtractionKind
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("extraction failed (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Kind, e.Message)
}

// NewExtractionError creates an extraction error with a kind and message
func NewExtractionError(kind ExtractionKind, message string) *ExtractionError {
	return &ExtractionError{
		Kind:    kind,
		Message: message,
	}
}

// NewServiceError creates an extraction error carrying an upstream status code
func NewServiceError(statusCode int, message string) *ExtractionError {
	return &ExtractionError{
		Kind:       KindServiceError,
		Message:    message,
		StatusCode: statusCode,
	}
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

// ExtractionKindOf returns the kind of an extraction error, if it is one
func ExtractionKindOf(err error) (ExtractionKind, bool) {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Kind, true
	}
	return "", false
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
