// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"stash-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var extractionErr *errors.ExtractionError
	if stderrors.As(err, &extractionErr) {
		return extractionToHumaError(extractionErr)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// extractionToHumaError maps the extraction taxonomy onto HTTP statuses.
// The kind and upstream-derived message pass through so the extension can
// show the user why a URL could not be stashed.
func extractionToHumaError(err *errors.ExtractionError) error {
	switch err.Kind {
	case errors.KindInvalidInput, errors.KindInvalidURL:
		return huma.Error400BadRequest(err.Message)

	case errors.KindNoCaptions, errors.KindEmptyTranscript,
		errors.KindSiteBlocked, errors.KindPageLoadFailed,
		errors.KindPageInaccessible, errors.KindPageBlocked,
		errors.KindContentTooShort:
		return huma.Error422UnprocessableEntity(err.Message)

	case errors.KindUnreachable, errors.KindUnavailable,
		errors.KindServiceError, errors.KindInvalidResponse:
		return huma.Error502BadGateway(err.Message)

	default:
		return huma.Error500InternalServerError(err.Message)
	}
}
