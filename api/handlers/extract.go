// ABOUTME: Extraction handler for the Huma API
// ABOUTME: Provides the HTTP endpoint that turns a URL into a content record

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

const extractCacheTTL = time.Hour

// ExtractHandler handles content extraction requests
type ExtractHandler struct {
	extraction interfaces.ExtractionService
	cache      interfaces.Cache
	logger     interfaces.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extraction interfaces.ExtractionService, cache interfaces.Cache, logger interfaces.Logger) *ExtractHandler {
	return &ExtractHandler{
		extraction: extraction,
		cache:      cache,
		logger:     logger,
	}
}

// RegisterRoutes registers all extraction-related routes
func (h *ExtractHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractContent",
		Method:      http.MethodPost,
		Path:        "/extract",
		Summary:     "Extract content from a URL",
		Description: "Classifies the URL, extracts a transcript or article body, and returns a normalized content record",
		Tags:        []string{"Extraction"},
	}, h.Extract)
}

// ExtractInput defines the input for the Extract operation
type ExtractInput struct {
	Body requests.ExtractRequest
}

// ExtractOutput defines the output for the Extract operation
type ExtractOutput struct {
	Body responses.ContentRecordResponse
}

// Extract handles content extraction. Results are cached by URL; the
// extraction core itself stays stateless.
func (h *ExtractHandler) Extract(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	if input.Body.URL == "" {
		return nil, huma.Error400BadRequest("No URL provided")
	}

	cacheKey := "extract:" + input.Body.URL
	if h.cache != nil {
		if data, err := h.cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached responses.ContentRecordResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &ExtractOutput{Body: cached}, nil
			}
		}
	}

	record, err := h.extraction.Extract(ctx, input.Body.URL)
	if err != nil {
		h.logger.Warn("extraction failed", map[string]interface{}{
			"url":   input.Body.URL,
			"error": err.Error(),
		})
		return nil, toHumaError(err)
	}

	response := responses.NewContentRecordResponse(record)

	if h.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			_ = h.cache.Set(ctx, cacheKey, data, extractCacheTTL)
		}
	}

	return &ExtractOutput{Body: response}, nil
}
