// ABOUTME: Metadata handler for the Huma API
// ABOUTME: Provides link-preview metadata for the extension popup

package handlers

import (
	"context"
	"net/http"

	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataHandler handles link-preview metadata requests
type MetadataHandler struct {
	metadata interfaces.MetadataService
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadata interfaces.MetadataService) *MetadataHandler {
	return &MetadataHandler{
		metadata: metadata,
	}
}

// RegisterRoutes registers all metadata-related routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMetadata",
		Method:      http.MethodPost,
		Path:        "/metadata",
		Summary:     "Fetch link-preview metadata for URLs",
		Tags:        []string{"Metadata"},
	}, h.GetMetadata)
}

// GetMetadataInput defines the input for the GetMetadata operation
type GetMetadataInput struct {
	Body requests.MetadataRequest
}

// GetMetadataOutput maps each URL to its preview metadata
type GetMetadataOutput struct {
	Body map[string]responses.MetadataResponse
}

// GetMetadata fetches preview metadata for a batch of URLs
func (h *MetadataHandler) GetMetadata(ctx context.Context, input *GetMetadataInput) (*GetMetadataOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := h.metadata.ExtractMetadataBatch(ctx, input.Body.URLs)

	body := make(map[string]responses.MetadataResponse, len(results))
	for url, result := range results {
		if result == nil {
			continue
		}
		body[url] = responses.MetadataResponse{
			Title:       result.Title,
			Description: result.Description,
			Thumbnail:   result.Thumbnail,
			Favicon:     result.Favicon,
			Domain:      result.Domain,
		}
	}

	return &GetMetadataOutput{Body: body}, nil
}
