// ABOUTME: Collection handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for managing and sharing collections

package handlers

import (
	"context"
	"net/http"

	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// CollectionHandler handles collection management requests
type CollectionHandler struct {
	collections interfaces.CollectionService
	extraction  interfaces.ExtractionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collections interfaces.CollectionService, extraction interfaces.ExtractionService) *CollectionHandler {
	return &CollectionHandler{
		collections: collections,
		extraction:  extraction,
	}
}

// RegisterRoutes registers all collection-related routes
func (h *CollectionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "createCollection",
		Method:      http.MethodPost,
		Path:        "/collections",
		Summary:     "Create a collection",
		Tags:        []string{"Collections"},
	}, h.CreateCollection)

	huma.Register(api, huma.Operation{
		OperationID: "listCollections",
		Method:      http.MethodGet,
		Path:        "/collections",
		Summary:     "List the caller's collections",
		Tags:        []string{"Collections"},
	}, h.ListCollections)

	huma.Register(api, huma.Operation{
		OperationID: "getCollection",
		Method:      http.MethodGet,
		Path:        "/collections/{id}",
		Summary:     "Get a collection by ID or share slug",
		Tags:        []string{"Collections"},
	}, h.GetCollection)

	huma.Register(api, huma.Operation{
		OperationID: "addCollectionItem",
		Method:      http.MethodPost,
		Path:        "/collections/{id}/items",
		Summary:     "Extract a URL and add it to a collection",
		Description: "Runs the extraction pipeline for the URL and appends the resulting content record. Collections hold at most ten items.",
		Tags:        []string{"Collections"},
	}, h.AddItem)

	huma.Register(api, huma.Operation{
		OperationID: "deleteCollection",
		Method:      http.MethodDelete,
		Path:        "/collections/{id}",
		Summary:     "Delete a collection",
		Tags:        []string{"Collections"},
	}, h.DeleteCollection)
}

// CreateCollectionInput defines the input for the CreateCollection operation
type CreateCollectionInput struct {
	OwnerToken string `header:"X-Owner-Token" required:"true" doc:"Anonymous owner identity"`
	Body       requests.CreateCollectionRequest
}

// CollectionOutput wraps a single collection response
type CollectionOutput struct {
	Body responses.CollectionResponse
}

// CreateCollection creates a new empty collection
func (h *CollectionHandler) CreateCollection(ctx context.Context, input *CreateCollectionInput) (*CollectionOutput, error) {
	collection, err := h.collections.CreateCollection(ctx, input.Body.Name, input.OwnerToken)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CollectionOutput{Body: responses.NewCollectionResponse(collection)}, nil
}

// ListCollectionsInput defines the input for the ListCollections operation
type ListCollectionsInput struct {
	OwnerToken string `header:"X-Owner-Token" required:"true" doc:"Anonymous owner identity"`
}

// ListCollectionsOutput wraps the collection list response
type ListCollectionsOutput struct {
	Body []responses.CollectionResponse
}

// ListCollections lists the caller's collections
func (h *CollectionHandler) ListCollections(ctx context.Context, input *ListCollectionsInput) (*ListCollectionsOutput, error) {
	collections, err := h.collections.ListCollections(ctx, input.OwnerToken)
	if err != nil {
		return nil, toHumaError(err)
	}

	body := make([]responses.CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		body = append(body, responses.NewCollectionResponse(collection))
	}

	return &ListCollectionsOutput{Body: body}, nil
}

// GetCollectionInput defines the input for the GetCollection operation
type GetCollectionInput struct {
	ID string `path:"id" doc:"Collection ID (share slug)"`
}

// GetCollection retrieves a collection; shared collections are fetched
// through the same slug, so no owner token is required here.
func (h *CollectionHandler) GetCollection(ctx context.Context, input *GetCollectionInput) (*CollectionOutput, error) {
	collection, err := h.collections.GetCollection(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CollectionOutput{Body: responses.NewCollectionResponse(collection)}, nil
}

// AddItemInput defines the input for the AddItem operation
type AddItemInput struct {
	ID   string `path:"id" doc:"Collection ID"`
	Body requests.AddItemRequest
}

// AddItem extracts the URL and appends the record to the collection
func (h *CollectionHandler) AddItem(ctx context.Context, input *AddItemInput) (*CollectionOutput, error) {
	if input.Body.URL == "" {
		return nil, huma.Error400BadRequest("No URL provided")
	}

	record, err := h.extraction.Extract(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	collection, err := h.collections.AddItem(ctx, input.ID, *record)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CollectionOutput{Body: responses.NewCollectionResponse(collection)}, nil
}

// DeleteCollectionInput defines the input for the DeleteCollection operation
type DeleteCollectionInput struct {
	ID         string `path:"id" doc:"Collection ID"`
	OwnerToken string `header:"X-Owner-Token" required:"true" doc:"Anonymous owner identity"`
}

// DeleteCollectionOutput is an empty response body
type DeleteCollectionOutput struct{}

// DeleteCollection deletes a collection owned by the caller
func (h *CollectionHandler) DeleteCollection(ctx context.Context, input *DeleteCollectionInput) (*DeleteCollectionOutput, error) {
	if err := h.collections.DeleteCollection(ctx, input.ID, input.OwnerToken); err != nil {
		return nil, toHumaError(err)
	}

	return &DeleteCollectionOutput{}, nil
}
