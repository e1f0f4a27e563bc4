// ABOUTME: Request DTOs for collection API endpoints
// ABOUTME: Defines the structure for collection management requests

package requests

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	// Name is the user-given collection name
	Name string `json:"name" required:"true" minLength:"1" maxLength:"120" doc:"Collection name"`
}

// AddItemRequest represents a request to extract a URL and add the
// resulting content record to a collection
type AddItemRequest struct {
	// URL to extract and stash
	URL string `json:"url" required:"true" doc:"URL to extract and add to the collection"`
}
