// ABOUTME: Response DTOs for collection API endpoints
// ABOUTME: Maps domain collections onto the wire format

package responses

import (
	"time"

	"stash-app-api/core/domain"
)

// CollectionResponse is the wire shape of a collection
type CollectionResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Items     []ContentRecordResponse `json:"items"`
	CreatedAt time.Time               `json:"createdAt"`
	ExpiresAt *time.Time              `json:"expiresAt,omitempty"`
}

// NewCollectionResponse maps a domain collection to its wire shape
func NewCollectionResponse(collection *domain.Collection) CollectionResponse {
	items := make([]ContentRecordResponse, 0, len(collection.Items))
	for i := range collection.Items {
		items = append(items, NewContentRecordResponse(&collection.Items[i]))
	}

	return CollectionResponse{
		ID:        collection.ID,
		Name:      collection.Name,
		Items:     items,
		CreatedAt: collection.CreatedAt,
		ExpiresAt: collection.ExpiresAt,
	}
}
