// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// CollectionStorage defines the interface for collection persistence
type CollectionStorage interface {
	// Save persists a collection and its items
	Save(ctx context.Context, collection *domain.Collection) error

	// Get retrieves a collection by ID, nil if it does not exist
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// ListByOwner retrieves all collections for an owner token
	ListByOwner(ctx context.Context, ownerToken string) ([]*domain.Collection, error)

	// Delete removes a collection and its items
	Delete(ctx context.Context, id string) error
}
