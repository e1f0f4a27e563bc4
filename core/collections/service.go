// ABOUTME: Collection service handles user collections of extracted content
// ABOUTME: Provides business logic for creating, sharing, and filling collections

package collections

import (
	"context"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"

	"github.com/google/uuid"
)

// Service handles collection operations
type Service struct {
	storage interfaces.CollectionStorage
	logger  interfaces.Logger
}

// NewService creates a new collection service instance
func NewService(storage interfaces.CollectionStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateCollection creates and persists an empty collection
func (s *Service) CreateCollection(ctx context.Context, name, ownerToken string) (*domain.Collection, error) {
	collection, err := domain.NewCollection(name, ownerToken)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "name", Message: err.Error()}
	}

	if err := s.storage.Save(ctx, collection); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save collection")
	}

	s.logger.Info("collection created", map[string]interface{}{
		"collection_id": collection.ID,
	})

	return collection, nil
}

// GetCollection retrieves a collection by its ID (the share slug).
// Expired collections are treated as missing.
func (s *Service) GetCollection(ctx context.Context, id string) (*domain.Collection, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "invalid collection ID format"}
	}

	collection, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to load collection")
	}

	if collection == nil || collection.IsExpired() {
		return nil, &coreerrors.NotFoundError{Resource: "collection", ID: id}
	}

	return collection, nil
}

// ListCollections retrieves all collections owned by a token
func (s *Service) ListCollections(ctx context.Context, ownerToken string) ([]*domain.Collection, error) {
	if ownerToken == "" {
		return nil, &coreerrors.ValidationError{Field: "owner_token", Message: "owner token cannot be empty"}
	}

	collections, err := s.storage.ListByOwner(ctx, ownerToken)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list collections")
	}

	return collections, nil
}

// AddItem appends an extracted content record to a collection, enforcing
// the item cap, and persists the updated collection.
func (s *Service) AddItem(ctx context.Context, collectionID string, record domain.ContentRecord) (*domain.Collection, error) {
	collection, err := s.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := collection.AddItem(record); err != nil {
		return nil, &coreerrors.ValidationError{Field: "items", Message: err.Error()}
	}

	if err := s.storage.Save(ctx, collection); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save collection")
	}

	s.logger.Info("item added to collection", map[string]interface{}{
		"collection_id": collection.ID,
		"item_count":    len(collection.Items),
		"content_type":  string(record.Type),
	})

	return collection, nil
}

// DeleteCollection removes a collection owned by the given token
func (s *Service) DeleteCollection(ctx context.Context, id, ownerToken string) error {
	collection, err := s.GetCollection(ctx, id)
	if err != nil {
		return err
	}

	if collection.OwnerToken != ownerToken {
		return &coreerrors.NotFoundError{Resource: "collection", ID: id}
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		return coreerrors.WrapError(err, "failed to delete collection")
	}

	return nil
}
