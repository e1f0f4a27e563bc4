// ABOUTME: Collection domain model represents a user-owned group of content items
// ABOUTME: Enforces the item cap and provides share-link expiration checking

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxCollectionItems is the maximum number of items a collection may hold
const MaxCollectionItems = 10

// Collection represents a shareable group of extracted content items.
// The ID doubles as the share slug.
type Collection struct {
	// ID is the unique identifier (UUID) for the collection
	ID string

	// Name is the user-given collection name
	Name string

	// OwnerToken identifies the anonymous owner (cookie value)
	OwnerToken string

	// Items are the extracted content records in insertion order
	Items []ContentRecord

	// CreatedAt is when the collection was created
	CreatedAt time.Time

	// ExpiresAt is when the share link expires (nil means never)
	ExpiresAt *time.Time
}

// NewCollection creates a new Collection instance with validation
func NewCollection(name, ownerToken string) (*Collection, error) {
	if name == "" {
		return nil, errors.New("collection name cannot be empty")
	}

	if ownerToken == "" {
		return nil, errors.New("owner token cannot be empty")
	}

	return &Collection{
		ID:         uuid.New().String(),
		Name:       name,
		OwnerToken: ownerToken,
		Items:      []ContentRecord{},
		CreatedAt:  time.Now(),
	}, nil
}

// AddItem appends a content record, enforcing the item cap
func (c *Collection) AddItem(record ContentRecord) error {
	if len(c.Items) >= MaxCollectionItems {
		return errors.New("collection is full")
	}

	if !record.IsValid() {
		return errors.New("content record is not valid")
	}

	c.Items = append(c.Items, record)
	return nil
}

// IsExpired checks if the collection's share link has expired
func (c *Collection) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}

	return time.Now().After(*c.ExpiresAt)
}
