// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// ExtractionService turns an arbitrary URL into a normalized content record
type ExtractionService interface {
	// Extract classifies the URL and runs the matching extraction pipeline
	Extract(ctx context.Context, url string) (*domain.ContentRecord, error)

	// Classify reports which pipeline applies to the URL without extracting
	Classify(url string) domain.ContentType
}

// CollectionService manages user collections of extracted content
type CollectionService interface {
	CreateCollection(ctx context.Context, name, ownerToken string) (*domain.Collection, error)
	GetCollection(ctx context.Context, id string) (*domain.Collection, error)
	ListCollections(ctx context.Context, ownerToken string) ([]*domain.Collection, error)
	AddItem(ctx context.Context, collectionID string, record domain.ContentRecord) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id, ownerToken string) error
}

// MetadataResult contains preview metadata scraped from a webpage
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string
	Favicon     string
	Domain      string
}

// MetadataService extracts link-preview metadata from web pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
	ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*MetadataResult
}
