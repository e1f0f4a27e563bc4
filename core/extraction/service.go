// ABOUTME: Extraction dispatcher, the single entry point for content extraction
// ABOUTME: Classifies a URL and delegates to the matching extractor

package extraction

import (
	"context"

	"stash-app-api/core/domain"
)

// VideoExtractor extracts a transcript record from a video URL
type VideoExtractor interface {
	Extract(ctx context.Context, url string) (*domain.ContentRecord, error)
}

// PageExtractor extracts an article record from a web page URL
type PageExtractor interface {
	Extract(ctx context.Context, url string) (*domain.ContentRecord, error)
}

// Service dispatches extraction requests to the matching pipeline.
// Extractor results and errors pass through unmodified; the dispatcher
// adds no policy of its own.
type Service struct {
	video VideoExtractor
	page  PageExtractor
}

// NewService creates a new extraction dispatcher
func NewService(video VideoExtractor, page PageExtractor) *Service {
	return &Service{
		video: video,
		page:  page,
	}
}

// Extract classifies the URL and runs the matching extraction pipeline
func (s *Service) Extract(ctx context.Context, url string) (*domain.ContentRecord, error) {
	if ClassifyURL(url) == domain.ContentTypeVideo {
		return s.video.Extract(ctx, url)
	}
	return s.page.Extract(ctx, url)
}

// Classify reports which pipeline applies to the URL without extracting
func (s *Service) Classify(url string) domain.ContentType {
	return ClassifyURL(url)
}
