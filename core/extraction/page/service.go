// ABOUTME: Service layer implementation for web page content extraction
// ABOUTME: Delegates fetch and readability to a reader service, then applies a quality gate

package page

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

const maxReaderBody = 5 * 1024 * 1024

// Options tunes the quality gate of the extractor
type Options struct {
	// BaseURL is the base URL of the reader service
	BaseURL string

	// MinContentLength is the shortest content body accepted as genuine
	MinContentLength int

	// BlockTitleTokenLimit is the token-usage ceiling under which a
	// suspect title is treated as a block page. Pages with substantial
	// token usage pass even when the title contains a trigger fragment.
	BlockTitleTokenLimit int
}

// DefaultOptions returns the production gate settings
func DefaultOptions() Options {
	return Options{
		BaseURL:              "https://r.jina.ai",
		MinContentLength:     100,
		BlockTitleTokenLimit: 100,
	}
}

// blockTitleFragments are lowercase title fragments typical of block,
// CAPTCHA, and error pages served with HTTP 200.
var blockTitleFragments = []string{
	"just a moment",
	"access denied",
	"attention required",
	"please verify",
	"verify you are human",
	"page not found",
	"403 forbidden",
	"404 not found",
	"blocked",
}

// warningPatterns match reader warnings that mean the underlying page
// itself was unreachable or gated, even though the reader returned 200.
var warningPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)target url returned error\s*[45]\d\d`),
	regexp.MustCompile(`(?i)requires?\s+a\s+captcha`),
}

// Service extracts article content from web page URLs. Stateless: every
// call is an independent request/response sequence.
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new page extraction service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	defaults := DefaultOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = defaults.BaseURL
	}
	if opts.MinContentLength < 1 {
		opts.MinContentLength = defaults.MinContentLength
	}
	if opts.BlockTitleTokenLimit < 1 {
		opts.BlockTitleTokenLimit = defaults.BlockTitleTokenLimit
	}

	return &Service{
		deps: deps,
		opts: opts,
	}
}

// Extract fetches readable content for a URL via the reader service and
// returns a normalized content record once it passes the quality gate.
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.ContentRecord, error) {
	readerURL := strings.TrimRight(s.opts.BaseURL, "/") + "/" + url.QueryEscape(rawURL)

	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, readerURL, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, coreerrors.NewExtractionError(coreerrors.KindUnreachable,
			"reader service could not be reached: "+err.Error())
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxReaderBody))
	if err != nil {
		return nil, coreerrors.NewExtractionError(coreerrors.KindInvalidResponse,
			"reader response could not be read: "+err.Error())
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, mapErrorStatus(resp.StatusCode(), body)
	}

	var reader readerResponse
	if err := json.Unmarshal(body, &reader); err != nil {
		return nil, coreerrors.NewExtractionError(coreerrors.KindInvalidResponse,
			"reader response is not valid JSON")
	}

	if reader.Data == nil || reader.Data.Content == nil {
		return nil, coreerrors.NewExtractionError(coreerrors.KindInvalidResponse,
			"reader response has no content field")
	}

	if err := s.qualityGate(reader.Data); err != nil {
		s.logDebug("page failed quality gate", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return nil, err
	}

	return &domain.ContentRecord{
		URL:        rawURL,
		Type:       domain.ContentTypeWebpage,
		Title:      deriveTitle(reader.Data.Title, rawURL),
		SourceName: deriveSourceName(rawURL),
		Metadata:   map[string]string{},
		Content:    *reader.Data.Content,
	}, nil
}

// qualityGate rejects block pages, CAPTCHA walls, and error pages served
// as HTTP 200. Three independent signals are checked because none is
// reliable alone: warnings are not always present, titles can match
// innocuous content, and length cannot tell a short article from a stub.
func (s *Service) qualityGate(data *readerData) error {
	if data.Warning != "" {
		for _, pattern := range warningPatterns {
			if pattern.MatchString(data.Warning) {
				firstLine := strings.SplitN(data.Warning, "\n", 2)[0]
				return coreerrors.NewExtractionError(coreerrors.KindPageInaccessible, firstLine)
			}
		}
	}

	lowerTitle := strings.ToLower(data.Title)
	for _, fragment := range blockTitleFragments {
		if strings.Contains(lowerTitle, fragment) && data.tokens() < s.opts.BlockTitleTokenLimit {
			return coreerrors.NewExtractionError(coreerrors.KindPageBlocked,
				fmt.Sprintf("page title %q looks like a block page", data.Title))
		}
	}

	if len(strings.TrimSpace(*data.Content)) < s.opts.MinContentLength {
		return coreerrors.NewExtractionError(coreerrors.KindContentTooShort,
			"extracted content is too short to be a real page")
	}

	return nil
}

// mapErrorStatus translates a reader error status into the taxonomy,
// preferring the service's own message when one is parseable.
func mapErrorStatus(status int, body []byte) *coreerrors.ExtractionError {
	var reader readerResponse
	message := ""
	if err := json.Unmarshal(body, &reader); err == nil {
		message = reader.errorMessage()
	}

	switch status {
	case 400:
		if message == "" {
			message = "the reader service rejected the URL"
		}
		return coreerrors.NewExtractionError(coreerrors.KindInvalidURL, message)
	case 451:
		if message == "" {
			message = "the site does not allow automated access"
		}
		return coreerrors.NewExtractionError(coreerrors.KindSiteBlocked, message)
	case 422:
		if message == "" {
			message = "the page could not be loaded"
		}
		return coreerrors.NewExtractionError(coreerrors.KindPageLoadFailed, message)
	default:
		if message == "" {
			message = fmt.Sprintf("the reader service returned status %d", status)
		}
		return coreerrors.NewServiceError(status, message)
	}
}

// deriveTitle prefers the service title, then the last URL path segment,
// then a fixed fallback.
func deriveTitle(serviceTitle, rawURL string) string {
	if strings.TrimSpace(serviceTitle) != "" {
		return serviceTitle
	}

	if u, err := url.Parse(rawURL); err == nil {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if last := segments[len(segments)-1]; last != "" {
			return last
		}
	}

	return "Untitled"
}

// deriveSourceName returns the URL's hostname with a leading www. stripped
func deriveSourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
