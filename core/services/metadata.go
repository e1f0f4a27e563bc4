// ABOUTME: Link-preview metadata service for collection items
// ABOUTME: Scrapes Open Graph tags and favicons so the extension popup can render previews

package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"stash-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const previewUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"

// MetadataService scrapes preview metadata from item URLs
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts preview metadata from a single URL
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	if s.deps.Cache != nil {
		cacheKey := "preview:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.MetadataResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.scrape(targetURL)

	if s.deps.Cache != nil && result != nil {
		cacheKey := "preview:" + targetURL
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, 24*time.Hour)
		}
	}

	return result, nil
}

// ExtractMetadataBatch extracts metadata for multiple URLs concurrently
func (s *MetadataService) ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*interfaces.MetadataResult {
	results := make(map[string]*interfaces.MetadataResult)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, 10)

	for _, u := range urls {
		wg.Add(1)
		go func(targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if result, err := s.ExtractMetadata(ctx, targetURL); err == nil && result != nil {
				mu.Lock()
				results[targetURL] = result
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return results
}

// scrape visits the page and pulls preview fields out of its head
func (s *MetadataService) scrape(targetURL string) *interfaces.MetadataResult {
	if targetURL == "" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(previewUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(10 * time.Second)

	result := &interfaces.MetadataResult{}

	if parsed, err := url.Parse(targetURL); err == nil {
		result.Domain = strings.TrimPrefix(parsed.Hostname(), "www.")
	}

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch e.Attr("property") {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}

		if e.Attr("name") == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = content
		}
	})

	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				result.Title = strings.TrimSpace(title)
			}
		}

		if result.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					result.Description = content
				}
			})
		}

		e.DOM.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
			href := sel.AttrOr("href", "")
			if href == "" || result.Favicon != "" {
				return
			}
			for _, rel := range strings.Fields(sel.AttrOr("rel", "")) {
				if rel == "icon" || rel == "shortcut" || rel == "apple-touch-icon" {
					result.Favicon = e.Request.AbsoluteURL(href)
					return
				}
			}
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("preview scrape failed", map[string]interface{}{
			"url":    targetURL,
			"status": r.StatusCode,
			"error":  err.Error(),
		})
	})

	if err := c.Visit(targetURL); err != nil {
		s.deps.Logger.Debug("preview visit failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	}

	return result
}
