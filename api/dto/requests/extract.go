// ABOUTME: Request DTOs for extraction API endpoints
// ABOUTME: Defines the structure for content extraction requests

package requests

// ExtractRequest represents a request to extract content from a URL
type ExtractRequest struct {
	// URL to extract content from (video link, bare video ID, or web page)
	URL string `json:"url" required:"true" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ" doc:"URL to extract content from"`
}

// MetadataRequest represents a request for link-preview metadata
type MetadataRequest struct {
	// URLs to fetch preview metadata for
	URLs []string `json:"urls" required:"true" minItems:"1" maxItems:"20" doc:"URLs to fetch preview metadata for"`
}
