// ABOUTME: Response DTOs for extraction API endpoints
// ABOUTME: Maps domain content records onto the wire format

package responses

import "stash-app-api/core/domain"

// ContentRecordResponse is the wire shape of an extracted content record
type ContentRecordResponse struct {
	URL        string            `json:"url"`
	Type       string            `json:"type"`
	SourceID   string            `json:"sourceId,omitempty"`
	Title      string            `json:"title"`
	SourceName string            `json:"sourceName"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Content    string            `json:"content"`
}

// NewContentRecordResponse maps a domain record to its wire shape
func NewContentRecordResponse(record *domain.ContentRecord) ContentRecordResponse {
	return ContentRecordResponse{
		URL:        record.URL,
		Type:       string(record.Type),
		SourceID:   record.SourceID,
		Title:      record.Title,
		SourceName: record.SourceName,
		Metadata:   record.Metadata,
		Content:    record.Content,
	}
}

// MetadataResponse is the wire shape of one link preview
type MetadataResponse struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	Domain      string `json:"domain,omitempty"`
}
