// ABOUTME: ContentRecord domain model represents one extracted piece of content
// ABOUTME: Output of the extraction pipeline for both videos and web pages

package domain

// ContentType identifies which extraction pipeline produced a record
type ContentType string

const (
	// ContentTypeVideo is content extracted from a video transcript
	ContentTypeVideo ContentType = "video"

	// ContentTypeWebpage is content extracted from a generic web page
	ContentTypeWebpage ContentType = "webpage"
)

// ContentRecord is the normalized output of a successful extraction.
// It is a value object: constructed once by an extractor and never
// mutated afterwards. Persistence is the caller's concern.
type ContentRecord struct {
	// URL is the canonical source URL
	URL string

	// Type is the content type (video or webpage)
	Type ContentType

	// SourceID is the platform-native video ID for video records.
	// Empty for webpage records.
	SourceID string

	// Title is the human-readable title, never empty
	Title string

	// SourceName is the channel name (video) or bare domain (webpage)
	SourceName string

	// Metadata holds optional extra fields, e.g. "duration" for videos
	Metadata map[string]string

	// Content is the plain-text transcript or page body, never empty
	Content string
}

// IsValid checks the record's structural invariants
func (r *ContentRecord) IsValid() bool {
	if r.URL == "" || r.Title == "" || r.Content == "" {
		return false
	}

	switch r.Type {
	case ContentTypeVideo:
		return r.SourceID != ""
	case ContentTypeWebpage:
		return r.SourceID == ""
	}

	return false
}

// CaptionTrack references one available caption stream for a video.
// Ephemeral: only used inside the video extractor to pick a track.
type CaptionTrack struct {
	// BaseURL is the fetch URL for the track's timed-text XML
	BaseURL string

	// LanguageCode is the track language, e.g. "en"
	LanguageCode string

	// AutoGenerated is true for speech-recognition tracks
	AutoGenerated bool
}
