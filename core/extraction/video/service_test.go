package video

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

const playerOKResponse = `{
	"playabilityStatus": {"status": "OK"},
	"videoDetails": {"title": "Test Video", "author": "Test Channel", "lengthSeconds": "3725"},
	"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
		{"baseUrl": "https://captions.example.com/track?fmt=srv3", "languageCode": "en"},
		{"baseUrl": "https://captions.example.com/track-asr", "languageCode": "en", "kind": "asr"}
	]}}
}`

const timedTextResponse = `<transcript>
	<text start="0" dur="2.5">Hello &amp; welcome</text>
	<text start="2.5" dur="1.5">to the show</text>
</transcript>`

func fastOptions() Options {
	return Options{MaxAttempts: 3, RetryBackoff: time.Millisecond}
}

func newTestService(client interfaces.HTTPClient) *Service {
	return NewService(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	}, fastOptions())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input  string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/article", "", false},
		{"not a url at all", "", false},
		{"tooshort", "", false},
	}

	for _, tt := range tests {
		id, ok := ParseID(tt.input)
		if ok != tt.wantOK {
			t.Errorf("ParseID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
		}
		if id != tt.wantID {
			t.Errorf("ParseID(%q) id = %q, want %q", tt.input, id, tt.wantID)
		}
	}
}

func TestExtract_InvalidInput(t *testing.T) {
	service := newTestService(&mockHTTPClient{})

	_, err := service.Extract(context.Background(), "https://example.com/not-a-video")

	kind, ok := coreerrors.ExtractionKindOf(err)
	if !ok || kind != coreerrors.KindInvalidInput {
		t.Errorf("Extract returned %v, want InvalidInput", err)
	}
}

func TestExtract_Success(t *testing.T) {
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: playerOKResponse}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: timedTextResponse}, nil
		},
	}

	record, err := newTestService(client).Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if record.SourceID != "dQw4w9WgXcQ" {
		t.Errorf("SourceID = %q, want dQw4w9WgXcQ", record.SourceID)
	}
	if record.Title != "Test Video" {
		t.Errorf("Title = %q, want Test Video", record.Title)
	}
	if record.SourceName != "Test Channel" {
		t.Errorf("SourceName = %q, want Test Channel", record.SourceName)
	}
	if record.Metadata["duration"] != "1:02:05" {
		t.Errorf("duration = %q, want 1:02:05", record.Metadata["duration"])
	}
	if record.Content != "Hello & welcome to the show" {
		t.Errorf("Content = %q", record.Content)
	}
	if !record.IsValid() {
		t.Error("record should be valid")
	}
}

func TestExtract_SelectsFirstCaptionTrack(t *testing.T) {
	var fetchedURL string
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: playerOKResponse}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			fetchedURL = url
			return &mockResponse{statusCode: 200, body: timedTextResponse}, nil
		},
	}

	_, err := newTestService(client).Extract(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	// First track in platform order, with the srv3 parameter removed
	if !strings.HasPrefix(fetchedURL, "https://captions.example.com/track") {
		t.Errorf("fetched caption URL = %q, want first track", fetchedURL)
	}
	if strings.Contains(fetchedURL, "srv3") {
		t.Errorf("caption URL still carries srv3 parameter: %q", fetchedURL)
	}
	if strings.Contains(fetchedURL, "track-asr") {
		t.Error("extractor picked the second track instead of the first")
	}
}

func TestExtract_FallbackToSecondProfile(t *testing.T) {
	var clientsTried []string
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			var req playerRequest
			data, _ := io.ReadAll(body)
			if err := json.Unmarshal(data, &req); err != nil {
				t.Fatalf("player request is not valid JSON: %v", err)
			}
			clientsTried = append(clientsTried, req.Context.Client.ClientName)

			if req.Context.Client.ClientName == "WEB" {
				return &mockResponse{statusCode: 200,
					body: `{"playabilityStatus": {"status": "LOGIN_REQUIRED", "reason": "Sign in"}}`}, nil
			}
			return &mockResponse{statusCode: 200, body: playerOKResponse}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: timedTextResponse}, nil
		},
	}

	record, err := newTestService(client).Extract(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if len(clientsTried) != 2 || clientsTried[0] != "WEB" || clientsTried[1] != "ANDROID" {
		t.Errorf("clients tried = %v, want [WEB ANDROID]", clientsTried)
	}
	if record.Content == "" {
		t.Error("record content is empty after fallback success")
	}
}

func TestExtract_UnavailableAfterRetries(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200,
				body: `{"playabilityStatus": {"status": "UNPLAYABLE", "reason": "Region locked"}}`}, nil
		},
	}

	service := NewService(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}},
		Options{MaxAttempts: 2, RetryBackoff: time.Millisecond})

	_, err := service.Extract(context.Background(), "dQw4w9WgXcQ")

	kind, ok := coreerrors.ExtractionKindOf(err)
	if !ok || kind != coreerrors.KindUnavailable {
		t.Errorf("Extract returned %v, want Unavailable", err)
	}

	// 2 attempts x 2 client profiles
	if calls != 4 {
		t.Errorf("player endpoint called %d times, want 4", calls)
	}
}

func TestExtract_NoCaptions(t *testing.T) {
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200,
				body: `{"playabilityStatus": {"status": "OK"}, "videoDetails": {"title": "No Captions"}}`}, nil
		},
	}

	_, err := newTestService(client).Extract(context.Background(), "dQw4w9WgXcQ")

	kind, ok := coreerrors.ExtractionKindOf(err)
	if !ok || kind != coreerrors.KindNoCaptions {
		t.Errorf("Extract returned %v, want NoCaptions", err)
	}
}

func TestExtract_EmptyTranscript(t *testing.T) {
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: playerOKResponse}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `<transcript><text>   </text></transcript>`}, nil
		},
	}

	_, err := newTestService(client).Extract(context.Background(), "dQw4w9WgXcQ")

	kind, ok := coreerrors.ExtractionKindOf(err)
	if !ok || kind != coreerrors.KindEmptyTranscript {
		t.Errorf("Extract returned %v, want EmptyTranscript", err)
	}
}

func TestExtract_MetadataDefaults(t *testing.T) {
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{
				"playabilityStatus": {"status": "OK"},
				"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
					{"baseUrl": "https://captions.example.com/track", "languageCode": "en"}
				]}}
			}`}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: timedTextResponse}, nil
		},
	}

	record, err := newTestService(client).Extract(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if record.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", record.Title)
	}
	if record.SourceName != "Unknown" {
		t.Errorf("SourceName = %q, want Unknown", record.SourceName)
	}
	if record.Metadata["duration"] != "0:00" {
		t.Errorf("duration = %q, want 0:00", record.Metadata["duration"])
	}
}

func TestExtract_CanonicalURL(t *testing.T) {
	client := &mockHTTPClient{
		postWithHeadersFunc: func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: playerOKResponse}, nil
		},
		getWithHeadersFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: timedTextResponse}, nil
		},
	}

	record, err := newTestService(client).Extract(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if record.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("URL = %q, want canonical watch URL", record.URL)
	}
}
