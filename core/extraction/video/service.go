// ABOUTME: Service layer implementation for video transcript extraction
// ABOUTME: Fetches player metadata with client-profile fallback and decodes caption tracks

package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
	"stash-app-api/pkg/utils/duration"
)

const maxPlayerBody = 3 * 1024 * 1024

// Options tunes the retry behavior of the extractor
type Options struct {
	// MaxAttempts is the total retry budget for the profile sequence
	MaxAttempts int

	// RetryBackoff is the linear backoff step between attempts
	RetryBackoff time.Duration
}

// DefaultOptions returns the production retry settings
func DefaultOptions() Options {
	return Options{
		MaxAttempts:  3,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// Service extracts transcripts from video URLs. Stateless: every call is
// an independent request/response sequence.
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new video extraction service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = DefaultOptions().MaxAttempts
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = DefaultOptions().RetryBackoff
	}

	return &Service{
		deps: deps,
		opts: opts,
	}
}

// Extract parses the video ID from the URL, fetches player metadata and
// the default caption track, and returns a normalized content record.
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.ContentRecord, error) {
	videoID, ok := ParseID(rawURL)
	if !ok {
		return nil, coreerrors.NewExtractionError(coreerrors.KindInvalidInput,
			"URL does not contain a recognizable video ID")
	}

	player, err := s.fetchPlayer(ctx, videoID)
	if err != nil {
		return nil, err
	}

	title := "Untitled"
	author := "Unknown"
	lengthSeconds := 0
	if player.VideoDetails != nil {
		if player.VideoDetails.Title != "" {
			title = player.VideoDetails.Title
		}
		if player.VideoDetails.Author != "" {
			author = player.VideoDetails.Author
		}
		if n, err := strconv.Atoi(player.VideoDetails.LengthSeconds); err == nil {
			lengthSeconds = n
		}
	}

	tracks := player.captionTracks()
	if len(tracks) == 0 {
		return nil, coreerrors.NewExtractionError(coreerrors.KindNoCaptions,
			"video has no caption tracks")
	}

	// Take the first track in platform order. The platform usually lists
	// the primary language before auto-generated variants, but no further
	// preference is applied; multilingual videos may yield an unexpected
	// language.
	track := tracks[0]

	transcript, err := s.fetchTranscript(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	return &domain.ContentRecord{
		URL:        "https://www.youtube.com/watch?v=" + videoID,
		Type:       domain.ContentTypeVideo,
		SourceID:   videoID,
		Title:      title,
		SourceName: author,
		Metadata: map[string]string{
			"duration": duration.FormatSeconds(lengthSeconds),
		},
		Content: transcript,
	}, nil
}

// fetchPlayer requests player metadata, trying each client profile in
// order and retrying the whole sequence with linear backoff. Attempts are
// strictly sequential: a later attempt only happens if the earlier one
// failed.
func (s *Service) fetchPlayer(ctx context.Context, videoID string) (*playerResponse, error) {
	var lastStatus string

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		for _, profile := range clientProfiles {
			resp, err := s.requestPlayer(ctx, videoID, profile)
			if err != nil {
				s.logDebug("player request failed", map[string]interface{}{
					"video_id": videoID,
					"client":   profile.Name,
					"attempt":  attempt,
					"error":    err.Error(),
				})
				continue
			}

			if resp.playable() {
				return resp, nil
			}

			status, reason := resp.statusReason()
			lastStatus = status
			s.logDebug("video not playable for client", map[string]interface{}{
				"video_id": videoID,
				"client":   profile.Name,
				"attempt":  attempt,
				"status":   status,
				"reason":   reason,
			})
		}

		if attempt < s.opts.MaxAttempts {
			backoff := time.Duration(attempt) * s.opts.RetryBackoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	msg := "video is not playable under any client profile"
	if lastStatus != "" {
		msg = fmt.Sprintf("%s (last status: %s)", msg, lastStatus)
	}
	return nil, coreerrors.NewExtractionError(coreerrors.KindUnavailable, msg)
}

// requestPlayer performs a single player API call with one client profile
func (s *Service) requestPlayer(ctx context.Context, videoID string, profile clientProfile) (*playerResponse, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        profile.Name,
				ClientVersion:     profile.Version,
				AndroidSDKVersion: profile.AndroidSDKVersion,
				Hl:                "en",
				Gl:                "US",
			},
		},
		ContentCheckOk: true,
		RacyCheckOk:    true,
	})
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"User-Agent": profile.UserAgent,
		"Origin":     "https://www.youtube.com",
	}

	resp, err := s.deps.HTTPClient.PostWithHeaders(ctx, playerEndpoint+"?prettyPrint=false",
		bytes.NewReader(body), headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("player endpoint returned %d", resp.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxPlayerBody))
	if err != nil {
		return nil, err
	}

	var player playerResponse
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	return &player, nil
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
