// ABOUTME: Wire-level types and client profiles for the video platform's internal player API
// ABOUTME: Upstream JSON has no schema contract, so everything here is loosely typed

package video

import (
	"regexp"

	"stash-app-api/core/domain"
)

const playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

// clientProfile is one device/browser identity presented to the player
// API. Different profiles receive different authorization results for the
// same video, so profiles are tried in order until one succeeds. Adding a
// profile means appending to clientProfiles, nothing else.
type clientProfile struct {
	Name              string
	Version           string
	UserAgent         string
	AndroidSDKVersion int
}

// clientProfiles is the ordered fallback list: desktop web first, then
// the mobile app identity.
var clientProfiles = []clientProfile{
	{
		Name:      "WEB",
		Version:   "2.20250222.10.00",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36",
	},
	{
		Name:              "ANDROID",
		Version:           "20.10.38",
		UserAgent:         "com.google.android.youtube/20.10.38 (Linux; U; Android 11) gzip",
		AndroidSDKVersion: 30,
	},
}

// videoIDPatterns are the known URL shapes that carry an 11-character
// video ID, plus the bare-ID form.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

// ParseID extracts the 11-character video ID from a URL or bare ID.
// Pure function, no I/O.
func ParseID(rawURL string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// playerRequest is the JSON POST body for the player endpoint
type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	ContentCheckOk bool          `json:"contentCheckOk"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSDKVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
}

// playerResponse is the partial shape of the player endpoint response.
// Fields are pointers so absent sections are distinguishable from empty.
type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`

	VideoDetails *struct {
		Title         string `json:"title"`
		Author        string `json:"author"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`

	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// playable reports whether the response says the video can be played
func (r *playerResponse) playable() bool {
	return r.PlayabilityStatus != nil && r.PlayabilityStatus.Status == "OK"
}

// statusReason returns the playability status and reason for logging
func (r *playerResponse) statusReason() (string, string) {
	if r.PlayabilityStatus == nil {
		return "", ""
	}
	return r.PlayabilityStatus.Status, r.PlayabilityStatus.Reason
}

// captionTracks converts the loose upstream track list into the strict
// internal representation. "asr" marks speech-recognition tracks.
func (r *playerResponse) captionTracks() []domain.CaptionTrack {
	if r.Captions == nil {
		return nil
	}

	raw := r.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	tracks := make([]domain.CaptionTrack, 0, len(raw))
	for _, t := range raw {
		if t.BaseURL == "" {
			continue
		}
		tracks = append(tracks, domain.CaptionTrack{
			BaseURL:       t.BaseURL,
			LanguageCode:  t.LanguageCode,
			AutoGenerated: t.Kind == "asr",
		})
	}
	return tracks
}
