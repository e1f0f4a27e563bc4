// ABOUTME: URL classification for the extraction dispatcher
// ABOUTME: Decides whether a URL goes through the video or webpage pipeline

package extraction

import (
	"stash-app-api/core/domain"
	"stash-app-api/core/extraction/video"
)

// ClassifyURL decides which extraction pipeline applies to a URL.
// Pure function, no I/O, never fails: any shape that does not carry a
// recognizable video ID is a webpage.
func ClassifyURL(rawURL string) domain.ContentType {
	if _, ok := video.ParseID(rawURL); ok {
		return domain.ContentTypeVideo
	}
	return domain.ContentTypeWebpage
}
