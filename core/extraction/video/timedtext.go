// ABOUTME: Timed-text caption fetching and decoding for the video extractor
// ABOUTME: Turns caption XML into a single plain-text transcript string

package video

import (
	"context"
	"encoding/xml"
	stdhtml "html"
	"io"
	"net/url"
	"strings"

	coreerrors "stash-app-api/core/errors"

	"golang.org/x/net/html"
)

const maxTimedTextBody = 1024 * 1024

// timedText is the shape of the caption XML: repeated <text> elements.
// InnerXML keeps raw markup so entity decoding and tag stripping happen
// in one controlled place.
type timedText struct {
	Texts []struct {
		InnerXML string `xml:",innerxml"`
	} `xml:"text"`
}

// fetchTranscript downloads a caption track and decodes it to plain text
func (s *Service) fetchTranscript(ctx context.Context, baseURL string) (string, error) {
	resp, err := s.deps.HTTPClient.GetWithHeaders(ctx, stripSrv3Param(baseURL), map[string]string{
		"Accept-Language": "en-US,en;q=0.9",
	})
	if err != nil {
		return "", coreerrors.NewExtractionError(coreerrors.KindUnreachable,
			"caption endpoint could not be reached: "+err.Error())
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", coreerrors.NewServiceError(resp.StatusCode(),
			"caption endpoint returned an error status")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxTimedTextBody))
	if err != nil {
		return "", coreerrors.NewExtractionError(coreerrors.KindInvalidResponse,
			"caption body could not be read: "+err.Error())
	}

	transcript, err := decodeTimedText(data)
	if err != nil {
		return "", coreerrors.NewExtractionError(coreerrors.KindInvalidResponse,
			"caption XML could not be parsed: "+err.Error())
	}

	if transcript == "" {
		return "", coreerrors.NewExtractionError(coreerrors.KindEmptyTranscript,
			"caption track decoded to an empty transcript")
	}

	return transcript, nil
}

// stripSrv3Param removes the srv3 format parameter from a caption URL so
// the endpoint serves the default timed-text XML shape.
func stripSrv3Param(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	if q.Get("fmt") == "srv3" {
		q.Del("fmt")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// decodeTimedText extracts the inner text of every <text> element,
// decodes HTML entities, strips residual markup, and joins the fragments
// with single spaces, collapsing runs of whitespace.
func decodeTimedText(data []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return "", err
	}

	var words []string
	for _, t := range tt.Texts {
		cleaned := stripTags(stdhtml.UnescapeString(t.InnerXML))
		words = append(words, strings.Fields(cleaned)...)
	}

	return strings.Join(words, " "), nil
}

// stripTags removes any markup remaining in a caption fragment, keeping
// only text content.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}
