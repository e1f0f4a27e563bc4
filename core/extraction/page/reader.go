// ABOUTME: Wire-level types for the page reader service's JSON responses
// ABOUTME: Loosely typed at the boundary; validated field-by-field before use

package page

// readerResponse is the partial shape of a reader service response.
// Data is nil on error responses; Content is a pointer so an absent
// field is distinguishable from an empty page.
type readerResponse struct {
	Code   int         `json:"code"`
	Status int         `json:"status"`
	Data   *readerData `json:"data"`

	// Error-body fields
	Name            string `json:"name"`
	Message         string `json:"message"`
	ReadableMessage string `json:"readableMessage"`
}

type readerData struct {
	Title   string       `json:"title"`
	URL     string       `json:"url"`
	Content *string      `json:"content"`
	Warning string       `json:"warning"`
	Usage   *readerUsage `json:"usage"`
}

type readerUsage struct {
	Tokens int `json:"tokens"`
}

// errorMessage returns the most human-readable message in an error body
func (r *readerResponse) errorMessage() string {
	if r.ReadableMessage != "" {
		return r.ReadableMessage
	}
	if r.Message != "" {
		return r.Message
	}
	return r.Name
}

// tokens returns the reported token usage, zero when unreported
func (d *readerData) tokens() int {
	if d.Usage == nil {
		return 0
	}
	return d.Usage.Tokens
}
