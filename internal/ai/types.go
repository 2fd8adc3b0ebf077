package ai

import "context"

// Citation is a web reference supplied by the provider's search grounding,
// evidencing a claim in the response text. Title may be empty.
type Citation struct {
	URI   string
	Title string
}

// Response is one raw model answer: the free-form text blob plus any
// grounding citations the provider attached to it.
type Response struct {
	Text      string
	Citations []Citation
}

// Client produces one market summary per call. Implementations are expected
// to honor ctx cancellation on the underlying request.
type Client interface {
	GenerateMarketSummary(ctx context.Context) (*Response, error)
}
