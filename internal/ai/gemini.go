package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/logger"
)

// GeminiClient talks to the Gemini API with the Google Search tool enabled,
// so responses carry grounding citations alongside the text.
type GeminiClient struct {
	client *genai.Client
	model  string
	cfg    *config.Config
	logger *logger.Logger
}

func NewGeminiClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &InitError{Provider: "gemini", Err: err}
	}

	return &GeminiClient{
		client: client,
		model:  cfg.AI.Model,
		cfg:    cfg,
		logger: log,
	}, nil
}

func (g *GeminiClient) GenerateMarketSummary(ctx context.Context) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.AITimeout())
	defer cancel()

	g.logger.Info("requesting market summary", "provider", "gemini", "model", g.model)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(marketSummaryPrompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		return nil, &TransportError{Provider: "gemini", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return nil, &TransportError{Provider: "gemini", Err: fmt.Errorf("empty response")}
	}

	citations := groundingCitations(resp)
	g.logger.Info("received market summary", "length", len(text), "citations", len(citations))
	g.logger.Debug("raw model response", "content", text)

	return &Response{Text: text, Citations: citations}, nil
}

// groundingCitations flattens the grounding metadata of every candidate into
// plain (uri, title) pairs. Chunks without a web reference are skipped;
// deduplication happens at render time.
func groundingCitations(resp *genai.GenerateContentResponse) []Citation {
	var citations []Citation
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			citations = append(citations, Citation{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}
	return citations
}
