package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/logger"
)

// OpenAIClient is the fallback provider for OpenAI-compatible endpoints.
// These have no search grounding, so responses never carry citations and the
// summary reflects the model's training data rather than live news.
type OpenAIClient struct {
	client *openai.Client
	model  string
	cfg    *config.Config
	logger *logger.Logger
}

func NewOpenAIClient(cfg *config.Config, log *logger.Logger) *OpenAIClient {
	ocfg := openai.DefaultConfig(cfg.AI.APIKey)
	if cfg.AI.BaseURL != "" {
		ocfg.BaseURL = cfg.AI.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(ocfg),
		model:  cfg.AI.Model,
		cfg:    cfg,
		logger: log,
	}
}

func (o *OpenAIClient) GenerateMarketSummary(ctx context.Context) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.AITimeout())
	defer cancel()

	o.logger.Info("requesting market summary", "provider", "openai", "model", o.model)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: marketSummaryPrompt},
		},
	})
	if err != nil {
		return nil, &TransportError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &TransportError{Provider: "openai", Err: fmt.Errorf("no choices returned")}
	}

	text := resp.Choices[0].Message.Content
	o.logger.Info("received market summary", "length", len(text))
	o.logger.Debug("raw model response", "content", text)

	return &Response{Text: text}, nil
}
