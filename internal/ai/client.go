package ai

import (
	"context"

	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/logger"
)

// NewClient builds the provider selected in config. A failure here is an
// *InitError and the caller should treat the feature as unavailable.
func NewClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (Client, error) {
	switch cfg.AI.Provider {
	case "openai":
		return NewOpenAIClient(cfg, log), nil
	default:
		c, err := NewGeminiClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
