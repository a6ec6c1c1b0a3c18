package provider

import (
	"go.uber.org/zap"

	"github.com/flashpoint493/NodeToCode-sub000/ai/anthropic"
	"github.com/flashpoint493/NodeToCode-sub000/ai/openrouter"
	"github.com/flashpoint493/NodeToCode-sub000/config"
	"github.com/flashpoint493/NodeToCode-sub000/errors"
)

// NewAIClient creates an AI client based on configuration (auto-selection).
// Priority: pinned provider.name → Anthropic (if API key set) → OpenRouter
// (if API key set).
func NewAIClient(cfg *config.Config, log *zap.SugaredLogger) (AIClient, error) {
	return NewAIClientWithProvider(cfg, ProviderAuto, log)
}

// NewAIClientWithProvider creates an AI client for a specific provider.
// Use ProviderAuto to let the factory decide based on configuration.
func NewAIClientWithProvider(cfg *config.Config, provider Provider, log *zap.SugaredLogger) (AIClient, error) {
	if provider == ProviderAuto {
		switch cfg.SelectedProvider() {
		case config.ProviderAnthropic:
			provider = ProviderAnthropic
		case config.ProviderOpenRouter:
			provider = ProviderOpenRouter
		default:
			return nil, errors.New("no LLM provider configured: set anthropic.api_key or openrouter.api_key")
		}
	}

	switch provider {
	case ProviderAnthropic:
		return newAnthropicClient(cfg, log), nil
	case ProviderOpenRouter:
		return newOpenRouterClient(cfg, log), nil
	default:
		return nil, errors.Newf("unknown LLM provider %q", provider)
	}
}

func newAnthropicClient(cfg *config.Config, log *zap.SugaredLogger) AIClient {
	return anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.Anthropic.APIKey,
		Model:       cfg.Anthropic.Model,
		BaseURL:     cfg.Anthropic.BaseURL,
		Temperature: cfg.Anthropic.Temperature,
		MaxTokens:   cfg.Anthropic.MaxTokens,
		Logger:      log,
	})
}

func newOpenRouterClient(cfg *config.Config, log *zap.SugaredLogger) AIClient {
	return openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		Model:       cfg.OpenRouter.Model,
		BaseURL:     cfg.OpenRouter.BaseURL,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Logger:      log,
	})
}
