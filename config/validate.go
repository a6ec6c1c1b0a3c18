package config

import "github.com/flashpoint493/NodeToCode-sub000/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Provider name: empty = auto-select, otherwise must be a known provider
	switch c.Provider.Name {
	case "", ProviderAnthropic, ProviderOpenRouter:
	default:
		return errors.Newf("provider.name must be %q or %q, got %q",
			ProviderAnthropic, ProviderOpenRouter, c.Provider.Name)
	}

	// Anthropic: validate bounds only when values are present (nil = default)
	if c.Anthropic.Temperature != nil && (*c.Anthropic.Temperature < 0 || *c.Anthropic.Temperature > 1) {
		return errors.Newf("anthropic.temperature must be in [0, 1], got %f", *c.Anthropic.Temperature)
	}
	if c.Anthropic.MaxTokens != nil && *c.Anthropic.MaxTokens <= 0 {
		return errors.Newf("anthropic.max_tokens must be > 0, got %d (omit for default)", *c.Anthropic.MaxTokens)
	}

	if c.OpenRouter.Temperature != nil && (*c.OpenRouter.Temperature < 0 || *c.OpenRouter.Temperature > 2) {
		return errors.Newf("openrouter.temperature must be in [0, 2], got %f", *c.OpenRouter.Temperature)
	}
	if c.OpenRouter.MaxTokens != nil && *c.OpenRouter.MaxTokens <= 0 {
		return errors.Newf("openrouter.max_tokens must be > 0, got %d (omit for default)", *c.OpenRouter.MaxTokens)
	}

	// A pinned provider must have its API key configured; auto-select tolerates
	// neither key being present (the serve command reports it at startup)
	if c.Provider.Name == ProviderAnthropic && c.Anthropic.APIKey == "" {
		return errors.New("provider.name is anthropic but anthropic.api_key is not configured")
	}
	if c.Provider.Name == ProviderOpenRouter && c.OpenRouter.APIKey == "" {
		return errors.New("provider.name is openrouter but openrouter.api_key is not configured")
	}

	if c.MCP.Name == "" {
		return errors.New("mcp.name cannot be empty")
	}

	return nil
}
