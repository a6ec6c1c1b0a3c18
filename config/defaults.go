package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Anthropic defaults
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.temperature", 0.0) // Deterministic translation output
	v.SetDefault("anthropic.max_tokens", 8192)

	// OpenRouter defaults
	v.SetDefault("openrouter.model", "openai/gpt-4o-mini") // Cost-effective default
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.temperature", 0.2)
	v.SetDefault("openrouter.max_tokens", 4096)

	// Output defaults
	v.SetDefault("output.dir", "n2c-output")
	v.SetDefault("output.pretty", true)

	// MCP server identity defaults
	v.SetDefault("mcp.name", "nodetocode")
	v.SetDefault("mcp.version", "1.0.0")
}

// BindSensitiveEnvVars explicitly binds sensitive configuration to environment variables
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("anthropic.api_key", "N2C_ANTHROPIC_API_KEY")
	v.BindEnv("openrouter.api_key", "N2C_OPENROUTER_API_KEY")
	v.BindEnv("provider.name", "N2C_PROVIDER")
}

// SelectedProvider returns the effective provider name. An explicit
// provider.name wins; otherwise the first provider with an API key
// configured is chosen, Anthropic before OpenRouter. Empty means neither
// is usable.
func (c *Config) SelectedProvider() string {
	if c.Provider.Name != "" {
		return c.Provider.Name
	}
	if c.Anthropic.APIKey != "" {
		return ProviderAnthropic
	}
	if c.OpenRouter.APIKey != "" {
		return ProviderOpenRouter
	}
	return ""
}

// GetOutputDir returns the configured translation output directory
func (c *Config) GetOutputDir() string {
	if c.Output.Dir == "" {
		return "n2c-output" // Fallback default
	}
	return c.Output.Dir
}
