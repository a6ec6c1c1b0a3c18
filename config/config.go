package config

// Config represents the core NodeToCode configuration
type Config struct {
	Provider   ProviderConfig   `mapstructure:"provider"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Output     OutputConfig     `mapstructure:"output"`
	MCP        MCPConfig        `mapstructure:"mcp"`
}

// Provider name constants
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
)

// ProviderConfig selects the LLM provider used for code synthesis
type ProviderConfig struct {
	Name string `mapstructure:"name"` // "anthropic" or "openrouter"; empty = auto-select by configured API key
}

// AnthropicConfig configures Anthropic API access
type AnthropicConfig struct {
	APIKey      string   `mapstructure:"api_key"`     // Anthropic API key
	Model       string   `mapstructure:"model"`       // Model identifier (e.g., "claude-sonnet-4-20250514")
	BaseURL     string   `mapstructure:"base_url"`    // Override for proxies; empty = api.anthropic.com
	Temperature *float64 `mapstructure:"temperature"` // Sampling temperature (nil = default 0.0)
	MaxTokens   *int     `mapstructure:"max_tokens"`  // Maximum tokens per response (nil = default 8192)
}

// OpenRouterConfig configures an OpenRouter-compatible chat completions endpoint
type OpenRouterConfig struct {
	APIKey      string   `mapstructure:"api_key"`     // API key
	Model       string   `mapstructure:"model"`       // Model identifier (e.g., "openai/gpt-4o-mini")
	BaseURL     string   `mapstructure:"base_url"`    // Endpoint base URL (default: https://openrouter.ai/api/v1)
	Temperature *float64 `mapstructure:"temperature"` // Sampling temperature (nil = default 0.2)
	MaxTokens   *int     `mapstructure:"max_tokens"`  // Maximum tokens per response (nil = default 4096)
}

// OutputConfig configures where translated blueprints are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`    // Directory for translation output files
	Pretty bool   `mapstructure:"pretty"` // Pretty-print JSON output (default: true)
}

// MCPConfig configures the identity the MCP server advertises to clients
type MCPConfig struct {
	Name    string `mapstructure:"name"`    // Server name (default: "nodetocode")
	Version string `mapstructure:"version"` // Server version string
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
