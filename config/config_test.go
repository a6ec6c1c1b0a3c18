package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without user/project config or env bindings
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Anthropic.Model != "claude-sonnet-4-20250514" {
		t.Errorf("expected default anthropic model, got %q", cfg.Anthropic.Model)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("expected default openrouter base URL, got %q", cfg.OpenRouter.BaseURL)
	}
	if cfg.Output.Dir != "n2c-output" {
		t.Errorf("expected default output dir 'n2c-output', got %q", cfg.Output.Dir)
	}
	if !cfg.Output.Pretty {
		t.Error("expected pretty output by default")
	}
	if cfg.MCP.Name != "nodetocode" {
		t.Errorf("expected default mcp name 'nodetocode', got %q", cfg.MCP.Name)
	}
	if cfg.Anthropic.MaxTokens == nil || *cfg.Anthropic.MaxTokens != 8192 {
		t.Errorf("expected default anthropic max_tokens 8192, got %v", cfg.Anthropic.MaxTokens)
	}
}

func TestSelectedProvider(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name:   "explicit name wins over keys",
			config: Config{Provider: ProviderConfig{Name: ProviderOpenRouter}, Anthropic: AnthropicConfig{APIKey: "sk-ant"}},
			want:   ProviderOpenRouter,
		},
		{
			name:   "anthropic key auto-selects anthropic",
			config: Config{Anthropic: AnthropicConfig{APIKey: "sk-ant"}},
			want:   ProviderAnthropic,
		},
		{
			name:   "openrouter key auto-selects openrouter",
			config: Config{OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			want:   ProviderOpenRouter,
		},
		{
			name:   "both keys prefer anthropic",
			config: Config{Anthropic: AnthropicConfig{APIKey: "a"}, OpenRouter: OpenRouterConfig{APIKey: "b"}},
			want:   ProviderAnthropic,
		},
		{
			name:   "no keys means no provider",
			config: Config{},
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.SelectedProvider(); got != tt.want {
				t.Errorf("SelectedProvider() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	badTemp := 3.5
	zeroTokens := 0

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "empty config is valid (auto-select, all defaults)",
			config: Config{MCP: MCPConfig{Name: "nodetocode"}},
		},
		{
			name:    "unknown provider name",
			config:  Config{Provider: ProviderConfig{Name: "gemini"}, MCP: MCPConfig{Name: "nodetocode"}},
			wantErr: true,
		},
		{
			name:    "pinned provider without key",
			config:  Config{Provider: ProviderConfig{Name: ProviderAnthropic}, MCP: MCPConfig{Name: "nodetocode"}},
			wantErr: true,
		},
		{
			name: "pinned provider with key",
			config: Config{
				Provider:  ProviderConfig{Name: ProviderAnthropic},
				Anthropic: AnthropicConfig{APIKey: "sk-ant"},
				MCP:       MCPConfig{Name: "nodetocode"},
			},
		},
		{
			name:    "out of range temperature",
			config:  Config{OpenRouter: OpenRouterConfig{Temperature: &badTemp}, MCP: MCPConfig{Name: "nodetocode"}},
			wantErr: true,
		},
		{
			name:    "zero max_tokens is invalid (omit for default)",
			config:  Config{Anthropic: AnthropicConfig{MaxTokens: &zeroTokens}, MCP: MCPConfig{Name: "nodetocode"}},
			wantErr: true,
		},
		{
			name:    "empty mcp name",
			config:  Config{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "n2c.toml")
	content := `
[provider]
name = "openrouter"

[openrouter]
api_key = "sk-or-test"
model = "anthropic/claude-sonnet-4"

[output]
dir = "generated"
pretty = false
`
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Provider.Name != ProviderOpenRouter {
		t.Errorf("expected provider openrouter, got %q", cfg.Provider.Name)
	}
	if cfg.OpenRouter.Model != "anthropic/claude-sonnet-4" {
		t.Errorf("expected model from file, got %q", cfg.OpenRouter.Model)
	}
	if cfg.Output.Dir != "generated" {
		t.Errorf("expected output dir from file, got %q", cfg.Output.Dir)
	}
	if cfg.Output.Pretty {
		t.Error("expected pretty disabled from file")
	}
	// Defaults still apply for values not in the file
	if cfg.MCP.Name != "nodetocode" {
		t.Errorf("expected default mcp name, got %q", cfg.MCP.Name)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
