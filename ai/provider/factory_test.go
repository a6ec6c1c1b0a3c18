package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashpoint493/NodeToCode-sub000/ai/anthropic"
	"github.com/flashpoint493/NodeToCode-sub000/ai/openrouter"
	"github.com/flashpoint493/NodeToCode-sub000/config"
)

func TestNewAIClientAutoSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    interface{}
		wantErr bool
	}{
		{
			name: "anthropic key selects anthropic",
			cfg:  config.Config{Anthropic: config.AnthropicConfig{APIKey: "sk-ant"}},
			want: &anthropic.Client{},
		},
		{
			name: "openrouter key selects openrouter",
			cfg:  config.Config{OpenRouter: config.OpenRouterConfig{APIKey: "sk-or"}},
			want: &openrouter.Client{},
		},
		{
			name: "both keys prefer anthropic",
			cfg: config.Config{
				Anthropic:  config.AnthropicConfig{APIKey: "a"},
				OpenRouter: config.OpenRouterConfig{APIKey: "b"},
			},
			want: &anthropic.Client{},
		},
		{
			name: "pinned name overrides key priority",
			cfg: config.Config{
				Provider:   config.ProviderConfig{Name: config.ProviderOpenRouter},
				Anthropic:  config.AnthropicConfig{APIKey: "a"},
				OpenRouter: config.OpenRouterConfig{APIKey: "b"},
			},
			want: &openrouter.Client{},
		},
		{
			name:    "no keys is an error",
			cfg:     config.Config{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewAIClient(&tt.cfg, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, client)
		})
	}
}

func TestNewAIClientWithProviderUnknown(t *testing.T) {
	_, err := NewAIClientWithProvider(&config.Config{}, Provider("gemini"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini")
}

func TestExtractCodeBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "fenced block with language tag",
			content: "Here is the code:\n```cpp\nvoid Open() {}\n```\nDone.",
			want:    "void Open() {}",
		},
		{
			name:    "fenced block without language tag",
			content: "```\nint x = 1;\n```",
			want:    "int x = 1;",
		},
		{
			name:    "no fence returns trimmed content",
			content: "  int x = 1;\n",
			want:    "int x = 1;",
		},
		{
			name:    "unterminated fence returns remainder",
			content: "```cpp\nint x = 1;\n",
			want:    "int x = 1;",
		},
		{
			name:    "first of multiple blocks wins",
			content: "```cpp\nfirst\n```\ntext\n```cpp\nsecond\n```",
			want:    "first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCodeBlock(tt.content))
		})
	}
}
