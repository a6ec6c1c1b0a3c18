package provider

import (
	"context"

	"github.com/flashpoint493/NodeToCode-sub000/ai/openrouter"
)

// Provider represents an LLM provider type
type Provider string

const (
	// ProviderAnthropic uses the direct Anthropic API
	ProviderAnthropic Provider = "anthropic"
	// ProviderOpenRouter uses an OpenRouter-compatible endpoint
	ProviderOpenRouter Provider = "openrouter"
	// ProviderAuto automatically selects based on configuration
	ProviderAuto Provider = "auto"
)

// AIClient is the interface all LLM providers implement, keeping code
// synthesis callers provider-agnostic.
type AIClient interface {
	Chat(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error)
}
