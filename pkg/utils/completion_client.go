package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the single contract both AI providers sit
// behind. Implementations return the raw model text; parsing stays with the
// caller.
type CompletionClientInterface interface {
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewCompletionClient creates a provider-specific client. Provider defaults
// to OpenAI when unset.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

type disabledCompletionClient struct{}

func (disabledCompletionClient) GenerateItinerary(context.Context, string, string) (string, error) {
	return "", ErrAICompletionUnavailable
}

// NewDisabledCompletionClient stands in when no API key is configured: every
// call fails with ErrAICompletionUnavailable, which callers treat as the
// fallback trigger.
func NewDisabledCompletionClient() CompletionClientInterface {
	return disabledCompletionClient{}
}
