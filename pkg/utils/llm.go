package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationRequest is one call to the text-generation provider.
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}

// NewTextGenerator builds either the OpenAI or the Gemini client based on
// config. Model is the default used when a request does not name one.
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
