package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextGeneratorInterface using Google's Gemini
// models. Free-tier friendly alternative to OpenAI.
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

func NewGeminiTextClient(apiKey, model string) (*GeminiTextClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemPrompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
