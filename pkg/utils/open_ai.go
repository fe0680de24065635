package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient implements TextGeneratorInterface on top of the chat
// completions API.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) *OpenAITextClient {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAITextClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITextClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
