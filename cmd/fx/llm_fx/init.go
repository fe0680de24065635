package llm_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripsmith/pkg/utils"
)

var Module = fx.Provide(ProvideTextGenerator)

// GenerationConfig holds configuration for the text-generation client.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTextGenerator creates a generation client based on environment
// variables.
func ProvideTextGenerator() (utils.TextGeneratorInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	return utils.NewTextGenerator(config.Provider, config.APIKey, config.Model)
}

func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
