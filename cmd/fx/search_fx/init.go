package search_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripsmith/pkg/utils"
)

var Module = fx.Provide(ProvideSearchClient)

func ProvideSearchClient() utils.SearchClientInterface {
	apiKey := os.Getenv("TAVILY_API_KEY")
	if apiKey == "" {
		log.Fatal("TAVILY_API_KEY is required")
	}
	return utils.NewTavilyClient(apiKey)
}
