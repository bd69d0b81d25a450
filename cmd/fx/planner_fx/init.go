package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"triply/pkg/utils"
)

var Module = fx.Provide(provideCompletionClient)

func provideCompletionClient() utils.CompletionClientInterface {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		if provider == "gemini" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		} else {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	if apiKey == "" {
		log.Println("Warning: no AI API key set, schedule generation will run in fallback mode")
		return utils.NewDisabledCompletionClient()
	}

	client, err := utils.NewCompletionClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("Failed to create completion client, running in fallback mode: %v", err)
		return utils.NewDisabledCompletionClient()
	}
	return client
}
