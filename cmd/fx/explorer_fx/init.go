package explorer_fx

import (
	"go.uber.org/fx"

	"tripsmith/internal/api/controllers"
	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

var Module = fx.Provide(
	ProvideExplorerService,
	ProvideExplorerController)

func ProvideExplorerService(
	search utils.SearchClientInterface,
	llm utils.TextGeneratorInterface,
	answers repositories.AnswerRepository,
) services.ExplorerServiceInterface {
	return services.NewExplorerService(search, llm, answers)
}

func ProvideExplorerController(
	explorerService services.ExplorerServiceInterface,
) *controllers.ExplorerController {
	return controllers.NewExplorerController(explorerService)
}
