package planner_fx

import (
	"go.uber.org/fx"

	"tripsmith/internal/api/controllers"
	"tripsmith/internal/repositories"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerService,
	ProvidePlannerController)

func ProvidePlannerService(
	llm utils.TextGeneratorInterface,
	itineraries repositories.ItineraryRepository,
) services.PlannerServiceInterface {
	return services.NewPlannerService(llm, itineraries)
}

func ProvidePlannerController(
	plannerService services.PlannerServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}
