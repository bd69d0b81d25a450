package companions_fx

import (
	"go.uber.org/fx"

	"triply/internal/services"
	"triply/pkg/utils"
)

var Module = fx.Provide(provideCompanionService)

func provideCompanionService(rng utils.Rand) services.CompanionServiceInterface {
	return services.NewCompanionService(rng)
}
