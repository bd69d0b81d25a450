package controllers_fx

import (
	"go.uber.org/fx"

	"triply/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewCompanionController))
