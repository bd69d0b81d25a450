package schedule_fx

import (
	"go.uber.org/fx"

	"triply/internal/services"
	"triply/pkg/utils"
)

var Module = fx.Provide(
	utils.DefaultScheduleConfig,
	utils.GlobalRand,
	provideTimelineBuilder,
	provideAIScheduleService,
	provideFallbackService,
	provideScheduleService,
)

func provideTimelineBuilder(cfg utils.ScheduleConfig, rng utils.Rand) services.TimelineBuilderInterface {
	return services.NewTimelineBuilder(cfg, rng)
}

func provideAIScheduleService(client utils.CompletionClientInterface, timeline services.TimelineBuilderInterface) services.AIScheduleServiceInterface {
	return services.NewAIScheduleService(client, timeline)
}

func provideFallbackService(rng utils.Rand, timeline services.TimelineBuilderInterface) services.FallbackServiceInterface {
	return services.NewFallbackService(rng, timeline)
}

func provideScheduleService(cfg utils.ScheduleConfig, planner services.AIScheduleServiceInterface, fallback services.FallbackServiceInterface) services.ScheduleServiceInterface {
	return services.NewScheduleService(cfg, planner, fallback)
}
