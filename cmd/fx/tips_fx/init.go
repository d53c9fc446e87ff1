package tips_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ankala/internal/repositories"
	"ankala/internal/services"
)

var Module = fx.Provide(provideTipsService)

func provideTipsService(
	tripRepo repositories.TripRepository,
	client services.CompletionClient,
	logger *zap.Logger,
) services.TipsServiceInterface {
	return services.NewTipsService(tripRepo, client, logger)
}
