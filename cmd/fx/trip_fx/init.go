package trip_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ankala/internal/ai"
	"ankala/internal/repositories"
	"ankala/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	client services.CompletionClient,
	debouncer *ai.Debouncer,
	logger *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, client, debouncer, os.Getenv("WHATSAPP_NUMBER"), logger)
}
