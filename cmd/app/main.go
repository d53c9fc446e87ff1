package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ankala/cmd/fx/ai_fx"
	"ankala/cmd/fx/controllers_fx"
	"ankala/cmd/fx/db_fx"
	"ankala/cmd/fx/tips_fx"
	"ankala/cmd/fx/trip_fx"
	"ankala/internal/api/controllers"
	"ankala/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		fx.Provide(ProvideLogger),
		db_fx.Module,
		ai_fx.Module,
		trip_fx.Module,
		tips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	tipsController *controllers.TipsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, tipsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	tipsController *controllers.TipsController) {

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())

	// Generation fans out to the completion service; keep a small budget per
	// client so a stuck retry loop upstream is not amplified.
	trips.POST("", middleware.RateLimitMiddleware(rate.Limit(0.2), 3), tripController.GenerateTripHandler)
	trips.GET("", tripController.ListMyTripsHandler)
	trips.GET("/:id", tripController.GetTripHandler)
	trips.DELETE("/:id", tripController.DeleteTripHandler)
	trips.GET("/:id/share", tripController.ShareTripHandler)
	trips.POST("/:id/tips", tipsController.TripTipsHandler)
}
