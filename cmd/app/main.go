package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"triply/cmd/fx/companions_fx"
	"triply/cmd/fx/controllers_fx"
	"triply/cmd/fx/planner_fx"
	"triply/cmd/fx/schedule_fx"
	"triply/internal/api/controllers"
	"triply/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		planner_fx.Module,
		schedule_fx.Module,
		companions_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	companionController *controllers.CompanionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, companionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	companionController *controllers.CompanionController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("", planController.GeneratePlan)

	companionsGroup := r.Group("/companions")
	companionsGroup.GET("", companionController.SuggestCompanions)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
