package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripsmith/cmd/fx/explorer_fx"
	"tripsmith/cmd/fx/llm_fx"
	"tripsmith/cmd/fx/planner_fx"
	"tripsmith/cmd/fx/search_fx"
	"tripsmith/cmd/fx/storage_fx"
	"tripsmith/internal/api/controllers"
	"tripsmith/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		storage_fx.Module,
		search_fx.Module,
		llm_fx.Module,
		explorer_fx.Module,
		planner_fx.Module,

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
	explorerController *controllers.ExplorerController,
	plannerController *controllers.PlannerController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, explorerController, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	explorerController *controllers.ExplorerController,
	plannerController *controllers.PlannerController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	travelGroup := r.Group("/api/travel")
	travelGroup.POST("/search", explorerController.SearchHandler)
	travelGroup.GET("/search/:id", explorerController.GetAnswerHandler)
	travelGroup.POST("/plan", plannerController.PlanHandler)
	travelGroup.GET("/plan/:id", plannerController.GetItineraryHandler)
}
