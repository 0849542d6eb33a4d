package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fielddisc/discstats-backend-go/internal/config"
	"github.com/fielddisc/discstats-backend-go/internal/database"
	"github.com/fielddisc/discstats-backend-go/internal/handler"
	"github.com/fielddisc/discstats-backend-go/internal/middleware"
	"github.com/fielddisc/discstats-backend-go/internal/repository"
	"github.com/fielddisc/discstats-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into the API
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	repo := repository.NewEventRepository(database.GetDB())
	eventService := service.NewEventService(repo)
	analyticsService := service.NewAnalyticsService(repo)
	heatmapService := service.NewHeatmapService(analyticsService)

	eventHandler := handler.NewEventHandler(eventService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	heatmapHandler := handler.NewHeatmapHandler(heatmapService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Disc Stats API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		games := api.Group("/games")
		{
			games.GET("", eventHandler.ListGames)
			games.POST("", middleware.RateLimit(30, time.Minute), eventHandler.CreateGame)
			games.GET("/:id/events", eventHandler.GetEvents)
			games.POST("/:id/events", middleware.RateLimit(30, time.Minute), eventHandler.IngestEvents)

			analytics := games.Group("/:id/analytics")
			{
				analytics.GET("/filter-counts", analyticsHandler.GetFilterCounts)
				analytics.GET("/events", analyticsHandler.GetFilteredEvents)
				analytics.GET("/heatmap", heatmapHandler.GetHeatmap)
			}
		}
	}

	return r
}
