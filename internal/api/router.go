package api

import (
	"github.com/FutureQuant/Random-walk/internal/api/handlers"
	"github.com/FutureQuant/Random-walk/internal/api/middleware"
	"github.com/FutureQuant/Random-walk/internal/recorder"
	"github.com/FutureQuant/Random-walk/internal/store"

	"github.com/gin-gonic/gin"
)

// Options wires the router to its collaborators.
type Options struct {
	Cache          *store.ResultCache
	Recorder       recorder.Recorder
	PresetsDir     string
	MaxCount       int
	AllowedOrigins []string
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simulationHandler := handlers.NewSimulationHandler(opts.Cache, opts.Recorder, opts.PresetsDir, opts.MaxCount)
	parametersHandler := handlers.NewParametersHandler()
	presetsHandler := handlers.NewPresetsHandler(opts.PresetsDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/parameters", parametersHandler.ListParameters)
		api.GET("/presets", presetsHandler.ListPresets)

		api.POST("/simulations", simulationHandler.RunSimulation)
		api.GET("/simulations/:id", simulationHandler.GetSimulation)
		api.GET("/simulations/:id/prices", simulationHandler.DownloadPrices)
		api.GET("/simulations/:id/moving-average", simulationHandler.DownloadMovingAverage)

		api.GET("/runs", simulationHandler.ListRuns)
	}

	return router
}
