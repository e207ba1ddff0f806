package api

import (
	"context"

	"github.com/foundershield/foundershield/services"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/foundershield/foundershield/api/handlers"
	"github.com/foundershield/foundershield/api/middleware"
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/foundershield/foundershield/internal/tracing"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, repos *repository.Repositories, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery

	// setup handlers
	apiHandlers := handlers.InitHandlers(s, repos)

	// Liveness probe stays outside the keyed groups
	r.GET("/v1/health", handlers.HealthCheck)

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-FOUNDERSHIELD-API-KEY",
		ValidAPIKey: apikey,
	})

	// Analysis and settings endpoints
	v1 := r.Group("/v1")
	v1.Use(apiKeyMiddleware)
	v1.Use(middleware.TracingMiddleware())
	{
		v1.POST("/report", apiHandlers.Report.Generate())
		v1.POST("/summarize", apiHandlers.Summary.Summarize())

		providers := v1.Group("/providers")
		{
			providers.GET("", apiHandlers.Providers.List())
			providers.POST("", apiHandlers.Providers.Upsert())
		}

		vanity := v1.Group("/vanity")
		{
			vanity.GET("", apiHandlers.Vanity.Recent())
			vanity.POST("/scan", apiHandlers.Vanity.Scan())
		}
	}

	// Dashboard endpoints
	api := r.Group("/api")
	api.Use(apiKeyMiddleware)
	api.Use(middleware.TracingMiddleware())
	{
		leads := api.Group("/leads")
		{
			leads.GET("", apiHandlers.Leads.List())
			leads.POST("", apiHandlers.Leads.Create())
			leads.POST("/deleted", apiHandlers.Leads.RecordDeleted())
			leads.POST("/feedback", apiHandlers.Feedback.Record())
			leads.GET("/feedback/stats", apiHandlers.Feedback.Stats())
			leads.POST("/:id/task", apiHandlers.Leads.CreateTask())
		}

		todos := api.Group("/todos")
		{
			todos.GET("", apiHandlers.Todos.List())
			todos.POST("", apiHandlers.Todos.Create())
			todos.PUT("/:id/done", apiHandlers.Todos.MarkDone())
			todos.DELETE("/:id", apiHandlers.Todos.Delete())
		}
	}
}
