package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

// SetupRouter wires global middleware and every domain's routes under /api.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck(c))

		c.AuthorHandler.RegisterRoutes(api)
		c.BookHandler.RegisterRoutes(api)
		c.UserHandler.RegisterRoutes(api)
		c.RentalHandler.RegisterRoutes(api)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.ErrorResponse(ctx, http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")
	})

	return router
}

// healthCheck reports liveness and database reachability.
func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database is not reachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{"status": "ok"})
	}
}
