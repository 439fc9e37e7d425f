package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/shared/middleware"
	"todo-backend/internal/shared/response"
	"todo-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(c.Redis, c.Config.RateLimit.RequestsPerMinute, time.Minute),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupTodoRoutes(v1, c)
	}

	return router
}

func setupTodoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	todos := v1.Group("/todos")
	todos.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		todos.GET("", c.TodoHandler.GetTodos)
		todos.GET("/sorted", c.TodoHandler.GetSortedTodos)
		todos.POST("", c.TodoHandler.CreateTodo)
		todos.PATCH("/:todoId", c.TodoHandler.UpdateTodo)
		todos.DELETE("/:todoId", c.TodoHandler.DeleteTodo)
		todos.POST("/:todoId/attachment", c.TodoHandler.GenerateUploadURL)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		checks := gin.H{}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}

		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  status,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
