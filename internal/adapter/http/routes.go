package http

import (
	"github.com/gin-gonic/gin"

	"tasklane/internal/adapter/http/handlers"
	"tasklane/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/register", authHandler.Register)
		api.POST("/login_check", authHandler.LoginCheck)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(jwtSecret))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.POST("/:id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
