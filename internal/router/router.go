package router

import (
	"time"

	"github.com/demanda-dev/demanda/internal/auth"
	"github.com/demanda-dev/demanda/internal/config"
	"github.com/demanda-dev/demanda/internal/handlers"
	"github.com/demanda-dev/demanda/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func New(cfg *config.Config, database *gorm.DB, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(database, cfg, logger)
	gate := middleware.AuthRequired(auth.NewCodec(cfg.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
			authRoutes.POST("/logout", h.Logout)
			authRoutes.GET("/me", gate, h.Me)
		}

		projects := api.Group("/projects", gate)
		{
			projects.POST("", h.CreateProject)
			projects.GET("", h.ListProjects)
			projects.PUT("/:project_id", h.UpdateProject)
			projects.PATCH("/:project_id", h.UpdateProject)
			projects.DELETE("/:project_id", h.DeleteProject)

			projects.GET("/:project_id/dashboard", h.GetDashboard)

			projects.GET("/:project_id/tasks", h.ListTasks)
			projects.POST("/:project_id/tasks", h.CreateTask)
		}

		tasks := api.Group("/tasks", gate)
		{
			tasks.PATCH("/:task_id", h.UpdateTask)
			tasks.DELETE("/:task_id", h.DeleteTask)
		}
	}

	return r
}
