package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifebalance-backend/internal/handlers"
	"github.com/yungbote/lifebalance-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	ScoreHandler      *handlers.ScoreHandler
	AssessmentHandler *handlers.AssessmentHandler
	ChatHandler       *handlers.ChatHandler
	DashboardHandler  *handlers.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.GET("/user/avatar", cfg.UserHandler.GetAvatar)
	protected.DELETE("/user", cfg.UserHandler.DeleteMe)
	// Scores
	protected.GET("/scores", cfg.ScoreHandler.Get)
	protected.PUT("/scores", cfg.ScoreHandler.Update)
	protected.PATCH("/scores/:area", cfg.ScoreHandler.SetArea)
	// Assessment
	protected.GET("/assessment/questions", cfg.AssessmentHandler.Questions)
	protected.GET("/assessment", cfg.AssessmentHandler.State)
	protected.POST("/assessment/responses", cfg.AssessmentHandler.SubmitResponse)
	protected.POST("/assessment/skip", cfg.AssessmentHandler.Skip)
	protected.DELETE("/assessment", cfg.AssessmentHandler.Reset)
	// Insights
	protected.GET("/insights", cfg.AssessmentHandler.Insights)
	// Chat
	protected.POST("/chat/seed", cfg.ChatHandler.Seed)
	protected.POST("/chat/send", cfg.ChatHandler.Send)
	// Dashboard
	protected.GET("/dashboard", cfg.DashboardHandler.Get)

	return router
}
