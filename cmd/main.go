package main

import (
	"fmt"
	"os"
	"time"

	"github.com/yungbote/lifebalance-backend/internal/clients/openai"
	"github.com/yungbote/lifebalance-backend/internal/clients/redis"
	"github.com/yungbote/lifebalance-backend/internal/db"
	"github.com/yungbote/lifebalance-backend/internal/handlers"
	"github.com/yungbote/lifebalance-backend/internal/logger"
	"github.com/yungbote/lifebalance-backend/internal/middleware"
	"github.com/yungbote/lifebalance-backend/internal/repos"
	"github.com/yungbote/lifebalance-backend/internal/server"
	"github.com/yungbote/lifebalance-backend/internal/services"
	"github.com/yungbote/lifebalance-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	scoreSetRepo := repos.NewScoreSetRepo(theDB, log)
	responseSetRepo := repos.NewResponseSetRepo(theDB, log)
	insightRecordRepo := repos.NewInsightRecordRepo(theDB, log)

	// Cache
	cache, err := redis.New(log)
	if err != nil {
		log.Warn("Could not init redis cache, continuing without it", "error", err)
		cache = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	openaiClient, err := openai.New(log)
	if err != nil {
		log.Warn("Could not init OpenAI client, chat will reply with the fallback message", "error", err)
		openaiClient = nil
	}
	avatarService, err := services.NewAvatarService(log)
	if err != nil {
		log.Warn("Could not init AvatarService, new users get no avatar", "error", err)
		avatarService = nil
	}
	authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, scoreSetRepo, avatarService, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(theDB, log, userRepo, userTokenRepo, scoreSetRepo, responseSetRepo, insightRecordRepo, cache)
	scoreService := services.NewScoreService(theDB, log, scoreSetRepo, cache)
	assessmentService := services.NewAssessmentService(theDB, log, responseSetRepo, insightRecordRepo, cache)
	chatService := services.NewChatService(log, openaiClient)
	dashboardService := services.NewDashboardService(log, scoreService, assessmentService)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	chatHandler := handlers.NewChatHandler(chatService, scoreService, assessmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		ScoreHandler:      scoreHandler,
		AssessmentHandler: assessmentHandler,
		ChatHandler:       chatHandler,
		DashboardHandler:  dashboardHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
