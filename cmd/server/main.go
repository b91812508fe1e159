package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chorehub/chore-management-api/internal/config"
	"github.com/chorehub/chore-management-api/internal/database"
	"github.com/chorehub/chore-management-api/internal/handlers"
	"github.com/chorehub/chore-management-api/internal/middleware"
	"github.com/chorehub/chore-management-api/internal/repository"
	"github.com/chorehub/chore-management-api/internal/services"
	"github.com/chorehub/chore-management-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	choreRepo := repository.NewChoreRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	choreService := services.NewChoreService(choreRepo, userRepo, notificationService)
	rewardService := services.NewRewardService(rewardRepo, userRepo, notificationService)

	var suggestionService *services.ChoreSuggestionService
	if cfg.OpenAIAPIKey != "" {
		suggestionService = services.NewChoreSuggestionService(cfg.OpenAIAPIKey)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	choreHandler := handlers.NewChoreHandler(choreService, suggestionService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gin router
	r := gin.Default()

	// Liveness endpoint
	r.GET("/status", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Chore Management API is running",
		})
	})

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	// Everything else requires a bearer token
	authed := r.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		users := authed.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/rewards", rewardHandler.RewardsByUser)
		}

		chores := authed.Group("/chores")
		{
			chores.GET("", choreHandler.ListChores)
			chores.POST("", choreHandler.CreateChore)
			chores.GET("/:id", choreHandler.GetChore)
			chores.PUT("/:id", choreHandler.UpdateChore)
			chores.DELETE("/:id", choreHandler.DeleteChore)
			chores.POST("/assign", choreHandler.Assign)
			chores.POST("/remove-assignment", choreHandler.Unassign)
			chores.PUT("/assignment/:id/status", choreHandler.UpdateStatus)
			chores.GET("/user/:userId", choreHandler.ChoresByUser)
			chores.GET("/assignments/user/:userId", choreHandler.AssignmentsByUser)
			chores.GET("/assignments/children", choreHandler.ChildAssignments)
			chores.POST("/generate", choreHandler.Generate)
		}

		rewards := authed.Group("/rewards")
		{
			rewards.GET("", rewardHandler.ListRewards)
			rewards.POST("", rewardHandler.CreateReward)
			rewards.GET("/:id", rewardHandler.GetReward)
			rewards.DELETE("/:id", rewardHandler.DeleteReward)
			rewards.POST("/:id/redeem", rewardHandler.Redeem)
			rewards.GET("/:id/redeemed-users", rewardHandler.RedeemedUsers)
		}

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.GET("/unread", notificationHandler.UnreadNotifications)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
