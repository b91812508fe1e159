package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chorehub/chore-management-api/internal/database"
	"github.com/chorehub/chore-management-api/internal/middleware"
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/repository"
	"github.com/chorehub/chore-management-api/internal/services"
	"github.com/chorehub/chore-management-api/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *token.Manager
}

// setupTestEnv builds an in-memory API with the full route table.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Chore{},
		&models.ChoreAssignment{},
		&models.Reward{},
		&models.UserReward{},
		&models.Notification{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	choreRepo := repository.NewChoreRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	tokens := token.NewManager("test-secret", time.Hour)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	choreService := services.NewChoreService(choreRepo, userRepo, notificationService)
	rewardService := services.NewRewardService(rewardRepo, userRepo, notificationService)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	choreHandler := NewChoreHandler(choreService, nil)
	rewardHandler := NewRewardHandler(rewardService)
	notificationHandler := NewNotificationHandler(notificationService)

	r := gin.New()

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

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

	return testEnv{
		db:     db,
		router: r,
		tokens: tokens,
	}
}

func (env testEnv) createUser(t *testing.T, name, email string, role models.Role, wallet int) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Wallet:       wallet,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env testEnv) createChore(t *testing.T, title string, points int) *models.Chore {
	t.Helper()
	chore := &models.Chore{
		Title:       title,
		Description: "a chore",
		Points:      points,
	}
	require.NoError(t, env.db.Create(chore).Error)
	return chore
}

func (env testEnv) createReward(t *testing.T, title string, points int) *models.Reward {
	t.Helper()
	reward := &models.Reward{
		Title:       title,
		Description: "a reward",
		Points:      points,
	}
	require.NoError(t, env.db.Create(reward).Error)
	return reward
}

// bearer returns the Authorization header value for a user.
func (env testEnv) bearer(t *testing.T, user *models.User) string {
	t.Helper()
	signed, err := env.tokens.Generate(user)
	require.NoError(t, err)
	return "Bearer " + signed
}

// request performs an HTTP call against the test router. auth is the
// Authorization header value, empty for anonymous requests.
func (env testEnv) request(t *testing.T, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
