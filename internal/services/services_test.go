package services

import (
	"testing"
	"time"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/repository"
	"github.com/chorehub/chore-management-api/internal/token"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db            *gorm.DB
	auth          *AuthService
	users         *UserService
	chores        *ChoreService
	rewards       *RewardService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) testEnv {
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

	notifications := NewNotificationService(notificationRepo, userRepo)

	return testEnv{
		db:            db,
		auth:          NewAuthService(userRepo, tokens),
		users:         NewUserService(userRepo),
		chores:        NewChoreService(choreRepo, userRepo, notifications),
		rewards:       NewRewardService(rewardRepo, userRepo, notifications),
		notifications: notifications,
	}
}

func (env testEnv) createUser(t *testing.T, name, email string, role models.Role, wallet int) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
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
		Description: "Test Description",
		Points:      points,
	}
	require.NoError(t, env.db.Create(chore).Error)
	return chore
}

func (env testEnv) createReward(t *testing.T, title string, points int) *models.Reward {
	t.Helper()
	reward := &models.Reward{
		Title:       title,
		Description: "Test Description",
		Points:      points,
	}
	require.NoError(t, env.db.Create(reward).Error)
	return reward
}

func (env testEnv) walletOf(t *testing.T, userID uint64) int {
	t.Helper()
	var user models.User
	require.NoError(t, env.db.First(&user, userID).Error)
	return user.Wallet
}

func (env testEnv) notificationsOf(t *testing.T, userID uint64) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", userID).Find(&notifications).Error)
	return notifications
}
