package services

import (
	"testing"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRedeemWithInsufficientPoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 2)
	reward := env.createReward(t, "Extra TV Time", 3)

	_, err := env.rewards.Redeem(user.ID, reward.ID)
	require.ErrorIs(t, err, ErrInsufficientPoints)

	// Wallet and ownership table untouched.
	require.Equal(t, 2, env.walletOf(t, user.ID))
	var count int64
	require.NoError(t, env.db.Model(&models.UserReward{}).Count(&count).Error)
	require.Zero(t, count)
	require.Empty(t, env.notificationsOf(t, user.ID))
}

func TestRedeemDebitsAndRecordsOwnership(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 5)
	reward := env.createReward(t, "Extra TV Time", 3)

	userReward, err := env.rewards.Redeem(user.ID, reward.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, userReward.UserID)
	require.Equal(t, reward.ID, userReward.RewardID)
	require.Equal(t, reward.Title, userReward.Reward.Title)

	require.Equal(t, 2, env.walletOf(t, user.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.UserReward{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	notifications := env.notificationsOf(t, user.ID)
	require.Len(t, notifications, 1)
	require.Equal(t, models.NotificationRewardRedemption, notifications[0].Type)
	require.Contains(t, notifications[0].Message, reward.Title)
}

func TestRedeemExactBalance(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 3)
	reward := env.createReward(t, "Extra TV Time", 3)

	_, err := env.rewards.Redeem(user.ID, reward.ID)
	require.NoError(t, err)
	require.Equal(t, 0, env.walletOf(t, user.ID))
}

func TestRedeemUnknownEntities(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 5)
	reward := env.createReward(t, "Extra TV Time", 3)

	_, err := env.rewards.Redeem(999, reward.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = env.rewards.Redeem(user.ID, 999)
	require.ErrorIs(t, err, ErrRewardNotFound)
}

func TestRewardsByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 10)
	tv := env.createReward(t, "Extra TV Time", 3)
	candy := env.createReward(t, "Candy", 2)

	_, err := env.rewards.Redeem(user.ID, tv.ID)
	require.NoError(t, err)
	_, err = env.rewards.Redeem(user.ID, candy.ID)
	require.NoError(t, err)

	owned, err := env.rewards.RewardsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
}

func TestRedeemedUsers(t *testing.T) {
	env := newTestEnv(t)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 5)
	other := env.createUser(t, "Other", "other@example.com", models.RoleChild, 5)
	reward := env.createReward(t, "Extra TV Time", 3)

	_, err := env.rewards.Redeem(kid.ID, reward.ID)
	require.NoError(t, err)

	users, err := env.rewards.RedeemedUsers(reward.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, kid.ID, users[0].ID)
	require.NotEqual(t, other.ID, users[0].ID)

	_, err = env.rewards.RedeemedUsers(999)
	require.ErrorIs(t, err, ErrRewardNotFound)
}

func TestDeleteUserRewardKeepsCatalogEntry(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 5)
	reward := env.createReward(t, "Extra TV Time", 3)

	_, err := env.rewards.Redeem(user.ID, reward.ID)
	require.NoError(t, err)

	deleted, err := env.rewards.DeleteUserReward(reward.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, reward.ID, deleted.ID)

	// Ownership record gone, catalog entry still there.
	var count int64
	require.NoError(t, env.db.Model(&models.UserReward{}).Count(&count).Error)
	require.Zero(t, count)

	stillThere, err := env.rewards.GetReward(reward.ID)
	require.NoError(t, err)
	require.Equal(t, reward.Title, stillThere.Title)

	// A usage notification accompanies the redemption one.
	notifications := env.notificationsOf(t, user.ID)
	require.Len(t, notifications, 2)

	_, err = env.rewards.DeleteUserReward(reward.ID, user.ID)
	require.ErrorIs(t, err, ErrUserRewardNotFound)
}

func TestCreateRewardValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.rewards.CreateReward(CreateRewardInput{Title: "", Description: "d", Points: 1})
	require.True(t, models.IsValidationError(err))

	_, err = env.rewards.CreateReward(CreateRewardInput{Title: "t", Description: "d", Points: -1})
	require.True(t, models.IsValidationError(err))
}
