package repository

import (
	"errors"
	"fmt"

	"github.com/chorehub/chore-management-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientFunds is returned when the wallet balance is below
	// the reward cost at debit time.
	ErrInsufficientFunds = errors.New("reward repository: wallet balance below reward cost")
	// ErrDebitWallet is returned when the wallet debit fails inside the
	// redemption transaction.
	ErrDebitWallet = errors.New("reward repository: debit wallet failed")
	// ErrCreateUserReward is returned when inserting the ownership record
	// fails inside the redemption transaction.
	ErrCreateUserReward = errors.New("reward repository: create user reward failed")
)

// GormRewardRepository is a GORM implementation of RewardRepository
type GormRewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &GormRewardRepository{db: db}
}

// Create creates a new catalog reward
func (r *GormRewardRepository) Create(reward *models.Reward) error {
	return r.db.Create(reward).Error
}

// FindByID finds a reward by ID
func (r *GormRewardRepository) FindByID(id uint64) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.First(&reward, id).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// List retrieves the reward catalog
func (r *GormRewardRepository) List() ([]models.Reward, error) {
	var rewards []models.Reward
	if err := r.db.Order("rewards.created_at DESC").Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

// Delete soft deletes a catalog reward
func (r *GormRewardRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Reward{}, id).Error
}

// Redeem debits the wallet and inserts the ownership record atomically.
// The debit is conditional on wallet >= points, so concurrent redemptions
// cannot drive the balance negative.
func (r *GormRewardRepository) Redeem(userID, rewardID uint64, points int) (*models.UserReward, error) {
	userReward := &models.UserReward{
		UserID:   userID,
		RewardID: rewardID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND wallet >= ?", userID, points).
			Update("wallet", gorm.Expr("wallet - ?", points))
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrDebitWallet, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		if err := tx.Create(userReward).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUserReward, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return userReward, nil
}

// ListUserRewards lists ownership records for a user with rewards expanded
func (r *GormRewardRepository) ListUserRewards(userID uint64) ([]models.UserReward, error) {
	var userRewards []models.UserReward
	if err := r.db.Where("user_id = ?", userID).
		Preload("Reward").
		Order("user_rewards.redeemed_at DESC").
		Find(&userRewards).Error; err != nil {
		return nil, err
	}
	return userRewards, nil
}

// ListRedeemedUsers lists the users who redeemed a reward
func (r *GormRewardRepository) ListRedeemedUsers(rewardID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Joins("JOIN user_rewards ON user_rewards.user_id = users.id").
		Where("user_rewards.reward_id = ?", rewardID).
		Distinct("users.*").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserReward finds one ownership record for a reward/user pair
func (r *GormRewardRepository) FindUserReward(rewardID, userID uint64) (*models.UserReward, error) {
	var userReward models.UserReward
	if err := r.db.Where("reward_id = ? AND user_id = ?", rewardID, userID).
		First(&userReward).Error; err != nil {
		return nil, err
	}
	return &userReward, nil
}

// DeleteUserReward removes an ownership record by ID
func (r *GormRewardRepository) DeleteUserReward(id uint64) error {
	return r.db.Delete(&models.UserReward{}, id).Error
}
