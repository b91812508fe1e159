package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrUserRewardNotFound = errors.New("user reward not found")
	ErrInsufficientPoints = errors.New("insufficient points to redeem this reward")
)

// RewardService handles the reward catalog and the redemption engine.
type RewardService struct {
	rewardRepo    repository.RewardRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewRewardService creates a new RewardService.
func NewRewardService(rewardRepo repository.RewardRepository, userRepo repository.UserRepository, notifications *NotificationService) *RewardService {
	return &RewardService{
		rewardRepo:    rewardRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreateRewardInput represents input for creating a catalog reward.
type CreateRewardInput struct {
	Title       string
	Description string
	Points      int
}

// CreateReward validates and persists a new catalog reward.
func (s *RewardService) CreateReward(input CreateRewardInput) (*models.Reward, error) {
	reward := &models.Reward{
		Title:       input.Title,
		Description: input.Description,
		Points:      input.Points,
	}
	if err := reward.Validate(); err != nil {
		return nil, err
	}

	if err := s.rewardRepo.Create(reward); err != nil {
		return nil, fmt.Errorf("failed to create reward: %w", err)
	}

	return reward, nil
}

// ListRewards returns the reward catalog.
func (s *RewardService) ListRewards() ([]models.Reward, error) {
	rewards, err := s.rewardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

// GetReward returns a catalog reward by ID.
func (s *RewardService) GetReward(id uint64) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to find reward: %w", err)
	}
	return reward, nil
}

// DeleteReward removes a catalog reward. Existing ownership records are
// kept; an owned reward outlives its catalog entry.
func (s *RewardService) DeleteReward(id uint64) error {
	if _, err := s.rewardRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRewardNotFound
		}
		return fmt.Errorf("failed to find reward: %w", err)
	}

	if err := s.rewardRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete reward: %w", err)
	}

	return nil
}

// Redeem converts wallet points into an ownership record. The debit and
// insert run in one transaction; the notification afterwards is
// best-effort.
func (s *RewardService) Redeem(userID, rewardID uint64) (*models.UserReward, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	reward, err := s.rewardRepo.FindByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to find reward: %w", err)
	}

	userReward, err := s.rewardRepo.Redeem(userID, rewardID, reward.Points)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return nil, ErrInsufficientPoints
		}
		return nil, fmt.Errorf("failed to redeem reward: %w", err)
	}
	userReward.Reward = *reward

	s.notifyRedemption(user, reward)

	return userReward, nil
}

func (s *RewardService) notifyRedemption(user *models.User, reward *models.Reward) {
	rewardID := reward.ID
	message := fmt.Sprintf("%s has bought %s", user.Name, reward.Title)

	_, err := s.notifications.Create(CreateNotificationInput{
		UserID:   user.ID,
		Message:  message,
		Type:     models.NotificationRewardRedemption,
		RewardID: &rewardID,
	})
	if err != nil {
		log.Printf("failed to create redemption notification for user %d: %v", user.ID, err)
	}
}

// RewardsByUser returns the catalog rewards a user has redeemed.
func (s *RewardService) RewardsByUser(userID uint64) ([]models.Reward, error) {
	userRewards, err := s.rewardRepo.ListUserRewards(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user rewards: %w", err)
	}

	rewards := make([]models.Reward, 0, len(userRewards))
	for _, ur := range userRewards {
		rewards = append(rewards, ur.Reward)
	}
	return rewards, nil
}

// RedeemedUsers returns the users who redeemed a reward.
func (s *RewardService) RedeemedUsers(rewardID uint64) ([]models.User, error) {
	if _, err := s.rewardRepo.FindByID(rewardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to find reward: %w", err)
	}

	users, err := s.rewardRepo.ListRedeemedUsers(rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeemed users: %w", err)
	}
	return users, nil
}

// DeleteUserReward removes one ownership record for a reward/user pair,
// leaving the catalog entry in place, and emits a usage notification.
func (s *RewardService) DeleteUserReward(rewardID, userID uint64) (*models.Reward, error) {
	reward, err := s.rewardRepo.FindByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to find reward: %w", err)
	}

	userReward, err := s.rewardRepo.FindUserReward(rewardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserRewardNotFound
		}
		return nil, fmt.Errorf("failed to find user reward: %w", err)
	}

	if err := s.rewardRepo.DeleteUserReward(userReward.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user reward: %w", err)
	}

	s.notifyUsage(userID, reward)

	return reward, nil
}

func (s *RewardService) notifyUsage(userID uint64, reward *models.Reward) {
	rewardID := reward.ID
	message := fmt.Sprintf("Reward %q has been used", reward.Title)

	_, err := s.notifications.Create(CreateNotificationInput{
		UserID:   userID,
		Message:  message,
		Type:     models.NotificationRewardUsage,
		RewardID: &rewardID,
	})
	if err != nil {
		log.Printf("failed to create usage notification for user %d: %v", userID, err)
	}
}
