package dto

import (
	"time"

	"github.com/chorehub/chore-management-api/internal/models"
)

// RewardDTO represents a catalog reward in API responses
type RewardDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserRewardDTO represents an owned reward instance in API responses
type UserRewardDTO struct {
	ID         uint64     `json:"id"`
	UserID     uint64     `json:"user_id"`
	RewardID   uint64     `json:"reward_id"`
	RedeemedAt time.Time  `json:"redeemed_at"`
	Reward     *RewardDTO `json:"reward,omitempty"`
}

// ToRewardDTO converts a Reward model to RewardDTO
func ToRewardDTO(reward models.Reward) RewardDTO {
	return RewardDTO{
		ID:          reward.ID,
		Title:       reward.Title,
		Description: reward.Description,
		Points:      reward.Points,
		CreatedAt:   reward.CreatedAt,
		UpdatedAt:   reward.UpdatedAt,
	}
}

// ToRewardDTOs converts a slice of Reward models
func ToRewardDTOs(rewards []models.Reward) []RewardDTO {
	dtos := make([]RewardDTO, len(rewards))
	for i, reward := range rewards {
		dtos[i] = ToRewardDTO(reward)
	}
	return dtos
}

// ToUserRewardDTO converts a UserReward model to UserRewardDTO
func ToUserRewardDTO(userReward models.UserReward) UserRewardDTO {
	dto := UserRewardDTO{
		ID:         userReward.ID,
		UserID:     userReward.UserID,
		RewardID:   userReward.RewardID,
		RedeemedAt: userReward.RedeemedAt,
	}

	// Include reward if preloaded
	if userReward.Reward.ID != 0 {
		reward := ToRewardDTO(userReward.Reward)
		dto.Reward = &reward
	}

	return dto
}
