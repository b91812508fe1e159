package models

import "time"

// UserReward is an owned instance of a catalog Reward, created by
// redemption. Deleting one never touches the catalog entry.
type UserReward struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	RewardID   uint64    `gorm:"not null;index" json:"reward_id"`
	RedeemedAt time.Time `gorm:"autoCreateTime" json:"redeemed_at"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reward Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
}
