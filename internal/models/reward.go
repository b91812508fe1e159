package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Reward struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Points      int            `gorm:"not null" json:"points"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Redemptions []UserReward `gorm:"foreignKey:RewardID" json:"redemptions,omitempty"`
}

// Validate checks the required-field and non-negative-points invariants.
func (r *Reward) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return validationError("description is required")
	}
	if r.Points < 0 {
		return validationError("points cannot be negative")
	}
	return nil
}
