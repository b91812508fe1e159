package models

import (
	"strings"
	"time"
)

type NotificationType string

const (
	NotificationChoreAssignment  NotificationType = "CHORE_ASSIGNMENT"
	NotificationRewardRedemption NotificationType = "REWARD_REDEMPTION"
	NotificationRewardUsage      NotificationType = "REWARD_USAGE"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationChoreAssignment, NotificationRewardRedemption, NotificationRewardUsage:
		return true
	}
	return false
}

// Notification is an append-only user-facing event record. The only
// mutation in normal flow is the read flag.
type Notification struct {
	ID        uint64           `gorm:"primarykey" json:"id"`
	UserID    uint64           `gorm:"not null;index" json:"user_id"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Read      bool             `gorm:"not null;default:false" json:"read"`
	ChoreID   *uint64          `json:"chore_id,omitempty"`
	RewardID  *uint64          `json:"reward_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`

	// Relations
	User   User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Chore  *Chore  `gorm:"foreignKey:ChoreID" json:"chore,omitempty"`
	Reward *Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
}

// Validate checks the required-field invariants for a notification.
func (n *Notification) Validate() error {
	if n.UserID == 0 {
		return validationError("user id is required")
	}
	if strings.TrimSpace(n.Message) == "" {
		return validationError("message is required")
	}
	if !ValidNotificationType(n.Type) {
		return validationError("type is required")
	}
	return nil
}
