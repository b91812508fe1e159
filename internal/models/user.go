package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleParent, RoleChild, RoleAdmin:
		return true
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role           `gorm:"type:varchar(20);not null" json:"role"`
	Wallet       int            `gorm:"not null;default:0" json:"wallet"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignments   []ChoreAssignment `gorm:"foreignKey:UserID" json:"assignments,omitempty"`
	Rewards       []UserReward      `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification    `gorm:"foreignKey:UserID" json:"-"`
}

// Validate checks the required-field invariants for a user record.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return validationError("email is required")
	}
	if !emailPattern.MatchString(u.Email) {
		return validationError("invalid email format")
	}
	if !ValidRole(u.Role) {
		return validationError("role is required")
	}
	if u.Wallet < 0 {
		return validationError("wallet cannot be negative")
	}
	return nil
}
