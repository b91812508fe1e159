package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Chore struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Points      int            `gorm:"not null" json:"points"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignments []ChoreAssignment `gorm:"foreignKey:ChoreID" json:"assignments,omitempty"`
}

// Validate checks the required-field and non-negative-points invariants.
func (c *Chore) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		return validationError("description is required")
	}
	if c.Points < 0 {
		return validationError("points cannot be negative")
	}
	return nil
}

// AssignedUsers returns the distinct users holding an assignment for the
// chore. Multiple assignment rows for the same user collapse to one entry.
func (c *Chore) AssignedUsers() []User {
	seen := make(map[uint64]struct{}, len(c.Assignments))
	users := make([]User, 0, len(c.Assignments))
	for _, a := range c.Assignments {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		users = append(users, a.User)
	}
	return users
}
