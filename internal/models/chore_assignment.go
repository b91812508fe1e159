package models

import "time"

type AssignmentStatus string

const (
	StatusIncomplete AssignmentStatus = "incomplete"
	StatusPending    AssignmentStatus = "pending"
	StatusCompleted  AssignmentStatus = "completed"
)

// ValidStatus reports whether s is a known assignment status.
func ValidStatus(s AssignmentStatus) bool {
	switch s {
	case StatusIncomplete, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// ChoreAssignment links a user to a chore. A user may hold several
// assignment rows for the same chore over time; there is no uniqueness
// constraint on (user_id, chore_id).
type ChoreAssignment struct {
	ID         uint64           `gorm:"primarykey" json:"id"`
	UserID     uint64           `gorm:"not null;index" json:"user_id"`
	ChoreID    uint64           `gorm:"not null;index" json:"chore_id"`
	Status     AssignmentStatus `gorm:"type:varchar(20);not null;default:'incomplete'" json:"status"`
	AssignedAt time.Time        `gorm:"autoCreateTime" json:"assigned_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Chore Chore `gorm:"foreignKey:ChoreID" json:"chore,omitempty"`
}
