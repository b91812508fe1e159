package dto

import (
	"time"

	"github.com/chorehub/chore-management-api/internal/models"
)

// ChoreDTO represents a chore in API responses
type ChoreDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Points        int       `json:"points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AssignedUsers []UserDTO `json:"assigned_users,omitempty"`
}

// AssignmentDTO represents a chore assignment in API responses
type AssignmentDTO struct {
	ID         uint64                  `json:"id"`
	UserID     uint64                  `json:"user_id"`
	ChoreID    uint64                  `json:"chore_id"`
	Status     models.AssignmentStatus `json:"status"`
	AssignedAt time.Time               `json:"assigned_at"`
	User       *UserDTO                `json:"user,omitempty"`
	Chore      *ChoreDTO               `json:"chore,omitempty"`
}

// SuggestedChoreDTO represents an AI-generated chore proposal
type SuggestedChoreDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// ToChoreDTO converts a Chore model to ChoreDTO
func ToChoreDTO(chore models.Chore) ChoreDTO {
	dto := ChoreDTO{
		ID:          chore.ID,
		Title:       chore.Title,
		Description: chore.Description,
		Points:      chore.Points,
		CreatedAt:   chore.CreatedAt,
		UpdatedAt:   chore.UpdatedAt,
	}

	// Include assignees if preloaded
	if len(chore.Assignments) > 0 {
		dto.AssignedUsers = ToUserDTOs(chore.AssignedUsers())
	}

	return dto
}

// ToChoreDTOs converts a slice of Chore models
func ToChoreDTOs(chores []models.Chore) []ChoreDTO {
	dtos := make([]ChoreDTO, len(chores))
	for i, chore := range chores {
		dtos[i] = ToChoreDTO(chore)
	}
	return dtos
}

// ToAssignmentDTO converts a ChoreAssignment model to AssignmentDTO
func ToAssignmentDTO(assignment models.ChoreAssignment) AssignmentDTO {
	dto := AssignmentDTO{
		ID:         assignment.ID,
		UserID:     assignment.UserID,
		ChoreID:    assignment.ChoreID,
		Status:     assignment.Status,
		AssignedAt: assignment.AssignedAt,
	}

	// Include relations if preloaded
	if assignment.User.ID != 0 {
		user := ToUserDTO(assignment.User)
		dto.User = &user
	}
	if assignment.Chore.ID != 0 {
		chore := ToChoreDTO(assignment.Chore)
		dto.Chore = &chore
	}

	return dto
}

// ToAssignmentDTOs converts a slice of ChoreAssignment models
func ToAssignmentDTOs(assignments []models.ChoreAssignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = ToAssignmentDTO(assignment)
	}
	return dtos
}
