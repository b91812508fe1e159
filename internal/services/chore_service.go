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
	ErrChoreNotFound      = errors.New("chore not found")
	ErrAssignmentNotFound = errors.New("chore assignment not found")
	ErrInvalidStatus      = errors.New("invalid assignment status")
)

// ChoreService handles chore CRUD together with the assignment lifecycle:
// creating and removing assignments, status transitions, and the wallet
// credit on completion.
type ChoreService struct {
	choreRepo     repository.ChoreRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewChoreService creates a new ChoreService.
func NewChoreService(choreRepo repository.ChoreRepository, userRepo repository.UserRepository, notifications *NotificationService) *ChoreService {
	return &ChoreService{
		choreRepo:     choreRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreateChoreInput represents input for creating a chore.
type CreateChoreInput struct {
	Title       string
	Description string
	Points      int
}

// CreateChore validates and persists a new chore.
func (s *ChoreService) CreateChore(input CreateChoreInput) (*models.Chore, error) {
	chore := &models.Chore{
		Title:       input.Title,
		Description: input.Description,
		Points:      input.Points,
	}
	if err := chore.Validate(); err != nil {
		return nil, err
	}

	if err := s.choreRepo.Create(chore); err != nil {
		return nil, fmt.Errorf("failed to create chore: %w", err)
	}

	return chore, nil
}

// ListChores returns all chores with assignments and assignees expanded.
func (s *ChoreService) ListChores() ([]models.Chore, error) {
	chores, err := s.choreRepo.List("Assignments", "Assignments.User")
	if err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}
	return chores, nil
}

// GetChore returns a chore with assignments expanded.
func (s *ChoreService) GetChore(id uint64) (*models.Chore, error) {
	chore, err := s.choreRepo.FindByID(id, "Assignments", "Assignments.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoreNotFound
		}
		return nil, fmt.Errorf("failed to find chore: %w", err)
	}
	return chore, nil
}

// UpdateChoreInput represents input for updating a chore.
type UpdateChoreInput struct {
	Title       *string
	Description *string
	Points      *int
}

// UpdateChore applies partial updates to a chore.
func (s *ChoreService) UpdateChore(id uint64, input UpdateChoreInput) (*models.Chore, error) {
	chore, err := s.choreRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoreNotFound
		}
		return nil, fmt.Errorf("failed to find chore: %w", err)
	}

	if input.Title != nil {
		chore.Title = *input.Title
	}
	if input.Description != nil {
		chore.Description = *input.Description
	}
	if input.Points != nil {
		chore.Points = *input.Points
	}

	if err := chore.Validate(); err != nil {
		return nil, err
	}

	if err := s.choreRepo.Update(chore); err != nil {
		return nil, fmt.Errorf("failed to update chore: %w", err)
	}

	return chore, nil
}

// DeleteChore removes a chore and its assignments.
func (s *ChoreService) DeleteChore(id uint64) error {
	if _, err := s.choreRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChoreNotFound
		}
		return fmt.Errorf("failed to find chore: %w", err)
	}

	if err := s.choreRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}

	return nil
}

// AssignInput represents input for assigning a chore to a user.
type AssignInput struct {
	UserID  uint64
	ChoreID uint64
	Status  models.AssignmentStatus
}

// Assign links a user to a chore. The new assignment defaults to
// incomplete and is returned with user and chore expanded.
func (s *ChoreService) Assign(input AssignInput) (*models.ChoreAssignment, error) {
	if input.Status == "" {
		input.Status = models.StatusIncomplete
	}
	if !models.ValidStatus(input.Status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if _, err := s.choreRepo.FindByID(input.ChoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChoreNotFound
		}
		return nil, fmt.Errorf("failed to find chore: %w", err)
	}

	assignment := &models.ChoreAssignment{
		UserID:  input.UserID,
		ChoreID: input.ChoreID,
		Status:  input.Status,
	}
	if err := s.choreRepo.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.choreRepo.FindAssignmentByID(assignment.ID, "User", "Chore")
}

// Unassign removes all assignment rows linking a user to a chore. It is
// an error to unassign when no assignment existed.
func (s *ChoreService) Unassign(userID, choreID uint64) error {
	deleted, err := s.choreRepo.DeleteAssignments(userID, choreID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	if deleted == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// UpdateStatus transitions an assignment. Completing an assignment
// credits the assignee's wallet with the chore's points exactly once;
// repeating the completed status is an idempotent no-op. All other
// transitions persist the status with no side effects.
func (s *ChoreService) UpdateStatus(assignmentID uint64, status models.AssignmentStatus) (*models.ChoreAssignment, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	assignment, err := s.choreRepo.FindAssignmentByID(assignmentID, "User", "Chore")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	if status == models.StatusCompleted {
		if assignment.Status == models.StatusCompleted {
			return assignment, nil
		}

		credited, err := s.choreRepo.CompleteAssignment(assignment.ID, assignment.UserID, assignment.Chore.Points)
		if err != nil {
			return nil, fmt.Errorf("failed to complete assignment: %w", err)
		}
		if credited {
			s.notifyCompletion(assignment)
		}

		return s.choreRepo.FindAssignmentByID(assignmentID, "User", "Chore")
	}

	if err := s.choreRepo.UpdateAssignmentStatus(assignmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update assignment status: %w", err)
	}

	return s.choreRepo.FindAssignmentByID(assignmentID, "User", "Chore")
}

// notifyCompletion emits the completion notification. Notifications are a
// best-effort side channel: a failure here is logged, never propagated.
func (s *ChoreService) notifyCompletion(assignment *models.ChoreAssignment) {
	choreID := assignment.ChoreID
	message := fmt.Sprintf("Chore %q completed: %d points added to your wallet",
		assignment.Chore.Title, assignment.Chore.Points)

	_, err := s.notifications.Create(CreateNotificationInput{
		UserID:  assignment.UserID,
		Message: message,
		Type:    models.NotificationChoreAssignment,
		ChoreID: &choreID,
	})
	if err != nil {
		log.Printf("failed to create completion notification for assignment %d: %v", assignment.ID, err)
	}
}

// ChoresByUser returns the chores a user is assigned to, one entry per
// assignment row.
func (s *ChoreService) ChoresByUser(userID uint64) ([]models.Chore, error) {
	assignments, err := s.choreRepo.ListAssignmentsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	chores := make([]models.Chore, 0, len(assignments))
	for _, a := range assignments {
		chores = append(chores, a.Chore)
	}
	return chores, nil
}

// AssignmentsByUser returns a user's assignments with chores expanded.
func (s *ChoreService) AssignmentsByUser(userID uint64) ([]models.ChoreAssignment, error) {
	assignments, err := s.choreRepo.ListAssignmentsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignment returns one assignment with user and chore expanded.
func (s *ChoreService) GetAssignment(id uint64) (*models.ChoreAssignment, error) {
	assignment, err := s.choreRepo.FindAssignmentByID(id, "User", "Chore")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return assignment, nil
}

// ChildAssignments returns assignments held by child-role users, for the
// approval dashboard.
func (s *ChoreService) ChildAssignments() ([]models.ChoreAssignment, error) {
	assignments, err := s.choreRepo.ListChildAssignments()
	if err != nil {
		return nil, fmt.Errorf("failed to list child assignments: %w", err)
	}
	return assignments, nil
}
