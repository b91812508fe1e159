package repository

import (
	"errors"
	"fmt"

	"github.com/chorehub/chore-management-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCompleteAssignment is returned when flipping an assignment to
	// completed fails inside the completion transaction.
	ErrCompleteAssignment = errors.New("chore repository: complete assignment failed")
	// ErrCreditWallet is returned when crediting the assignee's wallet
	// fails inside the completion transaction.
	ErrCreditWallet = errors.New("chore repository: credit wallet failed")
)

// GormChoreRepository is a GORM implementation of ChoreRepository
type GormChoreRepository struct {
	db *gorm.DB
}

// NewChoreRepository creates a new ChoreRepository
func NewChoreRepository(db *gorm.DB) ChoreRepository {
	return &GormChoreRepository{db: db}
}

// Create creates a new chore
func (r *GormChoreRepository) Create(chore *models.Chore) error {
	return r.db.Create(chore).Error
}

// FindByID finds a chore by ID with optional preloading
func (r *GormChoreRepository) FindByID(id uint64, preload ...string) (*models.Chore, error) {
	var chore models.Chore
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&chore, id).Error; err != nil {
		return nil, err
	}
	return &chore, nil
}

// List retrieves all chores with optional preloading
func (r *GormChoreRepository) List(preload ...string) ([]models.Chore, error) {
	var chores []models.Chore
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Order("chores.created_at DESC").Find(&chores).Error; err != nil {
		return nil, err
	}
	return chores, nil
}

// Update updates a chore
func (r *GormChoreRepository) Update(chore *models.Chore) error {
	return r.db.Save(chore).Error
}

// Delete soft deletes a chore and removes its assignments
func (r *GormChoreRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chore_id = ?", id).Delete(&models.ChoreAssignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Chore{}, id).Error
	})
}

// CreateAssignment creates an assignment row
func (r *GormChoreRepository) CreateAssignment(assignment *models.ChoreAssignment) error {
	return r.db.Create(assignment).Error
}

// FindAssignmentByID finds an assignment by ID with optional preloading
func (r *GormChoreRepository) FindAssignmentByID(id uint64, preload ...string) (*models.ChoreAssignment, error) {
	var assignment models.ChoreAssignment
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DeleteAssignments removes all assignment rows linking a user to a chore
func (r *GormChoreRepository) DeleteAssignments(userID, choreID uint64) (int64, error) {
	result := r.db.Where("user_id = ? AND chore_id = ?", userID, choreID).
		Delete(&models.ChoreAssignment{})
	return result.RowsAffected, result.Error
}

// UpdateAssignmentStatus persists a status value with no side effects
func (r *GormChoreRepository) UpdateAssignmentStatus(id uint64, status models.AssignmentStatus) error {
	return r.db.Model(&models.ChoreAssignment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CompleteAssignment marks an assignment completed and credits the wallet
// in one transaction. The status flip is conditional on the row not being
// completed yet, so two concurrent completions credit at most once.
func (r *GormChoreRepository) CompleteAssignment(assignmentID, userID uint64, points int) (bool, error) {
	credited := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ChoreAssignment{}).
			Where("id = ? AND status <> ?", assignmentID, models.StatusCompleted).
			Update("status", models.StatusCompleted)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrCompleteAssignment, result.Error)
		}
		if result.RowsAffected == 0 {
			// Already completed, nothing to credit.
			return nil
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("wallet", gorm.Expr("wallet + ?", points)).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreditWallet, err)
		}

		credited = true
		return nil
	})

	return credited, err
}

// ListAssignmentsByUser lists a user's assignments with chores expanded
func (r *GormChoreRepository) ListAssignmentsByUser(userID uint64) ([]models.ChoreAssignment, error) {
	var assignments []models.ChoreAssignment
	if err := r.db.Where("user_id = ?", userID).
		Preload("Chore").
		Order("chore_assignments.assigned_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListChildAssignments lists assignments held by child-role users
func (r *GormChoreRepository) ListChildAssignments() ([]models.ChoreAssignment, error) {
	var assignments []models.ChoreAssignment
	if err := r.db.
		Joins("JOIN users ON users.id = chore_assignments.user_id").
		Where("users.role = ? AND users.deleted_at IS NULL", models.RoleChild).
		Preload("User").
		Preload("Chore").
		Order("chore_assignments.assigned_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
