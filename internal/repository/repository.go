package repository

import (
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete soft deletes a user
	Delete(id uint64) error

	// CreditWallet atomically increments a user's wallet balance
	CreditWallet(userID uint64, points int) error
}

// ChoreRepository defines the interface for chore and assignment data access
type ChoreRepository interface {
	// Create creates a new chore
	Create(chore *models.Chore) error

	// FindByID finds a chore by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Chore, error)

	// List retrieves all chores with optional preloading
	List(preload ...string) ([]models.Chore, error)

	// Update updates a chore
	Update(chore *models.Chore) error

	// Delete soft deletes a chore and removes its assignments
	Delete(id uint64) error

	// CreateAssignment creates an assignment row
	CreateAssignment(assignment *models.ChoreAssignment) error

	// FindAssignmentByID finds an assignment by ID with optional preloading
	FindAssignmentByID(id uint64, preload ...string) (*models.ChoreAssignment, error)

	// DeleteAssignments removes all assignment rows linking a user to a
	// chore and reports how many were deleted
	DeleteAssignments(userID, choreID uint64) (int64, error)

	// UpdateAssignmentStatus persists a status value with no side effects
	UpdateAssignmentStatus(id uint64, status models.AssignmentStatus) error

	// CompleteAssignment marks an assignment completed and credits the
	// assignee's wallet in a single transaction. The credit happens only
	// when the row was not already completed; the return value reports
	// whether the wallet was credited.
	CompleteAssignment(assignmentID, userID uint64, points int) (bool, error)

	// ListAssignmentsByUser lists a user's assignments with chores expanded
	ListAssignmentsByUser(userID uint64) ([]models.ChoreAssignment, error)

	// ListChildAssignments lists assignments held by child-role users
	ListChildAssignments() ([]models.ChoreAssignment, error)
}

// RewardRepository defines the interface for reward and redemption data access
type RewardRepository interface {
	// Create creates a new catalog reward
	Create(reward *models.Reward) error

	// FindByID finds a reward by ID
	FindByID(id uint64) (*models.Reward, error)

	// List retrieves the reward catalog
	List() ([]models.Reward, error)

	// Delete soft deletes a catalog reward
	Delete(id uint64) error

	// Redeem debits the wallet and inserts the ownership record in a
	// single transaction. Returns ErrInsufficientFunds when the wallet
	// balance is below points at debit time.
	Redeem(userID, rewardID uint64, points int) (*models.UserReward, error)

	// ListUserRewards lists ownership records for a user with rewards expanded
	ListUserRewards(userID uint64) ([]models.UserReward, error)

	// ListRedeemedUsers lists the users who redeemed a reward
	ListRedeemedUsers(rewardID uint64) ([]models.User, error)

	// FindUserReward finds one ownership record for a reward/user pair
	FindUserReward(rewardID, userID uint64) (*models.UserReward, error)

	// DeleteUserReward removes an ownership record by ID
	DeleteUserReward(id uint64) error
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create inserts a notification row
	Create(notification *models.Notification) error

	// FindByID finds a notification by ID
	FindByID(id uint64) (*models.Notification, error)

	// Update persists changes to a notification
	Update(notification *models.Notification) error

	// ListByUser lists a user's notifications, newest first
	ListByUser(userID uint64) ([]models.Notification, error)

	// ListUnreadByUser lists a user's unread notifications, newest first
	ListUnreadByUser(userID uint64) ([]models.Notification, error)

	// ListAll lists all notifications with pagination, newest first
	ListAll(params utils.PaginationParams) ([]models.Notification, int64, error)
}
