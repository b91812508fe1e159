package services

import (
	"errors"
	"fmt"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/repository"
	"github.com/chorehub/chore-management-api/internal/utils"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles the append-only event log surfaced to users.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// CreateNotificationInput represents parameters for a new notification.
type CreateNotificationInput struct {
	UserID   uint64
	Message  string
	Type     models.NotificationType
	ChoreID  *uint64
	RewardID *uint64
}

// Create validates and inserts a notification with read=false.
func (s *NotificationService) Create(input CreateNotificationInput) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:   input.UserID,
		Message:  input.Message,
		Type:     input.Type,
		ChoreID:  input.ChoreID,
		RewardID: input.RewardID,
	}
	if err := notification.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// MarkRead sets the read flag. Marking an already-read notification is a
// no-op, not an error.
func (s *NotificationService) MarkRead(id uint64) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	if notification.Read {
		return notification, nil
	}

	notification.Read = true
	if err := s.notificationRepo.Update(notification); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return notification, nil
}

// ByUser returns a user's notifications, newest first.
func (s *NotificationService) ByUser(userID uint64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// UnreadByUser returns a user's unread notifications, newest first.
func (s *NotificationService) UnreadByUser(userID uint64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListUnreadByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

// All returns every notification, newest first, for the admin view.
func (s *NotificationService) All(params utils.PaginationParams) ([]models.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.ListAll(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, total, nil
}
