package repository

import (
	"github.com/chorehub/chore-management-api/internal/database"
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create inserts a notification row
func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// FindByID finds a notification by ID
func (r *GormNotificationRepository) FindByID(id uint64) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// Update persists changes to a notification
func (r *GormNotificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

// ListByUser lists a user's notifications, newest first
func (r *GormNotificationRepository) ListByUser(userID uint64) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ?", userID).
		Order("notifications.created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListUnreadByUser lists a user's unread notifications, newest first
func (r *GormNotificationRepository) ListUnreadByUser(userID uint64) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ? AND notifications.read = ?", userID, false).
		Order("notifications.created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListAll lists all notifications with pagination, newest first
func (r *GormNotificationRepository) ListAll(params utils.PaginationParams) ([]models.Notification, int64, error) {
	var notifications []models.Notification

	var total int64
	if err := r.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.
		Scopes(database.Paginate(params)).
		Order("notifications.created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}
