package dto

import (
	"time"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/utils"
)

// NotificationDTO represents a notification in API responses
type NotificationDTO struct {
	ID        uint64                  `json:"id"`
	UserID    uint64                  `json:"user_id"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type"`
	Read      bool                    `json:"read"`
	ChoreID   *uint64                 `json:"chore_id,omitempty"`
	RewardID  *uint64                 `json:"reward_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationDTO        `json:"notifications"`
	Pagination    utils.PaginationResponse `json:"pagination"`
}

// ToNotificationDTO converts a Notification model to NotificationDTO
func ToNotificationDTO(notification models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Type:      notification.Type,
		Read:      notification.Read,
		ChoreID:   notification.ChoreID,
		RewardID:  notification.RewardID,
		CreatedAt: notification.CreatedAt,
	}
}

// ToNotificationDTOs converts a slice of Notification models
func ToNotificationDTOs(notifications []models.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, len(notifications))
	for i, notification := range notifications {
		dtos[i] = ToNotificationDTO(notification)
	}
	return dtos
}

// ToNotificationListResponse converts a page of notifications plus its
// pagination metadata
func ToNotificationListResponse(notifications []models.Notification, params utils.PaginationParams, total int64) NotificationListResponse {
	return NotificationListResponse{
		Notifications: ToNotificationDTOs(notifications),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
