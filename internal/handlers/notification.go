package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chorehub/chore-management-api/internal/dto"
	apierrors "github.com/chorehub/chore-management-api/internal/errors"
	"github.com/chorehub/chore-management-api/internal/middleware"
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/services"
	"github.com/chorehub/chore-management-api/internal/utils"
)

// NotificationHandler coordinates notification HTTP handlers.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications returns the caller's notifications, newest first.
// Admin accounts get the full paginated log instead.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if role, ok := middleware.GetUserRole(c); ok && role == models.RoleAdmin {
		params := utils.GetPaginationParams(c)
		notifications, total, err := h.notificationService.All(params)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch notifications")
			return
		}

		c.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, params, total))
		return
	}

	notifications, err := h.notificationService.ByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTOs(notifications))
}

// CreateNotification inserts a notification for a user.
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	type CreateNotificationRequest struct {
		UserID   uint64                  `json:"user_id" binding:"required"`
		Message  string                  `json:"message" binding:"required"`
		Type     models.NotificationType `json:"type" binding:"required"`
		ChoreID  *uint64                 `json:"chore_id"`
		RewardID *uint64                 `json:"reward_id"`
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	notification, err := h.notificationService.Create(services.CreateNotificationInput{
		UserID:   req.UserID,
		Message:  req.Message,
		Type:     req.Type,
		ChoreID:  req.ChoreID,
		RewardID: req.RewardID,
	})
	if err != nil {
		respondNotificationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationDTO(*notification))
}

// UnreadNotifications returns the caller's unread notifications,
// newest first.
func (h *NotificationHandler) UnreadNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notifications, err := h.notificationService.UnreadByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTOs(notifications))
}

// MarkRead flags a notification as read. Re-marking is a no-op.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(id)
	if err != nil {
		respondNotificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTO(*notification))
}

func respondNotificationError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
