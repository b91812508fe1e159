package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chorehub/chore-management-api/internal/dto"
	"github.com/chorehub/chore-management-api/internal/models"
)

func TestCreateAndListNotifications(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.createUser(t, "Parent", "parent@example.com", models.RoleParent, 0)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 0)
	parentAuth := env.bearer(t, parent)
	kidAuth := env.bearer(t, kid)

	w := env.request(t, http.MethodPost, "/notifications", parentAuth, map[string]interface{}{
		"user_id": kid.ID,
		"message": "Dinner is ready",
		"type":    "CHORE_ASSIGNMENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.NotificationDTO
	decodeBody(t, w, &created)
	require.False(t, created.Read)

	// The kid sees their own notifications.
	w = env.request(t, http.MethodGet, "/notifications", kidAuth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notifications []dto.NotificationDTO
	decodeBody(t, w, &notifications)
	require.Len(t, notifications, 1)
	require.Equal(t, "Dinner is ready", notifications[0].Message)

	// The parent has none of their own.
	w = env.request(t, http.MethodGet, "/notifications", parentAuth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &notifications)
	require.Empty(t, notifications)
}

func TestCreateNotificationRejectsBadInput(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.createUser(t, "Parent", "parent@example.com", models.RoleParent, 0)
	auth := env.bearer(t, parent)

	// Unknown type.
	w := env.request(t, http.MethodPost, "/notifications", auth, map[string]interface{}{
		"user_id": parent.ID,
		"message": "hello",
		"type":    "SOMETHING_ELSE",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user.
	w = env.request(t, http.MethodPost, "/notifications", auth, map[string]interface{}{
		"user_id": 999,
		"message": "hello",
		"type":    "CHORE_ASSIGNMENT",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkReadEndpointIsIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 0)
	auth := env.bearer(t, kid)

	w := env.request(t, http.MethodPost, "/notifications", auth, map[string]interface{}{
		"user_id": kid.ID,
		"message": "Dinner is ready",
		"type":    "CHORE_ASSIGNMENT",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.NotificationDTO
	decodeBody(t, w, &created)

	w = env.request(t, http.MethodGet, "/notifications/unread", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unread []dto.NotificationDTO
	decodeBody(t, w, &unread)
	require.Len(t, unread, 1)

	w = env.request(t, http.MethodPut, fmt.Sprintf("/notifications/%d/read", created.ID), auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var marked dto.NotificationDTO
	decodeBody(t, w, &marked)
	require.True(t, marked.Read)

	// Marking again is harmless.
	w = env.request(t, http.MethodPut, fmt.Sprintf("/notifications/%d/read", created.ID), auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &marked)
	require.True(t, marked.Read)

	w = env.request(t, http.MethodGet, "/notifications/unread", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &unread)
	require.Empty(t, unread)

	w = env.request(t, http.MethodPut, "/notifications/999/read", auth, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSeesFullNotificationLog(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "Admin", "admin@example.com", models.RoleAdmin, 0)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 0)
	auth := env.bearer(t, admin)

	for i := 0; i < 3; i++ {
		w := env.request(t, http.MethodPost, "/notifications", auth, map[string]interface{}{
			"user_id": kid.ID,
			"message": "hello",
			"type":    "CHORE_ASSIGNMENT",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.request(t, http.MethodGet, "/notifications?page=1&limit=2", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.NotificationListResponse
	decodeBody(t, w, &page)
	require.Len(t, page.Notifications, 2)
	require.EqualValues(t, 3, page.Pagination.Total)
	require.Equal(t, 2, page.Pagination.Limit)
}
