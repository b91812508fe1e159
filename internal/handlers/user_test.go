package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chorehub/chore-management-api/internal/dto"
	"github.com/chorehub/chore-management-api/internal/models"
)

func TestListAndGetUsers(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.createUser(t, "Parent", "parent@example.com", models.RoleParent, 0)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 4)
	auth := env.bearer(t, parent)

	w := env.request(t, http.MethodGet, "/users", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []dto.UserDTO
	decodeBody(t, w, &users)
	require.Len(t, users, 2)
	require.NotContains(t, w.Body.String(), "password")

	w = env.request(t, http.MethodGet, fmt.Sprintf("/users/%d", kid.ID), auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.UserDTO
	decodeBody(t, w, &fetched)
	require.Equal(t, kid.Name, fetched.Name)
	require.Equal(t, 4, fetched.Wallet)

	w = env.request(t, http.MethodGet, "/users/999", auth, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.createUser(t, "Parent", "parent@example.com", models.RoleParent, 0)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 0)
	auth := env.bearer(t, parent)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/users/%d", kid.ID), auth, map[string]interface{}{
		"name": "Kiddo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.UserDTO
	decodeBody(t, w, &updated)
	require.Equal(t, "Kiddo", updated.Name)
	require.Equal(t, kid.Email, updated.Email)

	// Invalid role fails validation.
	w = env.request(t, http.MethodPut, fmt.Sprintf("/users/%d", kid.ID), auth, map[string]interface{}{
		"role": "grandparent",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUserRemovesAssignments(t *testing.T) {
	env := setupTestEnv(t)
	parent := env.createUser(t, "Parent", "parent@example.com", models.RoleParent, 0)
	kid := env.createUser(t, "Kid", "kid@example.com", models.RoleChild, 0)
	chore := env.createChore(t, "Clean kitchen", 5)
	auth := env.bearer(t, parent)

	w := env.request(t, http.MethodPost, "/chores/assign", auth, map[string]interface{}{
		"user_id":  kid.ID,
		"chore_id": chore.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/users/%d", kid.ID), auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/users/%d", kid.ID), auth, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.ChoreAssignment{}).Where("user_id = ?", kid.ID).Count(&count).Error)
	require.Zero(t, count)
}
