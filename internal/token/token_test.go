package token

import (
	"testing"
	"time"

	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user := &models.User{ID: 42, Email: "parent@example.com", Role: models.RoleParent}
	signed, err := m.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, models.RoleParent, claims.Role)
	require.Equal(t, "parent@example.com", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	signed, err := m.Generate(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleChild})
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Generate(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleChild})
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
