package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	svc := NewService("admin-secret", "user-secret")

	t.Run("admin password yields ADMIN", func(t *testing.T) {
		role, ok := svc.Authenticate("admin-secret")
		assert.True(t, ok)
		assert.Equal(t, RoleAdmin, role)
	})

	t.Run("user password yields USER", func(t *testing.T) {
		role, ok := svc.Authenticate("user-secret")
		assert.True(t, ok)
		assert.Equal(t, RoleUser, role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, ok := svc.Authenticate("guess")
		assert.False(t, ok)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, ok := svc.Authenticate("")
		assert.False(t, ok)
	})
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("USER")
	assert.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	// Unknown values must not be treated as authenticated.
	_, err = ParseRole("admin")
	assert.Error(t, err)
	_, err = ParseRole("SUPERUSER")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}
