package dto_test

import (
	"lodging/internal/domains/user/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAdmin(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	user := dto.NewAdmin("admin", "hashed", now)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "hashed", user.Password)
	assert.Nil(t, user.LastLogin)
	assert.Equal(t, "system", user.CreatedBy)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserResponse_FromModel(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	user := dto.NewAdmin("admin", "hashed", now)

	var res dto.UserResponse
	res.FromModel(user)

	assert.Equal(t, "admin", res.Username)
	assert.Equal(t, "admin", res.Role)
	assert.Nil(t, res.LastLogin)

	user.LastLogin = &now
	res.FromModel(user)

	if assert.NotNil(t, res.LastLogin) {
		assert.Contains(t, *res.LastLogin, "2026-10-16")
	}
}
