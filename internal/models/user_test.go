package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsComplete(t *testing.T) {
	complete := User{ID: "1", Name: "Test User", Email: "test@example.com", Role: RoleCommon}
	assert.True(t, complete.IsComplete())

	tests := []struct {
		name string
		user User
	}{
		{name: "missing name", user: User{Email: "test@example.com", Role: RoleCommon}},
		{name: "missing email", user: User{Name: "Test User", Role: RoleCommon}},
		{name: "missing role", user: User{Name: "Test User", Email: "test@example.com"}},
		{name: "zero value", user: User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.user.IsComplete())
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleCommon}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}

func TestUser_WireFormat(t *testing.T) {
	payload := `{"id":"1","nome":"Test User","email":"test@example.com","role":"ADMIN","idade":30}`

	var user User
	require.NoError(t, json.Unmarshal([]byte(payload), &user))

	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Equal(t, 30, user.Age)
}
