package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store/memory"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	auth := NewAuthService(st.Users, "secret", 24)

	user, token, _, err := auth.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "Team Member", user.Role)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")
	assert.Contains(t, user.Avatar, "ui-avatars.com")

	logged, token2, _, err := auth.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	auth := NewAuthService(st.Users, "secret", 24)

	_, _, _, err := auth.Register(ctx, "Alice", "dup@example.com", "hunter22")
	require.NoError(t, err)

	_, _, _, err = auth.Register(ctx, "Bob", "dup@example.com", "hunter22")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	auth := NewAuthService(st.Users, "secret", 24)

	_, _, _, err := auth.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, _, err = auth.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = auth.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
