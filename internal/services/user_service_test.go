package services

import (
	"context"
	"testing"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) UserService {
	t.Helper()
	svc, err := NewUserService(repository.NewUserRepository(storage.NewMemoryStore()), "Admin", "admin123")
	require.NoError(t, err)
	return svc
}

func TestLoginCustomer(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	user, err := svc.LoginCustomer(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleCustomer), user.Role)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ada@example.com", current.Email)
}

func TestLoginCustomerRejectsBadEmail(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	for _, email := range []string{"", "ada", "ada@", "ada@example", "a da@example.com"} {
		_, err := svc.LoginCustomer(ctx, "Ada", email)
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestLoginAdmin(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.LoginAdmin(ctx, "Admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleAdmin), user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginAdmin(ctx, "Admin", "letmein")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.LoginAdmin(ctx, "root", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	_, err := svc.LoginCustomer(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "guest after logout")
}
