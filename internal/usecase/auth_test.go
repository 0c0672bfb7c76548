package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/e-comm-api/internal/auth"
	"github.com/vasapolrittideah/e-comm-api/internal/security"
)

func newAuthFixture() (AuthUsecase, *fakeUserRepo, auth.TokenCodec) {
	repo := &fakeUserRepo{}
	codec := auth.NewTokenCodec("test-secret", 2*time.Hour)
	return NewAuthUsecase(repo, codec), repo, codec
}

func TestAuthUsecase_Register(t *testing.T) {
	uc, repo, codec := newAuthFixture()

	user, token, err := uc.Register(context.Background(), RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice@example.com", user.Email)

	// The stored credential must be a salted hash, never the plaintext.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "password123", repo.users[0].PasswordHash)

	ok, err := security.VerifyPassword("password123", repo.users[0].PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.User.Email)
	assert.Empty(t, claims.User.PasswordHash)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), RegisterParams{
		Name:     "Imposter",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, _, codec := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, token, err := uc.Login(context.Background(), LoginParams{
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.User.ID)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), LoginParams{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// An unknown email and a wrong password must be indistinguishable, so the
// login endpoint cannot be used to probe which emails are registered.
func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Login(context.Background(), LoginParams{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
