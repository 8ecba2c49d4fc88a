package impl

import (
	"context"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	out, err := fx.authSvc.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)
	assert.NotZero(t, out.User.ID)

	byName, err := fx.authSvc.Login(ctx, &usecase.LoginInput{
		UsernameOrEmail: "alice",
		Password:        "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", byName.TokenType)
	assert.Equal(t, out.User.ID, byName.UserID)
	assert.Len(t, byName.Token, 43)

	byEmail, err := fx.authSvc.Login(ctx, &usecase.LoginInput{
		UsernameOrEmail: "alice@example.com",
		Password:        "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, byEmail.UserID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	registerUser(t, fx, "bob")

	_, err := fx.authSvc.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Email:    "someone-else@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserConflict.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	registerUser(t, fx, "carol")

	// Wrong password and unknown identifier fail identically.
	_, err := fx.authSvc.Login(ctx, &usecase.LoginInput{
		UsernameOrEmail: "carol",
		Password:        "wrong-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.authSvc.Login(ctx, &usecase.LoginInput{
		UsernameOrEmail: "nobody",
		Password:        "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_NewLoginSupersedesToken(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	userID := registerUser(t, fx, "dora")

	first, err := fx.authSvc.Login(ctx, &usecase.LoginInput{UsernameOrEmail: "dora", Password: "s3cret-pass"})
	require.NoError(t, err)

	second, err := fx.authSvc.Login(ctx, &usecase.LoginInput{UsernameOrEmail: "dora", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, userID, second.UserID)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createServiceFixtures(t)
	ctx := context.Background()

	userID := registerUser(t, fx, "erin")

	_, err := fx.authSvc.Login(ctx, &usecase.LoginInput{UsernameOrEmail: "erin", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, fx.authSvc.Logout(ctx, userID))

	// Logging out twice is harmless.
	require.NoError(t, fx.authSvc.Logout(ctx, userID))
}
