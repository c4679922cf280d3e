package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"study-forum-app/config/common"
	"study-forum-app/dto/req"
	"study-forum-app/repository"
	"study-forum-app/security"
	"study-forum-app/testutil"
)

func newTestConfig() *common.Config {
	v := viper.New()
	v.Set("APP_NAME", "study-forum-test")
	v.Set("JWT_SECRET", "test-secret")
	return &common.Config{Viper: v}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAuthUsecase(t *testing.T) (AuthUsecase, *gorm.DB, *security.JWT) {
	t.Helper()

	db := testutil.NewTestDB(t)
	jwt := security.NewJWT(newTestConfig())
	uc := NewAuthUsecase(repository.NewUserRepository(), validator.New(), db, newTestLogger(), jwt)
	return uc, db, jwt
}

func TestRegisterUserLowercasesUsername(t *testing.T) {
	uc, db, jwt := newAuthUsecase(t)
	ctx := context.Background()

	session, err := uc.RegisterUser(ctx, &req.RegisterRequest{
		Username:        "Alice",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.NotEmpty(t, session.Token)

	userID, err := jwt.GetUserIdFromToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, userID)

	user, err := repository.NewUserRepository().FindByUsername(ctx, db, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", user.Password, "password must be stored hashed")
}

func TestRegisterUserValidation(t *testing.T) {
	uc, _, _ := newAuthUsecase(t)
	ctx := context.Background()

	tcases := []struct {
		name    string
		request req.RegisterRequest
	}{
		{
			name:    "password too short",
			request: req.RegisterRequest{Username: "bob", Password: "short", ConfirmPassword: "short"},
		},
		{
			name:    "passwords do not match",
			request: req.RegisterRequest{Username: "bob", Password: "supersecret", ConfirmPassword: "different1"},
		},
		{
			name:    "username missing",
			request: req.RegisterRequest{Password: "supersecret", ConfirmPassword: "supersecret"},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(ctx, &tc.request)
			assert.Error(t, err)
		})
	}
}

func TestLoginUser(t *testing.T) {
	uc, _, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, &req.RegisterRequest{
		Username:        "alice",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	require.NoError(t, err)

	t.Run("username is matched case-insensitively", func(t *testing.T) {
		session, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "ALICE", Password: "supersecret"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "alice", Password: "wrongpass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "nobody", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
