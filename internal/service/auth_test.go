package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tharindu-dev/cartify/internal/models"
)

func TestRegisterHashesPassword(t *testing.T) {
	users := &mockUserStore{}
	users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "alice" &&
			u.Role == "CUSTOMER" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(nil)

	svc := NewAuthService(users, "test-secret", zap.NewNop().Sugar())

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := &mockUserStore{}
	users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	svc := NewAuthService(users, "test-secret", zap.NewNop().Sugar())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-pass",
	})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &mockUserStore{}
	users.On("GetByUsername", mock.Anything, "alice").Return(&models.User{
		ID: 1, Username: "alice", PasswordHash: string(hash), Role: "CUSTOMER",
	}, nil)

	svc := NewAuthService(users, "test-secret", zap.NewNop().Sugar())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "alice", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := &mockUserStore{}
	users.On("GetByUsername", mock.Anything, "alice").Return(&models.User{
		ID: 1, Username: "alice", PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(users, "test-secret", zap.NewNop().Sugar())

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Username: "alice", Password: "wrong-pass",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := &mockUserStore{}
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

	svc := NewAuthService(users, "test-secret", zap.NewNop().Sugar())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Username: "ghost", Password: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
