package auth

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (AuthService, jwt.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("paprika"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("secret")
	return NewAuthService("admin", string(hash), jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestAuth(t)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "paprika"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	id, role, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", id)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "root", Password: "paprika"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginDisabledWithoutCredentials(t *testing.T) {
	svc := NewAuthService("", "", jwt.NewJWTService("secret"))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrLoginDisabled)
}
