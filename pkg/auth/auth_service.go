package auth

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/pkg/jwt"
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	authService struct {
		username     string
		passwordHash []byte
		jwtService   jwt.JWTService
	}
)

// NewAuthService checks logins against a single admin account. Empty
// credentials disable login entirely.
func NewAuthService(username string, passwordHash string, jwtService jwt.JWTService) AuthService {
	return &authService{
		username:     username,
		passwordHash: []byte(passwordHash),
		jwtService:   jwtService,
	}
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if s.username == "" || len(s.passwordHash) == 0 {
		return domain.LoginResponse{}, domain.ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(s.username, domain.RoleAdmin),
		Role:  domain.RoleAdmin,
	}, nil
}
