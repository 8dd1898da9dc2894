package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "login successful"
	MessageFailedLogin  = "failed to login"

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLoginDisabled      = errors.New("admin login is not configured")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
)
