package domain

import (
	"errors"
)

var (
	MessageSuccessShareMenu = "menu link sent successfully"
	MessageFailedShareMenu  = "failed to send menu link"

	ErrMailDisabled = errors.New("sharing requires SMTP configuration")
)

type ShareMenuRequest struct {
	Email string `json:"email" validate:"required,email"`
}
