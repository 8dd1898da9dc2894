package handlers

import (
	"Digital-Menu-Builder/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to HTTP status codes. Anything unknown is
// treated as bad input, matching how the services report validation misses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrSnapshotNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrPublishingDisabled),
		errors.Is(err, domain.ErrUploadDisabled),
		errors.Is(err, domain.ErrMailDisabled),
		errors.Is(err, domain.ErrLoginDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}
