package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/share"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShareHandler interface {
		ShareMenu(c *fiber.Ctx) error
	}

	shareHandler struct {
		shareService share.ShareService
		validator    *validator.Validate
	}
)

func NewShareHandler(shareService share.ShareService, validator *validator.Validate) ShareHandler {
	return &shareHandler{
		shareService: shareService,
		validator:    validator,
	}
}

func (h *shareHandler) ShareMenu(c *fiber.Ctx) error {
	req := new(domain.ShareMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareMenu, err)
	}

	if err := h.shareService.ShareMenu(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedShareMenu, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"url": h.shareService.MenuURL()}, fiber.StatusOK, domain.MessageSuccessShareMenu)
}
