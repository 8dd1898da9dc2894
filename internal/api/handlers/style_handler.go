package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/style"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StyleHandler interface {
		GetStyles(c *fiber.Ctx) error
		GetPresets(c *fiber.Ctx) error
		UpdateMenuStyle(c *fiber.Ctx) error
		RestoreMenuStyle(c *fiber.Ctx) error
		UpdateQRCardStyle(c *fiber.Ctx) error
		RestoreQRCardStyle(c *fiber.Ctx) error
		SelectCardSize(c *fiber.Ctx) error
		SelectAspectRatio(c *fiber.Ctx) error
		SetWidth(c *fiber.Ctx) error
	}

	styleHandler struct {
		styleService style.StyleService
		validator    *validator.Validate
	}
)

func NewStyleHandler(styleService style.StyleService, validator *validator.Validate) StyleHandler {
	return &styleHandler{
		styleService: styleService,
		validator:    validator,
	}
}

func (h *styleHandler) GetStyles(c *fiber.Ctx) error {
	res := h.styleService.GetStyles(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStyles)
}

func (h *styleHandler) GetPresets(c *fiber.Ctx) error {
	res := h.styleService.GetPresets(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStylePresets)
}

func (h *styleHandler) UpdateMenuStyle(c *fiber.Ctx) error {
	req := new(domain.UpdateMenuStyleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuStyle, err)
	}

	res, err := h.styleService.UpdateMenuStyle(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateMenuStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenuStyle)
}

func (h *styleHandler) RestoreMenuStyle(c *fiber.Ctx) error {
	res := h.styleService.RestoreMenuStyle(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRestoreMenuStyle)
}

func (h *styleHandler) UpdateQRCardStyle(c *fiber.Ctx) error {
	req := new(domain.UpdateQRCardStyleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQRCardStyle, err)
	}

	res, err := h.styleService.UpdateQRCardStyle(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateQRCardStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQRCardStyle)
}

func (h *styleHandler) RestoreQRCardStyle(c *fiber.Ctx) error {
	res := h.styleService.RestoreQRCardStyle(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRestoreQRCardStyle)
}

func (h *styleHandler) SelectCardSize(c *fiber.Ctx) error {
	req := new(domain.SelectCardSizeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQRCardStyle, err)
	}

	res, err := h.styleService.SelectCardSize(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateQRCardStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQRCardStyle)
}

func (h *styleHandler) SelectAspectRatio(c *fiber.Ctx) error {
	req := new(domain.SelectAspectRatioRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQRCardStyle, err)
	}

	res, err := h.styleService.SelectAspectRatio(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateQRCardStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQRCardStyle)
}

func (h *styleHandler) SetWidth(c *fiber.Ctx) error {
	req := new(domain.SetWidthRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQRCardStyle, err)
	}

	res, err := h.styleService.SetWidth(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateQRCardStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateQRCardStyle)
}
