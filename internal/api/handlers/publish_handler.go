package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/publish"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PublishHandler interface {
		Publish(c *fiber.Ctx) error
		GetLatest(c *fiber.Ctx) error
		GetPublished(c *fiber.Ctx) error
	}

	publishHandler struct {
		publishService publish.PublishService
		validator      *validator.Validate
		now            func() time.Time
	}
)

func NewPublishHandler(publishService publish.PublishService, validator *validator.Validate, now func() time.Time) PublishHandler {
	return &publishHandler{
		publishService: publishService,
		validator:      validator,
		now:            now,
	}
}

func (h *publishHandler) Publish(c *fiber.Ctx) error {
	req := new(domain.PublishMenuRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPublishMenu, err)
	}

	res, err := h.publishService.Publish(c.Context(), *req, h.now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPublishMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPublishMenu)
}

func (h *publishHandler) GetLatest(c *fiber.Ctx) error {
	res, err := h.publishService.Latest(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPublished, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPublished)
}

func (h *publishHandler) GetPublished(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.publishService.List(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPublished, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessListPublished)
}
