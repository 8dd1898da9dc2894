package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		AddCategory(c *fiber.Ctx) error
		AddMenuItem(c *fiber.Ctx) error
		NextOrderNumber(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error

		GetBasket(c *fiber.Ctx) error
		ToggleBasketItem(c *fiber.Ctx) error
		ClearBasket(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.catalogService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategory)
}

func (h *catalogHandler) AddMenuItem(c *fiber.Ctx) error {
	req := new(domain.AddMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuItem, err)
	}

	res, err := h.catalogService.AddMenuItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddMenuItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMenuItem)
}

func (h *catalogHandler) NextOrderNumber(c *fiber.Ctx) error {
	res := h.catalogService.NextOrderNumber(c.Context(), c.Params("id"))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNextOrder)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res := h.catalogService.GetCategories(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) GetMenuItems(c *fiber.Ctx) error {
	res := h.catalogService.GetMenuItems(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *catalogHandler) GetBasket(c *fiber.Ctx) error {
	res := h.catalogService.GetBasket(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBasket)
}

func (h *catalogHandler) ToggleBasketItem(c *fiber.Ctx) error {
	req := new(domain.ToggleBasketRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleBasket, err)
	}

	res, err := h.catalogService.ToggleBasketItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleBasket, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleBasket)
}

func (h *catalogHandler) ClearBasket(c *fiber.Ctx) error {
	res := h.catalogService.ClearBasket(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearBasket)
}
