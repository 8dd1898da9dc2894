package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/menu"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetDinerMenu(c *fiber.Ctx) error
		LoadSampleData(c *fiber.Ctx) error
		ClearCatalog(c *fiber.Ctx) error
		ClearEverything(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		now         func() time.Time
	}
)

func NewMenuHandler(menuService menu.MenuService, now func() time.Time) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		now:         now,
	}
}

func (h *menuHandler) GetDinerMenu(c *fiber.Ctx) error {
	res := h.menuService.DinerMenu(c.Context(), h.now())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDinerMenu)
}

func (h *menuHandler) LoadSampleData(c *fiber.Ctx) error {
	h.menuService.LoadSampleData(c.Context())
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLoadSampleData)
}

func (h *menuHandler) ClearCatalog(c *fiber.Ctx) error {
	h.menuService.ClearCatalog(c.Context())
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCatalog)
}

func (h *menuHandler) ClearEverything(c *fiber.Ctx) error {
	h.menuService.ClearEverything(c.Context())
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearEverything)
}
