package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/offer"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OfferHandler interface {
		AddOffer(c *fiber.Ctx) error
		UpdateOffer(c *fiber.Ctx) error
		DeleteOffer(c *fiber.Ctx) error
		AddCategoryToOffer(c *fiber.Ctx) error
		AddMenuItemToOffer(c *fiber.Ctx) error
		NextOfferOrderNumber(c *fiber.Ctx) error
		GetOffers(c *fiber.Ctx) error
		GetOfferStatuses(c *fiber.Ctx) error
	}

	offerHandler struct {
		offerService offer.OfferService
		validator    *validator.Validate
		now          func() time.Time
	}
)

func NewOfferHandler(offerService offer.OfferService, validator *validator.Validate, now func() time.Time) OfferHandler {
	return &offerHandler{
		offerService: offerService,
		validator:    validator,
		now:          now,
	}
}

func (h *offerHandler) AddOffer(c *fiber.Ctx) error {
	req := new(domain.AddOfferRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddOffer, err)
	}

	res, err := h.offerService.AddOffer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddOffer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddOffer)
}

func (h *offerHandler) UpdateOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	req := new(domain.UpdateOfferRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOffer, err)
	}

	res, err := h.offerService.UpdateOffer(c.Context(), offerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateOffer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateOffer)
}

func (h *offerHandler) DeleteOffer(c *fiber.Ctx) error {
	if err := h.offerService.DeleteOffer(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteOffer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOffer)
}

func (h *offerHandler) AddCategoryToOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddOfferCategory, err)
	}

	res, err := h.offerService.AddCategoryToOffer(c.Context(), offerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddOfferCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddOfferCategory)
}

func (h *offerHandler) AddMenuItemToOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	req := new(domain.AddMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddOfferMenuItem, err)
	}

	res, err := h.offerService.AddMenuItemToOffer(c.Context(), offerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddOfferMenuItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddOfferMenuItem)
}

func (h *offerHandler) NextOfferOrderNumber(c *fiber.Ctx) error {
	res, err := h.offerService.NextOfferOrderNumber(c.Context(), c.Params("id"), c.Params("categoryId"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNextOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNextOrder)
}

func (h *offerHandler) GetOffers(c *fiber.Ctx) error {
	res := h.offerService.GetOffers(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOffers)
}

func (h *offerHandler) GetOfferStatuses(c *fiber.Ctx) error {
	res := h.offerService.GetOfferStatuses(c.Context(), h.now())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOfferStatuses)
}
