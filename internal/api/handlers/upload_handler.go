package handlers

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/api/presenters"
	"Digital-Menu-Builder/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
		validator     *validator.Validate
	}
)

func NewUploadHandler(uploadService upload.UploadService, validator *validator.Validate) UploadHandler {
	return &uploadHandler{
		uploadService: uploadService,
		validator:     validator,
	}
}

func (h *uploadHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)
	req.Folder = c.FormValue("folder")

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = image

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.uploadService.UploadImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}
