package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"

	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrUploadDisabled     = errors.New("image uploads require S3 configuration")
)

type (
	UploadImageRequest struct {
		Folder string                `form:"folder" validate:"omitempty,oneof=menu-items offers qr-cards"`
		Image  *multipart.FileHeader `form:"image" validate:"required"`
	}

	UploadImageResponse struct {
		URL string `json:"url"`
	}
)
