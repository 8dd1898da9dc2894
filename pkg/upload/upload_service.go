package upload

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/utils/storage"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	MaxDimension  = 800
	JPEGQuality   = 80
	DefaultFolder = "menu-items"
	maxUploadSize = 10 << 20
)

type (
	UploadService interface {
		UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error)
	}

	uploadService struct {
		s3 storage.AwsS3
	}
)

// NewUploadService answers ErrUploadDisabled when s3 is nil.
func NewUploadService(s3 storage.AwsS3) UploadService {
	return &uploadService{
		s3: s3,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error) {
	if s.s3 == nil {
		return domain.UploadImageResponse{}, domain.ErrUploadDisabled
	}
	if req.Image == nil {
		return domain.UploadImageResponse{}, domain.ErrInvalidImageFormat
	}

	file, err := req.Image.Open()
	if err != nil {
		return domain.UploadImageResponse{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return domain.UploadImageResponse{}, err
	}
	if len(data) > maxUploadSize {
		return domain.UploadImageResponse{}, domain.ErrInvalidImageFormat
	}

	return s.upload(ctx, req.Folder, data)
}

func (s *uploadService) upload(ctx context.Context, folder string, data []byte) (domain.UploadImageResponse, error) {
	optimized, err := Optimize(data)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	if folder == "" {
		folder = DefaultFolder
	}
	fileName := uuid.NewString() + ".jpg"

	objectKey, err := s.s3.UploadFile(ctx, fileName, optimized, "image/jpeg", folder)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	log.Infof("uploaded %s (%d -> %d bytes)", objectKey, len(data), len(optimized))
	return domain.UploadImageResponse{
		URL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}

// Optimize accepts JPEG or PNG bytes, shrinks the image so neither side
// exceeds MaxDimension and re-encodes it as JPEG.
func Optimize(data []byte) ([]byte, error) {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
	default:
		return nil, domain.ErrInvalidImageFormat
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
