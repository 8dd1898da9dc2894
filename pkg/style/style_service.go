package style

import (
	"context"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
)

type (
	StyleService interface {
		GetStyles(ctx context.Context) domain.StylesResponse
		GetPresets(ctx context.Context) Presets

		UpdateMenuStyle(ctx context.Context, req domain.UpdateMenuStyleRequest) (entities.MenuStyle, error)
		RestoreMenuStyle(ctx context.Context) entities.MenuStyle

		UpdateQRCardStyle(ctx context.Context, req domain.UpdateQRCardStyleRequest) (entities.QRCardStyle, error)
		RestoreQRCardStyle(ctx context.Context) entities.QRCardStyle
		SelectCardSize(ctx context.Context, req domain.SelectCardSizeRequest) (entities.QRCardStyle, error)
		SelectAspectRatio(ctx context.Context, req domain.SelectAspectRatioRequest) (entities.QRCardStyle, error)
		SetWidth(ctx context.Context, req domain.SetWidthRequest) (entities.QRCardStyle, error)
	}

	styleService struct {
		styleStore StyleStore
	}
)

func NewStyleService(styleStore StyleStore) StyleService {
	return &styleService{
		styleStore: styleStore,
	}
}

func (s *styleService) GetStyles(ctx context.Context) domain.StylesResponse {
	return domain.StylesResponse{
		MenuStyle:   s.styleStore.MenuStyle(),
		QRCardStyle: s.styleStore.QRCardStyle(),
	}
}

func (s *styleService) GetPresets(ctx context.Context) Presets {
	return AllPresets()
}

func (s *styleService) UpdateMenuStyle(ctx context.Context, req domain.UpdateMenuStyleRequest) (entities.MenuStyle, error) {
	if req.FontFamily != nil && !IsKnownFont(*req.FontFamily) {
		return entities.MenuStyle{}, domain.ErrInvalidStyle
	}
	return s.styleStore.UpdateMenuStyle(req.Patch()), nil
}

func (s *styleService) RestoreMenuStyle(ctx context.Context) entities.MenuStyle {
	return s.styleStore.RestoreMenuStyleDefaults()
}

func (s *styleService) UpdateQRCardStyle(ctx context.Context, req domain.UpdateQRCardStyleRequest) (entities.QRCardStyle, error) {
	if req.FontFamily != nil && !IsKnownFont(*req.FontFamily) {
		return entities.QRCardStyle{}, domain.ErrInvalidStyle
	}
	if req.BackgroundImage != nil && !IsKnownBackgroundImage(*req.BackgroundImage) {
		return entities.QRCardStyle{}, domain.ErrInvalidStyle
	}
	return s.styleStore.UpdateQRCardStyle(req.Patch()), nil
}

func (s *styleService) RestoreQRCardStyle(ctx context.Context) entities.QRCardStyle {
	return s.styleStore.RestoreQRCardStyleDefaults()
}

func (s *styleService) SelectCardSize(ctx context.Context, req domain.SelectCardSizeRequest) (entities.QRCardStyle, error) {
	card, ok := s.styleStore.SelectCardSize(req.CardSize)
	if !ok {
		return entities.QRCardStyle{}, domain.ErrUnknownPreset
	}
	return card, nil
}

func (s *styleService) SelectAspectRatio(ctx context.Context, req domain.SelectAspectRatioRequest) (entities.QRCardStyle, error) {
	card, ok := s.styleStore.SelectAspectRatio(req.AspectRatio)
	if !ok {
		return entities.QRCardStyle{}, domain.ErrUnknownPreset
	}
	return card, nil
}

func (s *styleService) SetWidth(ctx context.Context, req domain.SetWidthRequest) (entities.QRCardStyle, error) {
	card, ok := s.styleStore.SetWidth(req.Width)
	if !ok {
		return entities.QRCardStyle{}, domain.ErrInvalidStyle
	}
	return card, nil
}
