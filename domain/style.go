package domain

import (
	"errors"

	"Digital-Menu-Builder/entities"
)

var (
	MessageSuccessGetStyles          = "styles retrieved successfully"
	MessageSuccessUpdateMenuStyle    = "menu style updated successfully"
	MessageSuccessRestoreMenuStyle   = "menu style restored to defaults"
	MessageSuccessUpdateQRCardStyle  = "qr card style updated successfully"
	MessageSuccessRestoreQRCardStyle = "qr card style restored to defaults"
	MessageSuccessGetStylePresets    = "style presets retrieved successfully"

	MessageFailedUpdateMenuStyle   = "failed to update menu style"
	MessageFailedUpdateQRCardStyle = "failed to update qr card style"

	ErrInvalidStyle  = errors.New("invalid style value")
	ErrUnknownPreset = errors.New("unknown preset")
)

type (
	UpdateMenuStyleRequest struct {
		BackgroundColor      *string `json:"backgroundColor" validate:"omitempty,hexcolor"`
		TextColor            *string `json:"textColor" validate:"omitempty,hexcolor"`
		CardColor            *string `json:"cardColor" validate:"omitempty,hexcolor"`
		FontFamily           *string `json:"fontFamily" validate:"omitempty,min=1"`
		ModalBackgroundColor *string `json:"modalBackgroundColor" validate:"omitempty,hexcolor"`
		ModalTextColor       *string `json:"modalTextColor" validate:"omitempty,hexcolor"`
		ModalCardColor       *string `json:"modalCardColor" validate:"omitempty,hexcolor"`
		ButtonColor          *string `json:"buttonColor" validate:"omitempty,hexcolor"`
		ButtonTextColor      *string `json:"buttonTextColor" validate:"omitempty,hexcolor"`
		AccentColor          *string `json:"accentColor" validate:"omitempty,hexcolor"`
		MenuCardDesign       *string `json:"menuCardDesign" validate:"omitempty,oneof=picture-canvas menu-with-picture text-menu"`
	}

	UpdateQRCardStyleRequest struct {
		BackgroundType  *string `json:"backgroundType" validate:"omitempty,oneof=solid image upload"`
		BackgroundColor *string `json:"backgroundColor" validate:"omitempty,hexcolor"`
		BackgroundImage *string `json:"backgroundImage" validate:"omitempty,min=1"`
		UploadedImage   *string `json:"uploadedImage"`
		RestaurantName  *string `json:"restaurantName"`
		CardColor       *string `json:"cardColor" validate:"omitempty,hexcolor"`
		TextColor       *string `json:"textColor" validate:"omitempty,hexcolor"`
		FontFamily      *string `json:"fontFamily" validate:"omitempty,min=1"`
		CardSize        *string `json:"cardSize" validate:"omitempty,oneof=business postcard flyer custom"`
		AspectRatio     *string `json:"aspectRatio" validate:"omitempty,oneof=3:2 4:3 16:9 1:1 custom"`
		CustomWidth     *int    `json:"customWidth" validate:"omitempty,min=1"`
		CustomHeight    *int    `json:"customHeight" validate:"omitempty,min=1"`
	}

	SelectCardSizeRequest struct {
		CardSize string `json:"cardSize" validate:"required"`
	}

	SelectAspectRatioRequest struct {
		AspectRatio string `json:"aspectRatio" validate:"required"`
	}

	SetWidthRequest struct {
		Width int `json:"width" validate:"required,min=1"`
	}

	StylesResponse struct {
		MenuStyle   entities.MenuStyle   `json:"menuStyle"`
		QRCardStyle entities.QRCardStyle `json:"qrCardStyle"`
	}
)

func (r UpdateMenuStyleRequest) Patch() entities.MenuStylePatch {
	return entities.MenuStylePatch{
		BackgroundColor:      r.BackgroundColor,
		TextColor:            r.TextColor,
		CardColor:            r.CardColor,
		FontFamily:           r.FontFamily,
		ModalBackgroundColor: r.ModalBackgroundColor,
		ModalTextColor:       r.ModalTextColor,
		ModalCardColor:       r.ModalCardColor,
		ButtonColor:          r.ButtonColor,
		ButtonTextColor:      r.ButtonTextColor,
		AccentColor:          r.AccentColor,
		MenuCardDesign:       r.MenuCardDesign,
	}
}

func (r UpdateQRCardStyleRequest) Patch() entities.QRCardStylePatch {
	return entities.QRCardStylePatch{
		BackgroundType:  r.BackgroundType,
		BackgroundColor: r.BackgroundColor,
		BackgroundImage: r.BackgroundImage,
		UploadedImage:   r.UploadedImage,
		RestaurantName:  r.RestaurantName,
		CardColor:       r.CardColor,
		TextColor:       r.TextColor,
		FontFamily:      r.FontFamily,
		CardSize:        r.CardSize,
		AspectRatio:     r.AspectRatio,
		CustomWidth:     r.CustomWidth,
		CustomHeight:    r.CustomHeight,
	}
}
