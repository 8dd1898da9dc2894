package entities

const (
	CardDesignPictureCanvas   = "picture-canvas"
	CardDesignMenuWithPicture = "menu-with-picture"
	CardDesignTextMenu        = "text-menu"

	BackgroundSolid  = "solid"
	BackgroundImage  = "image"
	BackgroundUpload = "upload"

	CardSizeBusiness = "business"
	CardSizePostcard = "postcard"
	CardSizeFlyer    = "flyer"
	CardSizeCustom   = "custom"

	AspectRatio3x2    = "3:2"
	AspectRatio4x3    = "4:3"
	AspectRatio16x9   = "16:9"
	AspectRatio1x1    = "1:1"
	AspectRatioCustom = "custom"
)

type MenuStyle struct {
	BackgroundColor      string `json:"backgroundColor"`
	TextColor            string `json:"textColor"`
	CardColor            string `json:"cardColor"`
	FontFamily           string `json:"fontFamily"`
	ModalBackgroundColor string `json:"modalBackgroundColor"`
	ModalTextColor       string `json:"modalTextColor"`
	ModalCardColor       string `json:"modalCardColor"`
	ButtonColor          string `json:"buttonColor"`
	ButtonTextColor      string `json:"buttonTextColor"`
	AccentColor          string `json:"accentColor"`
	MenuCardDesign       string `json:"menuCardDesign"`
}

type MenuStylePatch struct {
	BackgroundColor      *string
	TextColor            *string
	CardColor            *string
	FontFamily           *string
	ModalBackgroundColor *string
	ModalTextColor       *string
	ModalCardColor       *string
	ButtonColor          *string
	ButtonTextColor      *string
	AccentColor          *string
	MenuCardDesign       *string
}

func DefaultMenuStyle() MenuStyle {
	return MenuStyle{
		BackgroundColor:      "#f8f9fa",
		TextColor:            "#212529",
		CardColor:            "#ffffff",
		FontFamily:           "Inter",
		ModalBackgroundColor: "#ffffff",
		ModalTextColor:       "#000000",
		ModalCardColor:       "#f8f9fa",
		ButtonColor:          "#000000",
		ButtonTextColor:      "#ffffff",
		AccentColor:          "#3b82f6",
		MenuCardDesign:       CardDesignPictureCanvas,
	}
}

func MergeMenuStyle(s MenuStyle, p MenuStylePatch) MenuStyle {
	setString(&s.BackgroundColor, p.BackgroundColor)
	setString(&s.TextColor, p.TextColor)
	setString(&s.CardColor, p.CardColor)
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.ModalBackgroundColor, p.ModalBackgroundColor)
	setString(&s.ModalTextColor, p.ModalTextColor)
	setString(&s.ModalCardColor, p.ModalCardColor)
	setString(&s.ButtonColor, p.ButtonColor)
	setString(&s.ButtonTextColor, p.ButtonTextColor)
	setString(&s.AccentColor, p.AccentColor)
	setString(&s.MenuCardDesign, p.MenuCardDesign)
	return s
}

type QRCardStyle struct {
	BackgroundType  string `json:"backgroundType"`
	BackgroundColor string `json:"backgroundColor"`
	BackgroundImage string `json:"backgroundImage"`
	UploadedImage   string `json:"uploadedImage,omitempty"`
	RestaurantName  string `json:"restaurantName"`
	CardColor       string `json:"cardColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	CardSize        string `json:"cardSize"`
	AspectRatio     string `json:"aspectRatio"`
	CustomWidth     int    `json:"customWidth"`
	CustomHeight    int    `json:"customHeight"`
}

type QRCardStylePatch struct {
	BackgroundType  *string
	BackgroundColor *string
	BackgroundImage *string
	UploadedImage   *string
	RestaurantName  *string
	CardColor       *string
	TextColor       *string
	FontFamily      *string
	CardSize        *string
	AspectRatio     *string
	CustomWidth     *int
	CustomHeight    *int
}

func DefaultQRCardStyle() QRCardStyle {
	return QRCardStyle{
		BackgroundType:  BackgroundSolid,
		BackgroundColor: "#ffffff",
		BackgroundImage: "restaurant-interior",
		RestaurantName:  "Étterem Neve",
		CardColor:       "#ffffff",
		TextColor:       "#000000",
		FontFamily:      "Inter",
		CardSize:        CardSizeBusiness,
		AspectRatio:     AspectRatio3x2,
		CustomWidth:     350,
		CustomHeight:    200,
	}
}

func MergeQRCardStyle(s QRCardStyle, p QRCardStylePatch) QRCardStyle {
	setString(&s.BackgroundType, p.BackgroundType)
	setString(&s.BackgroundColor, p.BackgroundColor)
	setString(&s.BackgroundImage, p.BackgroundImage)
	setString(&s.UploadedImage, p.UploadedImage)
	setString(&s.RestaurantName, p.RestaurantName)
	setString(&s.CardColor, p.CardColor)
	setString(&s.TextColor, p.TextColor)
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.CardSize, p.CardSize)
	setString(&s.AspectRatio, p.AspectRatio)
	if p.CustomWidth != nil {
		s.CustomWidth = *p.CustomWidth
	}
	if p.CustomHeight != nil {
		s.CustomHeight = *p.CustomHeight
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
