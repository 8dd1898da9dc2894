package style

import (
	"Digital-Menu-Builder/entities"
)

type (
	CardSizePreset struct {
		Name   string `json:"name"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}

	AspectRatioPreset struct {
		Name  string  `json:"name"`
		Ratio float64 `json:"ratio"` // 0 for custom
	}

	BackgroundImage struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	CardDesign struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	Presets struct {
		CardSizes        []CardSizePreset    `json:"cardSizes"`
		AspectRatios     []AspectRatioPreset `json:"aspectRatios"`
		BackgroundImages []BackgroundImage   `json:"backgroundImages"`
		Fonts            []string            `json:"fonts"`
		CardDesigns      []CardDesign        `json:"cardDesigns"`
	}
)

var cardSizes = []CardSizePreset{
	{Name: entities.CardSizeBusiness, Width: 350, Height: 200},
	{Name: entities.CardSizePostcard, Width: 600, Height: 400},
	{Name: entities.CardSizeFlyer, Width: 425, Height: 275},
	{Name: entities.CardSizeCustom, Width: 400, Height: 300},
}

var aspectRatios = []AspectRatioPreset{
	{Name: entities.AspectRatio3x2, Ratio: 3.0 / 2.0},
	{Name: entities.AspectRatio4x3, Ratio: 4.0 / 3.0},
	{Name: entities.AspectRatio16x9, Ratio: 16.0 / 9.0},
	{Name: entities.AspectRatio1x1, Ratio: 1},
	{Name: entities.AspectRatioCustom, Ratio: 0},
}

var backgroundImages = []BackgroundImage{
	{Name: "restaurant-interior", URL: "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg"},
	{Name: "food-pattern", URL: "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"},
	{Name: "wooden-table", URL: "https://images.pexels.com/photos/326278/pexels-photo-326278.jpeg"},
	{Name: "kitchen", URL: "https://images.pexels.com/photos/2253643/pexels-photo-2253643.jpeg"},
	{Name: "dining-room", URL: "https://images.pexels.com/photos/67468/pexels-photo-67468.jpeg"},
}

var fonts = []string{"Inter", "Roboto", "Open Sans", "Lato", "Montserrat", "Poppins"}

var cardDesigns = []CardDesign{
	{Name: entities.CardDesignPictureCanvas, Description: "Full background image with overlay text"},
	{Name: entities.CardDesignMenuWithPicture, Description: "Picture on the left, order number and name in the center, price on the right"},
	{Name: entities.CardDesignTextMenu, Description: "Text-only design with detailed information"},
}

// AllPresets returns copies of every lookup table the style panels offer.
func AllPresets() Presets {
	return Presets{
		CardSizes:        append([]CardSizePreset{}, cardSizes...),
		AspectRatios:     append([]AspectRatioPreset{}, aspectRatios...),
		BackgroundImages: append([]BackgroundImage{}, backgroundImages...),
		Fonts:            append([]string{}, fonts...),
		CardDesigns:      append([]CardDesign{}, cardDesigns...),
	}
}

func LookupCardSize(name string) (CardSizePreset, bool) {
	for _, p := range cardSizes {
		if p.Name == name {
			return p, true
		}
	}
	return CardSizePreset{}, false
}

func LookupAspectRatio(name string) (AspectRatioPreset, bool) {
	for _, p := range aspectRatios {
		if p.Name == name {
			return p, true
		}
	}
	return AspectRatioPreset{}, false
}

func IsKnownFont(name string) bool {
	for _, f := range fonts {
		if f == name {
			return true
		}
	}
	return false
}

func IsKnownBackgroundImage(name string) bool {
	for _, b := range backgroundImages {
		if b.Name == name {
			return true
		}
	}
	return false
}
