package style

import (
	"context"
	"testing"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMenuStyleUpdateAndRestore(t *testing.T) {
	s := NewStyleStore()
	assert.Equal(t, entities.DefaultMenuStyle(), s.MenuStyle())

	updated := s.UpdateMenuStyle(entities.MenuStylePatch{
		AccentColor:    ptr("#ff0000"),
		MenuCardDesign: ptr(entities.CardDesignTextMenu),
	})
	assert.Equal(t, "#ff0000", updated.AccentColor)
	assert.Equal(t, entities.CardDesignTextMenu, updated.MenuCardDesign)
	assert.Equal(t, "#f8f9fa", updated.BackgroundColor, "untouched fields keep their value")

	restored := s.RestoreMenuStyleDefaults()
	assert.Equal(t, entities.DefaultMenuStyle(), restored)
	assert.Equal(t, restored, s.MenuStyle())
}

func TestQRCardStyleIsIndependentOfMenuStyle(t *testing.T) {
	s := NewStyleStore()

	s.UpdateQRCardStyle(entities.QRCardStylePatch{RestaurantName: ptr("Kisvendéglő")})
	s.RestoreMenuStyleDefaults()

	assert.Equal(t, "Kisvendéglő", s.QRCardStyle().RestaurantName)

	s.RestoreQRCardStyleDefaults()
	assert.Equal(t, entities.DefaultQRCardStyle(), s.QRCardStyle())
}

func TestSelectCardSize(t *testing.T) {
	s := NewStyleStore()

	card, ok := s.SelectCardSize(entities.CardSizePostcard)
	require.True(t, ok)
	assert.Equal(t, entities.CardSizePostcard, card.CardSize)
	assert.Equal(t, 600, card.CustomWidth)
	assert.Equal(t, 400, card.CustomHeight)

	card, ok = s.SelectCardSize("poster")
	assert.False(t, ok)
	assert.Equal(t, entities.CardSizePostcard, card.CardSize)
}

func TestSelectAspectRatioRecomputesHeight(t *testing.T) {
	s := NewStyleStore()

	card, ok := s.SelectAspectRatio(entities.AspectRatio16x9)
	require.True(t, ok)
	assert.Equal(t, 350, card.CustomWidth)
	assert.Equal(t, 197, card.CustomHeight) // 350 / (16/9) = 196.875

	card, _ = s.SelectAspectRatio(entities.AspectRatio1x1)
	assert.Equal(t, 350, card.CustomHeight)

	card, _ = s.SelectAspectRatio(entities.AspectRatioCustom)
	assert.Equal(t, entities.AspectRatioCustom, card.AspectRatio)
	assert.Equal(t, 350, card.CustomHeight, "custom keeps the current height")

	_, ok = s.SelectAspectRatio("5:4")
	assert.False(t, ok)
}

func TestSetWidth(t *testing.T) {
	s := NewStyleStore()

	card, ok := s.SetWidth(600)
	require.True(t, ok)
	assert.Equal(t, 600, card.CustomWidth)
	assert.Equal(t, 400, card.CustomHeight, "3:2 keeps proportion")

	s.SelectAspectRatio(entities.AspectRatioCustom)
	card, _ = s.SetWidth(500)
	assert.Equal(t, 500, card.CustomWidth)
	assert.Equal(t, 400, card.CustomHeight, "custom ratio leaves height alone")

	_, ok = s.SetWidth(0)
	assert.False(t, ok)
}

func TestStyleServiceRejectsUnknownValues(t *testing.T) {
	svc := NewStyleService(NewStyleStore())
	ctx := context.Background()

	_, err := svc.UpdateMenuStyle(ctx, domain.UpdateMenuStyleRequest{FontFamily: ptr("Comic Sans")})
	assert.ErrorIs(t, err, domain.ErrInvalidStyle)

	_, err = svc.UpdateQRCardStyle(ctx, domain.UpdateQRCardStyleRequest{BackgroundImage: ptr("beach")})
	assert.ErrorIs(t, err, domain.ErrInvalidStyle)

	_, err = svc.SelectCardSize(ctx, domain.SelectCardSizeRequest{CardSize: "poster"})
	assert.ErrorIs(t, err, domain.ErrUnknownPreset)

	menu, err := svc.UpdateMenuStyle(ctx, domain.UpdateMenuStyleRequest{FontFamily: ptr("Open Sans")})
	require.NoError(t, err)
	assert.Equal(t, "Open Sans", menu.FontFamily)
}

func TestAllPresetsReturnsCopies(t *testing.T) {
	p := AllPresets()
	require.Len(t, p.CardSizes, 4)
	require.Len(t, p.AspectRatios, 5)
	p.CardSizes[0].Width = 1

	preset, ok := LookupCardSize(entities.CardSizeBusiness)
	require.True(t, ok)
	assert.Equal(t, 350, preset.Width)
}
