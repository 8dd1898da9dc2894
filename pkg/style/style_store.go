package style

import (
	"math"
	"sync"

	"Digital-Menu-Builder/entities"
)

type (
	// StyleStore holds the public menu style and the QR card style. It only
	// merges and resets; enum checking belongs to StyleService.
	StyleStore interface {
		MenuStyle() entities.MenuStyle
		UpdateMenuStyle(patch entities.MenuStylePatch) entities.MenuStyle
		RestoreMenuStyleDefaults() entities.MenuStyle

		QRCardStyle() entities.QRCardStyle
		UpdateQRCardStyle(patch entities.QRCardStylePatch) entities.QRCardStyle
		RestoreQRCardStyleDefaults() entities.QRCardStyle

		SelectCardSize(name string) (entities.QRCardStyle, bool)
		SelectAspectRatio(name string) (entities.QRCardStyle, bool)
		SetWidth(width int) (entities.QRCardStyle, bool)
	}

	styleStore struct {
		mu     sync.RWMutex
		menu   entities.MenuStyle
		qrCard entities.QRCardStyle
	}
)

func NewStyleStore() StyleStore {
	return &styleStore{
		menu:   entities.DefaultMenuStyle(),
		qrCard: entities.DefaultQRCardStyle(),
	}
}

func (s *styleStore) MenuStyle() entities.MenuStyle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menu
}

func (s *styleStore) UpdateMenuStyle(patch entities.MenuStylePatch) entities.MenuStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = entities.MergeMenuStyle(s.menu, patch)
	return s.menu
}

func (s *styleStore) RestoreMenuStyleDefaults() entities.MenuStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = entities.DefaultMenuStyle()
	return s.menu
}

func (s *styleStore) QRCardStyle() entities.QRCardStyle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.qrCard
}

func (s *styleStore) UpdateQRCardStyle(patch entities.QRCardStylePatch) entities.QRCardStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCard = entities.MergeQRCardStyle(s.qrCard, patch)
	return s.qrCard
}

func (s *styleStore) RestoreQRCardStyleDefaults() entities.QRCardStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrCard = entities.DefaultQRCardStyle()
	return s.qrCard
}

// SelectCardSize copies the preset's dimensions into the card.
func (s *styleStore) SelectCardSize(name string) (entities.QRCardStyle, bool) {
	preset, ok := LookupCardSize(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		return s.qrCard, false
	}
	s.qrCard.CardSize = preset.Name
	s.qrCard.CustomWidth = preset.Width
	s.qrCard.CustomHeight = preset.Height
	return s.qrCard, true
}

// SelectAspectRatio switches the ratio; a fixed ratio recomputes the height
// from the current width, custom leaves both dimensions alone.
func (s *styleStore) SelectAspectRatio(name string) (entities.QRCardStyle, bool) {
	preset, ok := LookupAspectRatio(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		return s.qrCard, false
	}
	s.qrCard.AspectRatio = preset.Name
	if preset.Ratio > 0 {
		s.qrCard.CustomHeight = heightFor(s.qrCard.CustomWidth, preset.Ratio)
	}
	return s.qrCard, true
}

// SetWidth changes the width and, under a fixed ratio, keeps the height in
// proportion.
func (s *styleStore) SetWidth(width int) (entities.QRCardStyle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width <= 0 {
		return s.qrCard, false
	}

	s.qrCard.CustomWidth = width
	if s.qrCard.AspectRatio != entities.AspectRatioCustom {
		if preset, ok := LookupAspectRatio(s.qrCard.AspectRatio); ok && preset.Ratio > 0 {
			s.qrCard.CustomHeight = heightFor(width, preset.Ratio)
		}
	}
	return s.qrCard, true
}

func heightFor(width int, ratio float64) int {
	return int(math.Round(float64(width) / ratio))
}
