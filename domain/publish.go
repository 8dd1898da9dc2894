package domain

import (
	"encoding/json"
	"errors"
	"time"

	"Digital-Menu-Builder/entities"
)

var (
	MessageSuccessPublishMenu   = "menu published successfully"
	MessageSuccessGetPublished  = "published menu retrieved successfully"
	MessageSuccessListPublished = "published menus retrieved successfully"

	MessageFailedPublishMenu  = "failed to publish menu"
	MessageFailedGetPublished = "failed to retrieve published menu"

	ErrPublishingDisabled = errors.New("publishing requires a database connection")
	ErrSnapshotNotFound   = errors.New("no published menu found")
)

type (
	PublishMenuRequest struct {
		Label string `json:"label" validate:"omitempty,max=120"`
	}

	// MenuSnapshotPayload is the document stored for each published menu.
	MenuSnapshotPayload struct {
		Diner       DinerMenuResponse    `json:"diner"`
		Categories  []entities.Category  `json:"categories"`
		MenuItems   []entities.MenuItem  `json:"menuItems"`
		Offers      []entities.Offer     `json:"offers"`
		MenuStyle   entities.MenuStyle   `json:"menuStyle"`
		QRCardStyle entities.QRCardStyle `json:"qrCardStyle"`
	}

	SnapshotResponse struct {
		ID        string          `json:"id"`
		Label     string          `json:"label"`
		Weekday   int             `json:"weekday"`
		Payload   json.RawMessage `json:"payload,omitempty"`
		CreatedAt time.Time       `json:"createdAt"`
	}
)
