package entities

import (
	"github.com/google/uuid"
)

// MenuSnapshot is a published, read-only copy of the whole menu.
type MenuSnapshot struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Label   string    `json:"label"`
	Weekday int       `json:"weekday"`
	Payload string    `gorm:"type:jsonb" json:"payload"`
	Timestamp
}
