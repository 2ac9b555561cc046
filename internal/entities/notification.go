package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Notification struct {
	ID            uint64      `json:"id"`
	RecipientID   uint64      `json:"recipient_id"`
	Type          string      `json:"type"`
	Title         string      `json:"title"`
	Message       string      `json:"message"`
	RelatedEntity null.String `json:"related_entity"`
	RelatedID     null.Int64  `json:"related_id"`
	IsRead        bool        `json:"is_read"`
	CreatedAt     time.Time   `json:"created_at"`
}
