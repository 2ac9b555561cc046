package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Profile struct {
	ID             uint64      `json:"id"`
	Email          string      `json:"email"`
	FullName       string      `json:"full_name"`
	Phone          null.String `json:"phone"`
	PasswordHash   string      `json:"-"`
	Role           string      `json:"role"`
	EmployeeID     null.Int64  `json:"employee_id"`
	TelegramChatID null.Int64  `json:"telegram_chat_id"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Recipient - получатель уведомления.
type Recipient struct {
	ProfileID      uint64     `json:"profile_id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	TelegramChatID null.Int64 `json:"-"`
}

func (p *Profile) AsRecipient() Recipient {
	return Recipient{
		ProfileID:      p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		TelegramChatID: p.TelegramChatID,
	}
}
