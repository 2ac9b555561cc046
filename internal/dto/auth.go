package dto

import (
	"saha-servis/internal/entities"

	"github.com/aarondl/null/v8"
)

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	RedirectTo string            `json:"redirect_to"`
	Profile    *entities.Profile `json:"profile"`
}

type CreateProfileDTO struct {
	Email          string      `json:"email" validate:"required,email,max=255"`
	FullName       string      `json:"full_name" validate:"required,notblank,max=200"`
	Phone          null.String `json:"phone" validate:"omitempty,tr_phone"`
	Password       string      `json:"password" validate:"required,min=8"`
	Role           string      `json:"role" validate:"required,role"`
	EmployeeID     null.Int64  `json:"employee_id" validate:"omitempty,gt=0"`
	TelegramChatID null.Int64  `json:"telegram_chat_id"`
}

// UpdateProfileDTO - частичное обновление, nil-поля не трогаются.
type UpdateProfileDTO struct {
	FullName       *string    `json:"full_name,omitempty" validate:"omitempty,notblank,max=200"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,tr_phone"`
	Role           *string    `json:"role,omitempty" validate:"omitempty,role"`
	IsActive       *bool      `json:"is_active,omitempty"`
	Password       *string    `json:"password,omitempty" validate:"omitempty,min=8"`
	EmployeeID     null.Int64 `json:"employee_id"`
	TelegramChatID null.Int64 `json:"telegram_chat_id"`
}
