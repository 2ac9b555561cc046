package dto

import "github.com/aarondl/null/v8"

type CreateEmployeeDTO struct {
	FirstName  string      `json:"first_name" validate:"required,notblank,max=100"`
	LastName   string      `json:"last_name" validate:"required,notblank,max=100"`
	Phone      null.String `json:"phone" validate:"omitempty,tr_phone"`
	Email      null.String `json:"email" validate:"omitempty,email"`
	Position   null.String `json:"position" validate:"omitempty,max=120"`
	Department null.String `json:"department" validate:"omitempty,max=120"`
	Skills     []string    `json:"skills" validate:"omitempty,dive,notblank,max=60"`
	HireDate   null.String `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive   *bool       `json:"is_active"`
}

type UpdateEmployeeDTO CreateEmployeeDTO
