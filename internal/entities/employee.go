package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Employee struct {
	ID         uint64      `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Phone      null.String `json:"phone"`
	Email      null.String `json:"email"`
	Position   null.String `json:"position"`
	Department null.String `json:"department"`
	Skills     []string    `json:"skills"`
	HireDate   null.Time   `json:"hire_date"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
