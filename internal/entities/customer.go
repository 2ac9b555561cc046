package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Customer struct {
	ID            uint64       `json:"id"`
	Name          string       `json:"name"`
	ContactPerson null.String  `json:"contact_person"`
	Phone         null.String  `json:"phone"`
	Email         null.String  `json:"email"`
	Address       null.String  `json:"address"`
	City          null.String  `json:"city"`
	District      null.String  `json:"district"`
	TaxNumber     null.String  `json:"tax_number"`
	Latitude      null.Float64 `json:"latitude"`
	Longitude     null.Float64 `json:"longitude"`
	Notes         null.String  `json:"notes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CustomerDevice struct {
	ID               uint64      `json:"id"`
	CustomerID       uint64      `json:"customer_id"`
	DeviceType       string      `json:"device_type"`
	Brand            null.String `json:"brand"`
	Model            null.String `json:"model"`
	SerialNumber     null.String `json:"serial_number"`
	InstallationDate null.Time   `json:"installation_date"`
	WarrantyEndDate  null.Time   `json:"warranty_end_date"`
	PhotoURL         null.String `json:"photo_url"`
	Notes            null.String `json:"notes"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
