package dto

import (
	"saha-servis/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateCustomerDTO struct {
	Name          string       `json:"name" validate:"required,notblank,max=255"`
	ContactPerson null.String  `json:"contact_person" validate:"omitempty,max=200"`
	Phone         null.String  `json:"phone" validate:"omitempty,tr_phone"`
	Email         null.String  `json:"email" validate:"omitempty,email"`
	Address       null.String  `json:"address"`
	City          null.String  `json:"city" validate:"omitempty,max=100"`
	District      null.String  `json:"district" validate:"omitempty,max=100"`
	TaxNumber     null.String  `json:"tax_number" validate:"omitempty,numeric,min=10,max=11"`
	Latitude      null.Float64 `json:"latitude"`
	Longitude     null.Float64 `json:"longitude"`
	Notes         null.String  `json:"notes"`
}

// Форма редактирования отправляет карточку целиком.
type UpdateCustomerDTO CreateCustomerDTO

type CustomerDetailDTO struct {
	Customer         *entities.Customer        `json:"customer"`
	Devices          []entities.CustomerDevice `json:"devices"`
	RecentWorkOrders []entities.WorkOrder      `json:"recent_work_orders"`
}

type CreateDeviceDTO struct {
	DeviceType       string      `json:"device_type" form:"device_type" validate:"required,notblank,max=100"`
	Brand            null.String `json:"brand" form:"brand" validate:"omitempty,max=100"`
	Model            null.String `json:"model" form:"model" validate:"omitempty,max=100"`
	SerialNumber     null.String `json:"serial_number" form:"serial_number" validate:"omitempty,max=100"`
	InstallationDate null.String `json:"installation_date" form:"installation_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyEndDate  null.String `json:"warranty_end_date" form:"warranty_end_date" validate:"omitempty,datetime=2006-01-02"`
	Notes            null.String `json:"notes" form:"notes"`
}

type UpdateDeviceDTO CreateDeviceDTO

// GeocodeRequestDTO - нужен customer_id или address.
type GeocodeRequestDTO struct {
	CustomerID uint64 `json:"customer_id"`
	Address    string `json:"address"`
}

type GeocodeResultDTO struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name,omitempty"`
}
