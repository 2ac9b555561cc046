package dto

import (
	"saha-servis/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateWorkOrderDTO struct {
	CustomerID    uint64      `json:"customer_id" validate:"required,gt=0"`
	DeviceID      null.Int64  `json:"device_id" validate:"omitempty,gt=0"`
	ServiceID     null.Int64  `json:"service_id" validate:"omitempty,gt=0"`
	VehicleID     null.Int64  `json:"vehicle_id" validate:"omitempty,gt=0"`
	AssignedTo    null.Int64  `json:"assigned_to" validate:"omitempty,gt=0"`
	Title         string      `json:"title" validate:"required,notblank,max=255"`
	Description   null.String `json:"description"`
	Priority      string      `json:"priority" validate:"omitempty,oneof=dusuk normal yuksek acil"`
	ScheduledDate null.Time   `json:"scheduled_date"`
}

type UpdateWorkOrderDTO struct {
	CreateWorkOrderDTO
	Status string `json:"status" validate:"omitempty,oneof=beklemede devam_ediyor tamamlandi iptal"`
}

type WorkOrderStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=beklemede devam_ediyor tamamlandi iptal"`
}

type AddMaterialDTO struct {
	ProductID   uint64              `json:"product_id" validate:"required,gt=0"`
	WarehouseID uint64              `json:"warehouse_id" validate:"required,gt=0"`
	Quantity    decimal.Decimal     `json:"quantity" validate:"decimal_gt0"`
	UnitPrice   decimal.NullDecimal `json:"unit_price" validate:"omitempty,decimal_gte0"`
}

type WorkOrderDetailDTO struct {
	WorkOrder     *entities.WorkOrder          `json:"work_order"`
	Customer      *entities.Customer           `json:"customer"`
	Device        *entities.CustomerDevice     `json:"device,omitempty"`
	Service       *entities.Service            `json:"service,omitempty"`
	Vehicle       *entities.Vehicle            `json:"vehicle,omitempty"`
	Materials     []entities.WorkOrderMaterial `json:"materials"`
	MaterialTotal decimal.Decimal              `json:"material_total"`
}
