package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type WorkOrder struct {
	ID            uint64      `json:"id"`
	CustomerID    uint64      `json:"customer_id"`
	DeviceID      null.Int64  `json:"device_id"`
	ServiceID     null.Int64  `json:"service_id"`
	VehicleID     null.Int64  `json:"vehicle_id"`
	AssignedTo    null.Int64  `json:"assigned_to"`
	CreatedBy     null.Int64  `json:"created_by"`
	Title         string      `json:"title"`
	Description   null.String `json:"description"`
	Status        string      `json:"status"`
	Priority      string      `json:"priority"`
	ScheduledDate null.Time   `json:"scheduled_date"`
	CompletedAt   null.Time   `json:"completed_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Поля из JOIN для списков
	CustomerName   string      `json:"customer_name,omitempty"`
	AssigneeName   null.String `json:"assignee_name"`
	ServiceName    null.String `json:"service_name"`
	VehiclePlate   null.String `json:"vehicle_plate"`
	DeviceTypeName null.String `json:"device_type"`
}

type WorkOrderMaterial struct {
	ID            uint64          `json:"id"`
	WorkOrderID   uint64          `json:"work_order_id"`
	ProductID     uint64          `json:"product_id"`
	WarehouseID   uint64          `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CreatedAt     time.Time       `json:"created_at"`
	ProductName   string          `json:"product_name,omitempty"`
	ProductUnit   string          `json:"product_unit,omitempty"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
}

// Total = quantity * unit_price.
func (m WorkOrderMaterial) Total() decimal.Decimal {
	return m.Quantity.Mul(m.UnitPrice)
}
