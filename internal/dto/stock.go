package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// StockUpdateDTO - заполняется ровно одно из product_id/tool_id.
type StockUpdateDTO struct {
	WarehouseID uint64          `json:"warehouse_id" validate:"required,gt=0"`
	ProductID   null.Int64      `json:"product_id" validate:"omitempty,gt=0"`
	ToolID      null.Int64      `json:"tool_id" validate:"omitempty,gt=0"`
	Quantity    decimal.Decimal `json:"quantity" validate:"decimal_gte0"`
}

type StockUpdateResultDTO struct {
	Created     bool            `json:"created"`
	OldQuantity decimal.Decimal `json:"old_quantity"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

type AssignToolDTO struct {
	ToolID     uint64      `json:"tool_id" validate:"required,gt=0"`
	EmployeeID uint64      `json:"employee_id" validate:"required,gt=0"`
	Notes      null.String `json:"notes"`
}
