package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type Warehouse struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location"`
	Description null.String `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Product struct {
	ID            uint64          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      null.String     `json:"category"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Description   null.String     `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Tool struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	Category     null.String `json:"category"`
	Status       string      `json:"status"`
	PurchaseDate null.Time   `json:"purchase_date"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// StockItem - строка warehouse_stock. Заполнен ровно один из ProductID/ToolID.
type StockItem struct {
	ID          uint64          `json:"id"`
	WarehouseID uint64          `json:"warehouse_id"`
	ProductID   null.Int64      `json:"product_id"`
	ToolID      null.Int64      `json:"tool_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`

	WarehouseName string              `json:"warehouse_name,omitempty"`
	ItemName      string              `json:"item_name,omitempty"`
	ItemCode      null.String         `json:"item_code"`
	Unit          null.String         `json:"unit"`
	MinStockLevel decimal.NullDecimal `json:"min_stock_level"`
}

// IsLow - количество ниже минимального уровня товара.
func (s StockItem) IsLow() bool {
	return s.MinStockLevel.Valid && s.Quantity.LessThan(s.MinStockLevel.Decimal)
}

type ToolAssignment struct {
	ID                uint64      `json:"id"`
	ToolID            uint64      `json:"tool_id"`
	EmployeeID        uint64      `json:"employee_id"`
	AssignedBy        null.Int64  `json:"assigned_by"`
	Status            string      `json:"status"`
	AssignedAt        time.Time   `json:"assigned_at"`
	ReturnRequestedAt null.Time   `json:"return_requested_at"`
	ReturnedAt        null.Time   `json:"returned_at"`
	Notes             null.String `json:"notes"`

	ToolName     string `json:"tool_name,omitempty"`
	ToolSerial   string `json:"tool_serial_number,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}
