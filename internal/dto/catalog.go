package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateServiceDTO struct {
	Name        string          `json:"name" validate:"required,notblank,max=200"`
	Description null.String     `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"decimal_gte0"`
	IsActive    *bool           `json:"is_active"`
}

type UpdateServiceDTO CreateServiceDTO

type CreateWarehouseDTO struct {
	Name        string      `json:"name" validate:"required,notblank,max=200"`
	Location    null.String `json:"location" validate:"omitempty,max=255"`
	Description null.String `json:"description"`
	IsActive    *bool       `json:"is_active"`
}

type UpdateWarehouseDTO CreateWarehouseDTO

type CreateProductDTO struct {
	Name          string          `json:"name" validate:"required,notblank,max=200"`
	SKU           string          `json:"sku" validate:"omitempty,max=100"`
	Category      null.String     `json:"category" validate:"omitempty,max=100"`
	Unit          string          `json:"unit" validate:"omitempty,max=20"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"decimal_gte0"`
	MinStockLevel decimal.Decimal `json:"min_stock_level" validate:"decimal_gte0"`
	Description   null.String     `json:"description"`
}

type UpdateProductDTO CreateProductDTO

type CreateToolDTO struct {
	Name         string      `json:"name" validate:"required,notblank,max=200"`
	SerialNumber string      `json:"serial_number" validate:"required,notblank,max=100"`
	Category     null.String `json:"category" validate:"omitempty,max=100"`
	PurchaseDate null.String `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateToolDTO struct {
	CreateToolDTO
	Status string `json:"status" validate:"omitempty,oneof=available maintenance lost"`
}
