package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type Vehicle struct {
	ID                  uint64      `json:"id"`
	Plate               string      `json:"plate"`
	Brand               null.String `json:"brand"`
	Model               null.String `json:"model"`
	Year                null.Int    `json:"year"`
	CurrentKm           int         `json:"current_km"`
	LastMaintenanceDate null.Time   `json:"last_maintenance_date"`
	NextMaintenanceDate null.Time   `json:"next_maintenance_date"`
	NextMaintenanceKm   null.Int    `json:"next_maintenance_km"`
	KaskoExpiryDate     null.Time   `json:"kasko_expiry_date"`
	InsuranceExpiryDate null.Time   `json:"insurance_expiry_date"`
	InspectionDate      null.Time   `json:"inspection_date"`
	AssignedEmployeeID  null.Int64  `json:"assigned_employee_id"`
	Notes               null.String `json:"notes"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`

	AssignedEmployeeName null.String `json:"assigned_employee_name"`
}

type VehicleMaintenance struct {
	ID              uint64          `json:"id"`
	VehicleID       uint64          `json:"vehicle_id"`
	MaintenanceDate time.Time       `json:"maintenance_date"`
	Km              int             `json:"km"`
	MaintenanceType string          `json:"maintenance_type"`
	Description     null.String     `json:"description"`
	Cost            decimal.Decimal `json:"cost"`
	ServiceProvider null.String     `json:"service_provider"`
	CreatedAt       time.Time       `json:"created_at"`
}
