package dto

import (
	"saha-servis/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateVehicleDTO struct {
	Plate               string      `json:"plate" validate:"required,tr_plate"`
	Brand               null.String `json:"brand" validate:"omitempty,max=100"`
	Model               null.String `json:"model" validate:"omitempty,max=100"`
	Year                null.Int    `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	CurrentKm           int         `json:"current_km" validate:"gte=0"`
	NextMaintenanceDate null.String `json:"next_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	NextMaintenanceKm   null.Int    `json:"next_maintenance_km" validate:"omitempty,gte=0"`
	KaskoExpiryDate     null.String `json:"kasko_expiry_date" validate:"omitempty,datetime=2006-01-02"`
	InsuranceExpiryDate null.String `json:"insurance_expiry_date" validate:"omitempty,datetime=2006-01-02"`
	InspectionDate      null.String `json:"inspection_date" validate:"omitempty,datetime=2006-01-02"`
	AssignedEmployeeID  null.Int64  `json:"assigned_employee_id" validate:"omitempty,gt=0"`
	Notes               null.String `json:"notes"`
}

type UpdateVehicleDTO CreateVehicleDTO

type CreateMaintenanceDTO struct {
	MaintenanceDate string          `json:"maintenance_date" validate:"required,datetime=2006-01-02"`
	Km              int             `json:"km" validate:"gte=0"`
	MaintenanceType string          `json:"maintenance_type" validate:"required,notblank,max=100"`
	Description     null.String     `json:"description"`
	Cost            decimal.Decimal `json:"cost" validate:"decimal_gte0"`
	ServiceProvider null.String     `json:"service_provider" validate:"omitempty,max=200"`
}

type VehicleDetailDTO struct {
	Vehicle *entities.Vehicle             `json:"vehicle"`
	History []entities.VehicleMaintenance `json:"history"`
}

// MaintenanceCheckResultDTO - ответ /api/vehicles/check-maintenance.
type MaintenanceCheckResultDTO struct {
	MaintenanceReminders int `json:"maintenance_reminders"`
	KaskoReminders       int `json:"kasko_reminders"`
}
