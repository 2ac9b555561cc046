package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// VehicleController - /arac-bakim и /api/vehicles/check-maintenance.
type VehicleController struct {
	vehicleService services.VehicleServiceInterface
	logger         *zap.Logger
}

func NewVehicleController(vehicleService services.VehicleServiceInterface, logger *zap.Logger) *VehicleController {
	return &VehicleController{vehicleService: vehicleService, logger: logger}
}

func (c *VehicleController) GetVehicles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.vehicleService.GetVehicles(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка машин", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Araç listesi", http.StatusOK)
}

func (c *VehicleController) GetVehicle(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz araç ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.vehicleService.GetVehicleDetail(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Araç detayı", http.StatusOK)
}

func (c *VehicleController) CreateVehicle(ctx echo.Context) error {
	var payload dto.CreateVehicleDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.vehicleService.CreateVehicle(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании машины", zap.String("plate", payload.Plate), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Araç eklendi", http.StatusCreated)
}

func (c *VehicleController) UpdateVehicle(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz araç ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateVehicleDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.vehicleService.UpdateVehicle(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Araç güncellendi", http.StatusOK)
}

func (c *VehicleController) DeleteVehicle(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz araç ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.vehicleService.DeleteVehicle(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Araç silindi", http.StatusOK)
}

func (c *VehicleController) AddMaintenance(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz araç ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.CreateMaintenanceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.vehicleService.AddMaintenance(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при добавлении обслуживания", zap.Uint64("vehicleID", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bakım kaydı eklendi", http.StatusCreated)
}

// CheckMaintenance - GET /api/vehicles/check-maintenance.
func (c *VehicleController) CheckMaintenance(ctx echo.Context) error {
	res, err := c.vehicleService.CheckMaintenance(ctx.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(ctx, err, c.logger)
	}
	return utils.APISuccessResponse(ctx, http.StatusOK, map[string]interface{}{
		"maintenance_reminders": res.MaintenanceReminders,
		"kasko_reminders":       res.KaskoReminders,
	})
}
