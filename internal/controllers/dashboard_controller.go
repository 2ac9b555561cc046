package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"saha-servis/internal/services"
	"saha-servis/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(ds *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
		logger:           logger,
	}
}

// GetAdminDashboard - /admin/dashboard.
func (ctrl *DashboardController) GetAdminDashboard(c echo.Context) error {
	stats, err := ctrl.dashboardService.GetAdminDashboard(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, stats, "Yönetim paneli", http.StatusOK)
}

// GetUserDashboard - /dashboard.
func (ctrl *DashboardController) GetUserDashboard(c echo.Context) error {
	stats, err := ctrl.dashboardService.GetUserDashboard(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, stats, "Panel", http.StatusOK)
}
