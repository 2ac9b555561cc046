package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

// runAPIRouter - JSON API без редиректов: 401/403 вместо перехода на /auth/login.
func runAPIRouter(
	e *echo.Echo,
	authMW *middleware.AuthMiddleware,
	customerCtrl *controllers.CustomerController,
	vehicleCtrl *controllers.VehicleController,
	maintenanceAPIKey string,
) {
	api := e.Group(constants.APIPrefix)

	api.POST("/customers/geocode", customerCtrl.Geocode,
		authMW.AuthAPI, authMW.RequireRolesAPI(constants.ManagerRoles...))
	api.GET("/vehicles/check-maintenance", vehicleCtrl.CheckMaintenance,
		authMW.APIKeyOrRoles(maintenanceAPIKey, constants.ManagerRoles...))
}
