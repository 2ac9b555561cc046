package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runVehicleRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, vehicleCtrl *controllers.VehicleController) {
	arac := pageGroup(e, "/arac-bakim", authMW)
	managers := authMW.RequireRoles(constants.ManagerRoles...)

	arac.GET("", vehicleCtrl.GetVehicles)
	arac.POST("", vehicleCtrl.CreateVehicle, managers)
	arac.GET("/:id", vehicleCtrl.GetVehicle)
	arac.PUT("/:id", vehicleCtrl.UpdateVehicle, managers)
	arac.DELETE("/:id", vehicleCtrl.DeleteVehicle, managers)
	arac.POST("/:id/bakim", vehicleCtrl.AddMaintenance, managers)
}
