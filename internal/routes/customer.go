package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runCustomerRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, customerCtrl *controllers.CustomerController) {
	musteri := pageGroup(e, "/musteri", authMW)
	managers := authMW.RequireRoles(constants.ManagerRoles...)

	musteri.GET("", customerCtrl.GetCustomers)
	musteri.POST("", customerCtrl.CreateCustomer)
	musteri.GET("/:id", customerCtrl.GetCustomer)
	musteri.PUT("/:id", customerCtrl.UpdateCustomer)
	musteri.DELETE("/:id", customerCtrl.DeleteCustomer, managers)

	musteri.GET("/:id/cihazlar", customerCtrl.GetDevices)
	musteri.POST("/:id/cihazlar", customerCtrl.CreateDevice)
	musteri.GET("/:id/cihazlar/:deviceId", customerCtrl.FindDevice)
	musteri.PUT("/:id/cihazlar/:deviceId", customerCtrl.UpdateDevice)
	musteri.POST("/:id/cihazlar/:deviceId/foto", customerCtrl.UploadDevicePhoto)
	musteri.DELETE("/:id/cihazlar/:deviceId", customerCtrl.DeleteDevice, managers)
}
