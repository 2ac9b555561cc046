package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runEmployeeRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, employeeCtrl *controllers.EmployeeController) {
	calisanlar := pageGroup(e, "/calisanlar", authMW)
	managers := authMW.RequireRoles(constants.ManagerRoles...)

	calisanlar.GET("", employeeCtrl.GetEmployees)
	calisanlar.POST("", employeeCtrl.CreateEmployee, managers)
	calisanlar.GET("/:id", employeeCtrl.FindEmployee)
	calisanlar.PUT("/:id", employeeCtrl.UpdateEmployee, managers)
	calisanlar.DELETE("/:id", employeeCtrl.DeleteEmployee, managers)
}
