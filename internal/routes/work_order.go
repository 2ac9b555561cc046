package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runWorkOrderRouter(e *echo.Echo, authMW *middleware.AuthMiddleware, workOrderCtrl *controllers.WorkOrderController) {
	isEmri := pageGroup(e, "/is-emri", authMW)
	managers := authMW.RequireRoles(constants.ManagerRoles...)

	isEmri.GET("", workOrderCtrl.GetWorkOrders)
	isEmri.POST("", workOrderCtrl.CreateWorkOrder, managers)
	isEmri.GET("/:id", workOrderCtrl.GetWorkOrder)
	isEmri.PUT("/:id", workOrderCtrl.UpdateWorkOrder, managers)
	isEmri.PATCH("/:id/durum", workOrderCtrl.ChangeStatus)
	isEmri.DELETE("/:id", workOrderCtrl.DeleteWorkOrder, authMW.RequireRoles(constants.RoleAdmin))

	isEmri.POST("/:id/malzemeler", workOrderCtrl.AddMaterial)
	isEmri.DELETE("/:id/malzemeler/:materialId", workOrderCtrl.RemoveMaterial)
}
