package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDepoRouter(
	e *echo.Echo,
	authMW *middleware.AuthMiddleware,
	catalogCtrl *controllers.CatalogController,
	stockCtrl *controllers.StockController,
	assignmentCtrl *controllers.ToolAssignmentController,
) {
	depo := pageGroup(e, "/depo", authMW)
	managers := authMW.RequireRoles(constants.ManagerRoles...)

	depo.GET("/depolar", catalogCtrl.GetWarehouses)
	depo.GET("/depolar/:id", catalogCtrl.FindWarehouse)
	depo.POST("/depolar", catalogCtrl.CreateWarehouse, managers)
	depo.PUT("/depolar/:id", catalogCtrl.UpdateWarehouse, managers)
	depo.DELETE("/depolar/:id", catalogCtrl.DeleteWarehouse, managers)

	depo.GET("/urunler", catalogCtrl.GetProducts)
	depo.GET("/urunler/:id", catalogCtrl.FindProduct)
	depo.POST("/urunler", catalogCtrl.CreateProduct, managers)
	depo.PUT("/urunler/:id", catalogCtrl.UpdateProduct, managers)
	depo.DELETE("/urunler/:id", catalogCtrl.DeleteProduct, managers)

	depo.GET("/aletler", catalogCtrl.GetTools)
	depo.GET("/aletler/:id", catalogCtrl.FindTool)
	depo.POST("/aletler", catalogCtrl.CreateTool, managers)
	depo.PUT("/aletler/:id", catalogCtrl.UpdateTool, managers)
	depo.DELETE("/aletler/:id", catalogCtrl.DeleteTool, managers)

	depo.GET("/stok", stockCtrl.GetStock)
	depo.GET("/stok/export", stockCtrl.ExportStock, managers)
	depo.POST("/stok", stockCtrl.UpdateStock, managers)

	depo.GET("/zimmet", assignmentCtrl.GetAssignments)
	depo.POST("/zimmet", assignmentCtrl.AssignTool, managers)
	depo.POST("/zimmet/:id/iade-talebi", assignmentCtrl.RequestReturn)
	depo.POST("/zimmet/:id/iade", assignmentCtrl.ReturnTool, managers)
}
