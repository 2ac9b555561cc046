package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAdminRouter(
	e *echo.Echo,
	authMW *middleware.AuthMiddleware,
	dashboardCtrl *controllers.DashboardController,
	profileCtrl *controllers.ProfileController,
	catalogCtrl *controllers.CatalogController,
	reportCtrl *controllers.ReportController,
) {
	admin := pageGroup(e, constants.AdminSectionPrefix, authMW)
	admin.Use(authMW.RequireRoles(constants.ManagerRoles...))

	admin.GET("/dashboard", dashboardCtrl.GetAdminDashboard)

	admin.GET("/kullanicilar", profileCtrl.GetProfiles)
	admin.GET("/kullanicilar/:id", profileCtrl.FindProfile)
	admin.POST("/kullanicilar", profileCtrl.CreateProfile, authMW.RequireRoles(constants.RoleAdmin))
	admin.PUT("/kullanicilar/:id", profileCtrl.UpdateProfile, authMW.RequireRoles(constants.RoleAdmin))

	admin.GET("/hizmetler", catalogCtrl.GetServices)
	admin.GET("/hizmetler/:id", catalogCtrl.FindService)
	admin.POST("/hizmetler", catalogCtrl.CreateService)
	admin.PUT("/hizmetler/:id", catalogCtrl.UpdateService)
	admin.DELETE("/hizmetler/:id", catalogCtrl.DeleteService)

	admin.GET("/raporlar/is-emirleri", reportCtrl.GetWorkOrderReport)
}
