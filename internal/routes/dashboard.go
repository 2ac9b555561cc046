package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(
	e *echo.Echo,
	authMW *middleware.AuthMiddleware,
	dashboardCtrl *controllers.DashboardController,
	notificationCtrl *controllers.NotificationController,
) {
	dashboard := pageGroup(e, constants.UserHomePath, authMW)

	dashboard.GET("", dashboardCtrl.GetUserDashboard)
	dashboard.GET("/bildirimler", notificationCtrl.GetMyNotifications)
	dashboard.POST("/bildirimler/okundu", notificationCtrl.MarkAllRead)
	dashboard.POST("/bildirimler/:id/okundu", notificationCtrl.MarkRead)
}
