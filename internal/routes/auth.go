package routes

import (
	"saha-servis/internal/controllers"
	"saha-servis/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(e *echo.Echo, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", authCtrl.LoginPage, authMW.RedirectIfAuthenticated)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
