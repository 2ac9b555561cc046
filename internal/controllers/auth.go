package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/middleware"
	"saha-servis/pkg/service"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	cookie      middleware.CookieOptions
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	cookie middleware.CookieOptions,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		cookie:      cookie,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

// LoginPage - страница входа, уже вошедших уводит RedirectIfAuthenticated.
func (ctrl *AuthController) LoginPage(c echo.Context) error {
	return utils.SuccessResponse(c, nil, "Giriş yapın", http.StatusOK)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := bindAndValidate(c, &payload); err != nil {
		ctrl.logger.Warn("Login: некорректные данные", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	profile, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	token, err := ctrl.jwtSvc.GenerateSessionToken(profile.ID)
	if err != nil {
		ctrl.logger.Error("Login: не удалось создать токен", zap.Uint64("profileID", profile.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	middleware.SetSessionCookie(c, ctrl.cookie, token, ctrl.jwtSvc.GetSessionTTL())

	response := dto.LoginResponseDTO{
		RedirectTo: constants.HomePathForRole(profile.Role),
		Profile:    profile,
	}
	return utils.SuccessResponse(c, response, "Giriş başarılı", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	middleware.ClearSessionCookie(c, ctrl.cookie)
	return c.Redirect(http.StatusSeeOther, constants.LoginPath)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	reqCtx := c.Request().Context()
	profileID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	profile, err := ctrl.authService.GetProfile(reqCtx, profileID)
	if err != nil {
		ctrl.logger.Error("Me: профиль не найден", zap.Uint64("profileID", profileID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, profile, "Profil bilgileri", http.StatusOK)
}
