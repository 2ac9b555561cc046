package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProfileController - /admin/kullanicilar.
type ProfileController struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

func NewProfileController(profileService *services.ProfileService, logger *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

func (c *ProfileController) GetProfiles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.profileService.GetProfiles(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка профилей", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Kullanıcı listesi", http.StatusOK)
}

func (c *ProfileController) FindProfile(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz kullanıcı ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.profileService.FindProfile(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Kullanıcı bulundu", http.StatusOK)
}

func (c *ProfileController) CreateProfile(ctx echo.Context) error {
	var payload dto.CreateProfileDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.profileService.CreateProfile(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании профиля", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Kullanıcı oluşturuldu", http.StatusCreated)
}

func (c *ProfileController) UpdateProfile(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz kullanıcı ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateProfileDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.profileService.UpdateProfile(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении профиля", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Kullanıcı güncellendi", http.StatusOK)
}
