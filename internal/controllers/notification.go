package controllers

import (
	"net/http"

	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NotificationController - /dashboard/bildirimler, только свои уведомления.
type NotificationController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationController(notificationService services.NotificationServiceInterface, logger *zap.Logger) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.notificationService.GetMyNotifications(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Bildirimler", http.StatusOK)
}

func (c *NotificationController) MarkRead(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz bildirim ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.notificationService.MarkRead(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Bildirim okundu olarak işaretlendi", http.StatusOK)
}

func (c *NotificationController) MarkAllRead(ctx echo.Context) error {
	updated, err := c.notificationService.MarkAllRead(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int64{"updated": updated}, "Tüm bildirimler okundu", http.StatusOK)
}
