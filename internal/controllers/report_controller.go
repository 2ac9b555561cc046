package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"saha-servis/internal/services"
	"saha-servis/pkg/utils"
)

// ReportController - /admin/raporlar.
type ReportController struct {
	workOrderService services.WorkOrderServiceInterface
	logger           *zap.Logger
}

func NewReportController(workOrderService services.WorkOrderServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{workOrderService: workOrderService, logger: logger}
}

// GetWorkOrderReport: ?format=xlsx отдает файл со всеми строками фильтра, иначе JSON со страницей.
func (c *ReportController) GetWorkOrderReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос на отчет по iş emirleri", zap.Any("filter", filter.Filter), zap.String("format", format))

	if format == "xlsx" {
		f, err := c.workOrderService.ExportWorkOrders(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return respondWithXLSX(ctx, f, "is_emirleri")
	}

	res, err := c.workOrderService.GetWorkOrders(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri raporu", http.StatusOK)
}
