package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StockController struct {
	stockService services.StockServiceInterface
	logger       *zap.Logger
}

func NewStockController(stockService services.StockServiceInterface, logger *zap.Logger) *StockController {
	return &StockController{stockService: stockService, logger: logger}
}

// GetStock понимает warehouse_id, product_id, tool_id, item_type и low_stock=true.
func (c *StockController) GetStock(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.stockService.GetStock(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении остатков", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Stok listesi", http.StatusOK)
}

func (c *StockController) UpdateStock(ctx echo.Context) error {
	var payload dto.StockUpdateDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.stockService.UpdateStock(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении остатка",
			zap.Uint64("warehouseID", payload.WarehouseID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	return utils.SuccessResponse(ctx, res, "Stok güncellendi", code)
}

func (c *StockController) ExportStock(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	f, err := c.stockService.ExportStock(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при выгрузке остатков", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondWithXLSX(ctx, f, "stok")
}
