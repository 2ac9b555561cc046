package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WorkOrderController struct {
	workOrderService services.WorkOrderServiceInterface
	logger           *zap.Logger
}

func NewWorkOrderController(workOrderService services.WorkOrderServiceInterface, logger *zap.Logger) *WorkOrderController {
	return &WorkOrderController{workOrderService: workOrderService, logger: logger}
}

func (c *WorkOrderController) GetWorkOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.workOrderService.GetWorkOrders(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка iş emirleri", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri listesi", http.StatusOK)
}

func (c *WorkOrderController) GetWorkOrder(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workOrderService.GetWorkOrderDetail(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri detayı", http.StatusOK)
}

func (c *WorkOrderController) CreateWorkOrder(ctx echo.Context) error {
	var payload dto.CreateWorkOrderDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workOrderService.CreateWorkOrder(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании iş emri", zap.Uint64("customerID", payload.CustomerID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri oluşturuldu", http.StatusCreated)
}

func (c *WorkOrderController) UpdateWorkOrder(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateWorkOrderDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workOrderService.UpdateWorkOrder(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении iş emri", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri güncellendi", http.StatusOK)
}

func (c *WorkOrderController) ChangeStatus(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.WorkOrderStatusDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workOrderService.ChangeStatus(ctx.Request().Context(), id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İş emri durumu güncellendi", http.StatusOK)
}

func (c *WorkOrderController) DeleteWorkOrder(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.workOrderService.DeleteWorkOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "İş emri silindi", http.StatusOK)
}

func (c *WorkOrderController) AddMaterial(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.AddMaterialDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.workOrderService.AddMaterial(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Warn("Материал не добавлен", zap.Uint64("workOrderID", id), zap.Uint64("productID", payload.ProductID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Malzeme eklendi", http.StatusCreated)
}

func (c *WorkOrderController) RemoveMaterial(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz iş emri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	materialID, err := parseID(ctx, "materialId", "Geçersiz malzeme ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.workOrderService.RemoveMaterial(ctx.Request().Context(), id, materialID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Malzeme kaldırıldı", http.StatusOK)
}
