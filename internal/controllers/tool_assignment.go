package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ToolAssignmentController - /depo/zimmet.
type ToolAssignmentController struct {
	assignmentService services.ToolAssignmentServiceInterface
	logger            *zap.Logger
}

func NewToolAssignmentController(assignmentService services.ToolAssignmentServiceInterface, logger *zap.Logger) *ToolAssignmentController {
	return &ToolAssignmentController{assignmentService: assignmentService, logger: logger}
}

func (c *ToolAssignmentController) GetAssignments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.assignmentService.GetAssignments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка zimmet", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Zimmet listesi", http.StatusOK)
}

func (c *ToolAssignmentController) AssignTool(ctx echo.Context) error {
	var payload dto.AssignToolDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assignmentService.AssignTool(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("Инструмент не выдан",
			zap.Uint64("toolID", payload.ToolID), zap.Uint64("employeeID", payload.EmployeeID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet zimmetlendi", http.StatusCreated)
}

func (c *ToolAssignmentController) RequestReturn(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz zimmet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assignmentService.RequestReturn(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "İade talebi oluşturuldu", http.StatusOK)
}

func (c *ToolAssignmentController) ReturnTool(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz zimmet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.assignmentService.ReturnTool(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet iade alındı", http.StatusOK)
}
