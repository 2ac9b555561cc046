package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogController - справочники: hizmetler, depolar, ürünler, aletler.
type CatalogController struct {
	catalogService *services.CatalogService
	logger         *zap.Logger
}

func NewCatalogController(catalogService *services.CatalogService, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

// --- Services ---

func (c *CatalogController) GetServices(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.catalogService.GetServices(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка services", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Hizmet listesi", http.StatusOK)
}

func (c *CatalogController) FindService(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz hizmet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.FindService(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Hizmet bulundu", http.StatusOK)
}

func (c *CatalogController) CreateService(ctx echo.Context) error {
	var payload dto.CreateServiceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.CreateService(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании записи services", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Hizmet oluşturuldu", http.StatusCreated)
}

func (c *CatalogController) UpdateService(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz hizmet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateServiceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.UpdateService(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении записи services", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Hizmet güncellendi", http.StatusOK)
}

func (c *CatalogController) DeleteService(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz hizmet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.catalogService.DeleteService(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Hizmet silindi", http.StatusOK)
}

// --- Warehouses ---

func (c *CatalogController) GetWarehouses(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.catalogService.GetWarehouses(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка warehouses", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Depo listesi", http.StatusOK)
}

func (c *CatalogController) FindWarehouse(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz depo ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.FindWarehouse(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Depo bulundu", http.StatusOK)
}

func (c *CatalogController) CreateWarehouse(ctx echo.Context) error {
	var payload dto.CreateWarehouseDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.CreateWarehouse(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании записи warehouses", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Depo oluşturuldu", http.StatusCreated)
}

func (c *CatalogController) UpdateWarehouse(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz depo ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateWarehouseDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.UpdateWarehouse(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении записи warehouses", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Depo güncellendi", http.StatusOK)
}

func (c *CatalogController) DeleteWarehouse(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz depo ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.catalogService.DeleteWarehouse(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Depo silindi", http.StatusOK)
}

// --- Products ---

func (c *CatalogController) GetProducts(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.catalogService.GetProducts(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка products", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Ürün listesi", http.StatusOK)
}

func (c *CatalogController) FindProduct(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz ürün ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.FindProduct(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Ürün bulundu", http.StatusOK)
}

func (c *CatalogController) CreateProduct(ctx echo.Context) error {
	var payload dto.CreateProductDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.CreateProduct(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании записи products", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Ürün oluşturuldu", http.StatusCreated)
}

func (c *CatalogController) UpdateProduct(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz ürün ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateProductDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.UpdateProduct(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении записи products", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Ürün güncellendi", http.StatusOK)
}

func (c *CatalogController) DeleteProduct(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz ürün ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.catalogService.DeleteProduct(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Ürün silindi", http.StatusOK)
}

// --- Tools ---

func (c *CatalogController) GetTools(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.catalogService.GetTools(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка tools", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet listesi", http.StatusOK)
}

func (c *CatalogController) FindTool(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz alet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.FindTool(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet bulundu", http.StatusOK)
}

func (c *CatalogController) CreateTool(ctx echo.Context) error {
	var payload dto.CreateToolDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.CreateTool(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании записи tools", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet oluşturuldu", http.StatusCreated)
}

func (c *CatalogController) UpdateTool(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz alet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateToolDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.catalogService.UpdateTool(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении записи tools", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alet güncellendi", http.StatusOK)
}

func (c *CatalogController) DeleteTool(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz alet ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.catalogService.DeleteTool(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Alet silindi", http.StatusOK)
}
