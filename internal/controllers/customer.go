package controllers

import (
	"net/http"

	"saha-servis/internal/dto"
	"saha-servis/internal/services"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerController - /musteri и /api/customers/geocode.
type CustomerController struct {
	customerService services.CustomerServiceInterface
	deviceService   services.DeviceServiceInterface
	logger          *zap.Logger
}

func NewCustomerController(
	customerService services.CustomerServiceInterface,
	deviceService services.DeviceServiceInterface,
	logger *zap.Logger,
) *CustomerController {
	return &CustomerController{
		customerService: customerService,
		deviceService:   deviceService,
		logger:          logger,
	}
}

func (c *CustomerController) GetCustomers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	res, err := c.customerService.GetCustomers(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка клиентов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Müşteri listesi", http.StatusOK)
}

func (c *CustomerController) GetCustomer(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.customerService.GetCustomerDetail(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Müşteri detayı", http.StatusOK)
}

func (c *CustomerController) CreateCustomer(ctx echo.Context) error {
	var payload dto.CreateCustomerDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.customerService.CreateCustomer(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("Ошибка при создании клиента", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Müşteri oluşturuldu", http.StatusCreated)
}

func (c *CustomerController) UpdateCustomer(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateCustomerDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.customerService.UpdateCustomer(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении клиента", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Müşteri güncellendi", http.StatusOK)
}

func (c *CustomerController) DeleteCustomer(ctx echo.Context) error {
	id, err := parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.customerService.DeleteCustomer(ctx.Request().Context(), id); err != nil {
		c.logger.Warn("Клиент не удалён", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Müşteri silindi", http.StatusOK)
}

// --- Cihazlar ---

// parseDevicePath читает /musteri/:id/cihazlar/:deviceId.
func parseDevicePath(ctx echo.Context) (customerID, deviceID uint64, err error) {
	customerID, err = parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return 0, 0, err
	}
	deviceID, err = parseID(ctx, "deviceId", "Geçersiz cihaz ID")
	if err != nil {
		return 0, 0, err
	}
	return customerID, deviceID, nil
}

func (c *CustomerController) GetDevices(ctx echo.Context) error {
	customerID, err := parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	filter.Set("customer_id", customerID)

	res, err := c.deviceService.GetDevices(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Cihaz listesi", http.StatusOK)
}

func (c *CustomerController) FindDevice(ctx echo.Context) error {
	customerID, id, err := parseDevicePath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deviceService.FindDevice(ctx.Request().Context(), customerID, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Cihaz bulundu", http.StatusOK)
}

func (c *CustomerController) CreateDevice(ctx echo.Context) error {
	customerID, err := parseID(ctx, "id", "Geçersiz müşteri ID")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.CreateDeviceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deviceService.CreateDevice(ctx.Request().Context(), customerID, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании устройства", zap.Uint64("customerID", customerID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Cihaz eklendi", http.StatusCreated)
}

func (c *CustomerController) UpdateDevice(ctx echo.Context) error {
	customerID, id, err := parseDevicePath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDeviceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.deviceService.UpdateDevice(ctx.Request().Context(), customerID, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Cihaz güncellendi", http.StatusOK)
}

func (c *CustomerController) UploadDevicePhoto(ctx echo.Context) error {
	customerID, id, err := parseDevicePath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	file, err := ctx.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Fotoğraf dosyası gerekli"), c.logger)
	}
	res, err := c.deviceService.UploadPhoto(ctx.Request().Context(), customerID, id, file)
	if err != nil {
		c.logger.Error("Ошибка при загрузке фото устройства", zap.Uint64("deviceID", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Fotoğraf yüklendi", http.StatusOK)
}

func (c *CustomerController) DeleteDevice(ctx echo.Context) error {
	customerID, id, err := parseDevicePath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.deviceService.DeleteDevice(ctx.Request().Context(), customerID, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Cihaz silindi", http.StatusOK)
}

// Geocode - POST /api/customers/geocode, ответ в формате /api.
func (c *CustomerController) Geocode(ctx echo.Context) error {
	var payload dto.GeocodeRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.APIErrorResponse(ctx, apperrors.NewBadRequestError("Geçersiz istek gövdesi"), c.logger)
	}
	res, err := c.customerService.Geocode(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("Geocode: ошибка", zap.Uint64("customerID", payload.CustomerID), zap.Error(err))
		return utils.APIErrorResponse(ctx, err, c.logger)
	}
	return utils.APISuccessResponse(ctx, http.StatusOK, map[string]interface{}{
		"latitude":     res.Latitude,
		"longitude":    res.Longitude,
		"display_name": res.DisplayName,
	})
}
