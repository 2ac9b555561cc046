package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/geocoder"
	"saha-servis/pkg/types"
)

const recentWorkOrdersLimit = 10

var errCustomerNameRequired = apperrors.NewHttpError(http.StatusBadRequest, "Müşteri adı zorunludur", nil, nil)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Customer], error)
	GetCustomerDetail(ctx context.Context, id uint64) (*dto.CustomerDetailDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*entities.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*entities.Customer, error)
	DeleteCustomer(ctx context.Context, id uint64) error
	Geocode(ctx context.Context, payload dto.GeocodeRequestDTO) (*dto.GeocodeResultDTO, error)
}

type CustomerService struct {
	repo          repositories.CustomerRepositoryInterface
	deviceRepo    repositories.DeviceRepositoryInterface
	workOrderRepo repositories.WorkOrderRepositoryInterface
	geocoder      geocoder.Geocoder
	logger        *zap.Logger
}

func NewCustomerService(
	repo repositories.CustomerRepositoryInterface,
	deviceRepo repositories.DeviceRepositoryInterface,
	workOrderRepo repositories.WorkOrderRepositoryInterface,
	geo geocoder.Geocoder,
	logger *zap.Logger,
) CustomerServiceInterface {
	return &CustomerService{
		repo:          repo,
		deviceRepo:    deviceRepo,
		workOrderRepo: workOrderRepo,
		geocoder:      geo,
		logger:        logger,
	}
}

func (s *CustomerService) GetCustomers(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Customer], error) {
	list, total, err := s.repo.GetCustomers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *CustomerService) GetCustomerDetail(ctx context.Context, id uint64) (*dto.CustomerDetailDTO, error) {
	customer, err := s.repo.FindCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	devices, err := s.deviceRepo.GetDevicesByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.workOrderRepo.GetRecentByCustomer(ctx, id, recentWorkOrdersLimit)
	if err != nil {
		return nil, err
	}
	if devices == nil {
		devices = []entities.CustomerDevice{}
	}
	if orders == nil {
		orders = []entities.WorkOrder{}
	}
	return &dto.CustomerDetailDTO{Customer: customer, Devices: devices, RecentWorkOrders: orders}, nil
}

func customerFromDTO(payload dto.CreateCustomerDTO) (entities.Customer, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return entities.Customer{}, errCustomerNameRequired
	}
	return entities.Customer{
		Name:          name,
		ContactPerson: trimNull(payload.ContactPerson),
		Phone:         phoneNull(payload.Phone),
		Email:         trimNull(payload.Email),
		Address:       trimNull(payload.Address),
		City:          trimNull(payload.City),
		District:      trimNull(payload.District),
		TaxNumber:     trimNull(payload.TaxNumber),
		Latitude:      payload.Latitude,
		Longitude:     payload.Longitude,
		Notes:         trimNull(payload.Notes),
	}, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*entities.Customer, error) {
	customer, err := customerFromDTO(payload)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}
	return s.repo.FindCustomer(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*entities.Customer, error) {
	customer, err := customerFromDTO(dto.CreateCustomerDTO(payload))
	if err != nil {
		return nil, err
	}
	customer.ID = id
	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return s.repo.FindCustomer(ctx, id)
}

// DeleteCustomer не удаляет клиента, у которого есть iş emirleri.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	hasOrders, err := s.repo.HasWorkOrders(ctx, id)
	if err != nil {
		return err
	}
	if hasOrders {
		return apperrors.ErrCustomerHasWorkOrders
	}
	return s.repo.DeleteCustomer(ctx, id)
}

// Geocode: адрес из запроса или из карточки клиента. Координаты сохраняются, если передан customer_id.
func (s *CustomerService) Geocode(ctx context.Context, payload dto.GeocodeRequestDTO) (*dto.GeocodeResultDTO, error) {
	address := strings.TrimSpace(payload.Address)

	var customer *entities.Customer
	if payload.CustomerID > 0 {
		c, err := s.repo.FindCustomer(ctx, payload.CustomerID)
		if err != nil {
			return nil, err
		}
		customer = c
		if address == "" {
			address = fullAddress(c)
		}
	}
	if address == "" {
		return nil, apperrors.NewBadRequestError("Adres gerekli")
	}

	coords, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, geocoder.ErrAddressNotFound) {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
		}
		return nil, err
	}

	if customer != nil {
		if err := s.repo.UpdateCoordinates(ctx, customer.ID, coords.Latitude, coords.Longitude); err != nil {
			return nil, err
		}
		s.logger.Info("Координаты клиента обновлены",
			zap.Uint64("customerID", customer.ID),
			zap.Float64("lat", coords.Latitude), zap.Float64("lon", coords.Longitude))
	}

	return &dto.GeocodeResultDTO{
		Latitude:    coords.Latitude,
		Longitude:   coords.Longitude,
		DisplayName: coords.DisplayName,
	}, nil
}

func fullAddress(c *entities.Customer) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Address.String, c.District.String, c.City.String} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		parts = append(parts, "Türkiye")
	}
	return strings.Join(parts, ", ")
}
