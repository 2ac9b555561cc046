package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

const defaultProductUnit = "adet"

// CatalogService - справочники: hizmetler, depolar, ürünler, aletler.
type CatalogService struct {
	serviceRepo   repositories.ServiceRepositoryInterface
	warehouseRepo repositories.WarehouseRepositoryInterface
	productRepo   repositories.ProductRepositoryInterface
	toolRepo      repositories.ToolRepositoryInterface
	logger        *zap.Logger
}

func NewCatalogService(
	serviceRepo repositories.ServiceRepositoryInterface,
	warehouseRepo repositories.WarehouseRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	toolRepo repositories.ToolRepositoryInterface,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		serviceRepo:   serviceRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		toolRepo:      toolRepo,
		logger:        logger,
	}
}

// --- Hizmetler ---

func (s *CatalogService) GetServices(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Service], error) {
	list, total, err := s.serviceRepo.GetServices(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *CatalogService) FindService(ctx context.Context, id uint64) (*entities.Service, error) {
	return s.serviceRepo.FindService(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, payload dto.CreateServiceDTO) (*entities.Service, error) {
	id, err := s.serviceRepo.CreateService(ctx, entities.Service{
		Name:        strings.TrimSpace(payload.Name),
		Description: trimNull(payload.Description),
		Price:       payload.Price,
		IsActive:    boolOr(payload.IsActive, true),
	})
	if err != nil {
		return nil, err
	}
	return s.serviceRepo.FindService(ctx, id)
}

func (s *CatalogService) UpdateService(ctx context.Context, id uint64, payload dto.UpdateServiceDTO) (*entities.Service, error) {
	err := s.serviceRepo.UpdateService(ctx, entities.Service{
		ID:          id,
		Name:        strings.TrimSpace(payload.Name),
		Description: trimNull(payload.Description),
		Price:       payload.Price,
		IsActive:    boolOr(payload.IsActive, true),
	})
	if err != nil {
		return nil, err
	}
	return s.serviceRepo.FindService(ctx, id)
}

func (s *CatalogService) DeleteService(ctx context.Context, id uint64) error {
	return s.serviceRepo.DeleteService(ctx, id)
}

// --- Depolar ---

func (s *CatalogService) GetWarehouses(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Warehouse], error) {
	list, total, err := s.warehouseRepo.GetWarehouses(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *CatalogService) FindWarehouse(ctx context.Context, id uint64) (*entities.Warehouse, error) {
	return s.warehouseRepo.FindWarehouse(ctx, id)
}

func (s *CatalogService) CreateWarehouse(ctx context.Context, payload dto.CreateWarehouseDTO) (*entities.Warehouse, error) {
	id, err := s.warehouseRepo.CreateWarehouse(ctx, entities.Warehouse{
		Name:        strings.TrimSpace(payload.Name),
		Location:    trimNull(payload.Location),
		Description: trimNull(payload.Description),
		IsActive:    boolOr(payload.IsActive, true),
	})
	if err != nil {
		return nil, err
	}
	return s.warehouseRepo.FindWarehouse(ctx, id)
}

func (s *CatalogService) UpdateWarehouse(ctx context.Context, id uint64, payload dto.UpdateWarehouseDTO) (*entities.Warehouse, error) {
	err := s.warehouseRepo.UpdateWarehouse(ctx, entities.Warehouse{
		ID:          id,
		Name:        strings.TrimSpace(payload.Name),
		Location:    trimNull(payload.Location),
		Description: trimNull(payload.Description),
		IsActive:    boolOr(payload.IsActive, true),
	})
	if err != nil {
		return nil, err
	}
	return s.warehouseRepo.FindWarehouse(ctx, id)
}

func (s *CatalogService) DeleteWarehouse(ctx context.Context, id uint64) error {
	return s.warehouseRepo.DeleteWarehouse(ctx, id)
}

// --- Ürünler ---

func (s *CatalogService) GetProducts(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Product], error) {
	list, total, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *CatalogService) FindProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	return s.productRepo.FindProduct(ctx, id)
}

func productFromDTO(payload dto.CreateProductDTO) entities.Product {
	unit := strings.TrimSpace(payload.Unit)
	if unit == "" {
		unit = defaultProductUnit
	}
	return entities.Product{
		Name:          strings.TrimSpace(payload.Name),
		SKU:           strings.ToUpper(strings.TrimSpace(payload.SKU)),
		Category:      trimNull(payload.Category),
		Unit:          unit,
		UnitPrice:     payload.UnitPrice,
		MinStockLevel: payload.MinStockLevel,
		Description:   trimNull(payload.Description),
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, payload dto.CreateProductDTO) (*entities.Product, error) {
	product := productFromDTO(payload)
	if product.SKU == "" {
		sku, err := s.uniqueSKU(ctx, product.Name)
		if err != nil {
			return nil, err
		}
		product.SKU = sku
	}
	id, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindProduct(ctx, id)
}

// uniqueSKU: KOMBI_FILTRESI, затем KOMBI_FILTRESI_2, _3...
func (s *CatalogService) uniqueSKU(ctx context.Context, name string) (string, error) {
	base := utils.GenerateCodeFromName(name)
	if base == "" {
		return "", apperrors.NewBadRequestError("Ürün adından stok kodu üretilemedi")
	}
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.productRepo.SKUExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint64, payload dto.UpdateProductDTO) (*entities.Product, error) {
	existing, err := s.productRepo.FindProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product := productFromDTO(dto.CreateProductDTO(payload))
	product.ID = id
	if product.SKU == "" {
		product.SKU = existing.SKU
	}
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.FindProduct(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint64) error {
	return s.productRepo.DeleteProduct(ctx, id)
}

// --- Aletler ---

func (s *CatalogService) GetTools(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Tool], error) {
	list, total, err := s.toolRepo.GetTools(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *CatalogService) FindTool(ctx context.Context, id uint64) (*entities.Tool, error) {
	return s.toolRepo.FindTool(ctx, nil, id)
}

func (s *CatalogService) CreateTool(ctx context.Context, payload dto.CreateToolDTO) (*entities.Tool, error) {
	purchased, err := utils.ParseNullDate(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}
	id, err := s.toolRepo.CreateTool(ctx, entities.Tool{
		Name:         strings.TrimSpace(payload.Name),
		SerialNumber: strings.TrimSpace(payload.SerialNumber),
		Category:     trimNull(payload.Category),
		Status:       constants.ToolStatusAvailable,
		PurchaseDate: purchased,
	})
	if err != nil {
		return nil, err
	}
	return s.toolRepo.FindTool(ctx, nil, id)
}

// UpdateTool не переводит инструмент в assigned и не снимает его оттуда: это делает только zimmet.
func (s *CatalogService) UpdateTool(ctx context.Context, id uint64, payload dto.UpdateToolDTO) (*entities.Tool, error) {
	existing, err := s.toolRepo.FindTool(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	purchased, err := utils.ParseNullDate(payload.PurchaseDate)
	if err != nil {
		return nil, err
	}

	status := existing.Status
	if payload.Status != "" && payload.Status != existing.Status {
		if existing.Status == constants.ToolStatusAssigned {
			return nil, apperrors.ErrInvalidStatusChange
		}
		status = payload.Status
	}

	err = s.toolRepo.UpdateTool(ctx, entities.Tool{
		ID:           id,
		Name:         strings.TrimSpace(payload.Name),
		SerialNumber: strings.TrimSpace(payload.SerialNumber),
		Category:     trimNull(payload.Category),
		Status:       status,
		PurchaseDate: purchased,
	})
	if err != nil {
		return nil, err
	}
	return s.toolRepo.FindTool(ctx, nil, id)
}

func (s *CatalogService) DeleteTool(ctx context.Context, id uint64) error {
	tool, err := s.toolRepo.FindTool(ctx, nil, id)
	if err != nil {
		return err
	}
	if tool.Status == constants.ToolStatusAssigned {
		return apperrors.NewBadRequestError("Zimmetli alet silinemez")
	}
	return s.toolRepo.DeleteTool(ctx, id)
}
