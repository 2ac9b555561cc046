package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
)

type StockServiceInterface interface {
	GetStock(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.StockItem], error)
	UpdateStock(ctx context.Context, payload dto.StockUpdateDTO) (*dto.StockUpdateResultDTO, error)
	ExportStock(ctx context.Context, filter types.Filter) (*excelize.File, error)
}

type StockService struct {
	repo          repositories.StockRepositoryInterface
	warehouseRepo repositories.WarehouseRepositoryInterface
	notifier      NotificationServiceInterface
	logger        *zap.Logger
}

func NewStockService(
	repo repositories.StockRepositoryInterface,
	warehouseRepo repositories.WarehouseRepositoryInterface,
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) StockServiceInterface {
	return &StockService{repo: repo, warehouseRepo: warehouseRepo, notifier: notifier, logger: logger}
}

func (s *StockService) GetStock(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.StockItem], error) {
	list, total, err := s.repo.GetStock(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

// UpdateStock: если строка (depo, ürün|alet) есть, меняется количество, иначе вставляется ровно одна строка.
// Уведомление уходит только при реальном изменении количества.
func (s *StockService) UpdateStock(ctx context.Context, payload dto.StockUpdateDTO) (*dto.StockUpdateResultDTO, error) {
	if payload.ProductID.Valid == payload.ToolID.Valid {
		return nil, apperrors.ErrStockItemAmbiguous
	}
	if _, err := s.warehouseRepo.FindWarehouse(ctx, payload.WarehouseID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByPair(ctx, nil, payload.WarehouseID, payload.ProductID, payload.ToolID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		_, err := s.repo.InsertStock(ctx, nil, entities.StockItem{
			WarehouseID: payload.WarehouseID,
			ProductID:   payload.ProductID,
			ToolID:      payload.ToolID,
			Quantity:    payload.Quantity,
		})
		if err != nil {
			return nil, err
		}
		return &dto.StockUpdateResultDTO{Created: true, OldQuantity: decimal.Zero, NewQuantity: payload.Quantity}, nil
	}

	result := &dto.StockUpdateResultDTO{OldQuantity: existing.Quantity, NewQuantity: payload.Quantity}
	if existing.Quantity.Equal(payload.Quantity) {
		return result, nil
	}
	if err := s.repo.UpdateQuantity(ctx, nil, existing.ID, payload.Quantity); err != nil {
		return nil, err
	}

	item := *existing
	item.Quantity = payload.Quantity
	if err := s.notifier.SendStockChangeNotification(ctx, &item, existing.Quantity, payload.Quantity); err != nil {
		s.logger.Error("Уведомление об изменении остатка не отправлено", zap.Uint64("stockID", existing.ID), zap.Error(err))
	}
	return result, nil
}

var stockExportHeaders = []interface{}{
	"Depo", "Tür", "Kod", "Ad", "Miktar", "Birim", "Min. stok", "Düşük stok", "Güncelleme",
}

func (s *StockService) ExportStock(ctx context.Context, filter types.Filter) (*excelize.File, error) {
	filter.WithPagination = false
	list, _, err := s.repo.GetStock(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		kind := "Ürün"
		if item.ToolID.Valid {
			kind = "Alet"
		}
		minLevel := ""
		if item.MinStockLevel.Valid {
			minLevel = item.MinStockLevel.Decimal.String()
		}
		low := "Hayır"
		if item.IsLow() {
			low = "Evet"
		}
		qty, _ := item.Quantity.Float64()
		rows = append(rows, []interface{}{
			item.WarehouseName, kind, item.ItemCode.String, item.ItemName, qty,
			item.Unit.String, minLevel, low, item.UpdatedAt.Format("02.01.2006 15:04"),
		})
	}
	return buildSheet("Stok", stockExportHeaders, rows, map[string]float64{"A": 25, "C": 20, "D": 40})
}

