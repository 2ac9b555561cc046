package services

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

// События для заголовка уведомления.
const (
	workOrderEventCreated  = "oluşturuldu"
	workOrderEventAssigned = "atandı"
	workOrderEventStatus   = "durumu değişti"
)

type WorkOrderServiceInterface interface {
	GetWorkOrders(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.WorkOrder], error)
	GetWorkOrderDetail(ctx context.Context, id uint64) (*dto.WorkOrderDetailDTO, error)
	CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (*entities.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, id uint64, status string) (*entities.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id uint64) error

	AddMaterial(ctx context.Context, workOrderID uint64, payload dto.AddMaterialDTO) (*entities.WorkOrderMaterial, error)
	RemoveMaterial(ctx context.Context, workOrderID, materialID uint64) error

	ExportWorkOrders(ctx context.Context, filter types.Filter) (*excelize.File, error)
}

type WorkOrderService struct {
	repo         repositories.WorkOrderRepositoryInterface
	materialRepo repositories.MaterialRepositoryInterface
	stockRepo    repositories.StockRepositoryInterface
	productRepo  repositories.ProductRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	deviceRepo   repositories.DeviceRepositoryInterface
	serviceRepo  repositories.ServiceRepositoryInterface
	vehicleRepo  repositories.VehicleRepositoryInterface
	txManager    repositories.TxManagerInterface
	notifier     NotificationServiceInterface
	logger       *zap.Logger
	now          func() time.Time
}

func NewWorkOrderService(
	repo repositories.WorkOrderRepositoryInterface,
	materialRepo repositories.MaterialRepositoryInterface,
	stockRepo repositories.StockRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	deviceRepo repositories.DeviceRepositoryInterface,
	serviceRepo repositories.ServiceRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	txManager repositories.TxManagerInterface,
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) WorkOrderServiceInterface {
	return &WorkOrderService{
		repo:         repo,
		materialRepo: materialRepo,
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		deviceRepo:   deviceRepo,
		serviceRepo:  serviceRepo,
		vehicleRepo:  vehicleRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *WorkOrderService) GetWorkOrders(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.WorkOrder], error) {
	if !utils.IsManager(ctx) {
		profileID, err := utils.GetUserIDFromCtx(ctx)
		if err != nil {
			return nil, err
		}
		filter.Set("assigned_to", profileID)
	}
	list, total, err := s.repo.GetWorkOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

// findVisible - пользователь с ролью user видит только свои iş emirleri.
func (s *WorkOrderService) findVisible(ctx context.Context, id uint64) (*entities.WorkOrder, error) {
	wo, err := s.repo.FindWorkOrder(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if utils.IsManager(ctx) {
		return wo, nil
	}
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !wo.AssignedTo.Valid || uint64(wo.AssignedTo.Int64) != profileID {
		return nil, apperrors.ErrForbidden
	}
	return wo, nil
}

func (s *WorkOrderService) GetWorkOrderDetail(ctx context.Context, id uint64) (*dto.WorkOrderDetailDTO, error) {
	wo, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.WorkOrderDetailDTO{WorkOrder: wo, MaterialTotal: decimal.Zero}
	if detail.Customer, err = s.customerRepo.FindCustomer(ctx, wo.CustomerID); err != nil {
		return nil, err
	}
	if wo.DeviceID.Valid {
		if detail.Device, err = s.deviceRepo.FindDevice(ctx, uint64(wo.DeviceID.Int64)); err != nil {
			return nil, err
		}
	}
	if wo.ServiceID.Valid {
		if detail.Service, err = s.serviceRepo.FindService(ctx, uint64(wo.ServiceID.Int64)); err != nil {
			return nil, err
		}
	}
	if wo.VehicleID.Valid {
		if detail.Vehicle, err = s.vehicleRepo.FindVehicle(ctx, nil, uint64(wo.VehicleID.Int64)); err != nil {
			return nil, err
		}
	}

	materials, err := s.materialRepo.GetByWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if materials == nil {
		materials = []entities.WorkOrderMaterial{}
	}
	for _, m := range materials {
		detail.MaterialTotal = detail.MaterialTotal.Add(m.Total())
	}
	detail.Materials = materials
	return detail, nil
}

// checkRefs проверяет клиента и то, что устройство принадлежит ему.
func (s *WorkOrderService) checkRefs(ctx context.Context, payload dto.CreateWorkOrderDTO) error {
	if _, err := s.customerRepo.FindCustomer(ctx, payload.CustomerID); err != nil {
		return err
	}
	if payload.DeviceID.Valid {
		device, err := s.deviceRepo.FindDevice(ctx, uint64(payload.DeviceID.Int64))
		if err != nil {
			return err
		}
		if device.CustomerID != payload.CustomerID {
			return apperrors.NewBadRequestError("Cihaz seçilen müşteriye ait değil")
		}
	}
	return nil
}

func workOrderFromDTO(payload dto.CreateWorkOrderDTO) entities.WorkOrder {
	priority := payload.Priority
	if priority == "" {
		priority = constants.PriorityNormal
	}
	return entities.WorkOrder{
		CustomerID:    payload.CustomerID,
		DeviceID:      payload.DeviceID,
		ServiceID:     payload.ServiceID,
		VehicleID:     payload.VehicleID,
		AssignedTo:    payload.AssignedTo,
		Title:         strings.TrimSpace(payload.Title),
		Description:   trimNull(payload.Description),
		Priority:      priority,
		ScheduledDate: payload.ScheduledDate,
	}
}

func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, payload dto.CreateWorkOrderDTO) (*entities.WorkOrder, error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, payload); err != nil {
		return nil, err
	}

	wo := workOrderFromDTO(payload)
	wo.Status = constants.WorkOrderStatusPending
	wo.CreatedBy = null.Int64From(int64(profileID))

	id, err := s.repo.CreateWorkOrder(ctx, wo)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.FindWorkOrder(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, created, workOrderEventCreated)
	return created, nil
}

// completedAt: переход в tamamlandi ставит отметку, уход из него её снимает.
func (s *WorkOrderService) completedAt(prevStatus, newStatus string, prev null.Time) null.Time {
	if newStatus != constants.WorkOrderStatusCompleted {
		return null.Time{}
	}
	if prevStatus == constants.WorkOrderStatusCompleted && prev.Valid {
		return prev
	}
	return null.TimeFrom(s.now())
}

func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, id uint64, payload dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error) {
	existing, err := s.repo.FindWorkOrder(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, payload.CreateWorkOrderDTO); err != nil {
		return nil, err
	}

	wo := workOrderFromDTO(payload.CreateWorkOrderDTO)
	wo.ID = id
	wo.Status = existing.Status
	if payload.Status != "" {
		wo.Status = payload.Status
	}
	wo.CompletedAt = s.completedAt(existing.Status, wo.Status, existing.CompletedAt)

	if err := s.repo.UpdateWorkOrder(ctx, wo); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindWorkOrder(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	switch {
	case wo.AssignedTo.Valid && wo.AssignedTo != existing.AssignedTo:
		s.notify(ctx, updated, workOrderEventAssigned)
	case wo.Status != existing.Status:
		s.notify(ctx, updated, workOrderEventStatus)
	}
	return updated, nil
}

func (s *WorkOrderService) ChangeStatus(ctx context.Context, id uint64, status string) (*entities.WorkOrder, error) {
	if !constants.IsValidWorkOrderStatus(status) {
		return nil, apperrors.ErrInvalidStatusChange
	}
	existing, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == status {
		return existing, nil
	}

	completed := s.completedAt(existing.Status, status, existing.CompletedAt)
	if err := s.repo.UpdateStatus(ctx, id, status, completed); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindWorkOrder(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, updated, workOrderEventStatus)
	return updated, nil
}

func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, id uint64) error {
	return s.repo.DeleteWorkOrder(ctx, id)
}

// notify: запись уже зафиксирована, поэтому ошибка уведомления только логируется.
func (s *WorkOrderService) notify(ctx context.Context, wo *entities.WorkOrder, event string) {
	if err := s.notifier.SendWorkOrderNotification(ctx, wo, event); err != nil {
		s.logger.Error("Уведомление по iş emri не отправлено",
			zap.Uint64("workOrderID", wo.ID), zap.String("event", event), zap.Error(err))
	}
}

// AddMaterial списывает остаток того же склада в одной транзакции с записью материала.
func (s *WorkOrderService) AddMaterial(ctx context.Context, workOrderID uint64, payload dto.AddMaterialDTO) (*entities.WorkOrderMaterial, error) {
	wo, err := s.findVisible(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if constants.IsFinalWorkOrderStatus(wo.Status) {
		return nil, apperrors.NewBadRequestError("Kapatılmış iş emrine malzeme eklenemez")
	}
	product, err := s.productRepo.FindProduct(ctx, payload.ProductID)
	if err != nil {
		return nil, err
	}

	unitPrice := product.UnitPrice
	if payload.UnitPrice.Valid {
		unitPrice = payload.UnitPrice.Decimal
	}

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.stockRepo.DecreaseProductStock(ctx, tx, payload.WarehouseID, payload.ProductID, payload.Quantity); err != nil {
			return err
		}
		id, err = s.materialRepo.InsertMaterial(ctx, tx, entities.WorkOrderMaterial{
			WorkOrderID: workOrderID,
			ProductID:   payload.ProductID,
			WarehouseID: payload.WarehouseID,
			Quantity:    payload.Quantity,
			UnitPrice:   unitPrice,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.materialRepo.FindMaterial(ctx, nil, id)
}

// RemoveMaterial возвращает количество на тот склад, с которого оно было списано.
func (s *WorkOrderService) RemoveMaterial(ctx context.Context, workOrderID, materialID uint64) error {
	if _, err := s.findVisible(ctx, workOrderID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		material, err := s.materialRepo.FindMaterial(ctx, tx, materialID)
		if err != nil {
			return err
		}
		if material.WorkOrderID != workOrderID {
			return apperrors.ErrNotFound
		}
		if err := s.materialRepo.DeleteMaterial(ctx, tx, materialID); err != nil {
			return err
		}
		return s.stockRepo.IncreaseProductStock(ctx, tx, material.WarehouseID, material.ProductID, material.Quantity)
	})
}

var workOrderExportHeaders = []interface{}{
	"No", "Başlık", "Müşteri", "Cihaz", "Hizmet", "Araç", "Atanan", "Durum", "Öncelik",
	"Planlanan", "Tamamlanma", "Oluşturulma",
}

func (s *WorkOrderService) ExportWorkOrders(ctx context.Context, filter types.Filter) (*excelize.File, error) {
	filter.WithPagination = false
	list, _, err := s.repo.GetWorkOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	const layout = "02.01.2006 15:04"
	formatNull := func(t null.Time) string {
		if !t.Valid {
			return ""
		}
		return t.Time.Format(layout)
	}

	rows := make([][]interface{}, 0, len(list))
	for _, wo := range list {
		rows = append(rows, []interface{}{
			wo.ID, wo.Title, wo.CustomerName, wo.DeviceTypeName.String, wo.ServiceName.String,
			wo.VehiclePlate.String, wo.AssigneeName.String, wo.Status, wo.Priority,
			formatNull(wo.ScheduledDate), formatNull(wo.CompletedAt), wo.CreatedAt.Format(layout),
		})
	}
	return buildSheet("İş emirleri", workOrderExportHeaders, rows,
		map[string]float64{"B": 40, "C": 30, "G": 25, "J": 18, "K": 18, "L": 18})
}

