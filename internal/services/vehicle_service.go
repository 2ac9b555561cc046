package services

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/config"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/metrics"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

type VehicleServiceInterface interface {
	GetVehicles(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Vehicle], error)
	GetVehicleDetail(ctx context.Context, id uint64) (*dto.VehicleDetailDTO, error)
	CreateVehicle(ctx context.Context, payload dto.CreateVehicleDTO) (*entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uint64, payload dto.UpdateVehicleDTO) (*entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint64) error
	AddMaintenance(ctx context.Context, vehicleID uint64, payload dto.CreateMaintenanceDTO) (*entities.VehicleMaintenance, error)
	CheckMaintenance(ctx context.Context) (*dto.MaintenanceCheckResultDTO, error)
}

type VehicleService struct {
	repo      repositories.VehicleRepositoryInterface
	txManager repositories.TxManagerInterface
	notifier  NotificationServiceInterface
	metrics   *metrics.Metrics
	cfg       config.MaintenanceConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewVehicleService(
	repo repositories.VehicleRepositoryInterface,
	txManager repositories.TxManagerInterface,
	notifier NotificationServiceInterface,
	m *metrics.Metrics,
	cfg config.MaintenanceConfig,
	logger *zap.Logger,
) VehicleServiceInterface {
	if cfg.ReminderDays <= 0 {
		cfg.ReminderDays = constants.DefaultMaintenanceReminderDays
	}
	if cfg.ReminderKm <= 0 {
		cfg.ReminderKm = constants.DefaultMaintenanceReminderKm
	}
	if cfg.KaskoReminderDay <= 0 {
		cfg.KaskoReminderDay = constants.DefaultKaskoReminderDays
	}
	return &VehicleService{
		repo:      repo,
		txManager: txManager,
		notifier:  notifier,
		metrics:   m,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *VehicleService) GetVehicles(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Vehicle], error) {
	list, total, err := s.repo.GetVehicles(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *VehicleService) GetVehicleDetail(ctx context.Context, id uint64) (*dto.VehicleDetailDTO, error) {
	vehicle, err := s.repo.FindVehicle(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []entities.VehicleMaintenance{}
	}
	return &dto.VehicleDetailDTO{Vehicle: vehicle, History: history}, nil
}

// normalizePlate: "34 abc 123" -> "34 ABC 123".
func normalizePlate(plate string) string {
	return strings.Join(strings.Fields(strings.ToUpper(plate)), " ")
}

func vehicleFromDTO(payload dto.CreateVehicleDTO) (entities.Vehicle, error) {
	v := entities.Vehicle{
		Plate:              normalizePlate(payload.Plate),
		Brand:              trimNull(payload.Brand),
		Model:              trimNull(payload.Model),
		Year:               payload.Year,
		CurrentKm:          payload.CurrentKm,
		NextMaintenanceKm:  payload.NextMaintenanceKm,
		AssignedEmployeeID: payload.AssignedEmployeeID,
		Notes:              trimNull(payload.Notes),
	}
	var err error
	if v.NextMaintenanceDate, err = utils.ParseNullDate(payload.NextMaintenanceDate); err != nil {
		return v, err
	}
	if v.KaskoExpiryDate, err = utils.ParseNullDate(payload.KaskoExpiryDate); err != nil {
		return v, err
	}
	if v.InsuranceExpiryDate, err = utils.ParseNullDate(payload.InsuranceExpiryDate); err != nil {
		return v, err
	}
	if v.InspectionDate, err = utils.ParseNullDate(payload.InspectionDate); err != nil {
		return v, err
	}
	return v, nil
}

func (s *VehicleService) CreateVehicle(ctx context.Context, payload dto.CreateVehicleDTO) (*entities.Vehicle, error) {
	vehicle, err := vehicleFromDTO(payload)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.CreateVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	return s.repo.FindVehicle(ctx, nil, id)
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id uint64, payload dto.UpdateVehicleDTO) (*entities.Vehicle, error) {
	vehicle, err := vehicleFromDTO(dto.CreateVehicleDTO(payload))
	if err != nil {
		return nil, err
	}
	vehicle.ID = id
	if err := s.repo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return s.repo.FindVehicle(ctx, nil, id)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint64) error {
	return s.repo.DeleteVehicle(ctx, id)
}

// AddMaintenance пишет историю и двигает last_maintenance_date/current_km в одной транзакции.
func (s *VehicleService) AddMaintenance(ctx context.Context, vehicleID uint64, payload dto.CreateMaintenanceDTO) (*entities.VehicleMaintenance, error) {
	date, err := time.Parse(utils.DateLayout, strings.TrimSpace(payload.MaintenanceDate))
	if err != nil {
		return nil, err
	}
	record := entities.VehicleMaintenance{
		VehicleID:       vehicleID,
		MaintenanceDate: date,
		Km:              payload.Km,
		MaintenanceType: strings.TrimSpace(payload.MaintenanceType),
		Description:     trimNull(payload.Description),
		Cost:            payload.Cost,
		ServiceProvider: trimNull(payload.ServiceProvider),
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.repo.FindVehicle(ctx, tx, vehicleID); err != nil {
			return err
		}
		id, err := s.repo.InsertHistory(ctx, tx, record)
		if err != nil {
			return err
		}
		record.ID = id
		return s.repo.ApplyMaintenance(ctx, tx, vehicleID, date, payload.Km)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CheckMaintenance рассылает напоминания о плановом обслуживании и окончании kasko.
// Первая ошибка рассылки прерывает проверку.
func (s *VehicleService) CheckMaintenance(ctx context.Context) (*dto.MaintenanceCheckResultDTO, error) {
	today := s.now()
	dueDate := today.AddDate(0, 0, s.cfg.ReminderDays)
	kaskoDate := today.AddDate(0, 0, s.cfg.KaskoReminderDay)
	kaskoSince := today.AddDate(0, 0, -constants.KaskoExpiredGraceDays)

	due, err := s.repo.FindDueMaintenance(ctx, dueDate, s.cfg.ReminderKm)
	if err != nil {
		return nil, err
	}
	kasko, err := s.repo.FindKaskoExpiring(ctx, kaskoSince, kaskoDate)
	if err != nil {
		return nil, err
	}

	result := &dto.MaintenanceCheckResultDTO{}
	for i := range due {
		if err := s.notifier.SendMaintenanceReminder(ctx, &due[i]); err != nil {
			return nil, err
		}
		result.MaintenanceReminders++
	}
	for i := range kasko {
		if err := s.notifier.SendKaskoReminder(ctx, &kasko[i]); err != nil {
			return nil, err
		}
		result.KaskoReminders++
	}

	s.metrics.ObserveReminders("maintenance", result.MaintenanceReminders)
	s.metrics.ObserveReminders("kasko", result.KaskoReminders)
	s.logger.Info("Проверка обслуживания завершена",
		zap.Int("maintenance", result.MaintenanceReminders), zap.Int("kasko", result.KaskoReminders))
	return result, nil
}
