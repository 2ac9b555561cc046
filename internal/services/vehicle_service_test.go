package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/pkg/config"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newVehicleService(repo *MockVehicleRepository, notifier *MockNotifier, tx *fakeTxManager) *VehicleService {
	svc := NewVehicleService(repo, tx, notifier, nil, config.MaintenanceConfig{}, zap.NewNop()).(*VehicleService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestCheckMaintenance_UsesReminderWindows(t *testing.T) {
	repo := new(MockVehicleRepository)
	notifier := new(MockNotifier)
	svc := newVehicleService(repo, notifier, &fakeTxManager{})

	due := []entities.Vehicle{{ID: 1, Plate: "06 ABC 123"}, {ID: 2, Plate: "34 XY 99"}}
	kasko := []entities.Vehicle{{ID: 3, Plate: "35 K 1"}}
	repo.On("FindDueMaintenance", mock.Anything, fixedNow.AddDate(0, 0, 7), 500).Return(due, nil)
	repo.On("FindKaskoExpiring", mock.Anything, fixedNow.AddDate(0, 0, -30), fixedNow.AddDate(0, 0, 30)).Return(kasko, nil)
	notifier.On("SendMaintenanceReminder", mock.Anything, mock.Anything).Return(nil)
	notifier.On("SendKaskoReminder", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.CheckMaintenance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.MaintenanceCheckResultDTO{MaintenanceReminders: 2, KaskoReminders: 1}, *res)
	notifier.AssertNumberOfCalls(t, "SendMaintenanceReminder", 2)
	notifier.AssertNumberOfCalls(t, "SendKaskoReminder", 1)
	repo.AssertExpectations(t)
}

func TestCheckMaintenance_NothingDue(t *testing.T) {
	repo := new(MockVehicleRepository)
	notifier := new(MockNotifier)
	svc := newVehicleService(repo, notifier, &fakeTxManager{})

	repo.On("FindDueMaintenance", mock.Anything, mock.Anything, mock.Anything).Return([]entities.Vehicle{}, nil)
	repo.On("FindKaskoExpiring", mock.Anything, mock.Anything, mock.Anything).Return([]entities.Vehicle{}, nil)

	res, err := svc.CheckMaintenance(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.MaintenanceReminders)
	assert.Zero(t, res.KaskoReminders)
	notifier.AssertNotCalled(t, "SendMaintenanceReminder", mock.Anything, mock.Anything)
}

func TestCheckMaintenance_NotificationFailure(t *testing.T) {
	repo := new(MockVehicleRepository)
	notifier := new(MockNotifier)
	svc := newVehicleService(repo, notifier, &fakeTxManager{})

	repo.On("FindDueMaintenance", mock.Anything, mock.Anything, mock.Anything).Return([]entities.Vehicle{{ID: 1}}, nil)
	repo.On("FindKaskoExpiring", mock.Anything, mock.Anything, mock.Anything).Return([]entities.Vehicle{{ID: 2}}, nil)
	notifier.On("SendMaintenanceReminder", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.CheckMaintenance(context.Background())
	require.Error(t, err)
	notifier.AssertNotCalled(t, "SendKaskoReminder", mock.Anything, mock.Anything)
}

func TestAddMaintenance_UpdatesVehicleInTransaction(t *testing.T) {
	repo := new(MockVehicleRepository)
	tx := &fakeTxManager{}
	svc := newVehicleService(repo, new(MockNotifier), tx)

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindVehicle", mock.Anything, mock.Anything, uint64(5)).Return(&entities.Vehicle{ID: 5}, nil)
	repo.On("InsertHistory", mock.Anything, mock.Anything, mock.MatchedBy(func(h entities.VehicleMaintenance) bool {
		return h.VehicleID == 5 && h.MaintenanceDate.Equal(date) && h.Km == 120000 && h.MaintenanceType == "Periyodik bakım"
	})).Return(uint64(44), nil)
	repo.On("ApplyMaintenance", mock.Anything, mock.Anything, uint64(5), date, 120000).Return(nil)

	record, err := svc.AddMaintenance(context.Background(), 5, dto.CreateMaintenanceDTO{
		MaintenanceDate: "2025-02-01",
		Km:              120000,
		MaintenanceType: " Periyodik bakım ",
		Cost:            decimal.NewFromInt(3500),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(44), record.ID)
	assert.Equal(t, 1, tx.calls)
	repo.AssertExpectations(t)
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "34 ABC 123", normalizePlate("  34  abc 123 "))
}
