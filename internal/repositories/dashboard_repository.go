package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepositoryInterface interface {
	CountCustomers(ctx context.Context) (int64, error)
	CountVehiclesDue(ctx context.Context, dateLimit time.Time, kmWindow int) (int64, error)
	CountKaskoExpiring(ctx context.Context, dateLimit time.Time) (int64, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(id) FROM customers`).Scan(&count)
	return count, err
}

// Условия совпадают с VehicleRepository.FindDueMaintenance.
func (r *DashboardRepository) CountVehiclesDue(ctx context.Context, dateLimit time.Time, kmWindow int) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(id) FROM vehicles
		WHERE (next_maintenance_date IS NOT NULL AND next_maintenance_date <= $1::date)
		   OR (next_maintenance_km IS NOT NULL AND current_km >= next_maintenance_km - $2)`,
		dateLimit, kmWindow).Scan(&count)
	return count, err
}

func (r *DashboardRepository) CountKaskoExpiring(ctx context.Context, dateLimit time.Time) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(id) FROM vehicles WHERE kasko_expiry_date IS NOT NULL AND kasko_expiry_date <= $1::date`,
		dateLimit).Scan(&count)
	return count, err
}
