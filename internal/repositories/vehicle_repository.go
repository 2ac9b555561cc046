package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/types"
)

var vehicleColumns = []string{
	"v.id", "v.plate", "v.brand", "v.model", "v.year", "v.current_km",
	"v.last_maintenance_date", "v.next_maintenance_date", "v.next_maintenance_km",
	"v.kasko_expiry_date", "v.insurance_expiry_date", "v.inspection_date",
	"v.assigned_employee_id", "v.notes", "v.created_at", "v.updated_at",
	"e.first_name || ' ' || e.last_name",
}

var vehicleList = listSpec{
	From:        "vehicles v",
	Joins:       []string{"employees e ON e.id = v.assigned_employee_id"},
	Columns:     vehicleColumns,
	CountColumn: "v.id",
	Search:      []string{"v.plate", "v.brand", "v.model"},
	Allowed: map[string]string{
		"id":                    "v.id",
		"plate":                 "v.plate",
		"brand":                 "v.brand",
		"assigned_employee_id":  "v.assigned_employee_id",
		"next_maintenance_date": "v.next_maintenance_date",
		"kasko_expiry_date":     "v.kasko_expiry_date",
		"current_km":            "v.current_km",
		"created_at":            "v.created_at",
	},
	DefaultSort: "v.plate ASC",
}

var maintenanceColumns = []string{
	"h.id", "h.vehicle_id", "h.maintenance_date", "h.km", "h.maintenance_type",
	"h.description", "h.cost", "h.service_provider", "h.created_at",
}

type VehicleRepositoryInterface interface {
	GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error)
	FindVehicle(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle entities.Vehicle) (uint64, error)
	UpdateVehicle(ctx context.Context, vehicle entities.Vehicle) error
	DeleteVehicle(ctx context.Context, id uint64) error

	GetHistory(ctx context.Context, vehicleID uint64) ([]entities.VehicleMaintenance, error)
	InsertHistory(ctx context.Context, tx pgx.Tx, record entities.VehicleMaintenance) (uint64, error)
	ApplyMaintenance(ctx context.Context, tx pgx.Tx, vehicleID uint64, date time.Time, km int) error

	FindDueMaintenance(ctx context.Context, dateLimit time.Time, kmWindow int) ([]entities.Vehicle, error)
	FindKaskoExpiring(ctx context.Context, expiredSince, dateLimit time.Time) ([]entities.Vehicle, error)
}

type VehicleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVehicleRepository(storage *pgxpool.Pool, logger *zap.Logger) VehicleRepositoryInterface {
	return &VehicleRepository{storage: storage, logger: logger}
}

func scanVehicle(row pgx.Row) (*entities.Vehicle, error) {
	var v entities.Vehicle
	err := row.Scan(
		&v.ID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.CurrentKm,
		&v.LastMaintenanceDate, &v.NextMaintenanceDate, &v.NextMaintenanceKm,
		&v.KaskoExpiryDate, &v.InsuranceExpiryDate, &v.InspectionDate,
		&v.AssignedEmployeeID, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
		&v.AssignedEmployeeName,
	)
	if err != nil {
		return nil, notFound(err, "vehicle")
	}
	return &v, nil
}

func scanMaintenance(row pgx.Row) (*entities.VehicleMaintenance, error) {
	var h entities.VehicleMaintenance
	err := row.Scan(
		&h.ID, &h.VehicleID, &h.MaintenanceDate, &h.Km, &h.MaintenanceType,
		&h.Description, &h.Cost, &h.ServiceProvider, &h.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err, "maintenance record")
	}
	return &h, nil
}

func (r *VehicleRepository) GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error) {
	return fetchList(ctx, r.storage, vehicleList, filter, scanVehicle)
}

func (r *VehicleRepository) FindVehicle(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vehicle, error) {
	return queryOne(ctx, pick(r.storage, tx), vehicleList.base(vehicleColumns...).Where(sq.Eq{"v.id": id}), scanVehicle)
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, v entities.Vehicle) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("vehicles").
		Columns("plate", "brand", "model", "year", "current_km", "next_maintenance_date", "next_maintenance_km",
			"kasko_expiry_date", "insurance_expiry_date", "inspection_date", "assigned_employee_id", "notes").
		Values(v.Plate, v.Brand, v.Model, v.Year, v.CurrentKm, v.NextMaintenanceDate, v.NextMaintenanceKm,
			v.KaskoExpiryDate, v.InsuranceExpiryDate, v.InspectionDate, v.AssignedEmployeeID, v.Notes))
}

// UpdateVehicle не трогает last_maintenance_date: она меняется только через историю обслуживания.
func (r *VehicleRepository) UpdateVehicle(ctx context.Context, v entities.Vehicle) error {
	return execBuilder(ctx, r.storage, psql.Update("vehicles").SetMap(map[string]interface{}{
		"plate":                 v.Plate,
		"brand":                 v.Brand,
		"model":                 v.Model,
		"year":                  v.Year,
		"current_km":            v.CurrentKm,
		"next_maintenance_date": v.NextMaintenanceDate,
		"next_maintenance_km":   v.NextMaintenanceKm,
		"kasko_expiry_date":     v.KaskoExpiryDate,
		"insurance_expiry_date": v.InsuranceExpiryDate,
		"inspection_date":       v.InspectionDate,
		"assigned_employee_id":  v.AssignedEmployeeID,
		"notes":                 v.Notes,
		"updated_at":            sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": v.ID}))
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id))
}

func (r *VehicleRepository) GetHistory(ctx context.Context, vehicleID uint64) ([]entities.VehicleMaintenance, error) {
	builder := psql.Select(maintenanceColumns...).
		From("vehicle_maintenance_history h").
		Where(sq.Eq{"h.vehicle_id": vehicleID}).
		OrderBy("h.maintenance_date DESC", "h.id DESC")
	return querySelect(ctx, r.storage, builder, scanMaintenance)
}

func (r *VehicleRepository) InsertHistory(ctx context.Context, tx pgx.Tx, h entities.VehicleMaintenance) (uint64, error) {
	return insertReturningID(ctx, pick(r.storage, tx), psql.Insert("vehicle_maintenance_history").
		Columns("vehicle_id", "maintenance_date", "km", "maintenance_type", "description", "cost", "service_provider").
		Values(h.VehicleID, h.MaintenanceDate, h.Km, h.MaintenanceType, h.Description, h.Cost, h.ServiceProvider))
}

// ApplyMaintenance сдвигает дату последнего обслуживания и пробег только вперёд.
func (r *VehicleRepository) ApplyMaintenance(ctx context.Context, tx pgx.Tx, vehicleID uint64, date time.Time, km int) error {
	return affected(pick(r.storage, tx).Exec(ctx, `
		UPDATE vehicles
		SET last_maintenance_date = GREATEST(COALESCE(last_maintenance_date, $1::date), $1::date),
		    current_km = GREATEST(current_km, $2),
		    updated_at = NOW()
		WHERE id = $3`,
		date, km, vehicleID))
}

// FindDueMaintenance - дата обслуживания до dateLimit или пробег в пределах kmWindow до next_maintenance_km.
func (r *VehicleRepository) FindDueMaintenance(ctx context.Context, dateLimit time.Time, kmWindow int) ([]entities.Vehicle, error) {
	builder := vehicleList.base(vehicleColumns...).
		Where(sq.Or{
			sq.Expr("v.next_maintenance_date IS NOT NULL AND v.next_maintenance_date <= ?::date", dateLimit),
			sq.Expr("v.next_maintenance_km IS NOT NULL AND v.current_km >= v.next_maintenance_km - ?", kmWindow),
		}).
		OrderBy("v.next_maintenance_date ASC NULLS LAST", "v.id ASC")
	return querySelect(ctx, r.storage, builder, scanVehicle)
}

// FindKaskoExpiring - kasko истекает до dateLimit. Давно истёкшие (раньше expiredSince) не попадают.
func (r *VehicleRepository) FindKaskoExpiring(ctx context.Context, expiredSince, dateLimit time.Time) ([]entities.Vehicle, error) {
	builder := vehicleList.base(vehicleColumns...).
		Where(sq.Expr("v.kasko_expiry_date IS NOT NULL AND v.kasko_expiry_date BETWEEN ?::date AND ?::date", expiredSince, dateLimit)).
		OrderBy("v.kasko_expiry_date ASC", "v.id ASC")
	return querySelect(ctx, r.storage, builder, scanVehicle)
}
