package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/types"
)

var deviceColumns = []string{
	"d.id", "d.customer_id", "d.device_type", "d.brand", "d.model", "d.serial_number",
	"d.installation_date", "d.warranty_end_date", "d.photo_url", "d.notes", "d.created_at", "d.updated_at",
}

var deviceList = listSpec{
	From:        "customer_devices d",
	Columns:     deviceColumns,
	CountColumn: "d.id",
	Search:      []string{"d.device_type", "d.brand", "d.model", "d.serial_number"},
	Allowed: map[string]string{
		"id":                "d.id",
		"customer_id":       "d.customer_id",
		"device_type":       "d.device_type",
		"brand":             "d.brand",
		"warranty_end_date": "d.warranty_end_date",
		"created_at":        "d.created_at",
	},
	DefaultSort: "d.id DESC",
}

type DeviceRepositoryInterface interface {
	GetDevices(ctx context.Context, filter types.Filter) ([]entities.CustomerDevice, uint64, error)
	GetDevicesByCustomer(ctx context.Context, customerID uint64) ([]entities.CustomerDevice, error)
	FindDevice(ctx context.Context, id uint64) (*entities.CustomerDevice, error)
	CreateDevice(ctx context.Context, device entities.CustomerDevice) (uint64, error)
	UpdateDevice(ctx context.Context, device entities.CustomerDevice) error
	UpdatePhoto(ctx context.Context, id uint64, photoURL null.String) error
	DeleteDevice(ctx context.Context, id uint64) error
}

type DeviceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDeviceRepository(storage *pgxpool.Pool, logger *zap.Logger) DeviceRepositoryInterface {
	return &DeviceRepository{storage: storage, logger: logger}
}

func scanDevice(row pgx.Row) (*entities.CustomerDevice, error) {
	var d entities.CustomerDevice
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.DeviceType, &d.Brand, &d.Model, &d.SerialNumber,
		&d.InstallationDate, &d.WarrantyEndDate, &d.PhotoURL, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "device")
	}
	return &d, nil
}

func (r *DeviceRepository) GetDevices(ctx context.Context, filter types.Filter) ([]entities.CustomerDevice, uint64, error) {
	return fetchList(ctx, r.storage, deviceList, filter, scanDevice)
}

func (r *DeviceRepository) GetDevicesByCustomer(ctx context.Context, customerID uint64) ([]entities.CustomerDevice, error) {
	builder := deviceList.base(deviceColumns...).Where(sq.Eq{"d.customer_id": customerID}).OrderBy("d.id ASC")
	return querySelect(ctx, r.storage, builder, scanDevice)
}

func (r *DeviceRepository) FindDevice(ctx context.Context, id uint64) (*entities.CustomerDevice, error) {
	return queryOne(ctx, r.storage, deviceList.base(deviceColumns...).Where(sq.Eq{"d.id": id}), scanDevice)
}

func (r *DeviceRepository) CreateDevice(ctx context.Context, d entities.CustomerDevice) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("customer_devices").
		Columns("customer_id", "device_type", "brand", "model", "serial_number",
			"installation_date", "warranty_end_date", "photo_url", "notes").
		Values(d.CustomerID, d.DeviceType, d.Brand, d.Model, d.SerialNumber,
			d.InstallationDate, d.WarrantyEndDate, d.PhotoURL, d.Notes))
}

// UpdateDevice не трогает photo_url, для него есть UpdatePhoto.
func (r *DeviceRepository) UpdateDevice(ctx context.Context, d entities.CustomerDevice) error {
	return execBuilder(ctx, r.storage, psql.Update("customer_devices").SetMap(map[string]interface{}{
		"device_type":       d.DeviceType,
		"brand":             d.Brand,
		"model":             d.Model,
		"serial_number":     d.SerialNumber,
		"installation_date": d.InstallationDate,
		"warranty_end_date": d.WarrantyEndDate,
		"notes":             d.Notes,
		"updated_at":        sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": d.ID}))
}

func (r *DeviceRepository) UpdatePhoto(ctx context.Context, id uint64, photoURL null.String) error {
	return affected(r.storage.Exec(ctx,
		`UPDATE customer_devices SET photo_url = $1, updated_at = NOW() WHERE id = $2`, photoURL, id))
}

func (r *DeviceRepository) DeleteDevice(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM customer_devices WHERE id = $1`, id))
}
