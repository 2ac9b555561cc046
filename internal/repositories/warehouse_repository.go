package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/types"
)

var warehouseColumns = []string{"w.id", "w.name", "w.location", "w.description", "w.is_active", "w.created_at", "w.updated_at"}

var warehouseList = listSpec{
	From:        "warehouses w",
	Columns:     warehouseColumns,
	CountColumn: "w.id",
	Search:      []string{"w.name", "w.location"},
	Allowed: map[string]string{
		"id":         "w.id",
		"name":       "w.name",
		"is_active":  "w.is_active",
		"created_at": "w.created_at",
	},
	DefaultSort: "w.name ASC",
}

type WarehouseRepositoryInterface interface {
	GetWarehouses(ctx context.Context, filter types.Filter) ([]entities.Warehouse, uint64, error)
	FindWarehouse(ctx context.Context, id uint64) (*entities.Warehouse, error)
	CreateWarehouse(ctx context.Context, warehouse entities.Warehouse) (uint64, error)
	UpdateWarehouse(ctx context.Context, warehouse entities.Warehouse) error
	DeleteWarehouse(ctx context.Context, id uint64) error
}

type WarehouseRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWarehouseRepository(storage *pgxpool.Pool, logger *zap.Logger) WarehouseRepositoryInterface {
	return &WarehouseRepository{storage: storage, logger: logger}
}

func scanWarehouse(row pgx.Row) (*entities.Warehouse, error) {
	var w entities.Warehouse
	if err := row.Scan(&w.ID, &w.Name, &w.Location, &w.Description, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, notFound(err, "warehouse")
	}
	return &w, nil
}

func (r *WarehouseRepository) GetWarehouses(ctx context.Context, filter types.Filter) ([]entities.Warehouse, uint64, error) {
	return fetchList(ctx, r.storage, warehouseList, filter, scanWarehouse)
}

func (r *WarehouseRepository) FindWarehouse(ctx context.Context, id uint64) (*entities.Warehouse, error) {
	return queryOne(ctx, r.storage, warehouseList.base(warehouseColumns...).Where(sq.Eq{"w.id": id}), scanWarehouse)
}

func (r *WarehouseRepository) CreateWarehouse(ctx context.Context, w entities.Warehouse) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("warehouses").
		Columns("name", "location", "description", "is_active").
		Values(w.Name, w.Location, w.Description, w.IsActive))
}

func (r *WarehouseRepository) UpdateWarehouse(ctx context.Context, w entities.Warehouse) error {
	return execBuilder(ctx, r.storage, psql.Update("warehouses").
		Set("name", w.Name).
		Set("location", w.Location).
		Set("description", w.Description).
		Set("is_active", w.IsActive).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": w.ID}))
}

func (r *WarehouseRepository) DeleteWarehouse(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id))
}
