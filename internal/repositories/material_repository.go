package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
)

var materialColumns = []string{
	"m.id", "m.work_order_id", "m.product_id", "m.warehouse_id", "m.quantity", "m.unit_price", "m.created_at",
	"COALESCE(pr.name, '')", "COALESCE(pr.unit, '')", "COALESCE(w.name, '')",
}

type MaterialRepositoryInterface interface {
	GetByWorkOrder(ctx context.Context, workOrderID uint64) ([]entities.WorkOrderMaterial, error)
	FindMaterial(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrderMaterial, error)
	InsertMaterial(ctx context.Context, tx pgx.Tx, material entities.WorkOrderMaterial) (uint64, error)
	DeleteMaterial(ctx context.Context, tx pgx.Tx, id uint64) error
}

type MaterialRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaterialRepository(storage *pgxpool.Pool, logger *zap.Logger) MaterialRepositoryInterface {
	return &MaterialRepository{storage: storage, logger: logger}
}

func scanMaterial(row pgx.Row) (*entities.WorkOrderMaterial, error) {
	var m entities.WorkOrderMaterial
	err := row.Scan(
		&m.ID, &m.WorkOrderID, &m.ProductID, &m.WarehouseID, &m.Quantity, &m.UnitPrice, &m.CreatedAt,
		&m.ProductName, &m.ProductUnit, &m.WarehouseName,
	)
	if err != nil {
		return nil, notFound(err, "material")
	}
	return &m, nil
}

func materialSelect() sq.SelectBuilder {
	return psql.Select(materialColumns...).
		From("work_order_materials m").
		LeftJoin("products pr ON pr.id = m.product_id").
		LeftJoin("warehouses w ON w.id = m.warehouse_id")
}

func (r *MaterialRepository) GetByWorkOrder(ctx context.Context, workOrderID uint64) ([]entities.WorkOrderMaterial, error) {
	builder := materialSelect().Where(sq.Eq{"m.work_order_id": workOrderID}).OrderBy("m.id ASC")
	return querySelect(ctx, r.storage, builder, scanMaterial)
}

func (r *MaterialRepository) FindMaterial(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrderMaterial, error) {
	return queryOne(ctx, pick(r.storage, tx), materialSelect().Where(sq.Eq{"m.id": id}), scanMaterial)
}

func (r *MaterialRepository) InsertMaterial(ctx context.Context, tx pgx.Tx, m entities.WorkOrderMaterial) (uint64, error) {
	return insertReturningID(ctx, pick(r.storage, tx), psql.Insert("work_order_materials").
		Columns("work_order_id", "product_id", "warehouse_id", "quantity", "unit_price").
		Values(m.WorkOrderID, m.ProductID, m.WarehouseID, m.Quantity, m.UnitPrice))
}

func (r *MaterialRepository) DeleteMaterial(ctx context.Context, tx pgx.Tx, id uint64) error {
	return affected(pick(r.storage, tx).Exec(ctx, `DELETE FROM work_order_materials WHERE id = $1`, id))
}
