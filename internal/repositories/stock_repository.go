package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
)

var stockColumns = []string{
	"ws.id", "ws.warehouse_id", "ws.product_id", "ws.tool_id", "ws.quantity", "ws.updated_at",
	"COALESCE(w.name, '')", "COALESCE(pr.name, t.name, '')", "COALESCE(pr.sku, t.serial_number)",
	"pr.unit", "pr.min_stock_level",
}

var stockList = listSpec{
	From: "warehouse_stock ws",
	Joins: []string{
		"warehouses w ON w.id = ws.warehouse_id",
		"products pr ON pr.id = ws.product_id",
		"tools t ON t.id = ws.tool_id",
	},
	Columns:     stockColumns,
	CountColumn: "ws.id",
	Search:      []string{"pr.name", "pr.sku", "t.name", "t.serial_number", "w.name"},
	Allowed: map[string]string{
		"id":           "ws.id",
		"warehouse_id": "ws.warehouse_id",
		"product_id":   "ws.product_id",
		"tool_id":      "ws.tool_id",
		"quantity":     "ws.quantity",
		"updated_at":   "ws.updated_at",
	},
	DefaultSort: "w.name ASC, ws.id ASC",
}

// lowStockCondition - товар ниже минимального уровня.
var lowStockCondition = sq.Expr("ws.product_id IS NOT NULL AND ws.quantity < pr.min_stock_level")

type StockRepositoryInterface interface {
	GetStock(ctx context.Context, filter types.Filter) ([]entities.StockItem, uint64, error)
	FindStock(ctx context.Context, id uint64) (*entities.StockItem, error)
	FindByPair(ctx context.Context, tx pgx.Tx, warehouseID uint64, productID, toolID null.Int64) (*entities.StockItem, error)
	UpdateQuantity(ctx context.Context, tx pgx.Tx, id uint64, quantity decimal.Decimal) error
	InsertStock(ctx context.Context, tx pgx.Tx, item entities.StockItem) (uint64, error)
	DecreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error
	IncreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error
	GetLowStock(ctx context.Context, limit uint64) ([]entities.StockItem, error)
	CountLowStock(ctx context.Context) (int64, error)
}

type StockRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewStockRepository(storage *pgxpool.Pool, logger *zap.Logger) StockRepositoryInterface {
	return &StockRepository{storage: storage, logger: logger}
}

func scanStock(row pgx.Row) (*entities.StockItem, error) {
	var s entities.StockItem
	err := row.Scan(
		&s.ID, &s.WarehouseID, &s.ProductID, &s.ToolID, &s.Quantity, &s.UpdatedAt,
		&s.WarehouseName, &s.ItemName, &s.ItemCode, &s.Unit, &s.MinStockLevel,
	)
	if err != nil {
		return nil, notFound(err, "stock")
	}
	return &s, nil
}

// GetStock понимает дополнительные фильтры low_stock=true и item_type=product|tool.
func (r *StockRepository) GetStock(ctx context.Context, filter types.Filter) ([]entities.StockItem, uint64, error) {
	var extra []sq.Sqlizer
	if v, ok := filter.Value("low_stock"); ok && v == "true" {
		extra = append(extra, lowStockCondition)
	}
	if v, ok := filter.Value("item_type"); ok {
		switch v {
		case "product":
			extra = append(extra, sq.NotEq{"ws.product_id": nil})
		case "tool":
			extra = append(extra, sq.NotEq{"ws.tool_id": nil})
		}
	}
	return fetchList(ctx, r.storage, stockList, filter, scanStock, extra...)
}

func (r *StockRepository) FindStock(ctx context.Context, id uint64) (*entities.StockItem, error) {
	return queryOne(ctx, r.storage, stockList.base(stockColumns...).Where(sq.Eq{"ws.id": id}), scanStock)
}

func (r *StockRepository) FindByPair(ctx context.Context, tx pgx.Tx, warehouseID uint64, productID, toolID null.Int64) (*entities.StockItem, error) {
	builder := stockList.base(stockColumns...).Where(sq.Eq{"ws.warehouse_id": warehouseID})
	if productID.Valid {
		builder = builder.Where(sq.Eq{"ws.product_id": productID.Int64})
	} else {
		builder = builder.Where(sq.Eq{"ws.tool_id": toolID.Int64})
	}
	return queryOne(ctx, pick(r.storage, tx), builder, scanStock)
}

func (r *StockRepository) UpdateQuantity(ctx context.Context, tx pgx.Tx, id uint64, quantity decimal.Decimal) error {
	return affected(pick(r.storage, tx).Exec(ctx,
		`UPDATE warehouse_stock SET quantity = $1, updated_at = NOW() WHERE id = $2`, quantity, id))
}

func (r *StockRepository) InsertStock(ctx context.Context, tx pgx.Tx, item entities.StockItem) (uint64, error) {
	return insertReturningID(ctx, pick(r.storage, tx), psql.Insert("warehouse_stock").
		Columns("warehouse_id", "product_id", "tool_id", "quantity").
		Values(item.WarehouseID, item.ProductID, item.ToolID, item.Quantity))
}

// DecreaseProductStock списывает количество. Нет строки или не хватает остатка -> ErrInsufficientStock.
func (r *StockRepository) DecreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error {
	tag, err := pick(r.storage, tx).Exec(ctx, `
		UPDATE warehouse_stock
		SET quantity = quantity - $1, updated_at = NOW()
		WHERE warehouse_id = $2 AND product_id = $3 AND quantity >= $1`,
		quantity, warehouseID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInsufficientStock
	}
	return nil
}

// IncreaseProductStock возвращает количество на склад, создавая строку при необходимости.
func (r *StockRepository) IncreaseProductStock(ctx context.Context, tx pgx.Tx, warehouseID, productID uint64, quantity decimal.Decimal) error {
	_, err := pick(r.storage, tx).Exec(ctx, `
		INSERT INTO warehouse_stock (warehouse_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT warehouse_stock_product_unique
		DO UPDATE SET quantity = warehouse_stock.quantity + EXCLUDED.quantity, updated_at = NOW()`,
		warehouseID, productID, quantity)
	return err
}

func (r *StockRepository) GetLowStock(ctx context.Context, limit uint64) ([]entities.StockItem, error) {
	builder := stockList.base(stockColumns...).
		Where(lowStockCondition).
		OrderBy("(pr.min_stock_level - ws.quantity) DESC").
		Limit(limit)
	return querySelect(ctx, r.storage, builder, scanStock)
}

func (r *StockRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(ws.id)
		FROM warehouse_stock ws
		JOIN products pr ON pr.id = ws.product_id
		WHERE ws.quantity < pr.min_stock_level`).Scan(&count)
	return count, err
}
