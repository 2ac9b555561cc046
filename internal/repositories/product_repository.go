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

var productColumns = []string{
	"pr.id", "pr.name", "pr.sku", "pr.category", "pr.unit", "pr.unit_price", "pr.min_stock_level",
	"pr.description", "pr.created_at", "pr.updated_at",
}

var productList = listSpec{
	From:        "products pr",
	Columns:     productColumns,
	CountColumn: "pr.id",
	Search:      []string{"pr.name", "pr.sku", "pr.category"},
	Allowed: map[string]string{
		"id":         "pr.id",
		"name":       "pr.name",
		"sku":        "pr.sku",
		"category":   "pr.category",
		"unit_price": "pr.unit_price",
		"created_at": "pr.created_at",
	},
	DefaultSort: "pr.name ASC",
}

type ProductRepositoryInterface interface {
	GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error)
	FindProduct(ctx context.Context, id uint64) (*entities.Product, error)
	SKUExists(ctx context.Context, sku string) (bool, error)
	CreateProduct(ctx context.Context, product entities.Product) (uint64, error)
	UpdateProduct(ctx context.Context, product entities.Product) error
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProductRepository(storage *pgxpool.Pool, logger *zap.Logger) ProductRepositoryInterface {
	return &ProductRepository{storage: storage, logger: logger}
}

func scanProduct(row pgx.Row) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.Unit, &p.UnitPrice, &p.MinStockLevel,
		&p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return &p, nil
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter types.Filter) ([]entities.Product, uint64, error) {
	return fetchList(ctx, r.storage, productList, filter, scanProduct)
}

func (r *ProductRepository) FindProduct(ctx context.Context, id uint64) (*entities.Product, error) {
	return queryOne(ctx, r.storage, productList.base(productColumns...).Where(sq.Eq{"pr.id": id}), scanProduct)
}

func (r *ProductRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p entities.Product) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("products").
		Columns("name", "sku", "category", "unit", "unit_price", "min_stock_level", "description").
		Values(p.Name, p.SKU, p.Category, p.Unit, p.UnitPrice, p.MinStockLevel, p.Description))
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p entities.Product) error {
	return execBuilder(ctx, r.storage, psql.Update("products").SetMap(map[string]interface{}{
		"name":            p.Name,
		"sku":             p.SKU,
		"category":        p.Category,
		"unit":            p.Unit,
		"unit_price":      p.UnitPrice,
		"min_stock_level": p.MinStockLevel,
		"description":     p.Description,
		"updated_at":      sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": p.ID}))
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM products WHERE id = $1`, id))
}
