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

var toolColumns = []string{
	"t.id", "t.name", "t.serial_number", "t.category", "t.status", "t.purchase_date", "t.created_at", "t.updated_at",
}

var toolList = listSpec{
	From:        "tools t",
	Columns:     toolColumns,
	CountColumn: "t.id",
	Search:      []string{"t.name", "t.serial_number", "t.category"},
	Allowed: map[string]string{
		"id":            "t.id",
		"name":          "t.name",
		"serial_number": "t.serial_number",
		"category":      "t.category",
		"status":        "t.status",
		"created_at":    "t.created_at",
	},
	DefaultSort: "t.name ASC",
}

type ToolRepositoryInterface interface {
	GetTools(ctx context.Context, filter types.Filter) ([]entities.Tool, uint64, error)
	FindTool(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Tool, error)
	CreateTool(ctx context.Context, tool entities.Tool) (uint64, error)
	UpdateTool(ctx context.Context, tool entities.Tool) error
	UpdateToolStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error
	DeleteTool(ctx context.Context, id uint64) error
}

type ToolRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewToolRepository(storage *pgxpool.Pool, logger *zap.Logger) ToolRepositoryInterface {
	return &ToolRepository{storage: storage, logger: logger}
}

func scanTool(row pgx.Row) (*entities.Tool, error) {
	var t entities.Tool
	err := row.Scan(&t.ID, &t.Name, &t.SerialNumber, &t.Category, &t.Status, &t.PurchaseDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "tool")
	}
	return &t, nil
}

func (r *ToolRepository) GetTools(ctx context.Context, filter types.Filter) ([]entities.Tool, uint64, error) {
	return fetchList(ctx, r.storage, toolList, filter, scanTool)
}

func (r *ToolRepository) FindTool(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Tool, error) {
	return queryOne(ctx, pick(r.storage, tx), toolList.base(toolColumns...).Where(sq.Eq{"t.id": id}), scanTool)
}

func (r *ToolRepository) CreateTool(ctx context.Context, t entities.Tool) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("tools").
		Columns("name", "serial_number", "category", "status", "purchase_date").
		Values(t.Name, t.SerialNumber, t.Category, t.Status, t.PurchaseDate))
}

func (r *ToolRepository) UpdateTool(ctx context.Context, t entities.Tool) error {
	return execBuilder(ctx, r.storage, psql.Update("tools").
		Set("name", t.Name).
		Set("serial_number", t.SerialNumber).
		Set("category", t.Category).
		Set("status", t.Status).
		Set("purchase_date", t.PurchaseDate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": t.ID}))
}

func (r *ToolRepository) UpdateToolStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	return affected(pick(r.storage, tx).Exec(ctx,
		`UPDATE tools SET status = $1, updated_at = NOW() WHERE id = $2`, status, id))
}

func (r *ToolRepository) DeleteTool(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id))
}
