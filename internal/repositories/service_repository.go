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

var serviceColumns = []string{"s.id", "s.name", "s.description", "s.price", "s.is_active", "s.created_at", "s.updated_at"}

var serviceList = listSpec{
	From:        "services s",
	Columns:     serviceColumns,
	CountColumn: "s.id",
	Search:      []string{"s.name", "s.description"},
	Allowed: map[string]string{
		"id":         "s.id",
		"name":       "s.name",
		"price":      "s.price",
		"is_active":  "s.is_active",
		"created_at": "s.created_at",
	},
	DefaultSort: "s.name ASC",
}

type ServiceRepositoryInterface interface {
	GetServices(ctx context.Context, filter types.Filter) ([]entities.Service, uint64, error)
	FindService(ctx context.Context, id uint64) (*entities.Service, error)
	CreateService(ctx context.Context, service entities.Service) (uint64, error)
	UpdateService(ctx context.Context, service entities.Service) error
	DeleteService(ctx context.Context, id uint64) error
}

type ServiceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewServiceRepository(storage *pgxpool.Pool, logger *zap.Logger) ServiceRepositoryInterface {
	return &ServiceRepository{storage: storage, logger: logger}
}

func scanService(row pgx.Row) (*entities.Service, error) {
	var s entities.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, notFound(err, "service")
	}
	return &s, nil
}

func (r *ServiceRepository) GetServices(ctx context.Context, filter types.Filter) ([]entities.Service, uint64, error) {
	return fetchList(ctx, r.storage, serviceList, filter, scanService)
}

func (r *ServiceRepository) FindService(ctx context.Context, id uint64) (*entities.Service, error) {
	return queryOne(ctx, r.storage, serviceList.base(serviceColumns...).Where(sq.Eq{"s.id": id}), scanService)
}

func (r *ServiceRepository) CreateService(ctx context.Context, s entities.Service) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("services").
		Columns("name", "description", "price", "is_active").
		Values(s.Name, s.Description, s.Price, s.IsActive))
}

func (r *ServiceRepository) UpdateService(ctx context.Context, s entities.Service) error {
	return execBuilder(ctx, r.storage, psql.Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("price", s.Price).
		Set("is_active", s.IsActive).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": s.ID}))
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM services WHERE id = $1`, id))
}
