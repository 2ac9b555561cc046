package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	db "saha-servis/internal/infrastructure/bd"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// listSpec описывает список сущности: откуда выбирать, по чему искать и фильтровать.
type listSpec struct {
	From        string
	Joins       []string
	Columns     []string
	CountColumn string
	Search      []string
	Allowed     map[string]string
	Arrays      map[string]string
	DefaultSort string
}

func (s listSpec) base(columns ...string) sq.SelectBuilder {
	b := psql.Select(columns...).From(s.From)
	for _, j := range s.Joins {
		b = b.LeftJoin(j)
	}
	return b
}

func (s listSpec) filtered(b sq.SelectBuilder, filter types.Filter, extra []sq.Sqlizer) sq.SelectBuilder {
	b = db.ApplySearch(b, filter.Search, s.Search)
	b = db.ApplyArrayFilters(b, filter, s.Arrays)
	for _, cond := range extra {
		if cond != nil {
			b = b.Where(cond)
		}
	}
	return b
}

// fetchList - COUNT + SELECT по одному фильтру. Пустая страница отдаётся без второго запроса.
func fetchList[T any](ctx context.Context, q Querier, s listSpec, filter types.Filter, scan func(pgx.Row) (*T, error), extra ...sq.Sqlizer) ([]T, uint64, error) {
	countBuilder := s.filtered(s.base("COUNT("+s.CountColumn+")"), filter, extra)
	countBuilder = db.ApplyListParams(countBuilder, db.CountFilter(filter), s.Allowed)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := q.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	builder := s.filtered(s.base(s.Columns...), filter, extra)
	builder = db.ApplyListParams(builder, filter, s.Allowed)
	if !db.HasSort(filter, s.Allowed) && s.DefaultSort != "" {
		builder = builder.OrderBy(s.DefaultSort)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	items, err := queryAll(ctx, q, query, args, scan)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func queryAll[T any](ctx context.Context, q Querier, query string, args []interface{}, scan func(pgx.Row) (*T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func querySelect[T any](ctx context.Context, q Querier, builder sq.SelectBuilder, scan func(pgx.Row) (*T, error)) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, q, query, args, scan)
}

func queryOne[T any](ctx context.Context, q Querier, builder sq.SelectBuilder, scan func(pgx.Row) (*T, error)) (*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scan(q.QueryRow(ctx, query, args...))
}

// notFound превращает pgx.ErrNoRows в ErrNotFound.
func notFound(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ошибка сканирования %s: %w", entity, err)
	}
	return nil
}

func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func execBuilder(ctx context.Context, q Querier, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	return affected(q.Exec(ctx, query, args...))
}

func insertReturningID(ctx context.Context, q Querier, builder sq.InsertBuilder) (uint64, error) {
	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}
	var id uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// pick возвращает транзакцию, если она есть, иначе пул.
func pick(pool *pgxpool.Pool, tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return pool
}
