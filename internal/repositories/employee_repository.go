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

var employeeColumns = []string{
	"e.id", "e.first_name", "e.last_name", "e.phone", "e.email", "e.position", "e.department",
	"e.skills", "e.hire_date", "e.is_active", "e.created_at", "e.updated_at",
}

var employeeList = listSpec{
	From:        "employees e",
	Columns:     employeeColumns,
	CountColumn: "e.id",
	Search:      []string{"e.first_name", "e.last_name", "e.phone"},
	Allowed: map[string]string{
		"id":         "e.id",
		"first_name": "e.first_name",
		"last_name":  "e.last_name",
		"department": "e.department",
		"position":   "e.position",
		"is_active":  "e.is_active",
		"hire_date":  "e.hire_date",
		"created_at": "e.created_at",
	},
	Arrays:      map[string]string{"skill": "e.skills"},
	DefaultSort: "e.first_name ASC, e.last_name ASC",
}

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error)
	UpdateEmployee(ctx context.Context, employee entities.Employee) error
	DeleteEmployee(ctx context.Context, id uint64) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Phone, &e.Email, &e.Position, &e.Department,
		&e.Skills, &e.HireDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "employee")
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return &e, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	return fetchList(ctx, r.storage, employeeList, filter, scanEmployee)
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return queryOne(ctx, r.storage, employeeList.base(employeeColumns...).Where(sq.Eq{"e.id": id}), scanEmployee)
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, e entities.Employee) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("employees").
		Columns("first_name", "last_name", "phone", "email", "position", "department", "skills", "hire_date", "is_active").
		Values(e.FirstName, e.LastName, e.Phone, e.Email, e.Position, e.Department, e.Skills, e.HireDate, e.IsActive))
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, e entities.Employee) error {
	return execBuilder(ctx, r.storage, psql.Update("employees").SetMap(map[string]interface{}{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"phone":      e.Phone,
		"email":      e.Email,
		"position":   e.Position,
		"department": e.Department,
		"skills":     e.Skills,
		"hire_date":  e.HireDate,
		"is_active":  e.IsActive,
		"updated_at": sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": e.ID}))
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id))
}
