package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/types"
)

var assignmentColumns = []string{
	"ta.id", "ta.tool_id", "ta.employee_id", "ta.assigned_by", "ta.status", "ta.assigned_at",
	"ta.return_requested_at", "ta.returned_at", "ta.notes",
	"COALESCE(t.name, '')", "COALESCE(t.serial_number, '')",
	"COALESCE(e.first_name || ' ' || e.last_name, '')",
}

var assignmentList = listSpec{
	From: "tool_assignments ta",
	Joins: []string{
		"tools t ON t.id = ta.tool_id",
		"employees e ON e.id = ta.employee_id",
	},
	Columns:     assignmentColumns,
	CountColumn: "ta.id",
	Search:      []string{"t.name", "t.serial_number", "e.first_name", "e.last_name"},
	Allowed: map[string]string{
		"id":          "ta.id",
		"tool_id":     "ta.tool_id",
		"employee_id": "ta.employee_id",
		"status":      "ta.status",
		"assigned_at": "ta.assigned_at",
		"returned_at": "ta.returned_at",
	},
	DefaultSort: "ta.assigned_at DESC",
}

type ToolAssignmentRepositoryInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) ([]entities.ToolAssignment, uint64, error)
	FindAssignment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.ToolAssignment, error)
	GetActiveByEmployee(ctx context.Context, employeeID uint64) ([]entities.ToolAssignment, error)
	CreateAssignment(ctx context.Context, tx pgx.Tx, assignment entities.ToolAssignment) (uint64, error)
	MarkReturnRequested(ctx context.Context, tx pgx.Tx, id uint64) error
	MarkReturned(ctx context.Context, tx pgx.Tx, id uint64) error
	CountActive(ctx context.Context) (int64, error)
}

type ToolAssignmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewToolAssignmentRepository(storage *pgxpool.Pool, logger *zap.Logger) ToolAssignmentRepositoryInterface {
	return &ToolAssignmentRepository{storage: storage, logger: logger}
}

func scanAssignment(row pgx.Row) (*entities.ToolAssignment, error) {
	var a entities.ToolAssignment
	err := row.Scan(
		&a.ID, &a.ToolID, &a.EmployeeID, &a.AssignedBy, &a.Status, &a.AssignedAt,
		&a.ReturnRequestedAt, &a.ReturnedAt, &a.Notes,
		&a.ToolName, &a.ToolSerial, &a.EmployeeName,
	)
	if err != nil {
		return nil, notFound(err, "tool assignment")
	}
	return &a, nil
}

func (r *ToolAssignmentRepository) GetAssignments(ctx context.Context, filter types.Filter) ([]entities.ToolAssignment, uint64, error) {
	return fetchList(ctx, r.storage, assignmentList, filter, scanAssignment)
}

func (r *ToolAssignmentRepository) FindAssignment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.ToolAssignment, error) {
	builder := assignmentList.base(assignmentColumns...).Where(sq.Eq{"ta.id": id})
	return queryOne(ctx, pick(r.storage, tx), builder, scanAssignment)
}

func (r *ToolAssignmentRepository) GetActiveByEmployee(ctx context.Context, employeeID uint64) ([]entities.ToolAssignment, error) {
	builder := assignmentList.base(assignmentColumns...).
		Where(sq.Eq{"ta.employee_id": employeeID}).
		Where(sq.NotEq{"ta.status": constants.AssignmentStatusReturned}).
		OrderBy("ta.assigned_at DESC")
	return querySelect(ctx, r.storage, builder, scanAssignment)
}

func (r *ToolAssignmentRepository) CreateAssignment(ctx context.Context, tx pgx.Tx, a entities.ToolAssignment) (uint64, error) {
	return insertReturningID(ctx, pick(r.storage, tx), psql.Insert("tool_assignments").
		Columns("tool_id", "employee_id", "assigned_by", "status", "notes").
		Values(a.ToolID, a.EmployeeID, a.AssignedBy, a.Status, a.Notes))
}

func (r *ToolAssignmentRepository) MarkReturnRequested(ctx context.Context, tx pgx.Tx, id uint64) error {
	return affected(pick(r.storage, tx).Exec(ctx,
		`UPDATE tool_assignments SET status = $1, return_requested_at = NOW() WHERE id = $2`,
		constants.AssignmentStatusReturnRequested, id))
}

func (r *ToolAssignmentRepository) MarkReturned(ctx context.Context, tx pgx.Tx, id uint64) error {
	return affected(pick(r.storage, tx).Exec(ctx,
		`UPDATE tool_assignments SET status = $1, returned_at = NOW() WHERE id = $2`,
		constants.AssignmentStatusReturned, id))
}

func (r *ToolAssignmentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(id) FROM tool_assignments WHERE status <> $1`, constants.AssignmentStatusReturned).Scan(&count)
	return count, err
}
