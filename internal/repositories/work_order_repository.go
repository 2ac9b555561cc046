package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/types"
)

var workOrderColumns = []string{
	"wo.id", "wo.customer_id", "wo.device_id", "wo.service_id", "wo.vehicle_id", "wo.assigned_to", "wo.created_by",
	"wo.title", "wo.description", "wo.status", "wo.priority", "wo.scheduled_date", "wo.completed_at",
	"wo.created_at", "wo.updated_at",
	"COALESCE(c.name, '')", "ap.full_name", "s.name", "v.plate", "d.device_type",
}

var workOrderList = listSpec{
	From: "work_orders wo",
	Joins: []string{
		"customers c ON c.id = wo.customer_id",
		"profiles ap ON ap.id = wo.assigned_to",
		"services s ON s.id = wo.service_id",
		"vehicles v ON v.id = wo.vehicle_id",
		"customer_devices d ON d.id = wo.device_id",
	},
	Columns:     workOrderColumns,
	CountColumn: "wo.id",
	Search:      []string{"wo.title", "wo.description", "c.name", "ap.full_name"},
	Allowed: map[string]string{
		"id":             "wo.id",
		"status":         "wo.status",
		"priority":       "wo.priority",
		"customer_id":    "wo.customer_id",
		"assigned_to":    "wo.assigned_to",
		"service_id":     "wo.service_id",
		"vehicle_id":     "wo.vehicle_id",
		"device_id":      "wo.device_id",
		"scheduled_date": "wo.scheduled_date",
		"completed_at":   "wo.completed_at",
		"created_at":     "wo.created_at",
		"updated_at":     "wo.updated_at",
	},
	DefaultSort: "wo.created_at DESC",
}

type WorkOrderRepositoryInterface interface {
	GetWorkOrders(ctx context.Context, filter types.Filter) ([]entities.WorkOrder, uint64, error)
	FindWorkOrder(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrder, error)
	GetRecentByCustomer(ctx context.Context, customerID uint64, limit uint64) ([]entities.WorkOrder, error)
	GetLatest(ctx context.Context, limit uint64) ([]entities.WorkOrder, error)
	GetOpenByAssignee(ctx context.Context, profileID uint64, limit uint64) ([]entities.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, workOrder entities.WorkOrder) (uint64, error)
	UpdateWorkOrder(ctx context.Context, workOrder entities.WorkOrder) error
	UpdateStatus(ctx context.Context, id uint64, status string, completedAt null.Time) error
	DeleteWorkOrder(ctx context.Context, id uint64) error
	CountByStatus(ctx context.Context, assignedTo null.Int64) (map[string]int64, error)
}

type WorkOrderRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorkOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) WorkOrderRepositoryInterface {
	return &WorkOrderRepository{storage: storage, logger: logger}
}

func scanWorkOrder(row pgx.Row) (*entities.WorkOrder, error) {
	var wo entities.WorkOrder
	err := row.Scan(
		&wo.ID, &wo.CustomerID, &wo.DeviceID, &wo.ServiceID, &wo.VehicleID, &wo.AssignedTo, &wo.CreatedBy,
		&wo.Title, &wo.Description, &wo.Status, &wo.Priority, &wo.ScheduledDate, &wo.CompletedAt,
		&wo.CreatedAt, &wo.UpdatedAt,
		&wo.CustomerName, &wo.AssigneeName, &wo.ServiceName, &wo.VehiclePlate, &wo.DeviceTypeName,
	)
	if err != nil {
		return nil, notFound(err, "work order")
	}
	return &wo, nil
}

func (r *WorkOrderRepository) GetWorkOrders(ctx context.Context, filter types.Filter) ([]entities.WorkOrder, uint64, error) {
	return fetchList(ctx, r.storage, workOrderList, filter, scanWorkOrder)
}

func (r *WorkOrderRepository) FindWorkOrder(ctx context.Context, tx pgx.Tx, id uint64) (*entities.WorkOrder, error) {
	builder := workOrderList.base(workOrderColumns...).Where(sq.Eq{"wo.id": id})
	return queryOne(ctx, pick(r.storage, tx), builder, scanWorkOrder)
}

func (r *WorkOrderRepository) GetRecentByCustomer(ctx context.Context, customerID uint64, limit uint64) ([]entities.WorkOrder, error) {
	builder := workOrderList.base(workOrderColumns...).
		Where(sq.Eq{"wo.customer_id": customerID}).
		OrderBy("wo.created_at DESC").
		Limit(limit)
	return querySelect(ctx, r.storage, builder, scanWorkOrder)
}

func (r *WorkOrderRepository) GetLatest(ctx context.Context, limit uint64) ([]entities.WorkOrder, error) {
	builder := workOrderList.base(workOrderColumns...).OrderBy("wo.created_at DESC").Limit(limit)
	return querySelect(ctx, r.storage, builder, scanWorkOrder)
}

func (r *WorkOrderRepository) GetOpenByAssignee(ctx context.Context, profileID uint64, limit uint64) ([]entities.WorkOrder, error) {
	builder := workOrderList.base(workOrderColumns...).
		Where(sq.Eq{"wo.assigned_to": profileID, "wo.status": constants.OpenWorkOrderStatuses}).
		OrderBy("wo.scheduled_date ASC NULLS LAST", "wo.created_at DESC").
		Limit(limit)
	return querySelect(ctx, r.storage, builder, scanWorkOrder)
}

func (r *WorkOrderRepository) CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("work_orders").
		Columns("customer_id", "device_id", "service_id", "vehicle_id", "assigned_to", "created_by",
			"title", "description", "status", "priority", "scheduled_date", "completed_at").
		Values(wo.CustomerID, wo.DeviceID, wo.ServiceID, wo.VehicleID, wo.AssignedTo, wo.CreatedBy,
			wo.Title, wo.Description, wo.Status, wo.Priority, wo.ScheduledDate, wo.CompletedAt))
}

func (r *WorkOrderRepository) UpdateWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	return execBuilder(ctx, r.storage, psql.Update("work_orders").SetMap(map[string]interface{}{
		"customer_id":    wo.CustomerID,
		"device_id":      wo.DeviceID,
		"service_id":     wo.ServiceID,
		"vehicle_id":     wo.VehicleID,
		"assigned_to":    wo.AssignedTo,
		"title":          wo.Title,
		"description":    wo.Description,
		"status":         wo.Status,
		"priority":       wo.Priority,
		"scheduled_date": wo.ScheduledDate,
		"completed_at":   wo.CompletedAt,
		"updated_at":     sq.Expr("NOW()"),
	}).Where(sq.Eq{"id": wo.ID}))
}

func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, id uint64, status string, completedAt null.Time) error {
	return affected(r.storage.Exec(ctx,
		`UPDATE work_orders SET status = $1, completed_at = $2, updated_at = NOW() WHERE id = $3`,
		status, completedAt, id))
}

func (r *WorkOrderRepository) DeleteWorkOrder(ctx context.Context, id uint64) error {
	return affected(r.storage.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id))
}

// CountByStatus - количество заявок по статусам; assignedTo ограничивает исполнителем.
func (r *WorkOrderRepository) CountByStatus(ctx context.Context, assignedTo null.Int64) (map[string]int64, error) {
	builder := psql.Select("status", "COUNT(id)").From("work_orders").GroupBy("status")
	if assignedTo.Valid {
		builder = builder.Where(sq.Eq{"assigned_to": assignedTo.Int64})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
