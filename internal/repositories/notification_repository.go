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

var notificationColumns = []string{
	"n.id", "n.recipient_id", "n.type", "n.title", "n.message", "n.related_entity", "n.related_id", "n.is_read", "n.created_at",
}

var notificationList = listSpec{
	From:        "notifications n",
	Columns:     notificationColumns,
	CountColumn: "n.id",
	Search:      []string{"n.title", "n.message"},
	Allowed: map[string]string{
		"id":         "n.id",
		"type":       "n.type",
		"is_read":    "n.is_read",
		"created_at": "n.created_at",
	},
	DefaultSort: "n.created_at DESC",
}

type NotificationRepositoryInterface interface {
	InsertNotification(ctx context.Context, notification entities.Notification) (uint64, error)
	GetByRecipient(ctx context.Context, recipientID uint64, filter types.Filter) ([]entities.Notification, uint64, error)
	MarkRead(ctx context.Context, recipientID, id uint64) error
	MarkAllRead(ctx context.Context, recipientID uint64) (int64, error)
	CountUnread(ctx context.Context, recipientID uint64) (int64, error)
}

type NotificationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewNotificationRepository(storage *pgxpool.Pool, logger *zap.Logger) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage, logger: logger}
}

func scanNotification(row pgx.Row) (*entities.Notification, error) {
	var n entities.Notification
	err := row.Scan(&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Message, &n.RelatedEntity, &n.RelatedID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, notFound(err, "notification")
	}
	return &n, nil
}

func (r *NotificationRepository) InsertNotification(ctx context.Context, n entities.Notification) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("notifications").
		Columns("recipient_id", "type", "title", "message", "related_entity", "related_id").
		Values(n.RecipientID, n.Type, n.Title, n.Message, n.RelatedEntity, n.RelatedID))
}

func (r *NotificationRepository) GetByRecipient(ctx context.Context, recipientID uint64, filter types.Filter) ([]entities.Notification, uint64, error) {
	return fetchList(ctx, r.storage, notificationList, filter, scanNotification, sq.Eq{"n.recipient_id": recipientID})
}

// MarkRead чужое уведомление не найдёт и вернёт ErrNotFound.
func (r *NotificationRepository) MarkRead(ctx context.Context, recipientID, id uint64) error {
	return affected(r.storage.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID))
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID uint64) (int64, error) {
	tag, err := r.storage.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`, recipientID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uint64) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(id) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`, recipientID).Scan(&count)
	return count, err
}
