package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"saha-servis/internal/entities"
	"saha-servis/pkg/middleware"
	"saha-servis/pkg/types"
)

var profileColumns = []string{
	"p.id", "p.email", "p.full_name", "p.phone", "p.password_hash", "p.role",
	"p.employee_id", "p.telegram_chat_id", "p.is_active", "p.created_at", "p.updated_at",
}

var profileList = listSpec{
	From:        "profiles p",
	Columns:     profileColumns,
	CountColumn: "p.id",
	Search:      []string{"p.full_name", "p.email", "p.phone"},
	Allowed: map[string]string{
		"id":         "p.id",
		"role":       "p.role",
		"is_active":  "p.is_active",
		"full_name":  "p.full_name",
		"email":      "p.email",
		"created_at": "p.created_at",
	},
	DefaultSort: "p.full_name ASC",
}

type ProfileRepositoryInterface interface {
	middleware.ProfileRoleLookup
	GetProfiles(ctx context.Context, filter types.Filter) ([]entities.Profile, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	FindActiveByRoles(ctx context.Context, roles []string) ([]entities.Profile, error)
	CreateProfile(ctx context.Context, profile entities.Profile) (uint64, error)
	UpdateProfile(ctx context.Context, profile entities.Profile) error
}

type ProfileRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewProfileRepository(storage *pgxpool.Pool, logger *zap.Logger) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage, logger: logger}
}

func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var p entities.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.Phone, &p.PasswordHash, &p.Role,
		&p.EmployeeID, &p.TelegramChatID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "profile")
	}
	return &p, nil
}

func (r *ProfileRepository) GetProfiles(ctx context.Context, filter types.Filter) ([]entities.Profile, uint64, error) {
	return fetchList(ctx, r.storage, profileList, filter, scanProfile)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uint64) (*entities.Profile, error) {
	return queryOne(ctx, r.storage, profileList.base(profileColumns...).Where(sq.Eq{"p.id": id}), scanProfile)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return queryOne(ctx, r.storage, profileList.base(profileColumns...).Where(sq.Eq{"LOWER(p.email)": email}), scanProfile)
}

// GetSessionProfile читает роль на каждый запрос, без кеша.
func (r *ProfileRepository) GetSessionProfile(ctx context.Context, id uint64) (*middleware.SessionProfile, error) {
	var sp middleware.SessionProfile
	err := r.storage.QueryRow(ctx, `SELECT id, role, is_active FROM profiles WHERE id = $1`, id).
		Scan(&sp.ID, &sp.Role, &sp.IsActive)
	if err != nil {
		return nil, notFound(err, "profile")
	}
	return &sp, nil
}

func (r *ProfileRepository) FindActiveByRoles(ctx context.Context, roles []string) ([]entities.Profile, error) {
	builder := profileList.base(profileColumns...).
		Where(sq.Eq{"p.role": roles, "p.is_active": true}).
		OrderBy("p.id ASC")
	return querySelect(ctx, r.storage, builder, scanProfile)
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, p entities.Profile) (uint64, error) {
	return insertReturningID(ctx, r.storage, psql.Insert("profiles").
		Columns("email", "full_name", "phone", "password_hash", "role", "employee_id", "telegram_chat_id", "is_active").
		Values(strings.ToLower(strings.TrimSpace(p.Email)), p.FullName, p.Phone, p.PasswordHash, p.Role,
			p.EmployeeID, p.TelegramChatID, p.IsActive))
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, p entities.Profile) error {
	return execBuilder(ctx, r.storage, psql.Update("profiles").
		Set("full_name", p.FullName).
		Set("phone", p.Phone).
		Set("password_hash", p.PasswordHash).
		Set("role", p.Role).
		Set("employee_id", p.EmployeeID).
		Set("telegram_chat_id", p.TelegramChatID).
		Set("is_active", p.IsActive).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}))
}
