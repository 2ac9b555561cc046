package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"saha-servis/pkg/constants"
	"saha-servis/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedAdminProfile(ctx context.Context, db *pgxpool.Pool, admin AdminSeed) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		return fmt.Errorf("email и пароль администратора обязательны")
	}

	var profileID uint64
	err := db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&profileID)
	if err == nil {
		log.Printf("    - Профиль %s уже существует (id=%d). Пропускаем.", email, profileID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования профиля: %w", err)
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	fullName := admin.FullName
	if fullName == "" {
		fullName = "Sistem Yöneticisi"
	}

	err = db.QueryRow(ctx,
		`INSERT INTO profiles (email, full_name, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, TRUE) RETURNING id`,
		email, fullName, hashedPassword, constants.RoleAdmin,
	).Scan(&profileID)
	if err != nil {
		return fmt.Errorf("не удалось создать профиль администратора: %w", err)
	}

	log.Printf("    - Администратор %s создан (id=%d)", email, profileID)
	return nil
}
