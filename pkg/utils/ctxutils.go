// pkg/utils/ctxutils.go

package utils

import (
	"context"

	"saha-servis/pkg/constants"
	"saha-servis/pkg/contextkeys"
	apperrors "saha-servis/pkg/errors"
)

// WithSession кладет ID профиля и роль в контекст запроса.
func WithSession(ctx context.Context, profileID uint64, role string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, profileID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok || role == "" {
		return "", apperrors.ErrUnauthorized
	}
	return role, nil
}

// IsManager - true для admin и yonetici.
func IsManager(ctx context.Context) bool {
	role, err := GetUserRoleFromCtx(ctx)
	return err == nil && constants.IsManagerRole(role)
}
