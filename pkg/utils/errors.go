package utils

import (
	"errors"
	"net/http"

	apperrors "saha-servis/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
)

// TranslatePgError превращает ограничения PostgreSQL и неверные значения фильтров в ответы 409/400.
// Остальные ошибки возвращаются без изменений.
func TranslatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return apperrors.NewHttpError(http.StatusConflict, "Bu kayıt zaten mevcut", err,
			map[string]interface{}{"constraint": pgErr.ConstraintName})
	case pgForeignKeyViolation:
		return apperrors.NewHttpError(http.StatusBadRequest, "İlişkili kayıt bulunamadı veya kayıt kullanımda", err,
			map[string]interface{}{"constraint": pgErr.ConstraintName})
	case pgCheckViolation:
		return apperrors.NewHttpError(http.StatusBadRequest, "Geçersiz değer", err,
			map[string]interface{}{"constraint": pgErr.ConstraintName})
	case pgInvalidTextRepr, pgInvalidDatetime, pgDatetimeOverflow:
		return apperrors.NewHttpError(http.StatusBadRequest, "Geçersiz filtre değeri", err, nil)
	}
	return err
}
