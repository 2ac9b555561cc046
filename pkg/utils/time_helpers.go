package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	apperrors "saha-servis/pkg/errors"
)

const DateLayout = "2006-01-02"

// DaysUntil - количество полных календарных дней от now до target (отрицательное, если дата прошла).
func DaysUntil(now, target time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := target.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// FormatDaysLeft - "3 gün kaldı", "bugün", "2 gün geçti".
func FormatDaysLeft(days int) string {
	switch {
	case days == 0:
		return "bugün"
	case days > 0:
		return fmt.Sprintf("%d gün kaldı", days)
	default:
		return fmt.Sprintf("%d gün geçti", -days)
	}
}

// ParseNullDate разбирает дату формата 2006-01-02. Пустое значение даёт невалидный null.Time.
func ParseNullDate(s null.String) (null.Time, error) {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s.String))
	if err != nil {
		return null.Time{}, apperrors.NewInvalidInputError("geçersiz tarih %q, beklenen biçim YYYY-AA-GG", s.String)
	}
	return null.TimeFrom(t), nil
}

// NullDateString - обратное преобразование для форм.
func NullDateString(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.Format(DateLayout))
}
