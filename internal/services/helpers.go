package services

import (
	"strings"

	"github.com/aarondl/null/v8"

	"saha-servis/pkg/utils"
)

// nullString: пустая строка после trim хранится как NULL.
func nullString(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func trimNull(s null.String) null.String {
	if !s.Valid {
		return s
	}
	return nullString(s.String)
}

// phoneNull хранит номер в виде 10 цифр (5XXXXXXXXX). Короткий номер остаётся как введён.
func phoneNull(s null.String) null.String {
	s = trimNull(s)
	if !s.Valid {
		return s
	}
	if normalized := utils.NormalizeTurkishPhoneNumber(s.String); normalized != "" {
		return null.StringFrom(normalized)
	}
	return s
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
