package utils

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(now, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysUntil(now, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, DaysUntil(now, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "3 gün kaldı", FormatDaysLeft(3))
	assert.Equal(t, "bugün", FormatDaysLeft(0))
}

func TestGenerateCodeFromName(t *testing.T) {
	assert.Equal(t, "KOMBI_FILTRESI_3_4", GenerateCodeFromName(`Kombi Filtresi 3/4"`))
	assert.Equal(t, "GUC_KAYNAGI", GenerateCodeFromName("  güç kaynağı "))
}

func TestNormalizeTurkishPhoneNumber(t *testing.T) {
	assert.Equal(t, "5321234567", NormalizeTurkishPhoneNumber("+90 (532) 123 45 67"))
	assert.Equal(t, "", NormalizeTurkishPhoneNumber("12345"))
}

func TestParseNullDate(t *testing.T) {
	empty, err := ParseNullDate(null.StringFrom("  "))
	require.NoError(t, err)
	assert.False(t, empty.Valid)

	d, err := ParseNullDate(null.StringFrom("2025-04-01"))
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, time.April, d.Time.Month())
	assert.Equal(t, "2025-04-01", NullDateString(d).String)

	_, err = ParseNullDate(null.StringFrom("01.04.2025"))
	assert.Error(t, err)
}
