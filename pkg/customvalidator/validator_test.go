package customvalidator

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string           `validate:"required,notblank"`
	Title    *string          `validate:"omitempty,notblank"`
	Phone    string           `validate:"tr_phone"`
	Plate    string           `validate:"tr_plate"`
	Quantity decimal.Decimal  `validate:"decimal_gte0"`
	Price    *decimal.Decimal `validate:"omitempty,decimal_gt0"`
	Role     string           `validate:"role"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func valid() sample {
	return sample{
		Name:     "Akın Isı Sistemleri",
		Phone:    "0532 123 45 67",
		Plate:    "34 ABC 123",
		Quantity: decimal.NewFromInt(5),
		Role:     "yonetici",
	}
}

func TestCustomValidations_Valid(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(valid()))
}

func TestCustomValidations_Rejects(t *testing.T) {
	v := newValidator(t)
	blank := "   "
	negative := decimal.NewFromInt(-1)

	cases := map[string]func(s *sample){
		"blank name":     func(s *sample) { s.Name = "   " },
		"blank title":    func(s *sample) { s.Title = &blank },
		"bad phone":      func(s *sample) { s.Phone = "+992901234567" },
		"bad plate":      func(s *sample) { s.Plate = "99 ABC 123" },
		"negative qty":   func(s *sample) { s.Quantity = decimal.NewFromInt(-2) },
		"negative price": func(s *sample) { s.Price = &negative },
		"unknown role":   func(s *sample) { s.Role = "superuser" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid()
			mutate(&s)
			assert.Error(t, v.Struct(s))
		})
	}
}

func TestTurkishPhoneVariants(t *testing.T) {
	v := newValidator(t)
	for _, phone := range []string{"+905321234567", "05321234567", "5321234567", "(0532) 123-45-67", ""} {
		s := valid()
		s.Phone = phone
		assert.NoError(t, v.Struct(s), phone)
	}
}

type nullSample struct {
	Phone null.String         `validate:"omitempty,tr_phone"`
	Price decimal.NullDecimal `validate:"omitempty,decimal_gte0"`
}

func TestCustomValidations_NullTypes(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(nullSample{}))
	assert.NoError(t, v.Struct(nullSample{Phone: null.StringFrom("05321234567")}))
	assert.Error(t, v.Struct(nullSample{Phone: null.StringFrom("12")}))
	assert.Error(t, v.Struct(nullSample{Price: decimal.NewNullDecimal(decimal.NewFromInt(-5))}))
}
