// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"saha-servis/pkg/constants"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	turkishPhoneRegex = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)
	phoneCleanup      = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	// 34 ABC 123, 06 A 1234, 35 AB 12
	turkishPlateRegex = regexp.MustCompile(`^(0[1-9]|[1-7][0-9]|8[01]) ?[A-Z]{1,3} ?\d{2,5}$`)
)

// RegisterCustomValidations регистрирует все кастомные правила в экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)

	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("tr_phone", isTurkishPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("tr_plate", isTurkishPlate); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_gte0", isNonNegativeDecimal); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_gt0", isPositiveDecimal); err != nil {
		return err
	}
	if err := v.RegisterValidation("role", isKnownRole); err != nil {
		return err
	}
	return nil
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return field.String(), true
	case reflect.Ptr:
		if field.IsNil() {
			return "", false
		}
		if field.Elem().Kind() == reflect.String {
			return field.Elem().String(), true
		}
	}
	return "", false
}

// notblank: строка не пустая после trim. nil-указатель пропускается (для PATCH).
func isNotBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() == reflect.Ptr && fl.Field().IsNil() {
		return true
	}
	s, ok := stringValue(fl)
	return ok && strings.TrimSpace(s) != ""
}

func isTurkishPhoneNumber(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok || s == "" {
		return true
	}
	return turkishPhoneRegex.MatchString(phoneCleanup.Replace(s))
}

func isTurkishPlate(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return true
	}
	return turkishPlateRegex.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return decimal.Zero, false
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}

func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	if !ok {
		return fl.Field().Kind() == reflect.Ptr
	}
	return !d.IsNegative()
}

func isPositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	if !ok {
		return fl.Field().Kind() == reflect.Ptr
	}
	return d.IsPositive()
}

func isKnownRole(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl)
	if !ok {
		return true
	}
	return constants.IsValidRole(s)
}
