package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT и сессия
	ErrInvalidSigningMethod = errors.New("geçersiz imza yöntemi")
	ErrInvalidToken         = errors.New("geçersiz oturum anahtarı")
	ErrTokenExpired         = errors.New("oturum süresi doldu")
	ErrSessionNotFound      = errors.New("oturum bulunamadı")

	// Авторизация
	ErrInvalidCredentials = errors.New("e-posta veya şifre hatalı")
	ErrAccountLocked      = errors.New("çok fazla hatalı deneme, hesap geçici olarak kilitlendi")
	ErrAccountInactive    = errors.New("hesap pasif durumda")
	ErrUnauthorized       = errors.New("oturum açmanız gerekiyor")
	ErrForbidden          = errors.New("bu işlem için yetkiniz yok")

	// Контекст
	ErrUserIDNotFoundInContext = errors.New("istek bağlamında kullanıcı bulunamadı")

	// Склад и zimmet
	ErrInsufficientStock     = errors.New("depoda yeterli stok yok")
	ErrStockItemAmbiguous    = errors.New("ürün veya aletten yalnızca biri seçilmelidir")
	ErrInvalidStatusChange   = errors.New("bu durum değişikliğine izin verilmiyor")
	ErrToolNotAvailable      = errors.New("alet zimmetlenmeye uygun değil")
	ErrCustomerHasWorkOrders = errors.New("Bu müşteriye ait iş emirleri bulunduğu için silinemez")

	// Общие
	ErrNotFound       = errors.New("kayıt bulunamadı")
	ErrBadRequest     = errors.New("geçersiz istek")
	ErrConflict       = errors.New("kayıt zaten mevcut")
	ErrInternalServer = errors.New("sunucu hatası")
)

// HttpError несёт код ответа, сообщение для пользователя и исходную ошибку для лога.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// StatusCode сопоставляет доменные ошибки с HTTP-кодами.
func StatusCode(err error) int {
	var httpErr *HttpError
	var inputErr *InvalidInputError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrStockItemAmbiguous),
		errors.Is(err, ErrInvalidStatusChange),
		errors.Is(err, ErrToolNotAvailable),
		errors.Is(err, ErrCustomerHasWorkOrders):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountLocked):
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
