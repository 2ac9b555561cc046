package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Параметры, которые не попадают в Filter.
var reservedQueryKeys = map[string]bool{
	"page":           true,
	"perPage":        true,
	"per_page":       true,
	"limit":          true,
	"offset":         true,
	"search":         true,
	"withPagination": true,
	"format":         true,
}

func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:           make(map[string]string),
		Filter:         make(map[string]interface{}),
		PerPage:        DefaultPerPage,
		Page:           1,
		WithPagination: true,
	}

	perPageStr := values.Get("perPage")
	if perPageStr == "" {
		perPageStr = values.Get("per_page")
	}
	if perPageStr == "" {
		perPageStr = values.Get("limit")
	}
	if perPageStr != "" {
		if l, err := strconv.Atoi(perPageStr); err == nil && l > 0 {
			if l > MaxPerPage {
				filterReq.PerPage = MaxPerPage
			} else {
				filterReq.PerPage = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
		}
	}
	filterReq.Offset = (filterReq.Page - 1) * filterReq.PerPage

	if values.Get("withPagination") == "false" {
		filterReq.WithPagination = false
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if key == "search" {
			filterReq.Search = strings.TrimSpace(vals[0])
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			filterReq.Filter[field] = strings.Join(vals, ",")
			continue
		}

		if reservedQueryKeys[key] {
			continue
		}
		// Именованный параметр (?status=beklemede) эквивалентен filter[status]
		if _, exists := filterReq.Filter[key]; !exists {
			filterReq.Filter[key] = vals[0]
		}
	}

	return filterReq
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message, details := resolveError(err, logger)

	response := map[string]interface{}{
		"status":  false,
		"message": message,
	}
	if details != nil {
		response["body"] = details
	}
	return c.JSON(code, response)
}

// APISuccessResponse - формат ответа /api: {"success": true, ...fields}.
func APISuccessResponse(c echo.Context, code int, fields map[string]interface{}) error {
	payload := map[string]interface{}{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return c.JSON(code, payload)
}

// APIErrorResponse - формат ошибки /api: {"error": "..."}.
func APIErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, message, _ := resolveError(err, logger)
	return c.JSON(code, map[string]interface{}{"error": message})
}

func resolveError(err error, logger *zap.Logger) (int, string, map[string]interface{}) {
	err = TranslatePgError(err)

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		var validationErrors validator.ValidationErrors
		if errors.As(httpErr.Err, &validationErrors) {
			return httpErr.Code, httpErr.Message + ": " + formatValidationErrors(validationErrors), httpErr.Details
		}
		return httpErr.Code, httpErr.Message, httpErr.Details
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest, "Doğrulama hatası: " + formatValidationErrors(validationErrors), nil
	}

	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err))
		return code, "Sunucu hatası", nil
	}
	return code, err.Error(), nil
}

func formatValidationErrors(validationErrors validator.ValidationErrors) string {
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("'%s' alanı '%s' kuralını sağlamıyor", e.Field(), e.Tag()))
	}
	return strings.Join(msgs, "; ")
}
