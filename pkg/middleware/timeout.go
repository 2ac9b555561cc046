package middleware

import (
	"time"

	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestTimeout ограничивает контекст запроса, все обращения к БД и HTTP получают его.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}
			ctx, cancel := utils.ContextWithTimeout(c, timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
