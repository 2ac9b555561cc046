package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"
	"strings"

	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/service"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	contextProfileIDKey = "profileID"
	contextRoleKey      = "role"

	APIKeyHeader = "x-api-key"
)

// SessionProfile - то, что middleware знает о пользователе сессии.
type SessionProfile struct {
	ID       uint64
	Role     string
	IsActive bool
}

// ProfileRoleLookup читает роль профиля из БД. Кеширования нет.
type ProfileRoleLookup interface {
	GetSessionProfile(ctx context.Context, profileID uint64) (*SessionProfile, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	profiles   ProfileRoleLookup
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, profiles ProfileRoleLookup, cookieName string, logger *zap.Logger) *AuthMiddleware {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &AuthMiddleware{
		jwtService: jwtSvc,
		profiles:   profiles,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// resolveSession валидирует токен и читает актуальную роль профиля.
func (m *AuthMiddleware) resolveSession(c echo.Context) (*SessionProfile, error) {
	tokenString := m.extractToken(c)
	if tokenString == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	profile, err := m.profiles.GetSessionProfile(c.Request().Context(), claims.ProfileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}
	if !profile.IsActive {
		return nil, apperrors.ErrAccountInactive
	}
	return profile, nil
}

func (m *AuthMiddleware) attach(c echo.Context, profile *SessionProfile) {
	c.Set(contextProfileIDKey, profile.ID)
	c.Set(contextRoleKey, profile.Role)
	c.SetRequest(c.Request().WithContext(utils.WithSession(c.Request().Context(), profile.ID, profile.Role)))
}

func isAuthFailure(err error) bool {
	return errors.Is(err, apperrors.ErrSessionNotFound) ||
		errors.Is(err, apperrors.ErrInvalidToken) ||
		errors.Is(err, apperrors.ErrTokenExpired) ||
		errors.Is(err, apperrors.ErrInvalidSigningMethod) ||
		errors.Is(err, apperrors.ErrAccountInactive)
}

// Auth - для страниц: без сессии редирект на /auth/login.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := m.resolveSession(c)
		if err != nil {
			if isAuthFailure(err) {
				m.logger.Debug("AuthMiddleware: нет валидной сессии", zap.String("uri", c.Request().RequestURI), zap.Error(err))
				return c.Redirect(http.StatusFound, constants.LoginPath)
			}
			return utils.ErrorResponse(c, err, m.logger)
		}
		m.attach(c, profile)
		return next(c)
	}
}

// AuthAPI - для /api: 401 вместо редиректа.
func (m *AuthMiddleware) AuthAPI(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := m.resolveSession(c)
		if err != nil {
			if isAuthFailure(err) {
				return utils.APIErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return utils.APIErrorResponse(c, err, m.logger)
		}
		m.attach(c, profile)
		return next(c)
	}
}

// RoleRedirects применяет правила маршрутизации по роли. Ставится после Auth.
//   - user на /admin/* -> /dashboard
//   - admin/yonetici на /dashboard (ровно) -> /admin/dashboard
func (m *AuthMiddleware) RoleRedirects(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(contextRoleKey).(string)
		path := c.Request().URL.Path

		if !constants.IsManagerRole(role) && isAdminPath(path) {
			return c.Redirect(http.StatusFound, constants.UserHomePath)
		}
		if constants.IsManagerRole(role) && strings.TrimSuffix(path, "/") == constants.UserHomePath {
			return c.Redirect(http.StatusFound, constants.AdminHomePath)
		}
		return next(c)
	}
}

func isAdminPath(path string) bool {
	return path == constants.AdminSectionPrefix || strings.HasPrefix(path, constants.AdminSectionPrefix+"/")
}

// RequireRoles - для страниц: чужая роль уводится на свою домашнюю страницу.
func (m *AuthMiddleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(contextRoleKey).(string)
			if !slices.Contains(roles, role) {
				m.logger.Warn("RequireRoles: доступ запрещён",
					zap.String("role", role), zap.String("uri", c.Request().RequestURI))
				return c.Redirect(http.StatusFound, constants.HomePathForRole(role))
			}
			return next(c)
		}
	}
}

// RequireRolesAPI - для /api: 403.
func (m *AuthMiddleware) RequireRolesAPI(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(contextRoleKey).(string)
			if !slices.Contains(roles, role) {
				return utils.APIErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}

// APIKeyOrRoles пропускает запрос с верным x-api-key (если ключ настроен),
// иначе требует сессию с одной из ролей.
func (m *AuthMiddleware) APIKeyOrRoles(apiKey string, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		sessionChain := m.AuthAPI(m.RequireRolesAPI(roles...)(next))
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(APIKeyHeader)
			if provided != "" {
				if apiKey != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
					return next(c)
				}
				m.logger.Warn("APIKeyOrRoles: неверный API ключ", zap.String("uri", c.Request().RequestURI))
				return utils.APIErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return sessionChain(c)
		}
	}
}

// RedirectIfAuthenticated уводит уже вошедшего пользователя со страницы входа.
func (m *AuthMiddleware) RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := m.resolveSession(c)
		if err == nil {
			return c.Redirect(http.StatusFound, constants.HomePathForRole(profile.Role))
		}
		return next(c)
	}
}

// RootRedirect - обработчик для "/".
func (m *AuthMiddleware) RootRedirect(c echo.Context) error {
	profile, err := m.resolveSession(c)
	if err != nil {
		return c.Redirect(http.StatusFound, constants.LoginPath)
	}
	return c.Redirect(http.StatusFound, constants.HomePathForRole(profile.Role))
}
