package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/service"
	"saha-servis/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfiles map[uint64]*SessionProfile

func (f fakeProfiles) GetSessionProfile(_ context.Context, id uint64) (*SessionProfile, error) {
	p, ok := f[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

const (
	adminID    uint64 = 1
	userID     uint64 = 2
	inactiveID uint64 = 3
)

const testAPIKey = "bakim-anahtari"

type testServer struct {
	e   *echo.Echo
	jwt service.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, logger)
	profiles := fakeProfiles{
		adminID:    {ID: adminID, Role: constants.RoleAdmin, IsActive: true},
		userID:     {ID: userID, Role: constants.RoleUser, IsActive: true},
		inactiveID: {ID: inactiveID, Role: constants.RoleAdmin, IsActive: false},
	}
	mw := NewAuthMiddleware(jwtSvc, profiles, "session", logger)

	ok := func(c echo.Context) error {
		role, _ := utils.GetUserRoleFromCtx(c.Request().Context())
		return c.String(http.StatusOK, role)
	}

	e := echo.New()
	e.GET("/", mw.RootRedirect)
	e.GET("/auth/login", ok, mw.RedirectIfAuthenticated)

	pages := e.Group("", mw.Auth, mw.RoleRedirects)
	pages.GET("/dashboard", ok)
	pages.GET("/dashboard/bildirimler", ok)
	pages.GET("/admin/dashboard", ok)
	pages.GET("/musteri", ok)
	pages.DELETE("/musteri/:id", ok, mw.RequireRoles(constants.ManagerRoles...))

	api := e.Group("/api")
	api.POST("/customers/geocode", ok, mw.AuthAPI, mw.RequireRolesAPI(constants.ManagerRoles...))
	api.GET("/vehicles/check-maintenance", ok, mw.APIKeyOrRoles(testAPIKey, constants.ManagerRoles...))

	return &testServer{e: e, jwt: jwtSvc}
}

func (s *testServer) do(t *testing.T, method, path string, profileID uint64, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if profileID != 0 {
		token, err := s.jwt.GenerateSessionToken(profileID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, location, rec.Header().Get(echo.HeaderLocation))
}

func TestAuth_UnauthenticatedRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)
	assertRedirect(t, s.do(t, http.MethodGet, "/musteri", 0, nil), "/auth/login")
	assertRedirect(t, s.do(t, http.MethodGet, "/admin/dashboard", 0, nil), "/auth/login")
}

func TestAuth_InvalidOrInactiveSessionRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/musteri", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assertRedirect(t, rec, "/auth/login")

	assertRedirect(t, s.do(t, http.MethodGet, "/musteri", inactiveID, nil), "/auth/login")
	assertRedirect(t, s.do(t, http.MethodGet, "/musteri", 999, nil), "/auth/login")
}

func TestRoleRedirects(t *testing.T) {
	s := newTestServer(t)

	assertRedirect(t, s.do(t, http.MethodGet, "/admin/dashboard", userID, nil), "/dashboard")
	assertRedirect(t, s.do(t, http.MethodGet, "/dashboard", adminID, nil), "/admin/dashboard")

	rec := s.do(t, http.MethodGet, "/dashboard/bildirimler", adminID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/admin/dashboard", adminID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.RoleAdmin, rec.Body.String())
}

func TestRootAndLoginRedirects(t *testing.T) {
	s := newTestServer(t)

	assertRedirect(t, s.do(t, http.MethodGet, "/", 0, nil), "/auth/login")
	assertRedirect(t, s.do(t, http.MethodGet, "/", userID, nil), "/dashboard")
	assertRedirect(t, s.do(t, http.MethodGet, "/", adminID, nil), "/admin/dashboard")
	assertRedirect(t, s.do(t, http.MethodGet, "/auth/login", userID, nil), "/dashboard")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/auth/login", 0, nil).Code)
}

func TestRequireRoles_Page(t *testing.T) {
	s := newTestServer(t)

	assertRedirect(t, s.do(t, http.MethodDelete, "/musteri/5", userID, nil), "/dashboard")
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/musteri/5", adminID, nil).Code)
}

func TestBearerHeaderAccepted(t *testing.T) {
	s := newTestServer(t)
	token, err := s.jwt.GenerateSessionToken(userID)
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/musteri", 0, map[string]string{echo.HeaderAuthorization: "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_NeverRedirects(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/customers/geocode", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	rec = s.do(t, http.MethodPost, "/api/customers/geocode", userID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/customers/geocode", adminID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyOrRoles(t *testing.T) {
	s := newTestServer(t)
	path := "/api/vehicles/check-maintenance"

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, 0, map[string]string{APIKeyHeader: testAPIKey}).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, path, 0, map[string]string{APIKeyHeader: "yanlis"}).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, path, 0, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, path, userID, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, adminID, nil).Code)
}
