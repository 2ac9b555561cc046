package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/pkg/config"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/utils"
)

var testAuthConfig = config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}

func newAuthFixture(t *testing.T, active bool) (*MockProfileRepository, *MockCacheRepository, AuthServiceInterface) {
	t.Helper()
	hash, err := utils.HashPassword("dogru-sifre")
	require.NoError(t, err)

	profiles := new(MockProfileRepository)
	cache := new(MockCacheRepository)
	profiles.On("FindByEmail", mock.Anything, "tekniker@example.com").Return(&entities.Profile{
		ID: 7, Email: "tekniker@example.com", PasswordHash: hash, Role: "user", IsActive: active,
	}, nil)
	return profiles, cache, NewAuthService(profiles, cache, zap.NewNop(), testAuthConfig)
}

func TestLogin_Success(t *testing.T) {
	_, cache, svc := newAuthFixture(t, true)
	cache.On("Get", mock.Anything, "lockout:7").Return("", redis.Nil)
	cache.On("Del", mock.Anything, []string{"login_attempts:7", "lockout:7"}).Return(nil)

	profile, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "dogru-sifre"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), profile.ID)
	cache.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("FindByEmail", mock.Anything, "yok@example.com").Return(nil, apperrors.ErrNotFound)
	svc := NewAuthService(profiles, new(MockCacheRepository), zap.NewNop(), testAuthConfig)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "yok@example.com", Password: "x"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LockedAccount(t *testing.T) {
	_, cache, svc := newAuthFixture(t, true)
	cache.On("Get", mock.Anything, "lockout:7").Return("locked", nil)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "dogru-sifre"})
	require.ErrorIs(t, err, apperrors.ErrAccountLocked)
	cache.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestLogin_FirstFailureStartsWindow(t *testing.T) {
	_, cache, svc := newAuthFixture(t, true)
	cache.On("Get", mock.Anything, "lockout:7").Return("", redis.Nil)
	cache.On("Incr", mock.Anything, "login_attempts:7").Return(int64(1), nil)
	cache.On("Expire", mock.Anything, "login_attempts:7", testAuthConfig.LockoutDuration).Return(true, nil)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "yanlis"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_LockoutAfterMaxAttempts(t *testing.T) {
	_, cache, svc := newAuthFixture(t, true)
	cache.On("Get", mock.Anything, "lockout:7").Return("", redis.Nil)
	cache.On("Incr", mock.Anything, "login_attempts:7").Return(int64(3), nil)
	cache.On("Set", mock.Anything, "lockout:7", "locked", testAuthConfig.LockoutDuration).Return(nil)
	cache.On("Del", mock.Anything, []string{"login_attempts:7"}).Return(nil)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "yanlis"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	cache.AssertExpectations(t)
}

func TestLogin_CacheFailureDoesNotBlockLogin(t *testing.T) {
	_, cache, svc := newAuthFixture(t, true)
	cache.On("Get", mock.Anything, "lockout:7").Return("", errors.New("redis: connection refused"))
	cache.On("Del", mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "dogru-sifre"})
	require.NoError(t, err)
}

func TestLogin_InactiveProfile(t *testing.T) {
	_, cache, svc := newAuthFixture(t, false)
	cache.On("Get", mock.Anything, "lockout:7").Return("", redis.Nil)
	cache.On("Del", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "tekniker@example.com", Password: "dogru-sifre"})
	require.ErrorIs(t, err, apperrors.ErrAccountInactive)
}
