package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/config"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.Profile, error)
	GetProfile(ctx context.Context, profileID uint64) (*entities.Profile, error)
}

type AuthService struct {
	profileRepo repositories.ProfileRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	logger      *zap.Logger
	cfg         config.AuthConfig
}

func NewAuthService(
	profileRepo repositories.ProfileRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		profileRepo: profileRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cfg:         cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.checkLockout(ctx, profile.ID); err != nil {
		return nil, err
	}
	if err := utils.ComparePasswords(profile.PasswordHash, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, profile.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, profile.ID)

	if !profile.IsActive {
		s.logger.Warn("Попытка входа в неактивный профиль", zap.Uint64("profileID", profile.ID))
		return nil, apperrors.ErrAccountInactive
	}
	return profile, nil
}

func (s *AuthService) GetProfile(ctx context.Context, profileID uint64) (*entities.Profile, error) {
	return s.profileRepo.FindByID(ctx, profileID)
}

// checkLockout: если ключ блокировки есть, вход запрещён. Недоступный Redis вход не блокирует.
func (s *AuthService) checkLockout(ctx context.Context, profileID uint64) error {
	if _, err := s.cacheRepo.Get(ctx, fmt.Sprintf(constants.CacheKeyLockout, profileID)); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, profileID uint64) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, profileID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("Не удалось учесть неудачную попытку входа", zap.Uint64("profileID", profileID), zap.Error(err))
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf(constants.CacheKeyLockout, profileID)
		if err := s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration); err != nil {
			s.logger.Error("Не удалось заблокировать профиль", zap.Uint64("profileID", profileID), zap.Error(err))
		}
		_ = s.cacheRepo.Del(ctx, attemptsKey)
		s.logger.Warn("Профиль временно заблокирован", zap.Uint64("profileID", profileID), zap.Int64("attempts", attempts))
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, profileID uint64) {
	_ = s.cacheRepo.Del(ctx,
		fmt.Sprintf(constants.CacheKeyLoginAttempts, profileID),
		fmt.Sprintf(constants.CacheKeyLockout, profileID),
	)
}
