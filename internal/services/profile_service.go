package services

import (
	"context"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

// ProfileService - управление пользователями в /admin/kullanicilar.
type ProfileService struct {
	repo   repositories.ProfileRepositoryInterface
	logger *zap.Logger
}

func NewProfileService(repo repositories.ProfileRepositoryInterface, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) GetProfiles(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Profile], error) {
	list, total, err := s.repo.GetProfiles(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *ProfileService) FindProfile(ctx context.Context, id uint64) (*entities.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) CreateProfile(ctx context.Context, payload dto.CreateProfileDTO) (*entities.Profile, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}
	profile := entities.Profile{
		Email:          strings.ToLower(strings.TrimSpace(payload.Email)),
		FullName:       strings.TrimSpace(payload.FullName),
		Phone:          phoneNull(payload.Phone),
		PasswordHash:   hash,
		Role:           payload.Role,
		EmployeeID:     payload.EmployeeID,
		TelegramChatID: payload.TelegramChatID,
		IsActive:       true,
	}
	id, err := s.repo.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Создан профиль", zap.Uint64("id", id), zap.String("role", profile.Role))
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id uint64, payload dto.UpdateProfileDTO) (*entities.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.FullName != nil {
		profile.FullName = strings.TrimSpace(*payload.FullName)
	}
	if payload.Phone != nil {
		profile.Phone = phoneNull(null.StringFrom(*payload.Phone))
	}
	if payload.Role != nil {
		profile.Role = *payload.Role
	}
	if payload.IsActive != nil {
		profile.IsActive = *payload.IsActive
	}
	if payload.EmployeeID.Valid {
		profile.EmployeeID = payload.EmployeeID
	}
	if payload.TelegramChatID.Valid {
		profile.TelegramChatID = payload.TelegramChatID
	}
	if payload.Password != nil {
		hash, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		profile.PasswordHash = hash
	}

	if err := s.repo.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
