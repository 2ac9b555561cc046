package services

import (
	"context"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"saha-servis/config"
	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/filestorage"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"

	"github.com/aarondl/null/v8"
)

type DeviceServiceInterface interface {
	GetDevices(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.CustomerDevice], error)
	FindDevice(ctx context.Context, customerID, id uint64) (*entities.CustomerDevice, error)
	CreateDevice(ctx context.Context, customerID uint64, payload dto.CreateDeviceDTO) (*entities.CustomerDevice, error)
	UpdateDevice(ctx context.Context, customerID, id uint64, payload dto.UpdateDeviceDTO) (*entities.CustomerDevice, error)
	UploadPhoto(ctx context.Context, customerID, id uint64, fileHeader *multipart.FileHeader) (*entities.CustomerDevice, error)
	DeleteDevice(ctx context.Context, customerID, id uint64) error
}

type DeviceService struct {
	repo         repositories.DeviceRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	storage      filestorage.FileStorageInterface
	logger       *zap.Logger
}

func NewDeviceService(
	repo repositories.DeviceRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	storage filestorage.FileStorageInterface,
	logger *zap.Logger,
) DeviceServiceInterface {
	return &DeviceService{repo: repo, customerRepo: customerRepo, storage: storage, logger: logger}
}

func (s *DeviceService) GetDevices(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.CustomerDevice], error) {
	list, total, err := s.repo.GetDevices(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

// FindDevice ищет устройство в пределах клиента. Чужое устройство отдаётся как ErrNotFound.
func (s *DeviceService) FindDevice(ctx context.Context, customerID, id uint64) (*entities.CustomerDevice, error) {
	device, err := s.repo.FindDevice(ctx, id)
	if err != nil {
		return nil, err
	}
	if device.CustomerID != customerID {
		return nil, apperrors.ErrNotFound
	}
	return device, nil
}

func deviceFromDTO(payload dto.CreateDeviceDTO) (entities.CustomerDevice, error) {
	installed, err := utils.ParseNullDate(payload.InstallationDate)
	if err != nil {
		return entities.CustomerDevice{}, err
	}
	warranty, err := utils.ParseNullDate(payload.WarrantyEndDate)
	if err != nil {
		return entities.CustomerDevice{}, err
	}
	return entities.CustomerDevice{
		DeviceType:       nullString(payload.DeviceType).String,
		Brand:            trimNull(payload.Brand),
		Model:            trimNull(payload.Model),
		SerialNumber:     trimNull(payload.SerialNumber),
		InstallationDate: installed,
		WarrantyEndDate:  warranty,
		Notes:            trimNull(payload.Notes),
	}, nil
}

func (s *DeviceService) CreateDevice(ctx context.Context, customerID uint64, payload dto.CreateDeviceDTO) (*entities.CustomerDevice, error) {
	if _, err := s.customerRepo.FindCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	device, err := deviceFromDTO(payload)
	if err != nil {
		return nil, err
	}
	device.CustomerID = customerID
	id, err := s.repo.CreateDevice(ctx, device)
	if err != nil {
		return nil, err
	}
	return s.repo.FindDevice(ctx, id)
}

func (s *DeviceService) UpdateDevice(ctx context.Context, customerID, id uint64, payload dto.UpdateDeviceDTO) (*entities.CustomerDevice, error) {
	existing, err := s.FindDevice(ctx, customerID, id)
	if err != nil {
		return nil, err
	}
	device, err := deviceFromDTO(dto.CreateDeviceDTO(payload))
	if err != nil {
		return nil, err
	}
	device.ID = id
	device.CustomerID = existing.CustomerID
	if err := s.repo.UpdateDevice(ctx, device); err != nil {
		return nil, err
	}
	return s.repo.FindDevice(ctx, id)
}

// UploadPhoto заменяет фото устройства. Старый файл удаляется после успешной записи нового URL.
func (s *DeviceService) UploadPhoto(ctx context.Context, customerID, id uint64, fileHeader *multipart.FileHeader) (*entities.CustomerDevice, error) {
	device, err := s.FindDevice(ctx, customerID, id)
	if err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := utils.ValidateFile(fileHeader, src, constants.UploadContextDevicePhoto.String())
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err, nil)
	}

	prefix := config.UploadContexts[constants.UploadContextDevicePhoto.String()].PathPrefix
	url, err := s.storage.Save(ctx, src, fileHeader.Filename, prefix, mimeType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePhoto(ctx, id, null.StringFrom(url)); err != nil {
		if delErr := s.storage.Delete(ctx, url); delErr != nil {
			s.logger.Warn("Не удалось удалить загруженное фото после ошибки", zap.String("url", url), zap.Error(delErr))
		}
		return nil, err
	}

	if device.PhotoURL.Valid {
		if err := s.storage.Delete(ctx, device.PhotoURL.String); err != nil {
			s.logger.Warn("Не удалось удалить старое фото устройства", zap.String("url", device.PhotoURL.String), zap.Error(err))
		}
	}
	return s.repo.FindDevice(ctx, id)
}

func (s *DeviceService) DeleteDevice(ctx context.Context, customerID, id uint64) error {
	device, err := s.FindDevice(ctx, customerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteDevice(ctx, id); err != nil {
		return err
	}
	if device.PhotoURL.Valid {
		if err := s.storage.Delete(ctx, device.PhotoURL.String); err != nil {
			s.logger.Warn("Не удалось удалить фото устройства", zap.String("url", device.PhotoURL.String), zap.Error(err))
		}
	}
	return nil
}
