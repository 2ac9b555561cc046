package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	apperrors "saha-servis/pkg/errors"
)

func newDeviceService(repo *MockDeviceRepository, storage *fakeStorage) DeviceServiceInterface {
	return NewDeviceService(repo, new(MockCustomerRepository), storage, zap.NewNop())
}

func foreignDevice() *entities.CustomerDevice {
	return &entities.CustomerDevice{
		ID:         99,
		CustomerID: 7,
		DeviceType: "Kombi",
		PhotoURL:   null.StringFrom("/uploads/devices/eski.jpg"),
	}
}

func TestFindDevice_OtherCustomerNotFound(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := newDeviceService(repo, &fakeStorage{})
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)

	_, err := svc.FindDevice(context.Background(), 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	device, err := svc.FindDevice(context.Background(), 7, 99)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), device.ID)
}

func TestUpdateDevice_OtherCustomerNotTouched(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := newDeviceService(repo, &fakeStorage{})
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)

	_, err := svc.UpdateDevice(context.Background(), 1, 99, dto.UpdateDeviceDTO{DeviceType: "Klima"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "UpdateDevice", mock.Anything, mock.Anything)
}

func TestDeleteDevice_OtherCustomerNotTouched(t *testing.T) {
	repo := new(MockDeviceRepository)
	storage := &fakeStorage{}
	svc := newDeviceService(repo, storage)
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)

	err := svc.DeleteDevice(context.Background(), 1, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
	assert.Empty(t, storage.deleted)
}

func TestDeleteDevice_RemovesPhoto(t *testing.T) {
	repo := new(MockDeviceRepository)
	storage := &fakeStorage{}
	svc := newDeviceService(repo, storage)
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)
	repo.On("DeleteDevice", mock.Anything, uint64(99)).Return(nil)

	require.NoError(t, svc.DeleteDevice(context.Background(), 7, 99))

	assert.Equal(t, []string{"/uploads/devices/eski.jpg"}, storage.deleted)
	repo.AssertExpectations(t)
}

func TestUploadPhoto_OtherCustomerRejectedBeforeFile(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := newDeviceService(repo, &fakeStorage{})
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)

	_, err := svc.UploadPhoto(context.Background(), 1, 99, nil)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "UpdatePhoto", mock.Anything, mock.Anything, mock.Anything)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func photoHeader(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("photo", name)
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestUploadPhoto_UsesDevicePrefixAndReplacesOld(t *testing.T) {
	repo := new(MockDeviceRepository)
	storage := &fakeStorage{}
	svc := newDeviceService(repo, storage)
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)
	repo.On("UpdatePhoto", mock.Anything, uint64(99), null.StringFrom("/uploads/devices/yeni.png")).Return(nil)

	_, err := svc.UploadPhoto(context.Background(), 7, 99, photoHeader(t, "yeni.png"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/devices/yeni.png"}, storage.saved)
	assert.Equal(t, []string{"/uploads/devices/eski.jpg"}, storage.deleted)
}

func TestUploadPhoto_DBFailureRemovesNewFileAndLogsCleanupError(t *testing.T) {
	repo := new(MockDeviceRepository)
	storage := &fakeStorage{deleteErr: errors.New("s3 down")}
	core, logs := observer.New(zap.WarnLevel)
	svc := NewDeviceService(repo, new(MockCustomerRepository), storage, zap.New(core))

	dbErr := errors.New("db down")
	repo.On("FindDevice", mock.Anything, uint64(99)).Return(foreignDevice(), nil)
	repo.On("UpdatePhoto", mock.Anything, uint64(99), mock.Anything).Return(dbErr)

	_, err := svc.UploadPhoto(context.Background(), 7, 99, photoHeader(t, "yeni.png"))

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, []string{"/uploads/devices/yeni.png"}, storage.deleted)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/uploads/devices/yeni.png", logs.All()[0].ContextMap()["url"])
}
