package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/geocoder"
)

type fakeGeocoder struct {
	calls  []string
	result *geocoder.Coordinates
	err    error
}

func (g *fakeGeocoder) Geocode(_ context.Context, address string) (*geocoder.Coordinates, error) {
	g.calls = append(g.calls, address)
	return g.result, g.err
}

func newCustomerService(repo *MockCustomerRepository, geo *fakeGeocoder) CustomerServiceInterface {
	return NewCustomerService(repo, nil, nil, geo, zap.NewNop())
}

func TestCreateCustomer_BlankNameRejectedBeforeRepository(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateCustomer(context.Background(), dto.CreateCustomerDTO{Name: name})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	}
	repo.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestCreateCustomer_TrimsFields(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	repo.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c entities.Customer) bool {
		return c.Name == "Yıldız Isı" && c.City.String == "Ankara" && !c.Notes.Valid
	})).Return(uint64(7), nil)
	repo.On("FindCustomer", mock.Anything, uint64(7)).Return(&entities.Customer{ID: 7, Name: "Yıldız Isı"}, nil)

	customer, err := svc.CreateCustomer(context.Background(), dto.CreateCustomerDTO{
		Name:  "  Yıldız Isı ",
		City:  null.StringFrom(" Ankara"),
		Notes: null.StringFrom("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), customer.ID)
	repo.AssertExpectations(t)
}

func TestCreateCustomer_PhoneStoredCanonical(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	repo.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(c entities.Customer) bool {
		return c.Phone.String == "5321234567"
	})).Return(uint64(8), nil)
	repo.On("FindCustomer", mock.Anything, uint64(8)).Return(&entities.Customer{ID: 8, Name: "Deniz Kafe"}, nil)

	_, err := svc.CreateCustomer(context.Background(), dto.CreateCustomerDTO{
		Name:  "Deniz Kafe",
		Phone: null.StringFrom("+90 (532) 123 45 67"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPhoneNull(t *testing.T) {
	assert.Equal(t, "5321234567", phoneNull(null.StringFrom("0532 123 45 67")).String)
	assert.Equal(t, "2163334455", phoneNull(null.StringFrom("0216 333 44 55")).String)
	assert.False(t, phoneNull(null.StringFrom("   ")).Valid)
	assert.False(t, phoneNull(null.String{}).Valid)
}

func TestUpdateCustomer_BlankNameRejected(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	_, err := svc.UpdateCustomer(context.Background(), 3, dto.UpdateCustomerDTO{Name: "  "})
	require.Error(t, err)
	repo.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_WithWorkOrders(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	repo.On("HasWorkOrders", mock.Anything, uint64(5)).Return(true, nil)

	err := svc.DeleteCustomer(context.Background(), 5)
	require.ErrorIs(t, err, apperrors.ErrCustomerHasWorkOrders)
	assert.Equal(t, "Bu müşteriye ait iş emirleri bulunduğu için silinemez", err.Error())
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	repo.AssertNotCalled(t, "DeleteCustomer", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_WithoutWorkOrders(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{})

	repo.On("HasWorkOrders", mock.Anything, uint64(5)).Return(false, nil)
	repo.On("DeleteCustomer", mock.Anything, uint64(5)).Return(nil)

	require.NoError(t, svc.DeleteCustomer(context.Background(), 5))
	repo.AssertExpectations(t)
}

func TestGeocode_MissingAddress(t *testing.T) {
	repo := new(MockCustomerRepository)
	geo := &fakeGeocoder{}
	svc := newCustomerService(repo, geo)

	_, err := svc.Geocode(context.Background(), dto.GeocodeRequestDTO{Address: "  "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	assert.Empty(t, geo.calls)
}

func TestGeocode_CustomerAddressStored(t *testing.T) {
	repo := new(MockCustomerRepository)
	geo := &fakeGeocoder{result: &geocoder.Coordinates{Latitude: 39.92, Longitude: 32.85}}
	svc := newCustomerService(repo, geo)

	repo.On("FindCustomer", mock.Anything, uint64(9)).Return(&entities.Customer{
		ID:       9,
		Name:     "Demir Apartmanı",
		Address:  null.StringFrom("Atatürk Blv. 12"),
		District: null.StringFrom("Çankaya"),
		City:     null.StringFrom("Ankara"),
	}, nil)
	repo.On("UpdateCoordinates", mock.Anything, uint64(9), 39.92, 32.85).Return(nil)

	res, err := svc.Geocode(context.Background(), dto.GeocodeRequestDTO{CustomerID: 9})
	require.NoError(t, err)
	assert.Equal(t, 39.92, res.Latitude)
	assert.Equal(t, []string{"Atatürk Blv. 12, Çankaya, Ankara, Türkiye"}, geo.calls)
	repo.AssertExpectations(t)
}

func TestGeocode_UpstreamFailure(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := newCustomerService(repo, &fakeGeocoder{err: errors.New("connection refused")})

	_, err := svc.Geocode(context.Background(), dto.GeocodeRequestDTO{Address: "Kızılay, Ankara"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
	repo.AssertNotCalled(t, "UpdateCoordinates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeocode_AddressNotFound(t *testing.T) {
	svc := newCustomerService(new(MockCustomerRepository), &fakeGeocoder{err: geocoder.ErrAddressNotFound})

	_, err := svc.Geocode(context.Background(), dto.GeocodeRequestDTO{Address: "yok böyle bir yer"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
}
