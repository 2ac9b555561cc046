// Package geocoder - клиент Nominatim-совместимого API (адрес -> координаты).
package geocoder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrAddressNotFound = errors.New("adres için konum bulunamadı")

type Coordinates struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name,omitempty"`
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type NominatimClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, logger *zap.Logger) *NominatimClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &NominatimClient{httpClient: client, logger: logger}
}

func (c *NominatimClient) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	var places []nominatimPlace

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            address,
			"format":       "json",
			"limit":        "1",
			"countrycodes": "tr",
		}).
		SetResult(&places).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	if resp.IsError() {
		c.logger.Warn("Геокодер вернул ошибку", zap.Int("status", resp.StatusCode()), zap.String("address", address))
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode())
	}
	if len(places) == 0 {
		return nil, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", places[0].Lon, err)
	}

	return &Coordinates{Latitude: lat, Longitude: lon, DisplayName: places[0].DisplayName}, nil
}
