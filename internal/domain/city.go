package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

//go:generate mockgen -destination mocks/mock_city_service.go -package mocks github.com/synthapp/synth/internal/domain CityService
//go:generate mockgen -destination mocks/mock_city_repository.go -package mocks github.com/synthapp/synth/internal/domain CityRepository

const (
	DefaultCityRadiusMiles = 50
	DefaultCitySearchLimit = 20
)

type City struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	State          string   `json:"state,omitempty"`
	NormalizedName string   `json:"normalized_name"`
	Aliases        []string `json:"aliases,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	EventCount     int      `json:"event_count"`
	// DistanceMiles is set on nearby searches only
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

type NearbyCitiesRequest struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles float64
}

func (r *NearbyCitiesRequest) FromURLParams(queryParams url.Values) error {
	lat, err := strconv.ParseFloat(queryParams.Get("lat"), 64)
	if err != nil {
		return fmt.Errorf("invalid nearby cities request: lat is required")
	}
	lng, err := strconv.ParseFloat(queryParams.Get("lng"), 64)
	if err != nil {
		return fmt.Errorf("invalid nearby cities request: lng is required")
	}
	r.Latitude, r.Longitude = lat, lng
	r.RadiusMiles = DefaultCityRadiusMiles
	if raw := queryParams.Get("radius"); raw != "" {
		if r.RadiusMiles, err = strconv.ParseFloat(raw, 64); err != nil || r.RadiusMiles <= 0 {
			return fmt.Errorf("invalid nearby cities request: radius must be a positive number")
		}
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("invalid nearby cities request: coordinates out of range")
	}
	return nil
}

type CityService interface {
	ListCities(ctx context.Context, minEvents int) ([]*City, error)
	SearchCities(ctx context.Context, query string, limit int) ([]*City, error)
	NearbyCities(ctx context.Context, req *NearbyCitiesRequest) ([]*City, error)
}

type CityRepository interface {
	ListCityCenters(ctx context.Context) ([]*City, error)
	// AggregateEventCities groups upcoming events by venue city and state
	AggregateEventCities(ctx context.Context, from time.Time, minCount int) ([]*City, error)
}
