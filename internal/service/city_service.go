package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/cache"
	"github.com/synthapp/synth/pkg/citynorm"
	"github.com/synthapp/synth/pkg/geo"
	"github.com/synthapp/synth/pkg/logger"
)

const (
	cityCacheKey = "cities"
	cityCacheTTL = 15 * time.Minute
)

type CityService struct {
	repo   domain.CityRepository
	cache  *cache.InMemoryCache[[]*domain.City]
	logger logger.Logger
	now    func() time.Time
}

func NewCityService(repo domain.CityRepository, cityCache *cache.InMemoryCache[[]*domain.City], logger logger.Logger) *CityService {
	return &CityService{
		repo:   repo,
		cache:  cityCache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListCities returns cities with at least minEvents upcoming events, busiest
// first.
func (s *CityService) ListCities(ctx context.Context, minEvents int) ([]*domain.City, error) {
	cities, err := s.allCities(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.City, 0, len(cities))
	for _, c := range cities {
		if c.EventCount >= minEvents {
			result = append(result, c)
		}
	}
	return result, nil
}

// SearchCities matches the query against names, normalized names and
// aliases. Exact matches rank first, then prefixes, then substrings.
func (s *CityService) SearchCities(ctx context.Context, query string, limit int) ([]*domain.City, error) {
	q := citynorm.Normalize(query)
	if q == "" {
		return nil, domain.NewValidationError("q is required")
	}
	if limit <= 0 {
		limit = domain.DefaultCitySearchLimit
	}

	cities, err := s.allCities(ctx)
	if err != nil {
		return nil, err
	}

	type hit struct {
		city *domain.City
		rank int
	}
	var hits []hit
	for _, c := range cities {
		names := make([]string, 0, len(c.Aliases)+2)
		for _, n := range append([]string{c.Name, c.NormalizedName}, c.Aliases...) {
			if strings.TrimSpace(n) != "" {
				names = append(names, n)
			}
		}
		if len(citynorm.FindSimilar(query, names)) == 0 {
			continue
		}
		rank := 2
		for _, n := range names {
			if citynorm.AreEqual(n, query) {
				rank = 0
				break
			}
			if strings.HasPrefix(citynorm.Normalize(n), q) && rank > 1 {
				rank = 1
			}
		}
		hits = append(hits, hit{city: c, rank: rank})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].city.EventCount > hits[j].city.EventCount
	})

	result := make([]*domain.City, 0, limit)
	for _, h := range hits {
		if len(result) == limit {
			break
		}
		result = append(result, h.city)
	}
	return result, nil
}

// NearbyCities returns cities with coordinates inside the radius, closest
// first.
func (s *CityService) NearbyCities(ctx context.Context, req *domain.NearbyCitiesRequest) ([]*domain.City, error) {
	radius := req.RadiusMiles
	if radius <= 0 {
		radius = domain.DefaultCityRadiusMiles
	}
	cities, err := s.allCities(ctx)
	if err != nil {
		return nil, err
	}

	origin := geo.Point{Lat: req.Latitude, Lng: req.Longitude}
	result := []*domain.City{}
	for _, c := range cities {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		d := geo.Distance(origin, geo.Point{Lat: *c.Latitude, Lng: *c.Longitude}, geo.Miles)
		if d > radius {
			continue
		}
		nearby := *c
		nearby.DistanceMiles = &d
		result = append(result, &nearby)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return *result[i].DistanceMiles < *result[j].DistanceMiles
	})
	return result, nil
}

func (s *CityService) allCities(ctx context.Context) ([]*domain.City, error) {
	return s.cache.GetOrLoad(cityCacheKey, cityCacheTTL, func() ([]*domain.City, error) {
		return s.loadCities(ctx)
	})
}

// loadCities reads the curated city centers and falls back to aggregating
// upcoming events when none are stored.
func (s *CityService) loadCities(ctx context.Context) ([]*domain.City, error) {
	centers, err := s.repo.ListCityCenters(ctx)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Failed to list city centers, falling back to events: %v", err))
	} else if len(centers) > 0 {
		return centers, nil
	}

	aggregated, err := s.repo.AggregateEventCities(ctx, s.now(), 1)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to aggregate event cities: %v", err))
		return nil, fmt.Errorf("failed to aggregate event cities: %w", err)
	}
	return mergeCityVariations(aggregated), nil
}

// mergeCityVariations folds rows naming the same city differently ("NYC",
// "New York") into one entry with the summed event count.
func mergeCityVariations(cities []*domain.City) []*domain.City {
	type group struct {
		city   *domain.City
		names  []string
		points []geo.Point
	}
	groups := map[string]*group{}
	for _, c := range cities {
		key := citynorm.Normalize(c.Name) + "|" + strings.ToUpper(strings.TrimSpace(c.State))
		g, ok := groups[key]
		if !ok {
			merged := *c
			merged.EventCount = 0
			g = &group{city: &merged}
			groups[key] = g
		}
		g.city.EventCount += c.EventCount
		g.names = append(g.names, c.Name)
		if c.Latitude != nil && c.Longitude != nil {
			g.points = append(g.points, geo.Point{Lat: *c.Latitude, Lng: *c.Longitude})
		}
	}

	result := make([]*domain.City, 0, len(groups))
	for _, g := range groups {
		g.city.Name = citynorm.FormatForDisplay(citynorm.CanonicalName(g.names))
		g.city.ID = citynorm.CityID(g.city.Name, g.city.State)
		if len(g.points) > 0 {
			center := geo.Center(g.points)
			g.city.Latitude, g.city.Longitude = &center.Lat, &center.Lng
		}
		for _, n := range g.names {
			if n != g.city.Name && !containsString(g.city.Aliases, n) {
				g.city.Aliases = append(g.city.Aliases, n)
			}
		}
		result = append(result, g.city)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].EventCount != result[j].EventCount {
			return result[i].EventCount > result[j].EventCount
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
