package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/citynorm"
)

type cityRepository struct {
	db *sql.DB
}

// NewCityRepository creates a new PostgreSQL city repository
func NewCityRepository(db *sql.DB) domain.CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) ListCityCenters(ctx context.Context) ([]*domain.City, error) {
	query, args, err := psql.
		Select("id", "name", "state", "normalized_name", "aliases", "latitude", "longitude", "event_count").
		From("city_centers").
		OrderBy("event_count DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list city centers: %w", err)
	}
	defer rows.Close()

	cities := []*domain.City{}
	for rows.Next() {
		var (
			c        domain.City
			aliases  pq.StringArray
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.NormalizedName, &aliases, &lat, &lng, &c.EventCount); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		c.Aliases = []string(aliases)
		c.Latitude = floatPtr(lat)
		c.Longitude = floatPtr(lng)
		if c.NormalizedName == "" {
			c.NormalizedName = citynorm.Normalize(c.Name)
		}
		cities = append(cities, &c)
	}
	return cities, rows.Err()
}

func (r *cityRepository) AggregateEventCities(ctx context.Context, from time.Time, minCount int) ([]*domain.City, error) {
	query := `
		SELECT venue_city, venue_state, COUNT(*), AVG(latitude), AVG(longitude)
		FROM events
		WHERE event_date >= $1 AND venue_city <> ''
		GROUP BY venue_city, venue_state
		HAVING COUNT(*) >= $2
		ORDER BY COUNT(*) DESC, venue_city ASC
	`
	rows, err := r.db.QueryContext(ctx, query, from, minCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event cities: %w", err)
	}
	defer rows.Close()

	cities := []*domain.City{}
	for rows.Next() {
		var (
			c        domain.City
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&c.Name, &c.State, &c.EventCount, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		c.ID = citynorm.CityID(c.Name, c.State)
		c.NormalizedName = citynorm.Normalize(c.Name)
		c.Latitude = floatPtr(lat)
		c.Longitude = floatPtr(lng)
		cities = append(cities, &c)
	}
	return cities, rows.Err()
}
