package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/geo"
)

// radiusCandidateCap bounds the rows loaded for an in-memory radius filter
const radiusCandidateCap = 2000

var eventColumns = []string{
	"id", "title", "artist_id", "artist_name", "venue_id", "venue_name",
	"venue_city", "venue_state", "venue_address", "venue_zip", "latitude", "longitude",
	"event_date", "doors_time", "description", "genres", "price_range", "price_min",
	"price_max", "ticket_urls", "ticket_available", "status", "source", "external_id",
	"image_url", "created_at", "updated_at",
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new PostgreSQL event repository
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e          domain.Event
		lat, lng   sql.NullFloat64
		doors      sql.NullTime
		genres     pq.StringArray
		priceMin   sql.NullFloat64
		priceMax   sql.NullFloat64
		ticketURLs pq.StringArray
		externalID sql.NullString
	)
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.ArtistID,
		&e.ArtistName,
		&e.VenueID,
		&e.VenueName,
		&e.VenueCity,
		&e.VenueState,
		&e.VenueAddress,
		&e.VenueZip,
		&lat,
		&lng,
		&e.EventDate,
		&doors,
		&e.Description,
		&genres,
		&e.PriceRange,
		&priceMin,
		&priceMax,
		&ticketURLs,
		&e.TicketAvailable,
		&e.Status,
		&e.Source,
		&externalID,
		&e.ImageURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Latitude = floatPtr(lat)
	e.Longitude = floatPtr(lng)
	e.DoorsTime = timePtr(doors)
	e.Genres = []string(genres)
	if e.Genres == nil {
		e.Genres = []string{}
	}
	e.PriceMin = floatPtr(priceMin)
	e.PriceMax = floatPtr(priceMax)
	e.TicketURLs = []string(ticketURLs)
	if e.TicketURLs == nil {
		e.TicketURLs = []string{}
	}
	e.ExternalID = externalID.String
	return &e, nil
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, columnList(eventColumns))
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("event", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (r *eventRepository) GetEvents(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = ANY($1) ORDER BY event_date`, columnList(eventColumns))
	events, err := r.queryEvents(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// SearchEvents applies the SQL side of the filter. Radius searches only narrow
// to the bounding box of the circle; callers compute exact distances and
// paginate the result themselves.
func (r *eventRepository) SearchEvents(ctx context.Context, filter *domain.EventFilter) ([]*domain.Event, error) {
	qb := psql.Select(eventColumns...).From("events")

	switch {
	case filter.From != nil:
		qb = qb.Where(sq.GtOrEq{"event_date": *filter.From})
	case !filter.IncludePast:
		qb = qb.Where(sq.GtOrEq{"event_date": time.Now().UTC()})
	}
	if filter.To != nil {
		qb = qb.Where(sq.LtOrEq{"event_date": *filter.To})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"artist_name": pattern},
			sq.ILike{"venue_name": pattern},
		})
	}
	if filter.City != "" {
		qb = qb.Where(sq.ILike{"venue_city": "%" + filter.City + "%"})
	}
	if filter.State != "" {
		qb = qb.Where(sq.ILike{"venue_state": filter.State})
	}
	if filter.Artist != "" {
		qb = qb.Where(sq.ILike{"artist_name": "%" + filter.Artist + "%"})
	}
	if filter.Genre != "" {
		qb = qb.Where("? ILIKE ANY(genres)", filter.Genre)
	}

	qb = qb.OrderBy("event_date ASC", "id ASC")

	if filter.HasRadius() {
		box := geo.BoundingBox(geo.Point{Lat: *filter.Latitude, Lng: *filter.Longitude}, filter.RadiusMiles, geo.Miles)
		qb = qb.
			Where(sq.NotEq{"latitude": nil}).
			Where(sq.NotEq{"longitude": nil}).
			Where(sq.Expr("latitude BETWEEN ? AND ?", box.South, box.North)).
			Where(longitudeWithin(box)).
			Limit(radiusCandidateCap)
	} else {
		qb = qb.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	events, err := r.queryEvents(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return events, nil
}

// longitudeWithin matches the box's longitudes, ORing both sides of the
// antimeridian when the box crosses it
func longitudeWithin(box geo.Bounds) sq.Sqlizer {
	ranges := box.LongitudeRanges()
	if len(ranges) == 1 {
		return sq.Expr("longitude BETWEEN ? AND ?", ranges[0].West, ranges[0].East)
	}
	or := sq.Or{}
	for _, lr := range ranges {
		or = append(or, sq.Expr("longitude BETWEEN ? AND ?", lr.West, lr.East))
	}
	return or
}

// UpsertEvents writes a single multi-row statement. Rows that already exist for
// the same (source, external_id) keep their id and created_at.
func (r *eventRepository) UpsertEvents(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()

	qb := psql.Insert("events").Columns(eventColumns...)
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Status == "" {
			e.Status = domain.EventStatusPublished
		}
		e.CreatedAt = now
		e.UpdatedAt = now
		qb = qb.Values(
			e.ID,
			e.Title,
			e.ArtistID,
			e.ArtistName,
			e.VenueID,
			e.VenueName,
			e.VenueCity,
			e.VenueState,
			e.VenueAddress,
			e.VenueZip,
			nullFloat(e.Latitude),
			nullFloat(e.Longitude),
			e.EventDate,
			nullTime(e.DoorsTime),
			e.Description,
			pq.Array(nonNilStrings(e.Genres)),
			e.PriceRange,
			nullFloat(e.PriceMin),
			nullFloat(e.PriceMax),
			pq.Array(nonNilStrings(e.TicketURLs)),
			e.TicketAvailable,
			string(e.Status),
			e.Source,
			nullString(e.ExternalID),
			e.ImageURL,
			e.CreatedAt,
			e.UpdatedAt,
		)
	}
	qb = qb.Suffix(`ON CONFLICT (source, external_id) DO UPDATE SET
		title = EXCLUDED.title,
		artist_id = EXCLUDED.artist_id,
		artist_name = EXCLUDED.artist_name,
		venue_id = EXCLUDED.venue_id,
		venue_name = EXCLUDED.venue_name,
		venue_city = EXCLUDED.venue_city,
		venue_state = EXCLUDED.venue_state,
		venue_address = EXCLUDED.venue_address,
		venue_zip = EXCLUDED.venue_zip,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		event_date = EXCLUDED.event_date,
		doors_time = EXCLUDED.doors_time,
		description = EXCLUDED.description,
		genres = EXCLUDED.genres,
		price_range = EXCLUDED.price_range,
		price_min = EXCLUDED.price_min,
		price_max = EXCLUDED.price_max,
		ticket_urls = EXCLUDED.ticket_urls,
		ticket_available = EXCLUDED.ticket_available,
		status = EXCLUDED.status,
		image_url = EXCLUDED.image_url,
		updated_at = EXCLUDED.updated_at`)

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert events: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to upsert events: %w", err)
	}
	return int(n), nil
}

func (r *eventRepository) ListUpcomingEvents(ctx context.Context, from time.Time, limit int) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE event_date >= $1 AND status = 'published' ORDER BY event_date ASC LIMIT $2`, columnList(eventColumns))
	events, err := r.queryEvents(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
