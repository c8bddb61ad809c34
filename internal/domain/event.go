package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_event_service.go -package mocks github.com/synthapp/synth/internal/domain EventService
//go:generate mockgen -destination mocks/mock_event_repository.go -package mocks github.com/synthapp/synth/internal/domain EventRepository

type EventStatus string

const (
	EventStatusPublished   EventStatus = "published"
	EventStatusCancelled   EventStatus = "cancelled"
	EventStatusPostponed   EventStatus = "postponed"
	EventStatusRescheduled EventStatus = "rescheduled"
)

// Event sources
const (
	EventSourceTicketmaster = "ticketmaster"
	EventSourceJamBase      = "jambase"
	EventSourceManual       = "manual"
)

const (
	DefaultEventLimit = 50
	MaxEventLimit     = 200
	UpsertBatchSize   = 50
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	ArtistID        string      `json:"artist_id,omitempty"`
	ArtistName      string      `json:"artist_name"`
	VenueID         string      `json:"venue_id,omitempty"`
	VenueName       string      `json:"venue_name"`
	VenueCity       string      `json:"venue_city,omitempty"`
	VenueState      string      `json:"venue_state,omitempty"`
	VenueAddress    string      `json:"venue_address,omitempty"`
	VenueZip        string      `json:"venue_zip,omitempty"`
	Latitude        *float64    `json:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty"`
	EventDate       time.Time   `json:"event_date"`
	DoorsTime       *time.Time  `json:"doors_time,omitempty"`
	Description     string      `json:"description,omitempty"`
	Genres          []string    `json:"genres"`
	PriceRange      string      `json:"price_range,omitempty"`
	PriceMin        *float64    `json:"price_min,omitempty"`
	PriceMax        *float64    `json:"price_max,omitempty"`
	TicketURLs      []string    `json:"ticket_urls"`
	TicketAvailable bool        `json:"ticket_available"`
	Status          EventStatus `json:"status"`
	Source          string      `json:"source"`
	ExternalID      string      `json:"external_id,omitempty"`
	ImageURL        string      `json:"image_url,omitempty"`
	// DistanceMiles is set on radius searches only
	DistanceMiles *float64  `json:"distance_miles,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasLocation reports whether the event has venue coordinates
func (e *Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// DisplayName is "<artist> @ <venue>" falling back to whichever part is known
func (e *Event) DisplayName() string {
	switch {
	case e.ArtistName != "" && e.VenueName != "":
		return e.ArtistName + " @ " + e.VenueName
	case e.ArtistName != "":
		return e.ArtistName
	case e.VenueName != "":
		return e.VenueName
	default:
		return e.Title
	}
}

// Validate checks the fields required before an event can be stored
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("invalid event: title is required")
	}
	if e.EventDate.IsZero() {
		return fmt.Errorf("invalid event: event_date is required")
	}
	if e.Source == "" {
		return fmt.Errorf("invalid event: source is required")
	}
	if e.Source != EventSourceManual && e.ExternalID == "" {
		return fmt.Errorf("invalid event: external_id is required for source %s", e.Source)
	}
	return nil
}

// EventFilter narrows an event search. Zero values are ignored.
type EventFilter struct {
	Query       string
	City        string
	State       string
	Artist      string
	Genre       string
	From        *time.Time
	To          *time.Time
	Latitude    *float64
	Longitude   *float64
	RadiusMiles float64
	IncludePast bool
	Limit       int
	Offset      int
}

// HasRadius reports whether the filter asks for a radius search
func (f *EventFilter) HasRadius() bool {
	return f.Latitude != nil && f.Longitude != nil && f.RadiusMiles > 0
}

func (f *EventFilter) FromURLParams(queryParams url.Values) error {
	f.Query = strings.TrimSpace(queryParams.Get("q"))
	f.City = strings.TrimSpace(queryParams.Get("city"))
	f.State = strings.TrimSpace(queryParams.Get("state"))
	f.Artist = strings.TrimSpace(queryParams.Get("artist"))
	f.Genre = strings.TrimSpace(queryParams.Get("genre"))
	f.IncludePast = queryParams.Get("include_past") == "true"

	var err error
	if f.From, err = parseTimeParam(queryParams.Get("from")); err != nil {
		return fmt.Errorf("invalid event filter: from: %w", err)
	}
	if f.To, err = parseTimeParam(queryParams.Get("to")); err != nil {
		return fmt.Errorf("invalid event filter: to: %w", err)
	}
	if f.Latitude, err = parseFloatParam(queryParams.Get("lat")); err != nil {
		return fmt.Errorf("invalid event filter: lat: %w", err)
	}
	if f.Longitude, err = parseFloatParam(queryParams.Get("lng")); err != nil {
		return fmt.Errorf("invalid event filter: lng: %w", err)
	}
	if radius := queryParams.Get("radius"); radius != "" {
		if f.RadiusMiles, err = strconv.ParseFloat(radius, 64); err != nil {
			return fmt.Errorf("invalid event filter: radius must be a number")
		}
	}
	if f.Limit, err = parseIntParam(queryParams.Get("limit"), DefaultEventLimit); err != nil {
		return fmt.Errorf("invalid event filter: limit must be a number")
	}
	if f.Offset, err = parseIntParam(queryParams.Get("offset"), 0); err != nil {
		return fmt.Errorf("invalid event filter: offset must be a number")
	}
	return f.Validate()
}

func (f *EventFilter) Validate() error {
	if f.Latitude != nil && !govalidator.InRangeFloat64(*f.Latitude, -90, 90) {
		return fmt.Errorf("invalid event filter: lat must be between -90 and 90")
	}
	if f.Longitude != nil && !govalidator.InRangeFloat64(*f.Longitude, -180, 180) {
		return fmt.Errorf("invalid event filter: lng must be between -180 and 180")
	}
	if f.RadiusMiles < 0 {
		return fmt.Errorf("invalid event filter: radius must be positive")
	}
	if f.RadiusMiles > 0 && (f.Latitude == nil || f.Longitude == nil) {
		return fmt.Errorf("invalid event filter: radius requires lat and lng")
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return fmt.Errorf("invalid event filter: to must be after from")
	}
	if f.Limit <= 0 {
		f.Limit = DefaultEventLimit
	}
	if f.Limit > MaxEventLimit {
		f.Limit = MaxEventLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return nil
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unsupported date format %q", raw)
}

func parseFloatParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("must be a number")
	}
	return &v, nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// UpsertResult summarizes a batched event import
type UpsertResult struct {
	Upserted int `json:"upserted"`
	Failed   int `json:"failed"`
}

type EventService interface {
	GetEvent(ctx context.Context, id string) (*Event, error)
	SearchEvents(ctx context.Context, filter *EventFilter) ([]*Event, error)
	UpsertEvents(ctx context.Context, source string, events []*Event) (*UpsertResult, error)
}

type EventRepository interface {
	GetEvent(ctx context.Context, id string) (*Event, error)
	GetEvents(ctx context.Context, ids []string) ([]*Event, error)
	SearchEvents(ctx context.Context, filter *EventFilter) ([]*Event, error)
	// UpsertEvents writes one batch keyed on (source, external_id)
	UpsertEvents(ctx context.Context, events []*Event) (int, error)
	ListUpcomingEvents(ctx context.Context, from time.Time, limit int) ([]*Event, error)
}
