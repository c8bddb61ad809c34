package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_ticketmaster_client.go -package mocks github.com/synthapp/synth/internal/domain TicketmasterClient
//go:generate mockgen -destination mocks/mock_jambase_client.go -package mocks github.com/synthapp/synth/internal/domain JamBaseClient
//go:generate mockgen -destination mocks/mock_setlist_client.go -package mocks github.com/synthapp/synth/internal/domain SetlistClient
//go:generate mockgen -destination mocks/mock_discovery_service.go -package mocks github.com/synthapp/synth/internal/domain DiscoveryService

const (
	ProviderTicketmaster = "ticketmaster"
	ProviderJamBase      = "jambase"
	ProviderSetlistFM    = "setlistfm"
)

// TicketmasterQuery mirrors the Discovery API event search parameters
type TicketmasterQuery struct {
	Keyword            string
	City               string
	StateCode          string
	CountryCode        string
	PostalCode         string
	LatLong            string
	Radius             string
	Unit               string
	ClassificationName string
	StartDateTime      string
	EndDateTime        string
	Size               string
	Page               string
	Sort               string
	// Persist upserts the returned events into the catalog
	Persist bool
}

// Coordinates parses LatLong as "lat,lng"
func (q *TicketmasterQuery) Coordinates() (lat, lng float64, ok bool) {
	parts := strings.Split(q.LatLong, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func (q *TicketmasterQuery) FromURLParams(queryParams url.Values) error {
	q.Keyword = queryParams.Get("keyword")
	q.City = queryParams.Get("city")
	q.StateCode = queryParams.Get("stateCode")
	q.CountryCode = queryParams.Get("countryCode")
	q.PostalCode = queryParams.Get("postalCode")
	q.LatLong = queryParams.Get("latlong")
	q.Radius = queryParams.Get("radius")
	q.Unit = queryParams.Get("unit")
	q.ClassificationName = queryParams.Get("classificationName")
	q.StartDateTime = queryParams.Get("startDateTime")
	q.EndDateTime = queryParams.Get("endDateTime")
	q.Size = queryParams.Get("size")
	q.Page = queryParams.Get("page")
	q.Sort = queryParams.Get("sort")
	q.Persist = queryParams.Get("persist") != "false"

	if q.LatLong != "" {
		if _, _, ok := q.Coordinates(); !ok {
			return fmt.Errorf("invalid ticketmaster request: latlong must be \"lat,lng\"")
		}
	}
	if q.Radius != "" {
		if _, err := strconv.ParseFloat(q.Radius, 64); err != nil {
			return fmt.Errorf("invalid ticketmaster request: radius must be a number")
		}
	}
	return nil
}

// CacheKey identifies the upstream request, excluding Persist
func (q *TicketmasterQuery) CacheKey() string {
	return strings.Join([]string{
		q.Keyword, q.City, q.StateCode, q.CountryCode, q.PostalCode, q.LatLong,
		q.Radius, q.Unit, q.ClassificationName, q.StartDateTime, q.EndDateTime,
		q.Size, q.Page, q.Sort,
	}, "|")
}

type JamBaseQuery struct {
	ArtistName string
	EventType  string
	Page       int
	PerPage    int
	Persist    bool
}

func (q *JamBaseQuery) FromURLParams(queryParams url.Values) error {
	q.ArtistName = strings.TrimSpace(queryParams.Get("artistName"))
	q.EventType = queryParams.Get("eventType")
	if q.EventType == "" {
		q.EventType = "concerts"
	}
	q.Page, q.PerPage = 1, 20
	if raw := queryParams.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return fmt.Errorf("invalid jambase request: page must be a positive number")
		}
		q.Page = page
	}
	if raw := queryParams.Get("perPage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 || perPage > 100 {
			return fmt.Errorf("invalid jambase request: perPage must be between 1 and 100")
		}
		q.PerPage = perPage
	}
	q.Persist = queryParams.Get("persist") != "false"
	return nil
}

func (q *JamBaseQuery) CacheKey() string {
	return fmt.Sprintf("%s|%s|%d|%d", strings.ToLower(q.ArtistName), q.EventType, q.Page, q.PerPage)
}

type SetlistQuery struct {
	ArtistName string
	Date       string
	VenueName  string
	CityName   string
	StateCode  string
}

func (q *SetlistQuery) FromURLParams(queryParams url.Values) error {
	q.ArtistName = strings.TrimSpace(queryParams.Get("artistName"))
	q.Date = strings.TrimSpace(queryParams.Get("date"))
	q.VenueName = strings.TrimSpace(queryParams.Get("venueName"))
	q.CityName = strings.TrimSpace(queryParams.Get("cityName"))
	q.StateCode = strings.TrimSpace(queryParams.Get("stateCode"))
	if q.ArtistName == "" && q.VenueName == "" && q.CityName == "" {
		return fmt.Errorf("invalid setlist request: artistName, venueName or cityName is required")
	}
	return nil
}

func (q *SetlistQuery) CacheKey() string {
	return strings.ToLower(strings.Join([]string{q.ArtistName, q.Date, q.VenueName, q.CityName, q.StateCode}, "|"))
}

// SetlistDate converts YYYY-MM-DD, DD-MM-YYYY or RFC 3339 input to the
// DD-MM-YYYY form setlist.fm expects. ok is false when the input is unusable.
func SetlistDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range []string{"02-01-2006", "2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02-01-2006"), true
		}
	}
	return "", false
}

type SetlistArtist struct {
	Name string `json:"name"`
	MBID string `json:"mbid,omitempty"`
}

type SetlistVenue struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type SongCover struct {
	Artist string `json:"artist"`
	MBID   string `json:"mbid,omitempty"`
}

type Song struct {
	Name      string     `json:"name"`
	Position  int        `json:"position"`
	SetNumber int        `json:"setNumber"`
	SetName   string     `json:"setName"`
	Cover     *SongCover `json:"cover,omitempty"`
	Info      string     `json:"info,omitempty"`
	Tape      bool       `json:"tape"`
}

type Setlist struct {
	SetlistFmID string        `json:"setlistFmId"`
	VersionID   string        `json:"versionId,omitempty"`
	EventDate   string        `json:"eventDate"`
	Artist      SetlistArtist `json:"artist"`
	Venue       SetlistVenue  `json:"venue"`
	Tour        string        `json:"tour,omitempty"`
	Info        string        `json:"info,omitempty"`
	URL         string        `json:"url,omitempty"`
	Songs       []Song        `json:"songs"`
	SongCount   int           `json:"songCount"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// ProviderEventsResult is an upstream page of events after filtering
type ProviderEventsResult struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
	Page   int      `json:"page"`
	Size   int      `json:"size"`
	// Persisted is the number of events written to the catalog
	Persisted int `json:"persisted"`
}

type TicketmasterClient interface {
	SearchEvents(ctx context.Context, query *TicketmasterQuery) (*ProviderEventsResult, error)
}

type JamBaseClient interface {
	SearchEvents(ctx context.Context, query *JamBaseQuery) ([]*Event, error)
}

type SetlistClient interface {
	SearchSetlists(ctx context.Context, query *SetlistQuery) ([]*Setlist, error)
}

// DiscoveryService proxies third-party event APIs and feeds the catalog
type DiscoveryService interface {
	TicketmasterEvents(ctx context.Context, query *TicketmasterQuery) (*ProviderEventsResult, error)
	JamBaseEvents(ctx context.Context, query *JamBaseQuery) (*ProviderEventsResult, error)
	SearchSetlists(ctx context.Context, query *SetlistQuery) ([]*Setlist, error)
}
