package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/geo"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/tidwall/gjson"
)

const ticketmasterPayload = `{
  "_embedded": {
    "events": [
      {
        "id": "tm-1",
        "name": "Phoebe Bridgers",
        "url": "https://tickets.example.com/tm-1",
        "dates": {"start": {"dateTime": "2026-03-01T01:00:00Z", "localDate": "2026-02-28"}, "status": {"code": "onsale"}},
        "priceRanges": [{"min": 45, "max": 120.5}],
        "classifications": [{"genre": {"name": "Rock"}, "subGenre": {"name": "Indie Rock"}}],
        "images": [{"url": "https://img.example.com/small.jpg", "width": 100}, {"url": "https://img.example.com/big.jpg", "width": 1024}],
        "_embedded": {
          "attractions": [{"id": "K8v", "name": "Phoebe Bridgers"}],
          "venues": [{
            "name": "Barclays Center",
            "address": {"line1": "620 Atlantic Ave"},
            "city": {"name": "Brooklyn"},
            "state": {"stateCode": "NY"},
            "postalCode": "11217",
            "location": {"latitude": "40.6826", "longitude": "-73.9754"}
          }]
        }
      },
      {
        "id": "tm-2",
        "name": "Far Away Show",
        "dates": {"start": {"localDate": "2026-03-05"}, "status": {"code": "onsale"}},
        "_embedded": {"venues": [{"name": "Wells Fargo Center", "city": {"name": "Philadelphia"}, "location": {"latitude": "39.9012", "longitude": "-75.1720"}}]}
      },
      {
        "id": "tm-3",
        "name": "Last Summer",
        "dates": {"start": {"dateTime": "2025-06-01T00:00:00Z"}, "status": {"code": "offsale"}},
        "_embedded": {"venues": [{"name": "Barclays Center", "location": {"latitude": "40.6826", "longitude": "-73.9754"}}]}
      }
    ]
  },
  "page": {"size": 20, "totalElements": 3, "number": 0}
}`

func newTestTicketmaster(t *testing.T, serverURL string, cacheTTL time.Duration) *TicketmasterClient {
	client := NewTicketmasterClient(config.ProviderConfig{
		APIKey:   "tm-key",
		BaseURL:  serverURL,
		Timeout:  5 * time.Second,
		CacheTTL: cacheTTL,
	}, logger.NewMockLogger(t))
	client.now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(client.Close)
	return client
}

func TestTicketmasterClient_SearchEvents(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events.json", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(ticketmasterPayload))
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, 0)
	result, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{
		Keyword: "indie",
		LatLong: "40.7128,-74.0060",
		Radius:  "25",
		Unit:    "miles",
	})
	require.NoError(t, err)

	assert.Equal(t, "tm-key", gotQuery["apikey"])
	assert.Equal(t, "indie", gotQuery["keyword"])
	assert.Equal(t, "40.7128,-74.0060", gotQuery["latlong"])
	assert.Equal(t, geo.Geohash(geo.Point{Lat: 40.7128, Lng: -74.0060}, 7), gotQuery["geoPoint"])
	assert.Len(t, gotQuery["geoPoint"], 7)
	assert.NotContains(t, gotQuery, "city")

	require.Len(t, result.Events, 1)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 20, result.Size)

	event := result.Events[0]
	assert.Equal(t, "tm-1", event.ExternalID)
	assert.Equal(t, domain.EventSourceTicketmaster, event.Source)
	assert.Equal(t, "Phoebe Bridgers", event.ArtistName)
	assert.Equal(t, "Barclays Center", event.VenueName)
	assert.Equal(t, "620 Atlantic Ave", event.VenueAddress)
	assert.Equal(t, "Brooklyn", event.VenueCity)
	assert.Equal(t, "NY", event.VenueState)
	assert.Equal(t, "11217", event.VenueZip)
	require.True(t, event.HasLocation())
	assert.InDelta(t, 40.6826, *event.Latitude, 0.0001)
	assert.Equal(t, time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC), event.EventDate)
	assert.Equal(t, []string{"Rock", "Indie Rock"}, event.Genres)
	assert.Equal(t, "$45 - $120.5", event.PriceRange)
	assert.Equal(t, []string{"https://tickets.example.com/tm-1"}, event.TicketURLs)
	assert.True(t, event.TicketAvailable)
	assert.Equal(t, domain.EventStatusPublished, event.Status)
	assert.Equal(t, "https://img.example.com/big.jpg", event.ImageURL)
	assert.Equal(t, "Live performance by Phoebe Bridgers", event.Description)
}

func TestTicketmasterClient_NoRadiusKeepsDistantEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ticketmasterPayload))
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, 0)
	result, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{City: "New York"})
	require.NoError(t, err)

	require.Len(t, result.Events, 2)
	far := result.Events[1]
	assert.Equal(t, "tm-2", far.ExternalID)
	assert.Equal(t, time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC), far.EventDate)
	assert.Equal(t, []string{"Other"}, far.Genres)
	assert.Empty(t, far.TicketURLs)
}

func TestTicketmasterClient_CachesResponses(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(ticketmasterPayload))
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, time.Minute)
	query := &domain.TicketmasterQuery{City: "Brooklyn"}
	for i := 0; i < 3; i++ {
		_, err := client.SearchEvents(context.Background(), query)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{City: "Queens"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestTicketmasterClient_CircuitBreakerOpens(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, 0)
	for i := 0; i < 12; i++ {
		_, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{})
		var unavailable *domain.ErrProviderUnavailable
		require.True(t, errors.As(err, &unavailable))
		assert.Equal(t, domain.ProviderTicketmaster, unavailable.Provider)
	}
	assert.Equal(t, int32(10), atomic.LoadInt32(&hits))
}

func TestTicketmasterClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, 0)
	for i := 0; i < 12; i++ {
		_, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{})
		var unavailable *domain.ErrProviderUnavailable
		require.ErrorAs(t, err, &unavailable)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}
	assert.Equal(t, int32(12), atomic.LoadInt32(&hits))
}

func TestTicketmasterClient_ClientErrorsAreUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestTicketmaster(t, server.URL, 0)
	_, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{})
	var unavailable *domain.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestTicketmasterParams_NetherlandsHint(t *testing.T) {
	tests := []struct {
		name    string
		query   domain.TicketmasterQuery
		country string
	}{
		{"amsterdam coordinates", domain.TicketmasterQuery{LatLong: "52.37,4.89"}, "NL"},
		{"explicit country wins", domain.TicketmasterQuery{LatLong: "52.37,4.89", CountryCode: "BE"}, "BE"},
		{"city suppresses the hint", domain.TicketmasterQuery{LatLong: "52.37,4.89", City: "Amsterdam"}, ""},
		{"outside the region", domain.TicketmasterQuery{LatLong: "48.85,2.35"}, ""},
		{"no coordinates", domain.TicketmasterQuery{Keyword: "jazz"}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := ticketmasterParams(&tc.query)
			assert.Equal(t, tc.country, params.Get("countryCode"))
		})
	}
}

func TestTicketmasterClient_MissingAPIKey(t *testing.T) {
	client := NewTicketmasterClient(config.ProviderConfig{BaseURL: "http://127.0.0.1:1"}, logger.NewMockLogger(t))
	t.Cleanup(client.Close)

	_, err := client.SearchEvents(context.Background(), &domain.TicketmasterQuery{})
	var unavailable *domain.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestTicketmasterArtist(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"attraction wins", `{"name":"Festival - Someone","_embedded":{"attractions":[{"name":"Headliner"}]}}`, "Headliner"},
		{"series suffix", `{"name":"Saadiyat Nights - John Mayer"}`, "John Mayer"},
		{"at venue", `{"name":"Big Thief at The Anthem"}`, "Big Thief"},
		{"plain name", `{"name":"Wilco"}`, "Wilco"},
		{"tribute act keeps event name", `{"name":"Abbey Road: A Beatles Tribute"}`, "Abbey Road: A Beatles Tribute"},
		{"nothing at all", `{}`, "Unknown Artist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := gjson.Parse(tt.payload)
			assert.Equal(t, tt.expected, ticketmasterArtist(raw, raw.Get("name").String()))
		})
	}
}

func TestTicketmasterVenueName(t *testing.T) {
	assert.Equal(t, "The Anthem", ticketmasterVenueName(gjson.Parse(`{}`), "Big Thief at The Anthem"))
	assert.Equal(t, "Red Rocks", ticketmasterVenueName(gjson.Parse(`{}`), "Red Rocks - Friday Night"))
	assert.Equal(t, "Denver Venue", ticketmasterVenueName(gjson.Parse(`{"city":{"name":"Denver"}}`), "Wilco"))
	assert.Equal(t, "Venue TBD", ticketmasterVenueName(gjson.Parse(`{}`), "Wilco"))
}

func TestPriceRangeString(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	assert.Equal(t, "$20 - $35.5", priceRangeString(v(20), v(35.5)))
	assert.Equal(t, "$20", priceRangeString(v(20), v(20)))
	assert.Equal(t, "$20+", priceRangeString(v(20), nil))
	assert.Equal(t, "Up to $80", priceRangeString(nil, v(80)))
	assert.Equal(t, "", priceRangeString(nil, nil))
}

func TestTicketmasterStatus(t *testing.T) {
	assert.Equal(t, domain.EventStatusCancelled, ticketmasterStatus("cancelled"))
	assert.Equal(t, domain.EventStatusPostponed, ticketmasterStatus("postponed"))
	assert.Equal(t, domain.EventStatusRescheduled, ticketmasterStatus("rescheduled"))
	assert.Equal(t, domain.EventStatusPublished, ticketmasterStatus("offsale"))
	assert.Equal(t, domain.EventStatusPublished, ticketmasterStatus(""))
}

func TestIsUpcomingTicketmasterEvent(t *testing.T) {
	now := time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC)
	assert.True(t, isUpcomingTicketmasterEvent(gjson.Parse(`{"dates":{"start":{"localDate":"2026-01-15"}}}`), now))
	assert.False(t, isUpcomingTicketmasterEvent(gjson.Parse(`{"dates":{"start":{"dateTime":"2026-01-15T10:00:00Z"}}}`), now))
	assert.False(t, isUpcomingTicketmasterEvent(gjson.Parse(`{"dates":{"start":{}}}`), now))
}
