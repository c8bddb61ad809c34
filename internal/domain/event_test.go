package domain

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFilter_FromURLParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var f EventFilter
		require.NoError(t, f.FromURLParams(url.Values{}))
		assert.Equal(t, DefaultEventLimit, f.Limit)
		assert.Equal(t, 0, f.Offset)
		assert.False(t, f.IncludePast)
		assert.False(t, f.HasRadius())
	})

	t.Run("full filter", func(t *testing.T) {
		var f EventFilter
		err := f.FromURLParams(url.Values{
			"q":            {" phish "},
			"city":         {"Denver"},
			"state":        {"CO"},
			"genre":        {"Jam"},
			"from":         {"2026-06-01"},
			"to":           {"2026-07-01T00:00:00Z"},
			"lat":          {"39.7392"},
			"lng":          {"-104.9903"},
			"radius":       {"25"},
			"limit":        {"500"},
			"offset":       {"20"},
			"include_past": {"true"},
		})
		require.NoError(t, err)

		assert.Equal(t, "phish", f.Query)
		assert.Equal(t, "Denver", f.City)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *f.From)
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), *f.To)
		assert.True(t, f.HasRadius())
		assert.Equal(t, 25.0, f.RadiusMiles)
		assert.Equal(t, MaxEventLimit, f.Limit)
		assert.Equal(t, 20, f.Offset)
		assert.True(t, f.IncludePast)
	})

	tests := []struct {
		name   string
		params url.Values
	}{
		{"bad date", url.Values{"from": {"June 1"}}},
		{"bad lat", url.Values{"lat": {"north"}}},
		{"lat out of range", url.Values{"lat": {"91"}, "lng": {"0"}}},
		{"radius without center", url.Values{"radius": {"10"}}},
		{"negative radius", url.Values{"lat": {"1"}, "lng": {"1"}, "radius": {"-1"}}},
		{"inverted range", url.Values{"from": {"2026-02-01"}, "to": {"2026-01-01"}}},
		{"bad limit", url.Values{"limit": {"ten"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f EventFilter
			assert.Error(t, f.FromURLParams(tc.params))
		})
	}
}

func TestEvent_Validate(t *testing.T) {
	valid := &Event{Title: "Phish", EventDate: time.Now(), Source: EventSourceTicketmaster, ExternalID: "tm-1"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Event{EventDate: time.Now(), Source: EventSourceManual}).Validate())
	assert.Error(t, (&Event{Title: "x", Source: EventSourceManual}).Validate())
	assert.Error(t, (&Event{Title: "x", EventDate: time.Now()}).Validate())
	assert.Error(t, (&Event{Title: "x", EventDate: time.Now(), Source: EventSourceJamBase}).Validate())
	assert.NoError(t, (&Event{Title: "x", EventDate: time.Now(), Source: EventSourceManual}).Validate())
}

func TestEvent_DisplayName(t *testing.T) {
	assert.Equal(t, "Phish @ MSG", (&Event{ArtistName: "Phish", VenueName: "MSG"}).DisplayName())
	assert.Equal(t, "Phish", (&Event{ArtistName: "Phish"}).DisplayName())
	assert.Equal(t, "MSG", (&Event{VenueName: "MSG"}).DisplayName())
	assert.Equal(t, "Title", (&Event{Title: "Title"}).DisplayName())
}
