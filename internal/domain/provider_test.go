package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetlistDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-08-14", "14-08-2025", true},
		{"14-08-2025", "14-08-2025", true},
		{"2025-08-14T20:00:00Z", "14-08-2025", true},
		{"2025-08-14T20:00:00", "14-08-2025", true},
		{"", "", false},
		{"next friday", "", false},
	}
	for _, tc := range tests {
		got, ok := SetlistDate(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTicketmasterQuery_FromURLParams(t *testing.T) {
	var q TicketmasterQuery
	require.NoError(t, q.FromURLParams(url.Values{
		"keyword":   {"phish"},
		"latlong":   {"40.7128,-74.0060"},
		"radius":    {"25"},
		"stateCode": {"NY"},
	}))
	lat, lng, ok := q.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 40.7128, lat)
	assert.Equal(t, -74.006, lng)
	assert.True(t, q.Persist)
	assert.Equal(t, "NY", q.StateCode)

	assert.Error(t, (&TicketmasterQuery{}).FromURLParams(url.Values{"latlong": {"40.7"}}))
	assert.Error(t, (&TicketmasterQuery{}).FromURLParams(url.Values{"radius": {"far"}}))

	noPersist := TicketmasterQuery{}
	require.NoError(t, noPersist.FromURLParams(url.Values{"persist": {"false"}}))
	assert.False(t, noPersist.Persist)
}

func TestJamBaseQuery_FromURLParams(t *testing.T) {
	var q JamBaseQuery
	require.NoError(t, q.FromURLParams(url.Values{"artistName": {" Goose "}}))
	assert.Equal(t, "Goose", q.ArtistName)
	assert.Equal(t, "concerts", q.EventType)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PerPage)
	assert.Equal(t, "goose|concerts|1|20", q.CacheKey())

	assert.Error(t, (&JamBaseQuery{}).FromURLParams(url.Values{"page": {"0"}}))
	assert.Error(t, (&JamBaseQuery{}).FromURLParams(url.Values{"perPage": {"1000"}}))
}

func TestSetlistQuery_FromURLParams(t *testing.T) {
	assert.Error(t, (&SetlistQuery{}).FromURLParams(url.Values{"date": {"2025-01-01"}}))

	var q SetlistQuery
	require.NoError(t, q.FromURLParams(url.Values{"artistName": {"Phish"}, "date": {"2025-01-01"}}))
	assert.Equal(t, "phish|2025-01-01|||", q.CacheKey())
}
