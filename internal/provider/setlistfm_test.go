package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

const setlistPayload = `{
  "type": "setlists",
  "itemsPerPage": 20,
  "page": 1,
  "total": 1,
  "setlist": [
    {
      "id": "63de4613",
      "versionId": "7be1aaa0",
      "eventDate": "10-05-2024",
      "artist": {"mbid": "b10bbbfc", "name": "Radiohead"},
      "venue": {"name": "Madison Square Garden", "city": {"name": "New York", "state": "New York", "country": {"code": "US", "name": "United States"}}},
      "tour": {"name": "World Tour"},
      "url": "https://www.setlist.fm/setlist/radiohead/63de4613.html",
      "sets": {"set": [
        {"song": [{"name": "Airbag"}, {"name": "Lucky", "info": "live debut"}]},
        {"name": "Encore", "song": [{"name": "Ceremony", "cover": {"name": "Joy Division", "mbid": "9a58fda3"}}, {"name": "Intro", "tape": true}]}
      ]}
    }
  ]
}`

func newTestSetlistFM(t *testing.T, serverURL, apiKey string) *SetlistFMClient {
	client := NewSetlistFMClient(config.ProviderConfig{APIKey: apiKey, BaseURL: serverURL}, logger.NewMockLogger(t))
	client.now = func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(client.Close)
	return client
}

func TestSetlistFMClient_SearchSetlists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/setlists", r.URL.Path)
		assert.Equal(t, "sl-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, setlistUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.URL.Query().Get("apikey"))
		assert.Equal(t, "Radiohead", r.URL.Query().Get("artistName"))
		assert.Equal(t, "10-05-2024", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(setlistPayload))
	}))
	defer server.Close()

	client := newTestSetlistFM(t, server.URL, "sl-key")
	setlists, err := client.SearchSetlists(context.Background(), &domain.SetlistQuery{ArtistName: "Radiohead", Date: "2024-05-10"})
	require.NoError(t, err)
	require.Len(t, setlists, 1)

	s := setlists[0]
	assert.Equal(t, "63de4613", s.SetlistFmID)
	assert.Equal(t, "Radiohead", s.Artist.Name)
	assert.Equal(t, "Madison Square Garden", s.Venue.Name)
	assert.Equal(t, "New York", s.Venue.City)
	assert.Equal(t, "United States", s.Venue.Country)
	assert.Equal(t, "World Tour", s.Tour)
	assert.Equal(t, 4, s.SongCount)
	require.Len(t, s.Songs, 4)

	assert.Equal(t, domain.Song{Name: "Airbag", Position: 1, SetNumber: 1, SetName: "Set 1"}, s.Songs[0])
	assert.Equal(t, "live debut", s.Songs[1].Info)
	assert.Equal(t, 2, s.Songs[1].Position)

	ceremony := s.Songs[2]
	assert.Equal(t, 1, ceremony.Position)
	assert.Equal(t, 2, ceremony.SetNumber)
	assert.Equal(t, "Encore", ceremony.SetName)
	require.NotNil(t, ceremony.Cover)
	assert.Equal(t, "Joy Division", ceremony.Cover.Artist)
	assert.True(t, s.Songs[3].Tape)
}

func TestSetlistFMClient_NotFoundIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":404,"message":"not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	setlists, err := newTestSetlistFM(t, server.URL, "sl-key").SearchSetlists(context.Background(), &domain.SetlistQuery{ArtistName: "Nobody"})
	require.NoError(t, err)
	assert.NotNil(t, setlists)
	assert.Empty(t, setlists)
}

func TestSetlistFMClient_MissingAPIKey(t *testing.T) {
	_, err := newTestSetlistFM(t, "http://127.0.0.1:1", "").SearchSetlists(context.Background(), &domain.SetlistQuery{ArtistName: "Radiohead"})
	var unavailable *domain.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, domain.ProviderSetlistFM, unavailable.Provider)
}

func TestSetlistFMClient_CancelledWhileWaiting(t *testing.T) {
	client := newTestSetlistFM(t, "http://127.0.0.1:1", "sl-key")
	require.True(t, client.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.SearchSetlists(ctx, &domain.SetlistQuery{ArtistName: "Radiohead"})
	assert.Error(t, err)
}
