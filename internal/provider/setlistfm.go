package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const setlistUserAgent = "Synth/1.0 (https://synth.app)"

// SetlistFMClient searches setlist.fm. Requests are paced to one per second
// across all callers.
type SetlistFMClient struct {
	api     *apiClient
	limiter *rate.Limiter
	now     func() time.Time
}

func NewSetlistFMClient(cfg config.ProviderConfig, log logger.Logger) *SetlistFMClient {
	return &SetlistFMClient{
		api:     newAPIClient(domain.ProviderSetlistFM, cfg, "", log),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		now:     time.Now,
	}
}

func (c *SetlistFMClient) Close() {
	c.api.Close()
}

func (c *SetlistFMClient) SearchSetlists(ctx context.Context, query *domain.SetlistQuery) ([]*domain.Setlist, error) {
	if c.api.apiKey == "" {
		return nil, &domain.ErrProviderUnavailable{Provider: domain.ProviderSetlistFM, Err: errMissingAPIKey}
	}

	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("artistName", query.ArtistName)
	if query.Date != "" {
		if date, ok := domain.SetlistDate(query.Date); ok {
			params.Set("date", date)
		}
	}
	set("venueName", query.VenueName)
	set("cityName", query.CityName)
	set("stateCode", query.StateCode)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for setlist.fm rate limit: %w", err)
	}

	header := http.Header{}
	header.Set("x-api-key", c.api.apiKey)
	header.Set("User-Agent", setlistUserAgent)

	resp, err := c.api.get(ctx, "/search/setlists", params, header)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return []*domain.Setlist{}, nil
	}
	if resp.status != http.StatusOK {
		return nil, c.api.unexpected(resp)
	}

	now := c.now().UTC()
	items := gjson.GetBytes(resp.body, "setlist").Array()
	setlists := make([]*domain.Setlist, 0, len(items))
	for _, raw := range items {
		setlists = append(setlists, transformSetlist(raw, now))
	}
	return setlists, nil
}

// transformSetlist flattens the nested sets into one numbered song list
func transformSetlist(raw gjson.Result, now time.Time) *domain.Setlist {
	city := raw.Get("venue.city")
	setlist := &domain.Setlist{
		SetlistFmID: raw.Get("id").String(),
		VersionID:   raw.Get("versionId").String(),
		EventDate:   raw.Get("eventDate").String(),
		Artist: domain.SetlistArtist{
			Name: raw.Get("artist.name").String(),
			MBID: raw.Get("artist.mbid").String(),
		},
		Venue: domain.SetlistVenue{
			Name:    raw.Get("venue.name").String(),
			City:    city.Get("name").String(),
			State:   city.Get("state").String(),
			Country: city.Get("country.name").String(),
		},
		Tour:        raw.Get("tour.name").String(),
		Info:        raw.Get("info").String(),
		URL:         raw.Get("url").String(),
		Songs:       []domain.Song{},
		LastUpdated: now,
	}

	for setIndex, set := range raw.Get("sets.set").Array() {
		setName := set.Get("name").String()
		if setName == "" {
			setName = fmt.Sprintf("Set %d", setIndex+1)
		}
		for songIndex, song := range set.Get("song").Array() {
			s := domain.Song{
				Name:      song.Get("name").String(),
				Position:  songIndex + 1,
				SetNumber: setIndex + 1,
				SetName:   setName,
				Info:      song.Get("info").String(),
				Tape:      song.Get("tape").Bool(),
			}
			if cover := song.Get("cover"); cover.Exists() {
				s.Cover = &domain.SongCover{
					Artist: cover.Get("name").String(),
					MBID:   cover.Get("mbid").String(),
				}
			}
			setlist.Songs = append(setlist.Songs, s)
		}
	}
	setlist.SongCount = len(setlist.Songs)
	return setlist
}
