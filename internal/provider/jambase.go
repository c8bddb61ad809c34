package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/tidwall/gjson"
)

const jambaseIDPrefix = "jambase:"

var jambaseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// JamBaseClient searches the JamBase events API
type JamBaseClient struct {
	api *apiClient
	now func() time.Time
}

func NewJamBaseClient(cfg config.ProviderConfig, log logger.Logger) *JamBaseClient {
	return &JamBaseClient{
		api: newAPIClient(domain.ProviderJamBase, cfg, "apikey", log),
		now: time.Now,
	}
}

func (c *JamBaseClient) Close() {
	c.api.Close()
}

func (c *JamBaseClient) SearchEvents(ctx context.Context, query *domain.JamBaseQuery) ([]*domain.Event, error) {
	if c.api.apiKey == "" {
		return nil, &domain.ErrProviderUnavailable{Provider: domain.ProviderJamBase, Err: errMissingAPIKey}
	}

	params := url.Values{}
	if query.ArtistName != "" {
		params.Set("artistName", query.ArtistName)
	}
	eventType := query.EventType
	if eventType == "" {
		eventType = "concerts"
	}
	params.Set("eventType", eventType)
	params.Set("page", strconv.Itoa(max(query.Page, 1)))
	params.Set("perPage", strconv.Itoa(max(query.PerPage, 1)))
	params.Set("geoRadiusUnits", "mi")

	resp, err := c.api.get(ctx, "/events", params, nil)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return []*domain.Event{}, nil
	}
	if resp.status != http.StatusOK {
		return nil, c.api.unexpected(resp)
	}

	now := c.now().UTC()
	items := jambaseItems(gjson.ParseBytes(resp.body))
	events := make([]*domain.Event, 0, len(items))
	for _, raw := range items {
		event := transformJamBaseEvent(raw, now)
		if event.ExternalID == "" {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// jambaseItems accepts a bare array or an object holding the list under
// events, data or results.
func jambaseItems(root gjson.Result) []gjson.Result {
	if root.IsArray() {
		return root.Array()
	}
	for _, key := range []string{"events", "data", "results"} {
		if list := root.Get(key); list.IsArray() {
			return list.Array()
		}
	}
	return nil
}

func stripJamBaseID(raw gjson.Result) string {
	id := firstNonEmpty(raw.Get("identifier").String(), raw.Get("id").String())
	return strings.TrimPrefix(id, jambaseIDPrefix)
}

func jambaseHeadliner(raw gjson.Result) gjson.Result {
	performers := raw.Get("performer").Array()
	for _, p := range performers {
		if p.Get("x-isHeadliner").Bool() {
			return p
		}
	}
	if len(performers) > 0 {
		return performers[0]
	}
	return gjson.Result{}
}

func transformJamBaseEvent(raw gjson.Result, now time.Time) *domain.Event {
	headliner := jambaseHeadliner(raw)
	artist := firstNonEmpty(headliner.Get("name").String(), "Unknown Artist")
	venue := raw.Get("location")
	address := venue.Get("address")

	start := parseJamBaseTime(raw.Get("startDate").String())
	if start.IsZero() {
		start = now
	}

	event := &domain.Event{
		Title:        firstNonEmpty(raw.Get("name").String(), artist+" Live"),
		ArtistID:     stripJamBaseID(headliner),
		ArtistName:   artist,
		VenueID:      stripJamBaseID(venue),
		VenueName:    firstNonEmpty(venue.Get("name").String(), "Unknown Venue"),
		VenueCity:    address.Get("addressLocality").String(),
		VenueState:   jambaseRegion(address.Get("addressRegion")),
		VenueAddress: address.Get("streetAddress").String(),
		VenueZip:     address.Get("postalCode").String(),
		EventDate:    start,
		Description:  firstNonEmpty(raw.Get("description").String(), "Live performance by "+artist),
		Genres:       []string{},
		TicketURLs:   []string{},
		Status:       jambaseStatus(raw.Get("eventStatus").String()),
		Source:       domain.EventSourceJamBase,
		ExternalID:   stripJamBaseID(raw),
		ImageURL:     firstNonEmpty(raw.Get("image").String(), headliner.Get("image").String()),
	}

	for _, g := range headliner.Get("genre").Array() {
		if g.String() != "" {
			event.Genres = append(event.Genres, g.String())
		}
	}

	if doors := jambaseDoors(raw.Get("doorTime").String(), raw.Get("startDate").String()); !doors.IsZero() {
		event.DoorsTime = &doors
	}

	geo := venue.Get("geo")
	if lat, lng := geo.Get("latitude").Float(), geo.Get("longitude").Float(); lat != 0 && lng != 0 {
		event.Latitude, event.Longitude = &lat, &lng
	}

	offers := raw.Get("offers").Array()
	event.TicketAvailable = len(offers) > 0
	for _, offer := range offers {
		if link := offer.Get("url").String(); link != "" {
			event.TicketURLs = append(event.TicketURLs, link)
		}
	}
	if len(offers) > 0 {
		spec := offers[0].Get("priceSpecification")
		event.PriceRange = firstNonEmpty(spec.Get("price").String(), spec.Get("minPrice").String())
		if v := spec.Get("minPrice").Float(); v > 0 {
			event.PriceMin = &v
		}
		if v := spec.Get("maxPrice").Float(); v > 0 {
			event.PriceMax = &v
		}
	}

	return event
}

// jambaseRegion prefers the short state code when the region is an object
func jambaseRegion(region gjson.Result) string {
	if region.IsObject() {
		return firstNonEmpty(region.Get("alternateName").String(), region.Get("name").String())
	}
	return region.String()
}

func jambaseStatus(status string) domain.EventStatus {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "cancel"):
		return domain.EventStatusCancelled
	case strings.Contains(lower, "postpone"):
		return domain.EventStatusPostponed
	case strings.Contains(lower, "reschedule"):
		return domain.EventStatusRescheduled
	default:
		return domain.EventStatusPublished
	}
}

func parseJamBaseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range jambaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// jambaseDoors accepts a full timestamp or a bare clock time on the start date
func jambaseDoors(doors, startDate string) time.Time {
	doors = strings.TrimSpace(doors)
	if doors == "" {
		return time.Time{}
	}
	if strings.Contains(doors, "T") || strings.Contains(doors, "-") {
		return parseJamBaseTime(doors)
	}
	day, _, _ := strings.Cut(startDate, "T")
	return parseJamBaseTime(day + "T" + doors)
}
