package provider

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/geo"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/tidwall/gjson"
)

const ticketmasterGeohashPrecision = 7

var (
	atVenuePattern   = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`)
	errMissingAPIKey = errors.New("api key is not configured")
)

// TicketmasterClient searches the Ticketmaster Discovery API
type TicketmasterClient struct {
	api *apiClient
	now func() time.Time
}

func NewTicketmasterClient(cfg config.ProviderConfig, log logger.Logger) *TicketmasterClient {
	return &TicketmasterClient{
		api: newAPIClient(domain.ProviderTicketmaster, cfg, "apikey", log),
		now: time.Now,
	}
}

func (c *TicketmasterClient) Close() {
	c.api.Close()
}

// SearchEvents forwards the query, drops past events, applies the radius
// filter when latlong and radius are both given, and reshapes the rest.
func (c *TicketmasterClient) SearchEvents(ctx context.Context, query *domain.TicketmasterQuery) (*domain.ProviderEventsResult, error) {
	if c.api.apiKey == "" {
		return nil, &domain.ErrProviderUnavailable{Provider: domain.ProviderTicketmaster, Err: errMissingAPIKey}
	}

	resp, err := c.api.get(ctx, "/events.json", ticketmasterParams(query), nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, c.api.unexpected(resp)
	}

	root := gjson.ParseBytes(resp.body)
	now := c.now().UTC()

	lat, lng, hasCoords := query.Coordinates()
	radius, radiusErr := strconv.ParseFloat(query.Radius, 64)
	filterRadius := hasCoords && query.Radius != "" && radiusErr == nil
	unit := geo.ParseUnit(query.Unit)

	events := make([]*domain.Event, 0)
	for _, raw := range root.Get("_embedded.events").Array() {
		if !isUpcomingTicketmasterEvent(raw, now) {
			continue
		}
		if filterRadius {
			venue := raw.Get("_embedded.venues.0.location")
			vLat, vLng := venue.Get("latitude").Float(), venue.Get("longitude").Float()
			if vLat == 0 || vLng == 0 {
				continue
			}
			if !geo.Within(geo.Point{Lat: lat, Lng: lng}, geo.Point{Lat: vLat, Lng: vLng}, radius, unit) {
				continue
			}
		}
		events = append(events, transformTicketmasterEvent(raw, now))
	}

	return &domain.ProviderEventsResult{
		Events: events,
		Total:  len(events),
		Page:   int(root.Get("page.number").Int()),
		Size:   int(root.Get("page.size").Int()),
	}, nil
}

func ticketmasterParams(q *domain.TicketmasterQuery) url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("keyword", q.Keyword)
	set("city", q.City)
	set("stateCode", q.StateCode)
	set("countryCode", q.CountryCode)
	set("postalCode", q.PostalCode)
	if lat, lng, ok := q.Coordinates(); ok {
		params.Set("geoPoint", geo.Geohash(geo.Point{Lat: lat, Lng: lng}, ticketmasterGeohashPrecision))
		params.Set("latlong", q.LatLong)
		if q.CountryCode == "" && q.City == "" && inNetherlandsRegion(lat, lng) {
			params.Set("countryCode", "NL")
		}
	}
	set("radius", q.Radius)
	set("unit", q.Unit)
	set("classificationName", q.ClassificationName)
	set("startDateTime", q.StartDateTime)
	set("endDateTime", q.EndDateTime)
	set("size", q.Size)
	set("page", q.Page)
	set("sort", q.Sort)
	return params
}

// inNetherlandsRegion is a coarse box around the Netherlands
func inNetherlandsRegion(lat, lng float64) bool {
	return lat >= 50 && lat <= 54 && lng >= 3 && lng <= 7
}

// isUpcomingTicketmasterEvent keeps events whose start is not in the past.
// Date-only events stay visible for the whole local day.
func isUpcomingTicketmasterEvent(raw gjson.Result, now time.Time) bool {
	start := raw.Get("dates.start")
	if dt := start.Get("dateTime").String(); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			return !t.Before(now)
		}
	}
	if d := start.Get("localDate").String(); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return !t.Before(now.Truncate(24 * time.Hour))
		}
	}
	return false
}

func transformTicketmasterEvent(raw gjson.Result, now time.Time) *domain.Event {
	name := strings.TrimSpace(raw.Get("name").String())
	venue := raw.Get("_embedded.venues.0")
	if !venue.Exists() {
		venue = raw.Get("place")
	}

	artist := ticketmasterArtist(raw, name)
	event := &domain.Event{
		Title:           name,
		ArtistName:      artist,
		VenueName:       ticketmasterVenueName(venue, name),
		VenueAddress:    venue.Get("address.line1").String(),
		VenueCity:       venue.Get("city.name").String(),
		VenueState:      venue.Get("state.stateCode").String(),
		VenueZip:        venue.Get("postalCode").String(),
		EventDate:       ticketmasterStart(raw, now),
		Description:     firstNonEmpty(raw.Get("info").String(), raw.Get("pleaseNote").String(), raw.Get("description").String()),
		Genres:          ticketmasterGenres(raw),
		TicketURLs:      []string{},
		TicketAvailable: raw.Get("dates.status.code").String() == "onsale" || raw.Get("sales.public.startDateTime").String() != "",
		Status:          ticketmasterStatus(raw.Get("dates.status.code").String()),
		Source:          domain.EventSourceTicketmaster,
		ExternalID:      raw.Get("id").String(),
		ImageURL:        largestImage(raw.Get("images")),
	}
	if event.Title == "" {
		event.Title = artist + " Live"
	}
	if event.Description == "" {
		event.Description = "Live performance by " + artist
	}
	if link := raw.Get("url").String(); link != "" {
		event.TicketURLs = []string{link}
	}

	location := venue.Get("location")
	if !location.Exists() {
		location = venue.Get("geo")
	}
	if lat, lng := location.Get("latitude").Float(), location.Get("longitude").Float(); lat != 0 && lng != 0 {
		event.Latitude, event.Longitude = &lat, &lng
	}

	price := raw.Get("priceRanges.0")
	if min := price.Get("min"); min.Exists() && min.Float() > 0 {
		v := min.Float()
		event.PriceMin = &v
	}
	if max := price.Get("max"); max.Exists() && max.Float() > 0 {
		v := max.Float()
		event.PriceMax = &v
	}
	event.PriceRange = priceRangeString(event.PriceMin, event.PriceMax)

	return event
}

// ticketmasterArtist uses the first attraction, then patterns in the event
// name. Tribute and cover acts fall back to the full event name.
func ticketmasterArtist(raw gjson.Result, name string) string {
	if attraction := raw.Get("_embedded.attractions.0.name").String(); attraction != "" {
		return attraction
	}

	artist := ""
	if strings.Contains(name, " - ") {
		parts := strings.Split(name, " - ")
		last := strings.TrimSpace(parts[len(parts)-1])
		if last != "" && !looksLikeBilling(last) {
			artist = last
		}
	}
	if artist == "" {
		if m := atVenuePattern.FindStringSubmatch(name); m != nil {
			artist = strings.TrimSpace(m[1])
		}
	}
	if artist == "" {
		artist = name
	}
	lower := strings.ToLower(artist)
	if strings.Contains(lower, "tribute") || strings.Contains(lower, "cover") {
		artist = ""
	}
	return firstNonEmpty(artist, name, "Unknown Artist")
}

func ticketmasterVenueName(venue gjson.Result, name string) string {
	if v := venue.Get("name").String(); v != "" {
		return v
	}
	if m := atVenuePattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[2])
	}
	if strings.Contains(name, " - ") {
		for _, part := range strings.Split(name, " - ") {
			part = strings.TrimSpace(part)
			if len(part) > 3 && !looksLikeBilling(part) {
				return part
			}
		}
	}
	if city := venue.Get("city.name").String(); city != "" {
		return city + " Venue"
	}
	return "Venue TBD"
}

func looksLikeBilling(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "ticket") || strings.Contains(lower, "night")
}

// ticketmasterStart prefers the UTC start, then the local date at noon UTC.
// Events without any date are placed a day out.
func ticketmasterStart(raw gjson.Result, now time.Time) time.Time {
	start := raw.Get("dates.start")
	if dt := start.Get("dateTime").String(); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			return t.UTC()
		}
	}
	if d := start.Get("localDate").String(); d != "" {
		if t, err := time.Parse(time.RFC3339, d+"T12:00:00Z"); err == nil {
			return t
		}
	}
	return now.Add(24 * time.Hour)
}

func ticketmasterStatus(code string) domain.EventStatus {
	switch code {
	case "cancelled":
		return domain.EventStatusCancelled
	case "postponed":
		return domain.EventStatusPostponed
	case "rescheduled":
		return domain.EventStatusRescheduled
	default:
		return domain.EventStatusPublished
	}
}

func ticketmasterGenres(raw gjson.Result) []string {
	seen := map[string]struct{}{}
	genres := []string{}
	for _, c := range raw.Get("classifications").Array() {
		for _, field := range []string{"genre.name", "subGenre.name"} {
			g := strings.TrimSpace(c.Get(field).String())
			if g == "" || strings.EqualFold(g, "undefined") {
				continue
			}
			if _, ok := seen[strings.ToLower(g)]; ok {
				continue
			}
			seen[strings.ToLower(g)] = struct{}{}
			genres = append(genres, g)
		}
	}
	if len(genres) == 0 {
		return []string{"Other"}
	}
	return genres
}

func largestImage(images gjson.Result) string {
	best, bestWidth := "", int64(-1)
	for _, img := range images.Array() {
		if w := img.Get("width").Int(); w > bestWidth && img.Get("url").String() != "" {
			best, bestWidth = img.Get("url").String(), w
		}
	}
	return best
}

func priceRangeString(min, max *float64) string {
	format := func(v float64) string { return "$" + strconv.FormatFloat(v, 'f', -1, 64) }
	switch {
	case min != nil && max != nil && *min != *max:
		return format(*min) + " - " + format(*max)
	case min != nil && max != nil:
		return format(*min)
	case min != nil:
		return format(*min) + "+"
	case max != nil:
		return "Up to " + format(*max)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
