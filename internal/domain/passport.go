package domain

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

//go:generate mockgen -destination mocks/mock_passport_service.go -package mocks github.com/synthapp/synth/internal/domain PassportService
//go:generate mockgen -destination mocks/mock_passport_repository.go -package mocks github.com/synthapp/synth/internal/domain PassportRepository

type PassportEntryType string

const (
	PassportCity            PassportEntryType = "city"
	PassportVenue           PassportEntryType = "venue"
	PassportArtist          PassportEntryType = "artist"
	PassportScene           PassportEntryType = "scene"
	PassportEra             PassportEntryType = "era"
	PassportFestival        PassportEntryType = "festival"
	PassportArtistMilestone PassportEntryType = "artist_milestone"
)

func (t PassportEntryType) Valid() bool {
	switch t {
	case PassportCity, PassportVenue, PassportArtist, PassportScene, PassportEra, PassportFestival, PassportArtistMilestone:
		return true
	}
	return false
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	return r == RarityCommon || r == RarityUncommon || r == RarityLegendary
}

type FanType string

const (
	FanTypeJamChaser       FanType = "jam_chaser"
	FanTypeVenuePurist     FanType = "venue_purist"
	FanTypeSceneBuilder    FanType = "scene_builder"
	FanTypeRoadTripper     FanType = "road_tripper"
	FanTypeGenreExplorer   FanType = "genre_explorer"
	FanTypeFestivalFanatic FanType = "festival_fanatic"
)

func (f FanType) Ptr() *FanType {
	return &f
}

const (
	MaxPinnedTimeline   = 5
	MaxUnlockHints      = 3
	HintUpcomingEvents  = 10
	TimelineLimit       = 1000
	TasteMapTopN        = 10
	explorerGenreCount  = 8
	roadTripCityCount   = 5
	fanaticFestivals    = 3
	builderScenes       = 3
	dominantShare       = 0.3
	minEventsForPattern = 3
	interestWeight      = 0.25
	attendedBonus       = 0.5
)

type PassportEntry struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Type       PassportEntryType `json:"type"`
	EntityID   *string           `json:"entity_id"`
	EntityUUID *string           `json:"entity_uuid"`
	EntityName string            `json:"entity_name"`
	UnlockedAt time.Time         `json:"unlocked_at"`
	Metadata   JSONMap           `json:"metadata"`
	Rarity     Rarity            `json:"rarity"`
}

type PassportProgress struct {
	Cities     []*PassportEntry `json:"cities"`
	Venues     []*PassportEntry `json:"venues"`
	Artists    []*PassportEntry `json:"artists"`
	Scenes     []*PassportEntry `json:"scenes"`
	TotalCount int              `json:"total_count"`
}

// GroupProgress splits entries by type. TotalCount includes every entry,
// grouped or not.
func GroupProgress(entries []*PassportEntry) *PassportProgress {
	progress := &PassportProgress{
		Cities:     []*PassportEntry{},
		Venues:     []*PassportEntry{},
		Artists:    []*PassportEntry{},
		Scenes:     []*PassportEntry{},
		TotalCount: len(entries),
	}
	for _, e := range entries {
		switch e.Type {
		case PassportCity:
			progress.Cities = append(progress.Cities, e)
		case PassportVenue:
			progress.Venues = append(progress.Venues, e)
		case PassportArtist:
			progress.Artists = append(progress.Artists, e)
		case PassportScene:
			progress.Scenes = append(progress.Scenes, e)
		}
	}
	return progress
}

type UnlockHint struct {
	Type       PassportEntryType `json:"type"`
	EntityName string            `json:"entity_name"`
	Hint       string            `json:"hint"`
	Progress   int               `json:"progress"`
	Goal       int               `json:"goal"`
}

type PassportIdentity struct {
	UserID       string    `json:"user_id"`
	FanType      *FanType  `json:"fan_type"`
	HomeSceneID  *string   `json:"home_scene_id"`
	HomeCity     string    `json:"home_city,omitempty"`
	JoinYear     int       `json:"join_year"`
	CalculatedAt time.Time `json:"calculated_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TimelineMilestone is a stored row of the timeline, one per reviewed event
type TimelineMilestone struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ReviewID       string    `json:"review_id"`
	IsPinned       bool      `json:"is_pinned"`
	IsAutoSelected bool      `json:"is_auto_selected"`
	Significance   *string   `json:"significance"`
	Description    *string   `json:"description"`
	EventName      *string   `json:"event_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TimelineRecord is a published review joined with its milestone, if any
type TimelineRecord struct {
	ReviewID        string
	Rating          float64
	ReviewText      string
	EventID         string
	EventDate       *time.Time
	ArtistName      string
	VenueName       string
	ReviewCreatedAt time.Time
	Milestone       *TimelineMilestone
}

type TimelineReview struct {
	ID         string    `json:"id"`
	Rating     float64   `json:"rating"`
	ReviewText string    `json:"review_text,omitempty"`
	EventDate  time.Time `json:"event_date"`
	EventID    string    `json:"event_id,omitempty"`
}

type TimelineEntry struct {
	ID             string         `json:"id"`
	ReviewID       string         `json:"review_id"`
	IsPinned       bool           `json:"is_pinned"`
	IsAutoSelected bool           `json:"is_auto_selected"`
	Significance   *string        `json:"significance"`
	Description    *string        `json:"description"`
	EventName      *string        `json:"event_name"`
	CreatedAt      time.Time      `json:"created_at"`
	Review         TimelineReview `json:"review"`
}

// TimelineEventName is "<artist> @ <venue>" or whichever part is known, nil when neither is
func TimelineEventName(artistName, venueName string) *string {
	var name string
	switch {
	case artistName != "" && venueName != "":
		name = artistName + " @ " + venueName
	case artistName != "":
		name = artistName
	case venueName != "":
		name = venueName
	default:
		return nil
	}
	return &name
}

// BuildTimeline merges reviews with their milestones. Reviews without a
// milestone get a synthetic "review-<id>" entry marked auto selected.
func BuildTimeline(records []*TimelineRecord) []*TimelineEntry {
	entries := make([]*TimelineEntry, 0, len(records))
	for _, r := range records {
		eventDate := r.ReviewCreatedAt
		if r.EventDate != nil {
			eventDate = *r.EventDate
		}
		entry := &TimelineEntry{
			ID:             "review-" + r.ReviewID,
			ReviewID:       r.ReviewID,
			IsAutoSelected: true,
			EventName:      TimelineEventName(r.ArtistName, r.VenueName),
			CreatedAt:      r.ReviewCreatedAt,
			Review: TimelineReview{
				ID:         r.ReviewID,
				Rating:     r.Rating,
				ReviewText: r.ReviewText,
				EventDate:  eventDate,
				EventID:    r.EventID,
			},
		}
		if m := r.Milestone; m != nil {
			entry.ID = m.ID
			entry.IsPinned = m.IsPinned
			entry.IsAutoSelected = m.IsAutoSelected
			entry.Significance = m.Significance
			entry.Description = m.Description
			if m.EventName != nil {
				entry.EventName = m.EventName
			}
			if !m.CreatedAt.IsZero() {
				entry.CreatedAt = m.CreatedAt
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// WeightedTag is a genre or artist with its normalized weight in 0..1
type WeightedTag struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

type WeightedTags []WeightedTag

// Value implements the driver.Valuer interface for database serialization
func (w WeightedTags) Value() (driver.Value, error) {
	if w == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w)
}

// Scan implements the sql.Scanner interface for database deserialization
func (w *WeightedTags) Scan(value interface{}) error {
	if value == nil {
		*w = WeightedTags{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, w)
}

type TasteMap struct {
	UserID       string       `json:"user_id"`
	Genres       WeightedTags `json:"genres"`
	Artists      WeightedTags `json:"artists"`
	FanType      *FanType     `json:"fan_type"`
	EventCount   int          `json:"event_count"`
	CalculatedAt time.Time    `json:"calculated_at"`
}

type TasteSignalKind string

const (
	TasteSignalReview   TasteSignalKind = "review"
	TasteSignalInterest TasteSignalKind = "interest"
)

// TasteSignal is one reviewed or interested event feeding the taste map
type TasteSignal struct {
	Kind       TasteSignalKind
	EventID    string
	ArtistName string
	VenueID    string
	VenueName  string
	VenueCity  string
	VenueState string
	Genres     []string
	Rating     float64
	WasThere   bool
}

func (s *TasteSignal) weight() float64 {
	if s.Kind == TasteSignalInterest {
		return interestWeight
	}
	w := s.Rating / MaxRating
	if s.WasThere {
		w += attendedBonus
	}
	return w
}

// CalculateTasteMap weighs genres and artists across reviews and interests,
// normalizes them to the heaviest entry and keeps the top ten of each. The
// passport entries only feed the fan type.
func CalculateTasteMap(userID string, signals []*TasteSignal, entries []*PassportEntry, now time.Time) *TasteMap {
	genres := map[string]float64{}
	artists := map[string]float64{}
	pattern := fanPattern{
		total:        len(signals),
		artistEvents: map[string]int{},
		venueEvents:  map[string]int{},
		genres:       map[string]struct{}{},
		cities:       map[string]struct{}{},
	}

	for _, s := range signals {
		w := s.weight()
		for _, g := range s.Genres {
			g = strings.TrimSpace(g)
			if g == "" {
				continue
			}
			genres[g] += w
			pattern.genres[strings.ToLower(g)] = struct{}{}
		}
		if a := strings.TrimSpace(s.ArtistName); a != "" {
			artists[a] += w
			pattern.artistEvents[strings.ToLower(a)]++
		}
		venue := s.VenueID
		if venue == "" {
			venue = strings.ToLower(strings.TrimSpace(s.VenueName))
		}
		if venue != "" {
			pattern.venueEvents[venue]++
		}
		if city := strings.ToLower(strings.TrimSpace(s.VenueCity)); city != "" {
			pattern.cities[city+"|"+strings.ToLower(strings.TrimSpace(s.VenueState))] = struct{}{}
		}
	}
	for _, e := range entries {
		switch e.Type {
		case PassportFestival:
			pattern.festivals++
		case PassportScene:
			pattern.scenes++
		}
	}

	return &TasteMap{
		UserID:       userID,
		Genres:       topWeighted(genres, TasteMapTopN),
		Artists:      topWeighted(artists, TasteMapTopN),
		FanType:      pattern.classify(),
		EventCount:   len(signals),
		CalculatedAt: now,
	}
}

type fanPattern struct {
	total        int
	artistEvents map[string]int
	venueEvents  map[string]int
	genres       map[string]struct{}
	cities       map[string]struct{}
	festivals    int
	scenes       int
}

// classify returns nil until a pattern stands out. Festivals are checked
// first, then loyalty to one artist or venue, then breadth.
func (p fanPattern) classify() *FanType {
	switch {
	case p.festivals >= fanaticFestivals:
		return FanTypeFestivalFanatic.Ptr()
	case p.total >= minEventsForPattern && dominates(p.artistEvents, p.total):
		return FanTypeJamChaser.Ptr()
	case p.total >= minEventsForPattern && dominates(p.venueEvents, p.total):
		return FanTypeVenuePurist.Ptr()
	case len(p.cities) >= roadTripCityCount:
		return FanTypeRoadTripper.Ptr()
	case p.scenes >= builderScenes:
		return FanTypeSceneBuilder.Ptr()
	case len(p.genres) >= explorerGenreCount:
		return FanTypeGenreExplorer.Ptr()
	}
	return nil
}

func dominates(counts map[string]int, total int) bool {
	for _, n := range counts {
		if n >= minEventsForPattern && float64(n)/float64(total) >= dominantShare {
			return true
		}
	}
	return false
}

func topWeighted(weights map[string]float64, n int) WeightedTags {
	tags := make(WeightedTags, 0, len(weights))
	top := 0.0
	for name, w := range weights {
		tags = append(tags, WeightedTag{Name: name, Weight: w})
		if w > top {
			top = w
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Weight != tags[j].Weight {
			return tags[i].Weight > tags[j].Weight
		}
		return tags[i].Name < tags[j].Name
	})
	if len(tags) > n {
		tags = tags[:n]
	}
	if top > 0 {
		for i := range tags {
			tags[i].Weight = math.Round(tags[i].Weight/top*1000) / 1000
		}
	}
	return tags
}

type UnlockEntryRequest struct {
	Type       PassportEntryType `json:"type"`
	EntityID   *string           `json:"entity_id,omitempty"`
	EntityUUID *string           `json:"entity_uuid,omitempty"`
	EntityName string            `json:"entity_name"`
	Rarity     Rarity            `json:"rarity,omitempty"`
	Metadata   JSONMap           `json:"metadata,omitempty"`
}

func (r *UnlockEntryRequest) Validate() error {
	if !r.Type.Valid() {
		return NewValidationError(fmt.Sprintf("unsupported passport entry type %q", r.Type))
	}
	if strings.TrimSpace(r.EntityName) == "" {
		return NewValidationError("entity_name is required")
	}
	if isBlank(r.EntityID) && isBlank(r.EntityUUID) {
		return NewValidationError("entity_id or entity_uuid is required")
	}
	if r.Rarity == "" {
		r.Rarity = RarityCommon
	}
	if !r.Rarity.Valid() {
		return NewValidationError(fmt.Sprintf("unsupported rarity %q", r.Rarity))
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

type MilestoneRequest struct {
	ReviewID     string  `json:"review_id,omitempty"`
	TimelineID   string  `json:"timeline_id,omitempty"`
	Significance string  `json:"significance"`
	Description  *string `json:"description,omitempty"`
}

func (r *MilestoneRequest) Validate() error {
	if r.ReviewID == "" && r.TimelineID == "" {
		return NewValidationError("review_id or timeline_id is required")
	}
	r.Significance = strings.TrimSpace(r.Significance)
	if r.Significance == "" {
		return NewValidationError("significance is required")
	}
	if len(r.Significance) > 200 {
		return NewValidationError("significance length must be at most 200")
	}
	if r.Description != nil && len(*r.Description) > 2000 {
		return NewValidationError("description length must be at most 2000")
	}
	return nil
}

type PassportService interface {
	GetProgress(ctx context.Context, userID string) (*PassportProgress, error)
	UnlockEntry(ctx context.Context, userID string, req *UnlockEntryRequest) (*PassportEntry, error)
	// UnlockFromReview stamps the city, venue and artist of an attended event
	UnlockFromReview(ctx context.Context, review *Review, event *Event) error
	NextToUnlock(ctx context.Context, userID string) ([]*UnlockHint, error)
	GetIdentity(ctx context.Context, userID string) (*PassportIdentity, error)
	Recalculate(ctx context.Context, userID string) (*PassportIdentity, error)
	GetStamps(ctx context.Context, userID string, rarity Rarity) ([]*PassportEntry, error)
	GetTimeline(ctx context.Context, userID string) ([]*TimelineEntry, error)
	PinTimelineEvent(ctx context.Context, userID string, reviewID string) (*TimelineMilestone, error)
	UnpinTimelineEvent(ctx context.Context, userID string, timelineID string) error
	AddMilestone(ctx context.Context, userID string, req *MilestoneRequest) (*TimelineMilestone, error)
	UpdateMilestone(ctx context.Context, userID string, req *MilestoneRequest) (*TimelineMilestone, error)
	DeleteTimelineEntry(ctx context.Context, userID string, timelineID string) error
	GetTasteMap(ctx context.Context, userID string) (*TasteMap, error)
}

type PassportRepository interface {
	InsertEntry(ctx context.Context, entry *PassportEntry) error
	FindEntry(ctx context.Context, userID string, entryType PassportEntryType, entityUUID *string, entityID *string) (*PassportEntry, error)
	ListEntries(ctx context.Context, userID string, rarity Rarity) ([]*PassportEntry, error)
	GetIdentity(ctx context.Context, userID string) (*PassportIdentity, error)
	UpsertIdentity(ctx context.Context, identity *PassportIdentity) error
	ListTimelineRecords(ctx context.Context, userID string, limit int) ([]*TimelineRecord, error)
	CountPinned(ctx context.Context, userID string) (int, error)
	// PinReview upserts the milestone row of a review with is_pinned set
	PinReview(ctx context.Context, userID string, reviewID string) (*TimelineMilestone, error)
	SetPinned(ctx context.Context, userID string, timelineID string, pinned bool) error
	UpsertMilestone(ctx context.Context, milestone *TimelineMilestone) (*TimelineMilestone, error)
	UpdateMilestone(ctx context.Context, userID string, timelineID string, significance string, description *string) (*TimelineMilestone, error)
	DeleteTimelineEntry(ctx context.Context, userID string, timelineID string) error
	GetTasteMap(ctx context.Context, userID string) (*TasteMap, error)
	UpsertTasteMap(ctx context.Context, tasteMap *TasteMap) error
	ListTasteSignals(ctx context.Context, userID string) ([]*TasteSignal, error)
}
