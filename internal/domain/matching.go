package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_matching_service.go -package mocks github.com/synthapp/synth/internal/domain MatchingService
//go:generate mockgen -destination mocks/mock_matching_repository.go -package mocks github.com/synthapp/synth/internal/domain MatchingRepository

const (
	// DefaultCompatibility is used when either side has no taste data
	DefaultCompatibility = 50
	artistOverlapWeight  = 0.6
	genreOverlapWeight   = 0.4
)

type Swipe struct {
	SwiperID     string    `json:"swiper_user_id"`
	SwipedID     string    `json:"swiped_user_id"`
	EventID      string    `json:"event_id"`
	IsInterested bool      `json:"is_interested"`
	CreatedAt    time.Time `json:"created_at"`
}

// Match pairs two users for an event. User1ID is always the smaller id.
type Match struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`

	// joined, read only
	EventTitle string   `json:"event_title,omitempty"`
	Partner    *Profile `json:"partner,omitempty"`
}

// OrderedPair returns the two ids sorted so a pair has one canonical row
func OrderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// PartnerID returns the other participant of the match
func (m *Match) PartnerID(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

type PotentialMatch struct {
	Profile            *Profile `json:"profile"`
	CompatibilityScore int      `json:"compatibility_score"`
}

type SwipeResult struct {
	Matched bool   `json:"matched"`
	Match   *Match `json:"match,omitempty"`
}

// TasteProfile is the set of artists and genres a user engaged with
type TasteProfile struct {
	Artists []string
	Genres  []string
}

func (t *TasteProfile) Empty() bool {
	return t == nil || (len(t.Artists) == 0 && len(t.Genres) == 0)
}

// CompatibilityScore compares two taste profiles. The result is in 0..100.
func CompatibilityScore(a, b *TasteProfile) int {
	if a.Empty() || b.Empty() {
		return DefaultCompatibility
	}
	score := overlap(a.Artists, b.Artists)*artistOverlapWeight + overlap(a.Genres, b.Genres)*genreOverlapWeight
	return int(math.Round(math.Max(0, math.Min(100, score*100))))
}

// overlap is |A∩B| / max(|A|,|B|) over case-insensitive distinct values
func overlap(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)
	largest := len(setA)
	if len(setB) > largest {
		largest = len(setB)
	}
	if largest == 0 {
		return 0
	}
	shared := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			shared++
		}
	}
	return float64(shared) / float64(largest)
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

type SwipeRequest struct {
	SwipedUserID string `json:"swiped_user_id"`
	EventID      string `json:"event_id"`
	IsInterested bool   `json:"is_interested"`
}

func (r *SwipeRequest) Validate() error {
	if r.SwipedUserID == "" {
		return NewValidationError("swiped_user_id is required")
	}
	if r.EventID == "" {
		return NewValidationError("event_id is required")
	}
	return nil
}

type MatchingService interface {
	RecordSwipe(ctx context.Context, swiperID string, req *SwipeRequest) (*SwipeResult, error)
	PotentialMatches(ctx context.Context, userID string, eventID string) ([]*PotentialMatch, error)
	Compatibility(ctx context.Context, userID string, otherID string) (int, error)
	EventMatches(ctx context.Context, userID string, eventID string) ([]*Match, error)
	ListMatches(ctx context.Context, userID string) ([]*Match, error)
	HasSwiped(ctx context.Context, swiperID string, swipedID string, eventID string) (bool, error)
	MatchCount(ctx context.Context, userID string) (int, error)
}

type MatchingRepository interface {
	UpsertSwipe(ctx context.Context, swipe *Swipe) error
	GetSwipe(ctx context.Context, swiperID string, swipedID string, eventID string) (*Swipe, error)
	// CreateMatch is a no-op returning the existing row and created=false when
	// the pair already matched
	CreateMatch(ctx context.Context, match *Match) (*Match, bool, error)
	ListPotentialMatchIDs(ctx context.Context, userID string, eventID string) ([]string, error)
	ListEventMatches(ctx context.Context, userID string, eventID string) ([]*Match, error)
	ListMatches(ctx context.Context, userID string) ([]*Match, error)
	CountMatches(ctx context.Context, userID string) (int, error)
	GetTasteProfile(ctx context.Context, userID string) (*TasteProfile, error)
}
