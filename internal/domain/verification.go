package domain

import (
	"context"
	"database/sql/driver"
	"errors"
	"math"
	"time"

	"github.com/goccy/go-json"
)

//go:generate mockgen -destination mocks/mock_verification_service.go -package mocks github.com/synthapp/synth/internal/domain VerificationService
//go:generate mockgen -destination mocks/mock_verification_repository.go -package mocks github.com/synthapp/synth/internal/domain VerificationRepository

const (
	TrustCriteriaTotal    = 8
	TrustCriteriaToVerify = 4
	MinReviewsForTrust    = 3
	MinFriendsForTrust    = 10
	MinInterestsForTrust  = 10
	MinAttendedForTrust   = 3
	MinAccountAgeForTrust = 30 * 24 * time.Hour
	NearVerificationMin   = 40
	NearVerificationLimit = 50
)

// TrustCriteria records which verification criteria a user meets
type TrustCriteria struct {
	ProfileComplete    bool `json:"profileComplete"`
	StreamingConnected bool `json:"streamingConnected"`
	HasReviews         bool `json:"hasReviews"`
	HasFriends         bool `json:"hasFriends"`
	HasEvents          bool `json:"hasEvents"`
	AccountAge         bool `json:"accountAge"`
	EmailVerified      bool `json:"emailVerified"`
	HasAttended        bool `json:"hasAttended"`
}

// Met counts the satisfied criteria
func (c TrustCriteria) Met() int {
	met := 0
	for _, ok := range []bool{
		c.ProfileComplete, c.StreamingConnected, c.HasReviews, c.HasFriends,
		c.HasEvents, c.AccountAge, c.EmailVerified, c.HasAttended,
	} {
		if ok {
			met++
		}
	}
	return met
}

// Value implements the driver.Valuer interface for database serialization
func (c TrustCriteria) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for database deserialization
func (c *TrustCriteria) Scan(value interface{}) error {
	if value == nil {
		*c = TrustCriteria{}
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
	return json.Unmarshal(b, c)
}

// TrustStats are the activity counters the trust score is computed from
type TrustStats struct {
	ReviewCount   int `json:"review_count"`
	FriendCount   int `json:"friend_count"`
	InterestCount int `json:"interest_count"`
	AttendedCount int `json:"attended_count"`
}

type TrustScore struct {
	Score         int           `json:"score"`
	CriteriaMet   int           `json:"criteria_met"`
	TotalCriteria int           `json:"total_criteria"`
	Criteria      TrustCriteria `json:"criteria"`
	Verified      bool          `json:"verified"`
}

// CalculateTrustScore evaluates the eight verification criteria for a
// profile. Non-user accounts are verified by an admin and always score 100.
func CalculateTrustScore(p *Profile, stats TrustStats, now time.Time) TrustScore {
	if p.AccountType != "" && p.AccountType != AccountTypeUser {
		all := TrustCriteria{true, true, true, true, true, true, true, true}
		return TrustScore{
			Score:         100,
			CriteriaMet:   TrustCriteriaTotal,
			TotalCriteria: TrustCriteriaTotal,
			Criteria:      all,
			Verified:      p.Verified,
		}
	}

	criteria := TrustCriteria{
		ProfileComplete:    ProfileCompletion(p) == 100,
		StreamingConnected: p.StreamingConnected,
		HasReviews:         stats.ReviewCount >= MinReviewsForTrust,
		HasFriends:         stats.FriendCount >= MinFriendsForTrust,
		HasEvents:          stats.InterestCount >= MinInterestsForTrust,
		AccountAge:         !p.CreatedAt.IsZero() && now.Sub(p.CreatedAt) >= MinAccountAgeForTrust,
		// sign-in already requires a confirmed email
		EmailVerified: true,
		HasAttended:   stats.AttendedCount >= MinAttendedForTrust,
	}

	met := criteria.Met()
	return TrustScore{
		Score:         int(math.Round(float64(met) / TrustCriteriaTotal * 100)),
		CriteriaMet:   met,
		TotalCriteria: TrustCriteriaTotal,
		Criteria:      criteria,
		Verified:      met >= TrustCriteriaToVerify,
	}
}

type SetVerifiedRequest struct {
	UserID   string `json:"user_id"`
	Verified bool   `json:"verified"`
}

func (r *SetVerifiedRequest) Validate() error {
	if r.UserID == "" {
		return NewValidationError("user_id is required")
	}
	return nil
}

// VerificationCandidate is a user close to the verification threshold
type VerificationCandidate struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	TrustScore int       `json:"trust_score"`
	CreatedAt  time.Time `json:"created_at"`
}

type VerificationService interface {
	GetTrustScore(ctx context.Context, userID string) (*TrustScore, error)
	RefreshTrustScore(ctx context.Context, userID string) (*TrustScore, error)
	// SetVerified requires the caller to be an admin
	SetVerified(ctx context.Context, userID string, verified bool) error
	UsersNearVerification(ctx context.Context) ([]*VerificationCandidate, error)
}

type VerificationRepository interface {
	GetTrustStats(ctx context.Context, userID string) (*TrustStats, error)
	SaveTrustScore(ctx context.Context, userID string, score *TrustScore) error
	SetVerified(ctx context.Context, userID string, verified bool, adminID string) error
	ListNearVerification(ctx context.Context, minScore int, limit int) ([]*VerificationCandidate, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}
