package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_profile_service.go -package mocks github.com/synthapp/synth/internal/domain ProfileService
//go:generate mockgen -destination mocks/mock_profile_repository.go -package mocks github.com/synthapp/synth/internal/domain ProfileRepository

type AccountType string

const (
	AccountTypeUser     AccountType = "user"
	AccountTypeCreator  AccountType = "creator"
	AccountTypeBusiness AccountType = "business"
	AccountTypeAdmin    AccountType = "admin"
)

// Profile is the public profile of a user. UserID is the subject of the
// identity provider token.
type Profile struct {
	UserID               string         `json:"user_id"`
	Email                string         `json:"-"`
	Name                 string         `json:"name"`
	Username             *string        `json:"username,omitempty"`
	UsernameChangedAt    *time.Time     `json:"username_changed_at,omitempty"`
	Bio                  string         `json:"bio,omitempty"`
	AvatarURL            string         `json:"avatar_url,omitempty"`
	Birthday             *time.Time     `json:"birthday,omitempty"`
	Gender               string         `json:"gender,omitempty"`
	LocationCity         string         `json:"location_city,omitempty"`
	LocationState        string         `json:"location_state,omitempty"`
	AccountType          AccountType    `json:"account_type"`
	StreamingConnected   bool           `json:"streaming_connected"`
	Verified             bool           `json:"verified"`
	TrustScore           int            `json:"trust_score"`
	VerificationCriteria *TrustCriteria `json:"verification_criteria,omitempty"`
	VerifiedAt           *time.Time     `json:"verified_at,omitempty"`
	VerifiedBy           *string        `json:"verified_by,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// DisplayName falls back to "Unknown User" for profiles without a name
func (p *Profile) DisplayName() string {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return "Unknown User"
	}
	return p.Name
}

// ProfileCompletion is the percentage of the five profile fields that are set
func ProfileCompletion(p *Profile) int {
	if p == nil {
		return 0
	}
	set := 0
	for _, ok := range profileFields(p) {
		if ok {
			set++
		}
	}
	return set * 100 / 5
}

func profileFields(p *Profile) []bool {
	return []bool{
		strings.TrimSpace(p.Name) != "",
		strings.TrimSpace(p.Bio) != "",
		strings.TrimSpace(p.AvatarURL) != "",
		p.Birthday != nil,
		strings.TrimSpace(p.Gender) != "",
	}
}

type GetProfileRequest struct {
	UserID string `json:"user_id"`
}

func (r *GetProfileRequest) FromURLParams(queryParams url.Values) error {
	r.UserID = queryParams.Get("user_id")
	if r.UserID == "" {
		return fmt.Errorf("invalid get profile request: user_id is required")
	}
	if !govalidator.IsUUID(r.UserID) {
		return fmt.Errorf("invalid get profile request: user_id must be a UUID")
	}
	return nil
}

// UpdateProfileRequest is a partial update; nil fields are left untouched
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
	Birthday           *string `json:"birthday,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	LocationCity       *string `json:"location_city,omitempty"`
	LocationState      *string `json:"location_state,omitempty"`
	StreamingConnected *bool   `json:"streaming_connected,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name != nil && len(*r.Name) > 100 {
		return fmt.Errorf("invalid update profile request: name length must be at most 100")
	}
	if r.Bio != nil && len(*r.Bio) > 500 {
		return fmt.Errorf("invalid update profile request: bio length must be at most 500")
	}
	if r.AvatarURL != nil && *r.AvatarURL != "" && !govalidator.IsURL(*r.AvatarURL) {
		return fmt.Errorf("invalid update profile request: avatar_url must be a valid URL")
	}
	if r.Birthday != nil && *r.Birthday != "" {
		if _, err := time.Parse("2006-01-02", *r.Birthday); err != nil {
			return fmt.Errorf("invalid update profile request: birthday must be YYYY-MM-DD")
		}
	}
	if r.Gender != nil && len(*r.Gender) > 50 {
		return fmt.Errorf("invalid update profile request: gender length must be at most 50")
	}
	if r.LocationState != nil && len(*r.LocationState) > 50 {
		return fmt.Errorf("invalid update profile request: location_state length must be at most 50")
	}
	return nil
}

// Apply copies the set fields onto p. Validate must have passed.
func (r *UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Bio != nil {
		p.Bio = strings.TrimSpace(*r.Bio)
	}
	if r.AvatarURL != nil {
		p.AvatarURL = *r.AvatarURL
	}
	if r.Birthday != nil {
		if *r.Birthday == "" {
			p.Birthday = nil
		} else if b, err := time.Parse("2006-01-02", *r.Birthday); err == nil {
			p.Birthday = &b
		}
	}
	if r.Gender != nil {
		p.Gender = *r.Gender
	}
	if r.LocationCity != nil {
		p.LocationCity = strings.TrimSpace(*r.LocationCity)
	}
	if r.LocationState != nil {
		p.LocationState = strings.TrimSpace(*r.LocationState)
	}
	if r.StreamingConnected != nil {
		p.StreamingConnected = *r.StreamingConnected
	}
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// EnsureProfile returns the caller's profile, creating an empty one on first use
	EnsureProfile(ctx context.Context, userID string, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*Profile, error)
	// CheckUsername reports whether userID could take username, with
	// suggestions when it cannot
	CheckUsername(ctx context.Context, userID string, username string) (*UsernameAvailability, error)
	UpdateUsername(ctx context.Context, userID string, username string) (*Profile, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfiles(ctx context.Context, userIDs []string) ([]*Profile, error)
	// CreateProfile inserts the profile unless one already exists
	CreateProfile(ctx context.Context, profile *Profile) error
	UpdateProfile(ctx context.Context, profile *Profile) error
	// UsernameTaken ignores the profile of excludeUserID
	UsernameTaken(ctx context.Context, username string, excludeUserID string) (bool, error)
	ListUsernamesWithPrefix(ctx context.Context, prefix string, excludeUserID string, limit int) ([]string, error)
	// UpdateUsername reports a username held by another profile as ErrConflict
	UpdateUsername(ctx context.Context, userID string, username string, changedAt time.Time) error
}
