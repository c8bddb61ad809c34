package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	UsernameMinLength       = 3
	UsernameMaxLength       = 30
	UsernameChangeCooldown  = 30 * 24 * time.Hour
	UsernameSuggestionCount = 5
	maxUsernameVariant      = 1000
)

var (
	usernameInvalidChars = regexp.MustCompile(`[^a-z0-9_.]`)
	usernameEdgeMarks    = regexp.MustCompile(`^[_.]+|[_.]+$`)
	usernameRepeatMarks  = regexp.MustCompile(`[_.]{2,}`)
	nameInvalidChars     = regexp.MustCompile(`[^a-z0-9\s]`)
)

var reservedUsernames = map[string]struct{}{
	"admin": {}, "administrator": {}, "support": {}, "help": {}, "root": {},
	"system": {}, "api": {}, "www": {}, "mail": {}, "email": {},
	"postmaster": {}, "noreply": {}, "no-reply": {}, "test": {}, "testing": {},
	"null": {}, "undefined": {}, "delete": {}, "remove": {}, "moderator": {},
	"mod": {}, "staff": {}, "team": {}, "official": {}, "verify": {},
	"verified": {},
}

// SanitizeUsername lowercases the input and keeps letters, digits, single
// underscores and single periods, never at either end.
func SanitizeUsername(username string) string {
	s := strings.ToLower(strings.TrimSpace(username))
	s = usernameInvalidChars.ReplaceAllString(s, "")
	s = usernameEdgeMarks.ReplaceAllString(s, "")
	return usernameRepeatMarks.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1]
	})
}

// IsReservedUsername reports whether the name belongs to the service
func IsReservedUsername(username string) bool {
	_, ok := reservedUsernames[strings.ToLower(username)]
	return ok
}

// ValidateUsername checks the sanitized form of username
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return NewValidationError("username is required")
	}
	s := SanitizeUsername(username)
	if len(s) < UsernameMinLength {
		return NewValidationError(fmt.Sprintf("username must be at least %d characters", UsernameMinLength))
	}
	if len(s) > UsernameMaxLength {
		return NewValidationError(fmt.Sprintf("username must be %d characters or less", UsernameMaxLength))
	}
	if IsReservedUsername(s) {
		return NewValidationError("this username is reserved and cannot be used")
	}
	return nil
}

// BaseUsernameFromName joins the words of a display name: "Tej Patel" is "tejpatel"
func BaseUsernameFromName(name string) string {
	s := nameInvalidChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
	return strings.Join(strings.Fields(s), "")
}

// SuggestUsernames proposes up to count free names derived from name,
// starting with the bare base and continuing with numbered variants.
func SuggestUsernames(name string, taken map[string]bool, count int) []string {
	base := BaseUsernameFromName(name)
	if base == "" || count <= 0 {
		return []string{}
	}
	if len(base) > UsernameMaxLength-3 {
		base = base[:UsernameMaxLength-3]
	}

	free := func(candidate string) bool {
		return !taken[candidate] && !IsReservedUsername(candidate)
	}

	suggestions := make([]string, 0, count)
	if len(base) >= UsernameMinLength && free(base) {
		suggestions = append(suggestions, base)
	}
	for n := 2; len(suggestions) < count && n <= maxUsernameVariant; n++ {
		variant := base + strconv.Itoa(n)
		if len(variant) >= UsernameMinLength && free(variant) {
			suggestions = append(suggestions, variant)
		}
	}
	return suggestions
}

// UsernameCooldownRemaining is the wait before the next change is allowed.
// A profile that never changed its username may change it right away.
func UsernameCooldownRemaining(lastChange *time.Time, now time.Time) time.Duration {
	if lastChange == nil {
		return 0
	}
	remaining := lastChange.Add(UsernameChangeCooldown).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CooldownDays rounds a remaining cooldown up to whole days
func CooldownDays(remaining time.Duration) int {
	day := 24 * time.Hour
	return int((remaining + day - 1) / day)
}

type UsernameRequest struct {
	Username string `json:"username"`
}

func (r *UsernameRequest) Validate() error {
	return ValidateUsername(r.Username)
}

// UsernameAvailability answers profiles.checkUsername
type UsernameAvailability struct {
	Username    string   `json:"username"`
	Available   bool     `json:"available"`
	Reason      string   `json:"reason,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
