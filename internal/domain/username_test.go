package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TejPatel", "tejpatel"},
		{"  live fan! ", "livefan"},
		{"__dj.__shadow..", "dj.shadow"},
		{"a..b__c", "a.b_c"},
		{"._.", ""},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeUsername(tc.input))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "live.fan_99", ""},
		{"empty", "  ", "username is required"},
		{"too short after sanitizing", "a!!", "at least 3 characters"},
		{"too long", strings.Repeat("a", 31), "30 characters or less"},
		{"reserved", "Moderator", "reserved"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.input)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSuggestUsernames(t *testing.T) {
	t.Run("base first then numbered", func(t *testing.T) {
		assert.Equal(t,
			[]string{"tejpatel", "tejpatel2", "tejpatel3"},
			SuggestUsernames("Tej Patel", nil, 3))
	})

	t.Run("skips taken names", func(t *testing.T) {
		taken := map[string]bool{"sam": true, "sam2": true}
		assert.Equal(t, []string{"sam3", "sam4"}, SuggestUsernames("Sam", taken, 2))
	})

	t.Run("short base only gets variants long enough", func(t *testing.T) {
		assert.Equal(t, []string{"jo2", "jo3"}, SuggestUsernames("Jo", nil, 2))
	})

	t.Run("reserved base is skipped", func(t *testing.T) {
		assert.Equal(t, []string{"admin2"}, SuggestUsernames("Admin", nil, 1))
	})

	t.Run("nothing usable", func(t *testing.T) {
		assert.Empty(t, SuggestUsernames("!!!", nil, 5))
	})
}

func TestUsernameCooldownRemaining(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	assert.Zero(t, UsernameCooldownRemaining(nil, now))

	old := now.Add(-45 * 24 * time.Hour)
	assert.Zero(t, UsernameCooldownRemaining(&old, now))

	recent := now.Add(-29*24*time.Hour - time.Hour)
	remaining := UsernameCooldownRemaining(&recent, now)
	assert.Equal(t, 23*time.Hour, remaining)
	assert.Equal(t, 1, CooldownDays(remaining))
}
