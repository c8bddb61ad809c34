package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile(createdAt time.Time) *Profile {
	birthday := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Profile{
		UserID:             "user-1",
		Name:               "Ada",
		Bio:                "Live music fan",
		AvatarURL:          "https://cdn.example/ada.png",
		Birthday:           &birthday,
		Gender:             "female",
		AccountType:        AccountTypeUser,
		StreamingConnected: true,
		CreatedAt:          createdAt,
	}
}

func TestCalculateTrustScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all criteria met", func(t *testing.T) {
		p := completeProfile(now.Add(-31 * 24 * time.Hour))
		stats := TrustStats{ReviewCount: 3, FriendCount: 10, InterestCount: 10, AttendedCount: 3}

		score := CalculateTrustScore(p, stats, now)

		assert.Equal(t, 100, score.Score)
		assert.Equal(t, 8, score.CriteriaMet)
		assert.Equal(t, TrustCriteriaTotal, score.TotalCriteria)
		assert.True(t, score.Verified)
	})

	t.Run("brand new user only has a verified email", func(t *testing.T) {
		p := &Profile{UserID: "user-2", AccountType: AccountTypeUser, CreatedAt: now}

		score := CalculateTrustScore(p, TrustStats{}, now)

		assert.Equal(t, 1, score.CriteriaMet)
		assert.Equal(t, 13, score.Score)
		assert.False(t, score.Verified)
		assert.True(t, score.Criteria.EmailVerified)
		assert.False(t, score.Criteria.AccountAge)
	})

	t.Run("three criteria stay unverified", func(t *testing.T) {
		p := &Profile{AccountType: AccountTypeUser, StreamingConnected: true, CreatedAt: now}
		stats := TrustStats{ReviewCount: 5}

		score := CalculateTrustScore(p, stats, now)

		assert.Equal(t, 3, score.CriteriaMet)
		assert.Equal(t, 38, score.Score)
		assert.False(t, score.Verified)
	})

	t.Run("four criteria verify", func(t *testing.T) {
		p := &Profile{AccountType: AccountTypeUser, StreamingConnected: true, CreatedAt: now.Add(-60 * 24 * time.Hour)}
		stats := TrustStats{ReviewCount: 5}

		score := CalculateTrustScore(p, stats, now)

		assert.Equal(t, 4, score.CriteriaMet)
		assert.Equal(t, 50, score.Score)
		assert.True(t, score.Verified)
	})

	t.Run("thresholds are inclusive", func(t *testing.T) {
		p := &Profile{AccountType: AccountTypeUser, CreatedAt: now.Add(-MinAccountAgeForTrust)}
		stats := TrustStats{ReviewCount: 2, FriendCount: 9, InterestCount: 10, AttendedCount: 3}

		score := CalculateTrustScore(p, stats, now)

		assert.False(t, score.Criteria.HasReviews)
		assert.False(t, score.Criteria.HasFriends)
		assert.True(t, score.Criteria.HasEvents)
		assert.True(t, score.Criteria.HasAttended)
		assert.True(t, score.Criteria.AccountAge)
	})

	t.Run("business accounts keep their stored flag", func(t *testing.T) {
		p := &Profile{AccountType: AccountTypeBusiness, Verified: false, CreatedAt: now}

		score := CalculateTrustScore(p, TrustStats{}, now)

		assert.Equal(t, 100, score.Score)
		assert.Equal(t, 8, score.CriteriaMet)
		assert.False(t, score.Verified)

		p.Verified = true
		assert.True(t, CalculateTrustScore(p, TrustStats{}, now).Verified)
	})
}

func TestTrustCriteria_ScanValue(t *testing.T) {
	c := TrustCriteria{ProfileComplete: true, HasAttended: true}
	v, err := c.Value()
	require.NoError(t, err)

	var decoded TrustCriteria
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, c, decoded)
	assert.Equal(t, 2, decoded.Met())

	require.NoError(t, decoded.Scan(nil))
	assert.Equal(t, TrustCriteria{}, decoded)
	assert.Error(t, decoded.Scan(42))
}
