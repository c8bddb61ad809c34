package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/internal/domain"
)

func TestVerificationRepository_GetTrustStats(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewVerificationRepository(db)

	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM reviews WHERE user_id = \$1\), \(SELECT COUNT\(\*\) FROM relationships`).
		WithArgs("u1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"reviews", "friends", "interests", "attended"}).AddRow(4, 12, 3, 2))

	stats, err := repo.GetTrustStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.TrustStats{ReviewCount: 4, FriendCount: 12, InterestCount: 3, AttendedCount: 2}, *stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_SaveTrustScore(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewVerificationRepository(db)

	score := &domain.TrustScore{Score: 50, Criteria: domain.TrustCriteria{EmailVerified: true}, Verified: true}

	mock.ExpectExec(`UPDATE profiles SET trust_score = \$2, verification_criteria = \$3`).
		WithArgs("u1", 50, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SaveTrustScore(context.Background(), "u1", score))

	mock.ExpectExec(`UPDATE profiles SET trust_score`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(repo.SaveTrustScore(context.Background(), "missing", score)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_SetVerified(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewVerificationRepository(db)

	mock.ExpectExec(`UPDATE profiles SET verified = TRUE, verified_by = \$2`).
		WithArgs("u1", "admin-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetVerified(context.Background(), "u1", true, "admin-1"))

	mock.ExpectExec(`UPDATE profiles SET verified = FALSE, verified_by = NULL, verified_at = NULL`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetVerified(context.Background(), "u1", false, "admin-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_ListNearVerification(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewVerificationRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT user_id, name, avatar_url, trust_score, created_at FROM profiles WHERE account_type = 'user' AND verified = FALSE AND trust_score >= \$1 ORDER BY trust_score DESC, created_at ASC LIMIT 50`).
		WithArgs(40).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "avatar_url", "trust_score", "created_at"}).
			AddRow("u1", "Ana", "", 50, now).
			AddRow("u2", "Ben", "", 40, now))

	candidates, err := repo.ListNearVerification(context.Background(), 40, 50)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Ana", candidates[0].Name)
	assert.Equal(t, 40, candidates[1].TrustScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_ListUserIDs(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewVerificationRepository(db)

	mock.ExpectQuery(`SELECT user_id FROM profiles ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1").AddRow("u2"))

	ids, err := repo.ListUserIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
