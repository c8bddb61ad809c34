package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/internal/domain"
)

func profileRow(userID string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(profileColumns).AddRow(
		userID, "fan@example.com", "Fan", "livefan", now.Add(-48*time.Hour), "Loves live music", "https://img.example/a.png",
		time.Date(1995, 4, 2, 0, 0, 0, 0, time.UTC), "female", "Austin", "TX", "user", true,
		false, 63, []byte(`{"profileComplete":true,"emailVerified":true}`), nil, nil, now, now,
	)
}

func TestProfileRepository_GetProfile(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	userID := "8a0b3f8e-0d7e-4f55-9d55-3c0b8d6a4b11"

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT user_id, email, name, .* FROM profiles WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(profileRow(userID))

		profile, err := repo.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "Fan", profile.Name)
		assert.Equal(t, "fan@example.com", profile.Email)
		require.NotNil(t, profile.Username)
		assert.Equal(t, "livefan", *profile.Username)
		require.NotNil(t, profile.UsernameChangedAt)
		assert.Equal(t, 63, profile.TrustScore)
		require.NotNil(t, profile.Birthday)
		require.NotNil(t, profile.VerificationCriteria)
		assert.True(t, profile.VerificationCriteria.ProfileComplete)
		assert.Nil(t, profile.VerifiedAt)
		assert.Nil(t, profile.VerifiedBy)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM profiles WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		profile, err := repo.GetProfile(context.Background(), userID)
		assert.Nil(t, profile)
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetProfiles(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	profiles, err := repo.GetProfiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	mock.ExpectQuery(`SELECT .* FROM profiles WHERE user_id = ANY\(\$1\)`).
		WillReturnRows(profileRow("u1"))

	profiles, err = repo.GetProfiles(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "u1", profiles[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_CreateProfile(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec(`INSERT INTO profiles \(user_id, email, name, account_type, created_at, updated_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) ON CONFLICT \(user_id\) DO NOTHING`).
		WithArgs("u1", "fan@example.com", "", "user", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	profile := &domain.Profile{UserID: "u1", Email: "fan@example.com"}
	require.NoError(t, repo.CreateProfile(context.Background(), profile))
	assert.Equal(t, domain.AccountTypeUser, profile.AccountType)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UpdateProfile(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	profile := &domain.Profile{UserID: "u1", Name: "New Name", LocationCity: "Denver"}

	mock.ExpectExec(`UPDATE profiles SET name = \$2`).
		WithArgs("u1", "New Name", "", "", nil, "", "Denver", "", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateProfile(context.Background(), profile))

	mock.ExpectExec(`UPDATE profiles SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateProfile(context.Background(), profile)
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectExec(`UPDATE profiles SET`).WillReturnError(errors.New("connection reset"))
	err = repo.UpdateProfile(context.Background(), profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update profile")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UsernameTaken(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM profiles WHERE username = \$1 AND user_id::text <> \$2\)`).
		WithArgs("livefan", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.UsernameTaken(context.Background(), "livefan", "u1")
	require.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("connection reset"))
	_, err = repo.UsernameTaken(context.Background(), "livefan", "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check username")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_ListUsernamesWithPrefix(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT username FROM profiles WHERE username LIKE \$1 AND user_id::text <> \$2 ORDER BY username LIMIT \$3`).
		WithArgs("tejpatel%", "u1", 1000).
		WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("tejpatel").AddRow("tejpatel2"))

	usernames, err := repo.ListUsernamesWithPrefix(context.Background(), "tejpatel", "u1", 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"tejpatel", "tejpatel2"}, usernames)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UpdateUsername(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	changedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(`UPDATE profiles SET username = \$2, username_changed_at = \$3, updated_at = \$3 WHERE user_id = \$1`).
			WithArgs("u1", "livefan", changedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.UpdateUsername(context.Background(), "u1", "livefan", changedAt))
	})

	t.Run("taken by another profile", func(t *testing.T) {
		mock.ExpectExec(`UPDATE profiles SET username`).
			WillReturnError(&pq.Error{Code: "23505"})
		err := repo.UpdateUsername(context.Background(), "u1", "livefan", changedAt)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("missing profile", func(t *testing.T) {
		mock.ExpectExec(`UPDATE profiles SET username`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.UpdateUsername(context.Background(), "u1", "livefan", changedAt)
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
