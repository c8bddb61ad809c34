package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/internal/domain"
)

var matchRowColumns = []string{"id", "user1_id", "user2_id", "event_id", "created_at", "title"}

func TestMatchingRepository_Swipes(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewMatchingRepository(db)

	mock.ExpectExec(`INSERT INTO user_swipes .* ON CONFLICT \(swiper_user_id, swiped_user_id, event_id\) DO UPDATE SET is_interested = EXCLUDED.is_interested`).
		WithArgs("u1", "u2", "e1", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpsertSwipe(context.Background(), &domain.Swipe{SwiperID: "u1", SwipedID: "u2", EventID: "e1", IsInterested: true}))

	mock.ExpectQuery(`SELECT swiper_user_id, swiped_user_id, event_id, is_interested, created_at FROM user_swipes`).
		WithArgs("u2", "u1", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e"}).AddRow("u2", "u1", "e1", true, time.Now()))
	swipe, err := repo.GetSwipe(context.Background(), "u2", "u1", "e1")
	require.NoError(t, err)
	assert.True(t, swipe.IsInterested)

	mock.ExpectQuery(`FROM user_swipes`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetSwipe(context.Background(), "u3", "u1", "e1")
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchingRepository_CreateMatch(t *testing.T) {
	t.Run("new match is stored in canonical order", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewMatchingRepository(db)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO event_matches .* ON CONFLICT \(user1_id, user2_id, event_id\) DO NOTHING RETURNING id, created_at`).
			WithArgs(sqlmock.AnyArg(), "a-user", "b-user", "e1", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("m1", now))

		match, created, err := repo.CreateMatch(context.Background(), &domain.Match{User1ID: "b-user", User2ID: "a-user", EventID: "e1"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "m1", match.ID)
		assert.Equal(t, "a-user", match.User1ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing match is returned", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewMatchingRepository(db)

		mock.ExpectQuery(`INSERT INTO event_matches`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
		mock.ExpectQuery(`FROM event_matches m LEFT JOIN events e ON e.id = m.event_id WHERE m.user1_id = \$1 AND m.user2_id = \$2 AND m.event_id = \$3`).
			WithArgs("a-user", "b-user", "e1").
			WillReturnRows(sqlmock.NewRows(matchRowColumns).AddRow("m0", "a-user", "b-user", "e1", time.Now(), "Show"))

		match, created, err := repo.CreateMatch(context.Background(), &domain.Match{User1ID: "a-user", User2ID: "b-user", EventID: "e1"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "m0", match.ID)
		assert.Equal(t, "Show", match.EventTitle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMatchingRepository_Lists(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewMatchingRepository(db)

	mock.ExpectQuery(`SELECT ei.user_id FROM event_interests ei WHERE ei.event_id = \$2 AND ei.user_id <> \$1 AND NOT EXISTS .* user_swipes .* user_blocks`).
		WithArgs("u1", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u2").AddRow("u3"))
	ids, err := repo.ListPotentialMatchIDs(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u3"}, ids)

	mock.ExpectQuery(`WHERE m.event_id = \$2 AND \(m.user1_id = \$1 OR m.user2_id = \$1\)`).
		WithArgs("u1", "e1").
		WillReturnRows(sqlmock.NewRows(matchRowColumns).AddRow("m1", "u1", "u2", "e1", time.Now(), "Show"))
	matches, err := repo.ListEventMatches(context.Background(), "u1", "e1")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "u2", matches[0].PartnerID("u1"))

	mock.ExpectQuery(`WHERE m.user1_id = \$1 OR m.user2_id = \$1 ORDER BY m.created_at DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(matchRowColumns))
	matches, err = repo.ListMatches(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, matches)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_matches`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	count, err := repo.CountMatches(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchingRepository_GetTasteProfile(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewMatchingRepository(db)

	mock.ExpectQuery(`WITH engaged AS`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"artists", "genres"}).
			AddRow([]byte(`{"Phoebe Bridgers",boygenius}`), []byte(`{Indie}`)))

	taste, err := repo.GetTasteProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Phoebe Bridgers", "boygenius"}, taste.Artists)
	assert.Equal(t, []string{"Indie"}, taste.Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}
