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

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows(eventColumns)
}

func addEventRow(rows *sqlmock.Rows, id, title string, lat, lng interface{}) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(
		id, title, "K8vZ917", "Phoebe Bridgers", "KovZpZA", "Red Rocks Amphitheatre",
		"Morrison", "CO", "18300 W Alameda Pkwy", "80465", lat, lng,
		now.Add(48*time.Hour), nil, "", []byte(`{Indie,Rock}`), "$45 - $90", 45.0,
		90.0, []byte(`{https://tickets.example/1}`), true, "published", "ticketmaster", "G5v0Z9",
		"", now, now,
	)
}

func TestEventRepository_GetEvent(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(`SELECT id, title, .* FROM events WHERE id = \$1`).
		WithArgs("e1").
		WillReturnRows(addEventRow(eventRows(), "e1", "Phoebe Bridgers at Red Rocks", 39.66, -105.2))

	event, err := repo.GetEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Phoebe Bridgers at Red Rocks", event.Title)
	assert.Equal(t, []string{"Indie", "Rock"}, event.Genres)
	assert.Equal(t, []string{"https://tickets.example/1"}, event.TicketURLs)
	require.True(t, event.HasLocation())
	assert.InDelta(t, 39.66, *event.Latitude, 0.001)
	assert.Nil(t, event.DoorsTime)
	assert.Equal(t, domain.EventStatusPublished, event.Status)

	mock.ExpectQuery(`SELECT .* FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetEvent(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SearchEvents(t *testing.T) {
	t.Run("text filters with pagination", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewEventRepository(db)

		filter := &domain.EventFilter{Query: "phoebe", City: "Morrison", Genre: "Indie", Limit: 20, Offset: 40}

		mock.ExpectQuery(`SELECT .* FROM events WHERE event_date >= \$1 AND \(title ILIKE \$2 OR artist_name ILIKE \$3 OR venue_name ILIKE \$4\) AND venue_city ILIKE \$5 AND \$6 ILIKE ANY\(genres\) ORDER BY event_date ASC, id ASC LIMIT 20 OFFSET 40`).
			WithArgs(sqlmock.AnyArg(), "%phoebe%", "%phoebe%", "%phoebe%", "%Morrison%", "Indie").
			WillReturnRows(addEventRow(eventRows(), "e1", "Show", nil, nil))

		events, err := repo.SearchEvents(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].HasLocation())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("include past skips the date floor", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewEventRepository(db)

		mock.ExpectQuery(`SELECT .* FROM events WHERE artist_name ILIKE \$1 ORDER BY event_date ASC, id ASC LIMIT 50 OFFSET 0`).
			WithArgs("%boygenius%").
			WillReturnRows(eventRows())

		events, err := repo.SearchEvents(context.Background(), &domain.EventFilter{Artist: "boygenius", IncludePast: true, Limit: 50})
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("radius uses a bounding box without pagination", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewEventRepository(db)

		lat, lng := 39.7392, -104.9903
		filter := &domain.EventFilter{Latitude: &lat, Longitude: &lng, RadiusMiles: 25, Limit: 10, Offset: 10}

		mock.ExpectQuery(`SELECT .* FROM events WHERE event_date >= \$1 AND latitude IS NOT NULL AND longitude IS NOT NULL AND latitude BETWEEN \$2 AND \$3 AND longitude BETWEEN \$4 AND \$5 ORDER BY event_date ASC, id ASC LIMIT 2000`).
			WillReturnRows(addEventRow(eventRows(), "e1", "Show", 39.66, -105.2))

		events, err := repo.SearchEvents(context.Background(), filter)
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("radius across the antimeridian queries both sides", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewEventRepository(db)

		lat, lng := -18.14, 178.44
		filter := &domain.EventFilter{Latitude: &lat, Longitude: &lng, RadiusMiles: 150}

		mock.ExpectQuery(`SELECT .* FROM events WHERE event_date >= \$1 AND latitude IS NOT NULL AND longitude IS NOT NULL AND latitude BETWEEN \$2 AND \$3 AND \(longitude BETWEEN \$4 AND \$5 OR longitude BETWEEN \$6 AND \$7\) ORDER BY event_date ASC, id ASC LIMIT 2000`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 180.0, -180.0, sqlmock.AnyArg()).
			WillReturnRows(addEventRow(eventRows(), "e1", "Taveuni Sessions", -16.8, -179.97))

		events, err := repo.SearchEvents(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "e1", events[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_UpsertEvents(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	n, err := repo.UpsertEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	events := []*domain.Event{
		{Title: "A", EventDate: time.Now().Add(time.Hour), Source: domain.EventSourceTicketmaster, ExternalID: "tm-1"},
		{Title: "B", EventDate: time.Now().Add(2 * time.Hour), Source: domain.EventSourceTicketmaster, ExternalID: "tm-2"},
	}

	mock.ExpectExec(`INSERT INTO events \(id,title,.*\) VALUES \(\$1,.*\),\(\$28,.*\) ON CONFLICT \(source, external_id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err = repo.UpsertEvents(context.Background(), events)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, domain.EventStatusPublished, e.Status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListUpcomingEvents(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	from := time.Now()
	mock.ExpectQuery(`SELECT .* FROM events WHERE event_date >= \$1 AND status = 'published' ORDER BY event_date ASC LIMIT \$2`).
		WithArgs(from, 10).
		WillReturnRows(addEventRow(eventRows(), "e1", "Show", nil, nil))

	events, err := repo.ListUpcomingEvents(context.Background(), from, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
