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

func TestNotificationRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`INSERT INTO notifications \(id, user_id, type, title, message, data, is_read, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, FALSE, \$7\)`).
		WithArgs(sqlmock.AnyArg(), "u1", "match", "New Concert Buddy Match!", "You matched for Show", []byte(`{"event_id":"e1"}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n := &domain.Notification{
		UserID:  "u1",
		Type:    domain.NotificationMatch,
		Title:   "New Concert Buddy Match!",
		Message: "You matched for Show",
		Data:    domain.JSONMap{"event_id": "e1"},
	}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.NotEmpty(t, n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_List(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT id, user_id, type, title, message, data, is_read, created_at FROM notifications WHERE user_id = \$1 AND is_read = FALSE ORDER BY created_at DESC LIMIT 20 OFFSET 0`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "title", "message", "data", "is_read", "created_at"}).
			AddRow("n1", "u1", "friend_request", "New friend request", "Ana wants to be friends", []byte(`{"request_id":"f1"}`), false, time.Now()))

	list, err := repo.List(context.Background(), "u1", true, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationFriendRequest, list[0].Type)
	assert.Equal(t, "f1", list[0].Data["request_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ReadState(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \$1 AND is_read = FALSE`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	count, err := repo.CountUnread(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE id = \$1 AND user_id = \$2`).
		WithArgs("n1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkRead(context.Background(), "u1", "n1"))

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE id = \$1`).
		WithArgs("n1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(repo.MarkRead(context.Background(), "u2", "n1")))

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE user_id = \$1 AND is_read = FALSE`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, repo.MarkAllRead(context.Background(), "u1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
