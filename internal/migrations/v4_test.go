package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/config"
)

func TestV4Migration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &V4Migration{}
	assert.Equal(t, 4, m.Version())

	for _, table := range []string{"passport_identity", "passport_taste_map"} {
		mock.ExpectExec(`ALTER TABLE ` + table + ` ALTER COLUMN fan_type DROP NOT NULL`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE `+table+` SET fan_type = \$1 WHERE fan_type = \$2`).
			WithArgs("genre_explorer", "explorer").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`UPDATE `+table+` SET fan_type = \$1 WHERE fan_type = \$2`).
			WithArgs("jam_chaser", "loyalist").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE `+table+` SET fan_type = \$1 WHERE fan_type = \$2`).
			WithArgs("venue_purist", "scene_regular").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE ` + table + ` SET fan_type = NULL WHERE fan_type IN \('casual', ''\)`).
			WillReturnResult(sqlmock.NewResult(0, 5))
	}

	require.NoError(t, m.Up(context.Background(), &config.Config{}, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestV4Migration_AlterFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`ALTER TABLE passport_identity`).WillReturnError(errors.New("locked"))

	err = (&V4Migration{}).Up(context.Background(), &config.Config{}, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to relax passport_identity.fan_type")
}
