package migrations

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/config"
)

func TestV3Migration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &V3Migration{}
	assert.Equal(t, 3, m.Version())

	mock.ExpectQuery(`SELECT id, name FROM city_centers WHERE normalized_name = ''`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("new_york_ny", "New York").
			AddRow("washington_dc", "Washington D.C."))
	mock.ExpectExec(`UPDATE city_centers SET normalized_name = \$1`).
		WithArgs("new york", "new_york_ny").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE city_centers SET normalized_name = \$1`).
		WithArgs("washington district of columbia", "washington_dc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.Up(context.Background(), &config.Config{}, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
