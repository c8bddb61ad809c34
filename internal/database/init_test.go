package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables and indexes in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		for range schema.IndexDefinitions {
			mock.ExpectExec("CREATE (UNIQUE )?INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		assert.NoError(t, InitializeDatabase(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on table error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + schema.TableNames[0]).WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = InitializeDatabase(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table "+schema.TableNames[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on index error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for range schema.TableDefinitions {
			mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec("CREATE").WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err = InitializeDatabase(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create index")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		err = InitializeDatabase(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start schema transaction")
	})
}
