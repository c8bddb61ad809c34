package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/pkg/logger"
)

type fakeMigration struct {
	version int
	err     error
	called  bool
}

func (m *fakeMigration) Version() int        { return m.version }
func (m *fakeMigration) Description() string { return "fake" }
func (m *fakeMigration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	m.called = true
	if m.err != nil {
		return m.err
	}
	_, err := db.ExecContext(ctx, "UPDATE fake SET done = true")
	return err
}

func newTestManager(t *testing.T, migrations ...Migration) *Manager {
	return NewManagerWithRegistry(logger.NewMockLogger(t), NewRegistry(migrations...))
}

func TestManager_CurrentVersion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	manager := newTestManager(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))
	version, err := manager.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("3.0"))
	version, err = manager.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrNoRows)
	version, err = manager.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, BaselineVersion, version)

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))
	_, err = manager.CurrentVersion(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database version format")

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(errors.New("connection reset"))
	_, err = manager.CurrentVersion(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get current database version")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_FromBaseline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	v2 := &fakeMigration{version: 2}
	v3 := &fakeMigration{version: 3}
	v9 := &fakeMigration{version: 9}
	manager := newTestManager(t, v3, v2, v9)

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrNoRows)

	for _, version := range []string{"2", "3"} {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE fake").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO settings").WithArgs(version).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}
	mock.ExpectExec("INSERT INTO settings").WithArgs("5").WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, manager.RunMigrations(context.Background(), &config.Config{}, db))
	assert.True(t, v2.called)
	assert.True(t, v3.called)
	assert.False(t, v9.called, "migrations newer than the build are skipped")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_UpToDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	v2 := &fakeMigration{version: 2}
	manager := newTestManager(t, v2)

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("5"))
	mock.ExpectExec("INSERT INTO settings").WithArgs("5").WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, manager.RunMigrations(context.Background(), &config.Config{}, db))
	assert.False(t, v2.called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	failing := &fakeMigration{version: 2, err: errors.New("bad data")}
	manager := newTestManager(t, failing)

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = manager.RunMigrations(context.Background(), &config.Config{}, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration failed for version 2")
	assert.Contains(t, err.Error(), "bad data")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Pending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := newTestManager(t, &fakeMigration{version: 2}, &fakeMigration{version: 3})

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

	pending, err := manager.Pending(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].Version())
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(&fakeMigration{version: 3}, &fakeMigration{version: 2})

	all := registry.Between(0, 10)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Version())
	assert.Len(t, registry.Between(2, 3), 1)
	assert.Empty(t, registry.Between(3, 3))

	_, ok := registry.Get(3)
	assert.True(t, ok)
	_, ok = registry.Get(5)
	assert.False(t, ok)

	_, ok = builtin.Get(2)
	assert.True(t, ok, "v2 registers itself")
	_, ok = builtin.Get(3)
	assert.True(t, ok, "v3 registers itself")
	_, ok = builtin.Get(4)
	assert.True(t, ok, "v4 registers itself")
	_, ok = builtin.Get(5)
	assert.True(t, ok, "v5 registers itself")
}

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{input: "3.0", expected: 3},
		{input: "v12.4", expected: 12},
		{input: "7", expected: 7},
		{input: "0.9", wantErr: true},
		{input: "", wantErr: true},
		{input: "vx.1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			version, err := ParseVersion(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, version)
		})
	}

	schema, err := SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 5, schema)
}
