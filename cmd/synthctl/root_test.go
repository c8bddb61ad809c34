package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/config"
	"github.com/synthapp/synth/internal/app"
	"github.com/synthapp/synth/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth:      config.AuthConfig{JWTSecret: "test-jwt-secret-key-32-bytes-min"},
		Chat:      config.ChatConfig{KeySalt: "salt", KeyIterations: 1000},
		News:      config.NewsConfig{CacheTTL: time.Minute},
		RateLimit: config.RateLimitConfig{Strict: config.RateLimitTier{Limit: 1, Window: time.Minute}},
	}
}

// stubDependencies points the commands at cfg and a mock database
func stubDependencies(t *testing.T, cfg *config.Config, cfgErr error) sqlmock.Sqlmock {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	origLoad, origNew := loadConfig, newApp
	t.Cleanup(func() {
		loadConfig = origLoad
		newApp = origNew
	})

	loadConfig = func(string) (*config.Config, error) { return cfg, cfgErr }
	newApp = func(cfg *config.Config, _ logger.Logger) app.AppInterface {
		return app.NewApp(cfg, app.WithLogger(logger.NewMockLogger(t)), app.WithMockDB(db))
	}
	return mock
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Commands(t *testing.T) {
	cmd := newRootCmd()

	for _, path := range [][]string{
		{"migrate"},
		{"sync", "ticketmaster"},
		{"sync", "jambase"},
		{"trust", "recompute"},
		{"passport", "recalculate"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("env-file"))
}

func TestMigrateCmd(t *testing.T) {
	mock := stubDependencies(t, testConfig(), nil)
	mock.ExpectClose()

	out, err := execute("migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database is up to date")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommands_ConfigError(t *testing.T) {
	stubDependencies(t, nil, errors.New("JWT_SECRET is required"))

	_, err := execute("trust", "recompute")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestSyncCmd_RequiredFlags(t *testing.T) {
	stubDependencies(t, testConfig(), nil)

	_, err := execute("sync", "ticketmaster", "--state", "CA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"city"`)

	_, err = execute("sync", "jambase")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"artist"`)
}

func TestCommands_RejectArgs(t *testing.T) {
	stubDependencies(t, testConfig(), nil)

	_, err := execute("migrate", "now")
	assert.Error(t, err)
}
