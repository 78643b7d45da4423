package services

import (
	"database/sql"
	"testing"

	"prdash/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsService(t *testing.T) *SettingsService {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE settings (
			id TEXT PRIMARY KEY,
			github_token TEXT NOT NULL DEFAULT '',
			poll_interval_ms INTEGER NOT NULL DEFAULT 60000,
			updated_at DATETIME NOT NULL
		)
	`)
	require.NoError(t, err)

	return NewSettingsService(repositories.NewSettingsRepository(db), 60000)
}

func TestSettingsService(t *testing.T) {
	t.Run("Defaults are created on first access", func(t *testing.T) {
		settingsService := newTestSettingsService(t)

		settings, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, int64(60000), settings.PollIntervalMS)
		assert.Empty(t, settings.GitHubToken)

		// Second read returns the same row.
		again, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, settings.ID, again.ID)
	})

	t.Run("Token round-trips", func(t *testing.T) {
		settingsService := newTestSettingsService(t)

		_, err := settingsService.SaveToken("ghp_secret")
		require.NoError(t, err)

		settings, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, "ghp_secret", settings.GitHubToken)
	})

	t.Run("Poll interval round-trips", func(t *testing.T) {
		settingsService := newTestSettingsService(t)

		_, err := settingsService.SavePollInterval(30000)
		require.NoError(t, err)

		settings, err := settingsService.Get()
		require.NoError(t, err)
		assert.Equal(t, int64(30000), settings.PollIntervalMS)
	})

	t.Run("Non-positive poll interval is rejected", func(t *testing.T) {
		settingsService := newTestSettingsService(t)

		_, err := settingsService.SavePollInterval(0)
		assert.Error(t, err)
	})
}
