package middleware

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"prdash/internal/repositories"
	"prdash/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, settingsService *services.SettingsService) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seenToken string
	router := gin.New()
	router.GET("/protected", RequireToken(settingsService), func(c *gin.Context) {
		seenToken = GetToken(c)
		c.Status(http.StatusOK)
	})
	return router, &seenToken
}

func newTestSettingsService(t *testing.T) *services.SettingsService {
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

	return services.NewSettingsService(repositories.NewSettingsRepository(db), 60000)
}

func TestRequireToken(t *testing.T) {
	t.Run("Bearer header wins", func(t *testing.T) {
		settingsService := newTestSettingsService(t)
		_, err := settingsService.SaveToken("stored-token")
		require.NoError(t, err)

		router, seenToken := newTestRouter(t, settingsService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "header-token", *seenToken)
	})

	t.Run("Stored token is the fallback", func(t *testing.T) {
		settingsService := newTestSettingsService(t)
		_, err := settingsService.SaveToken("stored-token")
		require.NoError(t, err)

		router, seenToken := newTestRouter(t, settingsService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "stored-token", *seenToken)
	})

	t.Run("No token anywhere is unauthorized", func(t *testing.T) {
		router, _ := newTestRouter(t, newTestSettingsService(t))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
