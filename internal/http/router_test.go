package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/database/books"
	"github.com/bookify/bookify-server/internal/database/journal"
	"github.com/bookify/bookify-server/internal/database/reviews"
)

// setupAPITest builds the full router backed by a throwaway sqlite
// database, so handler tests exercise the same wiring as production.
func setupAPITest(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:       db,
		CatalogStore:   books.NewRepository(db.DB),
		ReviewStore:    reviews.NewRepository(db.DB),
		JournalStore:   journal.NewRepository(db.DB),
		AllowedOrigins: []string{"*"},
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
