package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAPI(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := doRequest(t, router, "GET", "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	decodeJSON(t, w, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "ok", health.Checks["database"])
}
