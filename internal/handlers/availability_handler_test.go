package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maisonbelle/salon-admin/internal/availability"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

func availabilityRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fetchers := map[salon.Kind]*availability.Fetcher{}
	for _, kind := range salon.Kinds() {
		fetchers[kind] = availability.NewFetcher(
			remote.NewClient(backendURL),
			availability.LeadTimePolicy{Lead: 2 * time.Hour},
			"UTC",
		)
	}
	h := NewAvailabilityHandler(fetchers)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextSession, &session.Session{
			Token:     "t",
			ExpiresAt: time.Now().Add(time.Hour),
		})
	})
	r.GET("/api/availability/:kind/:providerId", h.Slots)
	return r
}

func TestAvailabilitySlots(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "barberId": "b1", "starTime": "2030-05-10T14:00:00Z", "endTime": "2030-05-10T14:30:00Z"}]`))
	}))
	defer backend.Close()

	r := availabilityRouter(t, backend.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability/barber/b1?date=2030-05-10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.NotContains(t, w.Body.String(), "warning")
}

func TestAvailabilitySlotsEmptyCarriesWarning(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	r := availabilityRouter(t, backend.URL)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability/barber/b1?date=2030-05-10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aucun horaire disponible")
}

func TestAvailabilitySlotsRequiresDate(t *testing.T) {
	r := availabilityRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability/barber/b1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_date")
}

func TestAvailabilitySlotsRejectsUnknownKind(t *testing.T) {
	r := availabilityRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability/plumber/b1?date=2030-05-10", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
