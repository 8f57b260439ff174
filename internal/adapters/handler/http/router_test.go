package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/shelf/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestRouter(db Pinger, origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDependencies{
		HabitHandler:    NewHabitHandler(nil),
		ActivityHandler: NewActivityHandler(nil),
		MediaHandler:    NewMediaHandler(nil),
		WorkoutHandler:  NewWorkoutHandler(nil),
		CalendarHandler: NewCalendarHandler(nil),
		DB:              db,
		Logger:          logging.Discard(),
		CORSOrigins:     origins,
		StartTime:       time.Now(),
	})
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{"Success: Memory store", nil, http.StatusOK, "ok", "memory"},
		{"Success: Database reachable", stubPinger{}, http.StatusOK, "ok", "connected"},
		{"Error: Database unreachable", stubPinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, "degraded", "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.db, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"`+tt.wantStatus+`"`)
			assert.Contains(t, w.Body.String(), `"database":"`+tt.wantDB+`"`)
			assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestCORS(t *testing.T) {
	t.Run("Success: Listed origin is echoed", func(t *testing.T) {
		router := newTestRouter(nil, []string{"http://localhost:5173"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/api/habits", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "GET")
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Error: Unknown origin is rejected", func(t *testing.T) {
		router := newTestRouter(nil, []string{"http://localhost:5173"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success: Wildcard allows everyone", func(t *testing.T) {
		assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
		assert.True(t, corsConfig(nil).AllowAllOrigins)
		assert.False(t, corsConfig([]string{"http://a"}).AllowAllOrigins)
	})
}

func TestSwaggerRoute(t *testing.T) {
	router := newTestRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/swagger/doc.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/habit-calendar"`)
}
