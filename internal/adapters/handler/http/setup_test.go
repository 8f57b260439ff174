package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/shelf/internal/adapters/handler/http"
	"github.com/comitanigiacomo/shelf/internal/adapters/repository"
	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/services"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type testApp struct {
	router   *gin.Engine
	habits   *repository.MemoryHabitRepository
	media    *repository.MemoryMediaRepository
	workouts *repository.MemoryWorkoutRepository
}

// setupRouter wires the real services over memory stores. Today is
// Monday 2024-01-08.
func setupRouter(t *testing.T) testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logging.Discard()
	nav := calendar.NewNavigator(fixedClock{now: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)}, time.UTC)

	app := testApp{
		habits:   repository.NewMemoryHabitRepository(),
		media:    repository.NewMemoryMediaRepository(),
		workouts: repository.NewMemoryWorkoutRepository(),
	}
	activities := repository.NewMemoryActivityRepository()
	presets := repository.NewMemoryPresetRepository()
	templates := repository.NewMemoryTemplateRepository()

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(services.NewHabitService(app.habits, nil, log)),
		ActivityHandler: adapterHTTP.NewActivityHandler(services.NewActivityService(activities, presets)),
		MediaHandler:    adapterHTTP.NewMediaHandler(services.NewMediaService(app.media, log)),
		WorkoutHandler:  adapterHTTP.NewWorkoutHandler(services.NewWorkoutService(app.workouts, templates)),
		CalendarHandler: adapterHTTP.NewCalendarHandler(services.NewCalendarService(app.habits, activities, app.workouts, nav, log)),
		Logger:          log,
		StartTime:       time.Now(),
	})
	return app
}

func (a testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, path, nil)
	} else {
		req, err = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
