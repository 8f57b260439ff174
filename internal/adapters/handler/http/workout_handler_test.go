package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type groupJSON struct {
	Name        string `json:"name"`
	RestSeconds int    `json:"rest_seconds"`
}

type workoutJSON struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Time    string      `json:"time"`
	Groups  []groupJSON `json:"groups"`
	Content string      `json:"content"`
	Volume  string      `json:"volume"`
	Sets    int         `json:"sets"`
}

type templateJSON struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Groups []groupJSON `json:"groups"`
}

const pushDay = `{
	"date": "2024-01-08",
	"time": "18:30",
	"content": "felt strong",
	"groups": [
		{"name": "Chest", "rest_seconds": 120, "exercises": [
			{"name": "Bench", "sets": [{"reps": 8, "weight": 82.5}, {"reps": null, "weight": 60}]}
		]},
		{"name": "Triceps", "rest_seconds": 60, "exercises": []}
	]
}`

func TestWorkouts(t *testing.T) {
	app := setupRouter(t)

	t.Run("Success: Create derives id and volume", func(t *testing.T) {
		w := app.do(t, "POST", "/api/workout", pushDay)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		got := decode[workoutJSON](t, w)
		assert.Equal(t, "20240108-183000", got.ID)
		assert.Equal(t, "18:30:00", got.Time)
		assert.Equal(t, "660", got.Volume)
		assert.Equal(t, 2, got.Sets)
		assert.Equal(t, "felt strong", got.Content)
		require.Len(t, got.Groups, 2)
	})

	t.Run("Error: 409 for the same date and time", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, app.do(t, "POST", "/api/workout", pushDay).Code)
	})

	t.Run("Error: 400 for bad input", func(t *testing.T) {
		bad := []string{
			`{"date": "2024-01-08", "time": "25:00"}`,
			`{"date": "2024-02-30", "time": "10:00"}`,
			`{"date": "2024-01-08", "time": "10:00", "groups": [{"name": " "}]}`,
			`{"date": "2024-01-08", "time": "10:00", "groups": [{"name": "A", "exercises": [{"name": "B", "sets": [{"reps": -1}]}]}]}`,
			`{"time": "10:00"}`,
		}
		for _, body := range bad {
			w := app.do(t, "POST", "/api/workout", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("Success: List newest first", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, app.do(t, "POST", "/api/workout", `{"date": "2024-01-03", "time": "07:00:00"}`).Code)

		list := decode[[]workoutJSON](t, app.do(t, "GET", "/api/workouts", ""))
		require.Len(t, list, 2)
		assert.Equal(t, "20240108-183000", list[0].ID)
		assert.Equal(t, "0", list[1].Volume)
		assert.NotNil(t, list[1].Groups)
	})

	t.Run("Success: Move a group", func(t *testing.T) {
		w := app.do(t, "POST", "/api/workout/20240108-183000/groups/move", `{"from": 1, "to": 0}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := decode[workoutJSON](t, w)
		assert.Equal(t, "Triceps", got.Groups[0].Name)
		assert.Equal(t, "Chest", got.Groups[1].Name)

		stored := decode[workoutJSON](t, app.do(t, "GET", "/api/workout/20240108-183000", ""))
		assert.Equal(t, "Triceps", stored.Groups[0].Name)
	})

	t.Run("Error: Move out of range", func(t *testing.T) {
		w := app.do(t, "POST", "/api/workout/20240108-183000/groups/move", `{"from": 0, "to": 2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = app.do(t, "POST", "/api/workout/20240108-183000/groups/move", `{"to": 1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = app.do(t, "POST", "/api/workout/19990101-000000/groups/move", `{"from": 0, "to": 0}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success: Reschedule changes the id", func(t *testing.T) {
		w := app.do(t, "PUT", "/api/workout/20240103-070000", `{"date": "2024-01-04", "time": "07:15"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "20240104-071500", decode[workoutJSON](t, w).ID)

		assert.Equal(t, http.StatusNotFound, app.do(t, "GET", "/api/workout/20240103-070000", "").Code)
	})

	t.Run("Success: Delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, app.do(t, "DELETE", "/api/workout/20240104-071500", "").Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, "DELETE", "/api/workout/20240104-071500", "").Code)
	})
}

func TestTemplates(t *testing.T) {
	app := setupRouter(t)

	body := `{"name": "Push Day", "groups": [{"name": "Chest"}, {"name": "Shoulders"}, {"name": "Triceps"}]}`

	t.Run("Success: Create", func(t *testing.T) {
		w := app.do(t, "POST", "/api/template", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "push-day", decode[templateJSON](t, w).ID)
	})

	t.Run("Error: 409 on duplicate", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, app.do(t, "POST", "/api/template", body).Code)
	})

	t.Run("Success: Move keeps the other groups in order", func(t *testing.T) {
		w := app.do(t, "POST", "/api/template/push-day/groups/move", `{"from": 0, "to": 2}`)
		require.Equal(t, http.StatusOK, w.Code)

		got := decode[templateJSON](t, w)
		names := []string{got.Groups[0].Name, got.Groups[1].Name, got.Groups[2].Name}
		assert.Equal(t, []string{"Shoulders", "Triceps", "Chest"}, names)
	})

	t.Run("Success: Rename and list", func(t *testing.T) {
		w := app.do(t, "PUT", "/api/template/push-day", `{"name": "Push A"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "push-a", decode[templateJSON](t, w).ID)

		list := decode[[]templateJSON](t, app.do(t, "GET", "/api/templates", ""))
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Groups)
	})

	t.Run("Success: Delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, app.do(t, "DELETE", "/api/template/push-a", "").Code)
		assert.Equal(t, http.StatusNotFound, app.do(t, "GET", "/api/template/push-a", "").Code)
	})
}

type setJSON struct {
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
}

type exerciseJSON struct {
	Name string    `json:"name"`
	Sets []setJSON `json:"sets"`
}

type nestedJSON struct {
	Groups []struct {
		Name      string         `json:"name"`
		Exercises []exerciseJSON `json:"exercises"`
	} `json:"groups"`
}

const legDay = `[
	{"name": "Legs", "exercises": [
		{"name": "Squat", "sets": [{"reps": 5, "weight": 100}, {"reps": 3, "weight": 110}]},
		{"name": "Lunge", "sets": []}
	]}
]`

func TestNestedMoves(t *testing.T) {
	app := setupRouter(t)

	w := app.do(t, "POST", "/api/workout", `{"date": "2024-01-09", "time": "07:00", "groups": `+legDay+`}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = app.do(t, "POST", "/api/template", `{"name": "Legs", "groups": `+legDay+`}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("Success: Move an exercise", func(t *testing.T) {
		w := app.do(t, "POST", "/api/workout/20240109-070000/groups/0/exercises/move", `{"from": 1, "to": 0}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := decode[nestedJSON](t, w)
		assert.Equal(t, "Lunge", got.Groups[0].Exercises[0].Name)

		stored := decode[nestedJSON](t, app.do(t, "GET", "/api/workout/20240109-070000", ""))
		assert.Equal(t, "Squat", stored.Groups[0].Exercises[1].Name)
	})

	t.Run("Success: Move a set", func(t *testing.T) {
		w := app.do(t, "POST", "/api/workout/20240109-070000/groups/0/exercises/1/sets/move", `{"from": 1, "to": 0}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		sets := decode[nestedJSON](t, w).Groups[0].Exercises[1].Sets
		require.Len(t, sets, 2)
		assert.Equal(t, 3, *sets[0].Reps)
		assert.Equal(t, 110.0, *sets[0].Weight)
	})

	t.Run("Success: Template exercise and set", func(t *testing.T) {
		w := app.do(t, "POST", "/api/template/legs/groups/0/exercises/move", `{"from": 0, "to": 1}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Squat", decode[nestedJSON](t, w).Groups[0].Exercises[1].Name)

		w = app.do(t, "POST", "/api/template/legs/groups/0/exercises/1/sets/move", `{"from": 0, "to": 1}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 3, *decode[nestedJSON](t, w).Groups[0].Exercises[1].Sets[0].Reps)
	})

	t.Run("Error: Bad indexes", func(t *testing.T) {
		tests := []struct {
			path string
			body string
			want int
		}{
			{"/api/workout/20240109-070000/groups/x/exercises/move", `{"from": 0, "to": 1}`, http.StatusBadRequest},
			{"/api/workout/20240109-070000/groups/1/exercises/move", `{"from": 0, "to": 1}`, http.StatusBadRequest},
			{"/api/workout/20240109-070000/groups/0/exercises/move", `{"from": 0, "to": 2}`, http.StatusBadRequest},
			{"/api/workout/20240109-070000/groups/0/exercises/move", `{"from": 0}`, http.StatusBadRequest},
			{"/api/workout/20240109-070000/groups/0/exercises/-1/sets/move", `{"from": 0, "to": 0}`, http.StatusBadRequest},
			{"/api/workout/20240109-070000/groups/0/exercises/0/sets/move", `{"from": 0, "to": 0}`, http.StatusBadRequest},
			{"/api/template/legs/groups/0/exercises/2/sets/move", `{"from": 0, "to": 0}`, http.StatusBadRequest},
			{"/api/workout/19990101-000000/groups/0/exercises/move", `{"from": 0, "to": 0}`, http.StatusNotFound},
			{"/api/template/missing/groups/0/exercises/0/sets/move", `{"from": 0, "to": 0}`, http.StatusNotFound},
		}
		for _, tt := range tests {
			w := app.do(t, "POST", tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, tt.path+" "+w.Body.String())
		}
	})
}
