package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stores struct {
	habits     domain.HabitRepository
	activities domain.ActivityRepository
	presets    domain.PresetRepository
	media      domain.MediaRepository
	workouts   domain.WorkoutRepository
	templates  domain.TemplateRepository
}

func sqlStores(db *sqlx.DB) stores {
	return stores{
		habits:     NewSQLHabitRepository(db),
		activities: NewSQLActivityRepository(db),
		presets:    NewSQLPresetRepository(db),
		media:      NewSQLMediaRepository(db),
		workouts:   NewSQLWorkoutRepository(db),
		templates:  NewSQLTemplateRepository(db),
	}
}

func memoryStores() stores {
	return stores{
		habits:     NewMemoryHabitRepository(),
		activities: NewMemoryActivityRepository(),
		presets:    NewMemoryPresetRepository(),
		media:      NewMemoryMediaRepository(),
		workouts:   NewMemoryWorkoutRepository(),
		templates:  NewMemoryTemplateRepository(),
	}
}

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, "sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateUp(ctx, db))
	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "shelf_test"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := Open(ctx, "pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateUp(context.Background(), db))
	cleanup := func() {
		_, err := db.Exec("TRUNCATE TABLE habit_completions, habits, activities, presets, media, workouts, workout_templates CASCADE")
		require.NoError(t, err, "Failed to clean up database")
	}
	cleanup()
	t.Cleanup(cleanup)
	return db
}

func TestRepositories_Memory(t *testing.T) {
	runContract(t, memoryStores)
}

func TestRepositories_SQLite(t *testing.T) {
	runContract(t, func() stores { return sqlStores(setupSQLite(t)) })
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	runContract(t, func() stores {
		_, err := db.Exec("TRUNCATE TABLE habit_completions, habits, activities, presets, media, workouts, workout_templates CASCADE")
		require.NoError(t, err)
		return sqlStores(db)
	})
}

func runContract(t *testing.T, fresh func() stores) {
	t.Run("Habits", func(t *testing.T) { testHabits(t, fresh().habits) })
	t.Run("Activities", func(t *testing.T) { testActivities(t, fresh().activities) })
	t.Run("Presets", func(t *testing.T) { testPresets(t, fresh().presets) })
	t.Run("Media", func(t *testing.T) { testMedia(t, fresh().media) })
	t.Run("Workouts", func(t *testing.T) { testWorkouts(t, fresh().workouts) })
	t.Run("Templates", func(t *testing.T) { testTemplates(t, fresh().templates) })
}

func date(t *testing.T, s string) domain.DateKey {
	t.Helper()
	d, err := domain.ParseDateKey(s)
	require.NoError(t, err)
	return d
}

func testHabits(t *testing.T, repo domain.HabitRepository) {
	ctx := context.Background()

	read, err := domain.NewHabit("Read", []int{1, 3, 5}, "", []domain.DateKey{date(t, "2024-01-03"), date(t, "2024-01-01")})
	require.NoError(t, err)
	gym, err := domain.NewHabit("Gym", []int{0}, "#ffffff", nil)
	require.NoError(t, err)

	t.Run("Create and Get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, read))
		require.NoError(t, repo.Create(ctx, gym))

		got, err := repo.GetByID(ctx, "read")
		require.NoError(t, err)
		assert.Equal(t, "Read", got.Name)
		assert.Equal(t, []int{1, 3, 5}, got.Days)
		assert.Equal(t, domain.DefaultHabitColor, got.Color)
		assert.Equal(t, []domain.DateKey{date(t, "2024-01-01"), date(t, "2024-01-03")}, got.Completions)
		assert.WithinDuration(t, read.CreatedAt, got.CreatedAt, time.Second)

		got, err = repo.GetByID(ctx, "gym")
		require.NoError(t, err)
		assert.NotNil(t, got.Completions)
		assert.Empty(t, got.Completions)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		err := repo.Create(ctx, read)
		assert.ErrorIs(t, err, domain.ErrHabitExists)
	})

	t.Run("List Ordered By Name", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "gym", list[0].ID)
		assert.Equal(t, "read", list[1].ID)
		assert.Len(t, list[1].Completions, 2)
	})

	t.Run("Set and Clear Completion", func(t *testing.T) {
		d := date(t, "2024-01-02")
		require.NoError(t, repo.SetCompletion(ctx, "read", d, true))
		require.NoError(t, repo.SetCompletion(ctx, "read", d, true), "setting twice is a no-op")

		got, err := repo.GetByID(ctx, "read")
		require.NoError(t, err)
		assert.Equal(t, []domain.DateKey{date(t, "2024-01-01"), d, date(t, "2024-01-03")}, got.Completions)

		require.NoError(t, repo.SetCompletion(ctx, "read", d, false))
		require.NoError(t, repo.SetCompletion(ctx, "read", d, false), "clearing twice is a no-op")

		got, err = repo.GetByID(ctx, "read")
		require.NoError(t, err)
		assert.Len(t, got.Completions, 2)

		err = repo.SetCompletion(ctx, "ghost", d, true)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Update Streaks", func(t *testing.T) {
		require.NoError(t, repo.UpdateStreaks(ctx, "read", 2, 5))

		got, err := repo.GetByID(ctx, "read")
		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentStreak)
		assert.Equal(t, 5, got.LongestStreak)

		assert.ErrorIs(t, repo.UpdateStreaks(ctx, "ghost", 1, 1), domain.ErrHabitNotFound)
	})

	t.Run("Rename Moves Completions", func(t *testing.T) {
		h, err := repo.GetByID(ctx, "read")
		require.NoError(t, err)
		require.NoError(t, h.Update("Read Books", h.Days, h.Color, nil))

		require.NoError(t, repo.Update(ctx, "read", h))

		_, err = repo.GetByID(ctx, "read")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		got, err := repo.GetByID(ctx, "read-books")
		require.NoError(t, err)
		assert.Equal(t, "Read Books", got.Name)
		assert.Len(t, got.Completions, 2)
	})

	t.Run("Rename Onto Existing Id", func(t *testing.T) {
		h, err := repo.GetByID(ctx, "read-books")
		require.NoError(t, err)
		require.NoError(t, h.Update("Gym", h.Days, h.Color, nil))

		err = repo.Update(ctx, "read-books", h)
		assert.ErrorIs(t, err, domain.ErrHabitExists)
	})

	t.Run("Update and Delete Non-Existent Id", func(t *testing.T) {
		ghost, err := domain.NewHabit("Ghost", []int{1}, "", nil)
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Update(ctx, "ghost", ghost), domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "ghost"), domain.ErrHabitNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "gym"))

		_, err := repo.GetByID(ctx, "gym")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func testActivities(t *testing.T, repo domain.ActivityRepository) {
	ctx := context.Background()
	jan1, jan2 := date(t, "2024-01-01"), date(t, "2024-01-02")

	for _, in := range []struct {
		name string
		date domain.DateKey
	}{{"Swim", jan2}, {"Cinema", jan2}, {"Dentist", jan1}} {
		a, err := domain.NewActivity(in.name, in.date)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, a))
	}

	t.Run("Same Name Same Day", func(t *testing.T) {
		a, err := domain.NewActivity("swim", jan2)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, a), domain.ErrActivityExists)
	})

	t.Run("List All Ordered By Date Then Name", func(t *testing.T) {
		list, err := repo.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "2024-01-01-dentist", list[0].ID)
		assert.Equal(t, "2024-01-02-cinema", list[1].ID)
		assert.Equal(t, "2024-01-02-swim", list[2].ID)
		assert.Equal(t, jan1, list[0].Date)
	})

	t.Run("List One Date", func(t *testing.T) {
		list, err := repo.List(ctx, &jan1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Dentist", list[0].Name)

		empty := date(t, "2030-01-01")
		list, err = repo.List(ctx, &empty)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Get and Delete", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "2024-01-02-swim")
		require.NoError(t, err)
		assert.Equal(t, "Swim", got.Name)

		require.NoError(t, repo.Delete(ctx, "2024-01-02-swim"))
		assert.ErrorIs(t, repo.Delete(ctx, "2024-01-02-swim"), domain.ErrActivityNotFound)

		_, err = repo.GetByID(ctx, "2024-01-02-swim")
		assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	})
}

func testPresets(t *testing.T, repo domain.PresetRepository) {
	ctx := context.Background()

	for _, name := range []string{"Yoga", "Cinema"} {
		p, err := domain.NewPreset(name)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
	}

	t.Run("Duplicate", func(t *testing.T) {
		p, err := domain.NewPreset("yoga")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, p), domain.ErrPresetExists)
	})

	t.Run("Rename", func(t *testing.T) {
		p, err := repo.GetByID(ctx, "yoga")
		require.NoError(t, err)
		require.NoError(t, p.Rename("Hot Yoga"))
		require.NoError(t, repo.Update(ctx, "yoga", p))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "cinema", list[0].ID)
		assert.Equal(t, "hot-yoga", list[1].ID)

		require.NoError(t, p.Rename("Cinema"))
		assert.ErrorIs(t, repo.Update(ctx, "hot-yoga", p), domain.ErrPresetExists)
		assert.ErrorIs(t, repo.Update(ctx, "nope", p), domain.ErrPresetNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "cinema"))
		assert.ErrorIs(t, repo.Delete(ctx, "cinema"), domain.ErrPresetNotFound)
		_, err := repo.GetByID(ctx, "cinema")
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})
}

func testMedia(t *testing.T, repo domain.MediaRepository) {
	ctx := context.Background()

	dune, err := domain.NewMedia(domain.MediaInput{Name: "Dune", Country: "america", Type: "movie", Status: "watched", Rating: "9/10"})
	require.NoError(t, err)
	akira, err := domain.NewMedia(domain.MediaInput{Name: "Akira", Country: "japan", Type: "movie"})
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, dune))
	require.NoError(t, repo.Create(ctx, akira))

	t.Run("Duplicate Name", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, dune), domain.ErrDuplicateName)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "dune")
		require.NoError(t, err)
		assert.Equal(t, dune.Country, got.Country)
		assert.Equal(t, dune.Status, got.Status)
		assert.Equal(t, "9/10", got.Rating)
	})

	t.Run("List By Status", func(t *testing.T) {
		all, err := repo.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "akira", all[0].ID)

		status := dune.Status
		done, err := repo.List(ctx, &status)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, "dune", done[0].ID)
	})

	t.Run("Update Renames", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "akira")
		require.NoError(t, err)
		require.NoError(t, got.Apply(domain.MediaInput{Name: "Akira 1988", Country: "japan", Type: "movie", Review: "classic"}))
		require.NoError(t, repo.Update(ctx, "akira", got))

		renamed, err := repo.GetByID(ctx, got.ID)
		require.NoError(t, err)
		assert.Equal(t, "classic", renamed.Review)

		_, err = repo.GetByID(ctx, "akira")
		assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "dune"))
		assert.ErrorIs(t, repo.Delete(ctx, "dune"), domain.ErrMediaNotFound)
	})
}

func sampleGroups() domain.Groups {
	reps := 8
	weight := decimal.RequireFromString("82.5")
	return domain.Groups{{
		Name:        "Push",
		RestSeconds: 90,
		Exercises: []domain.Exercise{
			{Name: "Bench", Sets: []domain.WorkoutSet{{Reps: &reps, Weight: &weight}, {Reps: &reps}}},
		},
	}}
}

func testWorkouts(t *testing.T, repo domain.WorkoutRepository) {
	ctx := context.Background()

	mustTime := func(s string) domain.TimeOfDay {
		tod, err := domain.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	morning, err := domain.NewWorkout(date(t, "2024-01-05"), mustTime("07:30:00"), sampleGroups(), "felt good")
	require.NoError(t, err)
	evening, err := domain.NewWorkout(date(t, "2024-01-05"), mustTime("19:00:00"), nil, "")
	require.NoError(t, err)
	earlier, err := domain.NewWorkout(date(t, "2023-12-31"), mustTime("10:00:00"), nil, "")
	require.NoError(t, err)

	for _, w := range []*domain.Workout{morning, evening, earlier} {
		require.NoError(t, repo.Create(ctx, w))
	}

	t.Run("Duplicate Slot", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, morning), domain.ErrWorkoutExists)
	})

	t.Run("Groups Round Trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "20240105-073000")
		require.NoError(t, err)
		assert.Equal(t, "felt good", got.Content)
		assert.Equal(t, mustTime("07:30:00"), got.Time)
		require.Len(t, got.Groups, 1)
		assert.Equal(t, 90, got.Groups[0].RestSeconds)
		assert.True(t, got.Volume().Equal(decimal.RequireFromString("660")), "volume was %s", got.Volume())
		assert.Nil(t, got.Groups[0].Exercises[0].Sets[1].Weight)

		empty, err := repo.GetByID(ctx, evening.ID)
		require.NoError(t, err)
		assert.NotNil(t, empty.Groups)
	})

	t.Run("List Newest First", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, evening.ID, list[0].ID)
		assert.Equal(t, morning.ID, list[1].ID)
		assert.Equal(t, earlier.ID, list[2].ID)
	})

	t.Run("List Dates Repeats Per Workout", func(t *testing.T) {
		dates, err := repo.ListDates(ctx, date(t, "2024-01-01"), date(t, "2024-01-31"))
		require.NoError(t, err)
		assert.Equal(t, []domain.DateKey{date(t, "2024-01-05"), date(t, "2024-01-05")}, dates)

		dates, err = repo.ListDates(ctx, date(t, "2023-12-01"), date(t, "2024-12-31"))
		require.NoError(t, err)
		require.Len(t, dates, 3)
		assert.Equal(t, date(t, "2023-12-31"), dates[0])
	})

	t.Run("Reschedule", func(t *testing.T) {
		got, err := repo.GetByID(ctx, earlier.ID)
		require.NoError(t, err)
		require.NoError(t, got.Apply(date(t, "2024-01-06"), got.Time, got.Groups, "moved"))
		require.NoError(t, repo.Update(ctx, earlier.ID, got))

		_, err = repo.GetByID(ctx, earlier.ID)
		assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

		require.NoError(t, got.Apply(morning.Date, morning.Time, nil, ""))
		assert.ErrorIs(t, repo.Update(ctx, "20240106-100000", got), domain.ErrWorkoutExists)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, evening.ID))
		assert.ErrorIs(t, repo.Delete(ctx, evening.ID), domain.ErrWorkoutNotFound)
	})
}

func testTemplates(t *testing.T, repo domain.TemplateRepository) {
	ctx := context.Background()

	push, err := domain.NewWorkoutTemplate("Push Day", sampleGroups())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, push))

	t.Run("Duplicate", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, push), domain.ErrTemplateExists)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "push-day")
		require.NoError(t, err)
		assert.Equal(t, "Push Day", got.Name)
		require.Len(t, got.Groups, 1)
		assert.Equal(t, "Bench", got.Groups[0].Exercises[0].Name)
	})

	t.Run("Rename and List", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "push-day")
		require.NoError(t, err)
		require.NoError(t, got.Apply("Chest", nil))
		require.NoError(t, repo.Update(ctx, "push-day", got))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "chest", list[0].ID)
		assert.Empty(t, list[0].Groups)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "chest"))
		assert.ErrorIs(t, repo.Delete(ctx, "chest"), domain.ErrTemplateNotFound)
		_, err := repo.GetByID(ctx, "chest")
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}
