package importer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/shelf/internal/adapters/repository"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

func seedVault(t *testing.T) Dirs {
	t.Helper()
	root := t.TempDir()
	dirs := Dirs{
		Habits:     filepath.Join(root, "habits"),
		Activities: filepath.Join(root, "activities"),
		Presets:    filepath.Join(root, "presets"),
		Media:      filepath.Join(root, "media"),
		Workouts:   filepath.Join(root, "workouts"),
		Templates:  filepath.Join(root, "missing"),
	}

	writeFile(t, filepath.Join(dirs.Habits, "run.md"), "---\nname: Run\ndays: [1, 3, 5]\ncompletions:\n  - 2024-01-08\n  - 2024-01-03\n---\n")
	writeFile(t, filepath.Join(dirs.Habits, "read.md"), "---\nname: Read\ndays: [0, 1, 2, 3, 4, 5, 6]\ncolor: \"#00ff00\"\n---\n")
	writeFile(t, filepath.Join(dirs.Habits, "broken.md"), "---\nname: Broken\ndays: [9]\n---\n")
	writeFile(t, filepath.Join(dirs.Habits, "notes.txt"), "ignored")

	writeFile(t, filepath.Join(dirs.Activities, "cinema.md"), "---\nname: Cinema\ndate: 2024-01-08\n---\n")
	writeFile(t, filepath.Join(dirs.Activities, "undated.md"), "---\nname: Undated\n---\n")

	writeFile(t, filepath.Join(dirs.Presets, "yoga.md"), "---\nname: Yoga\n---\n")

	writeFile(t, filepath.Join(dirs.Media, "parasite.md"), "---\nname: Parasite\ncountry: korea\ntype: movie\nstatus: watched\nrating: \"9/10\"\n---\nGreat twist.\n")

	writeFile(t, filepath.Join(dirs.Workouts, "w1.md"), "---\ndate: 2024-01-08\ntime: \"07:00:00\"\ngroups:\n  - name: Legs\n    exercises:\n      - name: Squat\n        sets:\n          - reps: 5\n            weight: 100\n---\n")

	return dirs
}

func newStores() Stores {
	return Stores{
		Habits:     repository.NewMemoryHabitRepository(),
		Activities: repository.NewMemoryActivityRepository(),
		Presets:    repository.NewMemoryPresetRepository(),
		Media:      repository.NewMemoryMediaRepository(),
		Workouts:   repository.NewMemoryWorkoutRepository(),
		Templates:  repository.NewMemoryTemplateRepository(),
	}
}

func TestImporterRun(t *testing.T) {
	ctx := context.Background()
	dirs := seedVault(t)
	stores := newStores()
	im := New(stores, logging.Discard())

	t.Run("Success: First run imports valid files", func(t *testing.T) {
		report, err := im.Run(ctx, dirs)
		require.NoError(t, err)

		assert.Equal(t, Counts{Imported: 2, Failed: 1}, report.Habits)
		assert.Equal(t, Counts{Imported: 1, Failed: 1}, report.Activities)
		assert.Equal(t, Counts{Imported: 1}, report.Presets)
		assert.Equal(t, Counts{Imported: 1}, report.Media)
		assert.Equal(t, Counts{Imported: 1}, report.Workouts)
		assert.Equal(t, Counts{}, report.Templates)

		run, err := stores.Habits.GetByID(ctx, "run")
		require.NoError(t, err)
		assert.Equal(t, []domain.DateKey{domain.MustDateKey(2024, 1, 3), domain.MustDateKey(2024, 1, 8)}, run.Completions)
		assert.Equal(t, domain.DefaultHabitColor, run.Color)

		media, err := stores.Media.GetByID(ctx, "parasite")
		require.NoError(t, err)
		assert.Equal(t, "Great twist.", media.Review)
		assert.Equal(t, domain.CountryKorea, media.Country)

		workout, err := stores.Workouts.GetByID(ctx, "20240108-070000")
		require.NoError(t, err)
		assert.Equal(t, "500", workout.Volume().String())
	})

	t.Run("Success: Second run skips existing ids", func(t *testing.T) {
		report, err := im.Run(ctx, dirs)
		require.NoError(t, err)

		assert.Equal(t, Counts{Skipped: 2, Failed: 1}, report.Habits)
		assert.Equal(t, Counts{Skipped: 1}, report.Media)
		assert.Equal(t, Counts{Skipped: 1}, report.Workouts)

		habits, err := stores.Habits.List(ctx)
		require.NoError(t, err)
		assert.Len(t, habits, 2)
	})

	t.Run("Success: Empty entries are skipped", func(t *testing.T) {
		report, err := New(newStores(), logging.Discard()).Run(ctx, Dirs{Presets: dirs.Presets})
		require.NoError(t, err)
		assert.Equal(t, Counts{Imported: 1}, report.Presets)
		assert.Equal(t, Counts{}, report.Habits)
	})

	t.Run("Error: Cancelled context stops the run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(newStores(), logging.Discard()).Run(cancelled, dirs)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
