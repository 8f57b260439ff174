package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// Stores are the destinations of an import run.
type Stores struct {
	Habits     domain.HabitRepository
	Activities domain.ActivityRepository
	Presets    domain.PresetRepository
	Media      domain.MediaRepository
	Workouts   domain.WorkoutRepository
	Templates  domain.TemplateRepository
}

type Counts struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type Report struct {
	Habits     Counts `json:"habits"`
	Activities Counts `json:"activities"`
	Presets    Counts `json:"presets"`
	Media      Counts `json:"media"`
	Workouts   Counts `json:"workouts"`
	Templates  Counts `json:"templates"`
}

func (r Report) Fields() logrus.Fields {
	f := logrus.Fields{}
	for kind, c := range map[string]Counts{
		"habits":     r.Habits,
		"activities": r.Activities,
		"presets":    r.Presets,
		"media":      r.Media,
		"workouts":   r.Workouts,
		"templates":  r.Templates,
	} {
		f[kind] = fmt.Sprintf("%d imported, %d skipped, %d failed", c.Imported, c.Skipped, c.Failed)
	}
	return f
}

// Importer loads markdown files with YAML frontmatter into the stores.
// Records whose id already exists are skipped, so a run can be repeated.
type Importer struct {
	stores Stores
	log    *logrus.Entry
}

func New(stores Stores, log *logrus.Entry) *Importer {
	return &Importer{stores: stores, log: log}
}

type createFunc func(ctx context.Context, data []byte) error

func (im *Importer) Run(ctx context.Context, dirs Dirs) (Report, error) {
	var report Report

	steps := []struct {
		kind   string
		dir    string
		counts *Counts
		create createFunc
	}{
		{"presets", dirs.Presets, &report.Presets, im.createPreset},
		{"habits", dirs.Habits, &report.Habits, im.createHabit},
		{"activities", dirs.Activities, &report.Activities, im.createActivity},
		{"media", dirs.Media, &report.Media, im.createMedia},
		{"templates", dirs.Templates, &report.Templates, im.createTemplate},
		{"workouts", dirs.Workouts, &report.Workouts, im.createWorkout},
	}

	for _, step := range steps {
		if step.dir == "" {
			continue
		}
		counts, err := im.importDir(ctx, step.kind, step.dir, step.create)
		*step.counts = counts
		if err != nil {
			return report, fmt.Errorf("import %s: %w", step.kind, err)
		}
	}

	return report, nil
}

func (im *Importer) importDir(ctx context.Context, kind, dir string, create createFunc) (Counts, error) {
	var counts Counts
	log := im.log.WithFields(logrus.Fields{"kind": kind, "dir": dir})

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("import directory does not exist, skipping")
		return counts, nil
	}
	if err != nil {
		return counts, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return counts, err
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return counts, err
		}

		err = create(ctx, data)
		switch {
		case err == nil:
			counts.Imported++
		case errors.Is(err, domain.ErrDuplicate):
			counts.Skipped++
			log.WithField("file", entry.Name()).Debug("already present")
		case errors.Is(err, domain.ErrTransport), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return counts, err
		default:
			counts.Failed++
			log.WithError(err).WithField("file", entry.Name()).Warn("file not imported")
		}
	}

	log.WithFields(logrus.Fields{
		"imported": counts.Imported,
		"skipped":  counts.Skipped,
		"failed":   counts.Failed,
	}).Info("directory imported")

	return counts, nil
}

func (im *Importer) createHabit(ctx context.Context, data []byte) error {
	var meta habitMeta
	if _, err := decodeFrontmatter(data, &meta); err != nil {
		return err
	}
	habit, err := domain.NewHabit(meta.Name, meta.Days, meta.Color, meta.Completions)
	if err != nil {
		return err
	}
	return im.stores.Habits.Create(ctx, habit)
}

func (im *Importer) createActivity(ctx context.Context, data []byte) error {
	var meta activityMeta
	if _, err := decodeFrontmatter(data, &meta); err != nil {
		return err
	}
	activity, err := domain.NewActivity(meta.Name, meta.Date)
	if err != nil {
		return err
	}
	return im.stores.Activities.Create(ctx, activity)
}

func (im *Importer) createPreset(ctx context.Context, data []byte) error {
	var meta presetMeta
	if _, err := decodeFrontmatter(data, &meta); err != nil {
		return err
	}
	preset, err := domain.NewPreset(meta.Name)
	if err != nil {
		return err
	}
	return im.stores.Presets.Create(ctx, preset)
}

// createMedia keeps the markdown body as the review.
func (im *Importer) createMedia(ctx context.Context, data []byte) error {
	var meta mediaMeta
	body, err := decodeFrontmatter(data, &meta)
	if err != nil {
		return err
	}
	media, err := domain.NewMedia(domain.MediaInput{
		Name:    meta.Name,
		Country: meta.Country,
		Type:    meta.Type,
		Status:  meta.Status,
		Rating:  meta.Rating,
		Review:  body,
	})
	if err != nil {
		return err
	}
	return im.stores.Media.Create(ctx, media)
}

func (im *Importer) createWorkout(ctx context.Context, data []byte) error {
	var meta workoutMeta
	body, err := decodeFrontmatter(data, &meta)
	if err != nil {
		return err
	}
	workout, err := domain.NewWorkout(meta.Date, meta.Time, toGroups(meta.Groups), body)
	if err != nil {
		return err
	}
	return im.stores.Workouts.Create(ctx, workout)
}

func (im *Importer) createTemplate(ctx context.Context, data []byte) error {
	var meta templateMeta
	if _, err := decodeFrontmatter(data, &meta); err != nil {
		return err
	}
	tpl, err := domain.NewWorkoutTemplate(meta.Name, toGroups(meta.Groups))
	if err != nil {
		return err
	}
	return im.stores.Templates.Create(ctx, tpl)
}
