package workers

import (
	"context"

	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/sirupsen/logrus"
)

const queueSize = 100

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type StreakJob struct {
	HabitID string
}

// StreakWorker recomputes habit streaks off the request path. Jobs are
// dropped when the queue is full; the next toggle enqueues again.
type StreakWorker struct {
	habitRepo HabitRepository
	nav       calendar.Navigator
	log       *logrus.Entry
	jobs      chan StreakJob
	done      chan struct{}
}

func NewStreakWorker(hRepo HabitRepository, nav calendar.Navigator, log *logrus.Entry) *StreakWorker {
	return &StreakWorker{
		habitRepo: hRepo,
		nav:       nav,
		log:       log,
		jobs:      make(chan StreakJob, queueSize),
		done:      make(chan struct{}),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)

		w.log.Info("streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info("streak worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker goroutine has returned.
func (w *StreakWorker) Done() <-chan struct{} {
	return w.done
}

func (w *StreakWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
	default:
		w.log.WithField("habit_id", habitID).Warn("streak queue full, dropping job")
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	log := w.log.WithField("habit_id", job.HabitID)

	habit, err := w.habitRepo.GetByID(ctx, job.HabitID)
	if err != nil {
		log.WithError(err).Warn("streak worker could not fetch habit")
		return
	}

	current, longest := calendar.Streaks(*habit, w.nav.Today())
	if habit.CurrentStreak == current && habit.LongestStreak == longest {
		return
	}

	if err := w.habitRepo.UpdateStreaks(ctx, habit.ID, current, longest); err != nil {
		log.WithError(err).Error("failed to store streaks")
		return
	}

	log.WithFields(logrus.Fields{
		"current": current,
		"longest": longest,
	}).Debug("streak updated")
}
