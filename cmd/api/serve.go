package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/shelf/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/shelf/internal/adapters/handler/http"
	"github.com/comitanigiacomo/shelf/internal/adapters/repository"
	"github.com/comitanigiacomo/shelf/internal/core/calendar"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/comitanigiacomo/shelf/internal/core/services"
	"github.com/comitanigiacomo/shelf/internal/core/workers"
	"github.com/comitanigiacomo/shelf/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	log := logging.Component(logger, "server")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.WithField("driver", cfg.DBDriver).Info("opening store")
	store, err := openBackend(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer store.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	nav := calendar.NewNavigator(calendar.SystemClock{}, loc)

	var habits domain.HabitRepository = store.Habits
	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb, err = cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, running without cache and rate limiting")
		} else {
			defer rdb.Close()
			habits = repository.NewCachedHabitRepository(
				habits,
				cache.NewJSONCache(rdb, "shelf:habits", cfg.CacheTTL),
				logging.Component(logger, "habit-cache"),
			)
			log.WithField("addr", cfg.RedisAddr()).Info("redis connected")
		}
	}

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	worker := workers.NewStreakWorker(habits, nav, logging.Component(logger, "streaks"))
	worker.Start(workerCtx)
	defer func() {
		cancelWorker()
		<-worker.Done()
	}()

	habitService := services.NewHabitService(habits, worker, logging.Component(logger, "habits"))
	activityService := services.NewActivityService(store.Activities, store.Presets)
	mediaService := services.NewMediaService(store.Media, logging.Component(logger, "media"))
	workoutService := services.NewWorkoutService(store.Workouts, store.Templates)
	calendarService := services.NewCalendarService(habits, store.Activities, store.Workouts, nav, logging.Component(logger, "calendar"))

	gin.SetMode(gin.ReleaseMode)
	deps := adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(habitService),
		ActivityHandler: adapterHTTP.NewActivityHandler(activityService),
		MediaHandler:    adapterHTTP.NewMediaHandler(mediaService),
		WorkoutHandler:  adapterHTTP.NewWorkoutHandler(workoutService),
		CalendarHandler: adapterHTTP.NewCalendarHandler(calendarService),
		Redis:           rdb,
		Logger:          logging.Component(logger, "http"),
		CORSOrigins:     cfg.CORSOrigins,
		RateLimit:       cfg.RateLimit,
		RateWindow:      cfg.RateWindow,
		StartTime:       startTime,
	}
	if store.db != nil {
		deps.DB = store.db
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      adapterHTTP.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("shelf listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
