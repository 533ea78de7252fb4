package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/config"
	"github.com/jungshell/fccg-core/internal/database"
	"github.com/jungshell/fccg-core/internal/domain/service"
	"github.com/jungshell/fccg-core/internal/handlers"
	"github.com/jungshell/fccg-core/internal/notifier"
	"github.com/jungshell/fccg-core/migrator/sqlite"
	"github.com/jungshell/fccg-core/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := time.LoadLocation(cfg.ClubTimezone)
	if err != nil {
		zlog.Fatal("invalid club timezone", zap.String("tz", cfg.ClubTimezone), zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)
	slackNotifier := notifier.NewSlack(slackClient, cfg.SlackAdminChannel, zlog)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, slackNotifier, loc, zlog)

	// Startup maintenance: must not run concurrently with vote writes, so
	// it happens before the HTTP listener and the cron jobs come up.
	if err := services.Cleaner.Run(); err != nil {
		zlog.Error("duplicate session cleanup failed", zap.Error(err))
	}

	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	if _, err := scheduler.AddFunc(cfg.WeeklyCron, func() {
		ctx, cancel := contextWithTimeout()
		defer cancel()
		services.Scheduler.Run(ctx)
	}); err != nil {
		zlog.Fatal("failed to register weekly job", zap.Error(err))
	}

	if _, err := scheduler.AddFunc(cfg.StatusCron, func() {
		ctx, cancel := contextWithTimeout()
		defer cancel()
		services.Status.Run(ctx)
	}); err != nil {
		zlog.Fatal("failed to register status job", zap.Error(err))
	}

	scheduler.Start()
	defer scheduler.Stop()

	handler := handlers.New(services, zlog)

	http.HandleFunc("POST /api/votes", handler.HandleSubmitVote)
	http.HandleFunc("GET /api/sessions/current", handler.HandleCurrentSession)
	http.HandleFunc("GET /api/sessions/{id}/results", handler.HandleSessionResults)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Minute)
}
