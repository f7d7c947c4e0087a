package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/database"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/service"
	"github.com/diegoclair/slack-sheet-monitor/internal/notifier"
	"github.com/diegoclair/slack-sheet-monitor/internal/scheduler"
	"github.com/diegoclair/slack-sheet-monitor/internal/sheets"
	"github.com/diegoclair/slack-sheet-monitor/internal/statefile"
	"github.com/diegoclair/slack-sheet-monitor/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	team, err := config.LoadTeam(cfg.TeamFile)
	if err != nil {
		fatal("failed to load team mapping", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, closeState, err := openStateStore(cfg)
	if err != nil {
		fatal("failed to open notification state store", err)
	}
	defer closeState()

	var sheetsClient contract.SheetValuesReader
	if cfg.MonitorEnabled(config.MonitorStaleQU) || cfg.MonitorEnabled(config.MonitorETA) {
		client, err := sheets.New(ctx, cfg.GoogleCredentialsPath, cfg.GoogleCredentialsJSON)
		if err != nil {
			fatal("failed to initialize sheets client", err)
		}
		sheetsClient = client
	}

	slackClient := slack.New(cfg.SlackBotToken)
	webhook := notifier.NewWebhookClient(cfg.SlackWebhookURL)

	services := service.NewInstance(cfg, team, sheetsClient, slackClient, webhook, state)

	if cfg.RunOnce {
		if !runOnce(ctx, cfg, services) {
			closeState()
			os.Exit(1)
		}
		return
	}

	sched, err := scheduler.New(ctx, cfg, services)
	if err != nil {
		fatal("failed to build schedule", err)
	}
	sched.Start()
	defer sched.Stop()

	slog.Info("monitors running",
		slog.String("monitors", strings.Join(cfg.Monitors, ",")),
		slog.String("state_backend", cfg.StateBackend))

	<-ctx.Done()
	slog.Info("shutting down")
}

// runOnce runs one cycle of every enabled monitor, for external schedulers
// (GitHub Actions style). Returns false when any cycle failed.
func runOnce(ctx context.Context, cfg *config.Config, services *service.Instance) bool {
	slog.Info("single run mode")
	ok := true

	if cfg.MonitorEnabled(config.MonitorStaleQU) {
		if err := services.StaleQU.Check(ctx); err != nil {
			slog.Error("stale QU check failed", slog.String("error", err.Error()))
			ok = false
		}
	}

	if cfg.MonitorEnabled(config.MonitorETA) {
		if err := services.ETAMonitor.Check(ctx); err != nil {
			slog.Error("ETA check failed", slog.String("error", err.Error()))
			ok = false
		}
	}

	if cfg.MonitorEnabled(config.MonitorAllHands) {
		if err := services.AllHands.Remind(ctx); err != nil {
			slog.Error("all-hands reminder failed", slog.String("error", err.Error()))
			ok = false
		}
	}

	return ok
}

func openStateStore(cfg *config.Config) (contract.NotificationStateRepo, func(), error) {
	if cfg.StateBackend == "file" {
		store, err := statefile.New(cfg.StateFilePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database.NewNotificationStateRepo(db), func() { db.Close() }, nil
}

func setupLogger(level string) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slogLevel,
	}))
	slog.SetDefault(logger)
}

func fatal(message string, err error) {
	slog.Error(message, slog.String("error", err.Error()))
	os.Exit(1)
}
