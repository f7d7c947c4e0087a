// Package scheduler drives the monitors in daemon mode: cron specs for the
// weekly checks and a fixed-interval poll for the ETA monitor.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/service"
)

type Scheduler struct {
	cron *cron.Cron
}

// New wires a cron job per enabled monitor. Jobs derive from ctx so
// in-flight sheet reads are canceled on shutdown.
func New(ctx context.Context, cfg *config.Config, services *service.Instance) (*Scheduler, error) {
	c := cron.New()

	if cfg.MonitorEnabled(config.MonitorStaleQU) {
		_, err := c.AddFunc(cfg.QUSchedule, func() {
			if err := services.StaleQU.Check(ctx); err != nil {
				slog.Error("stale QU check failed", slog.String("error", err.Error()))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule stale QU check (%q): %w", cfg.QUSchedule, err)
		}
	}

	if cfg.MonitorEnabled(config.MonitorETA) {
		spec := fmt.Sprintf("@every %s", cfg.CheckInterval)
		_, err := c.AddFunc(spec, func() {
			if err := services.ETAMonitor.Check(ctx); err != nil {
				slog.Error("ETA check failed", slog.String("error", err.Error()))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule ETA check (%q): %w", spec, err)
		}
	}

	if cfg.MonitorEnabled(config.MonitorAllHands) {
		_, err := c.AddFunc(cfg.AllHandsSchedule, func() {
			if err := services.AllHands.Remind(ctx); err != nil {
				slog.Error("all-hands reminder failed", slog.String("error", err.Error()))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule all-hands reminder (%q): %w", cfg.AllHandsSchedule, err)
		}
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	slog.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop halts scheduling and waits for any running check to finish.
func (s *Scheduler) Stop() {
	slog.Info("scheduler stopping")
	<-s.cron.Stop().Done()
}
