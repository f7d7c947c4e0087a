package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

// etaMonitorService polls the PQ tab and pings the channel about rows with
// a missing ETA, throttled per row through the notification state store.
//
// Per-row states: clear (ETA filled, no entry), pending-notify (ETA empty,
// no recent entry) and cooling-down (entry younger than the interval).
type etaMonitorService struct {
	sheets  contract.SheetValuesReader
	webhook contract.WebhookSender
	state   contract.NotificationStateRepo
	team    *config.Team

	spreadsheetID string
	sheetName     string
	interval      time.Duration
}

func newETAMonitor(sheets contract.SheetValuesReader, webhook contract.WebhookSender, state contract.NotificationStateRepo, team *config.Team, cfg *config.Config) *etaMonitorService {
	return &etaMonitorService{
		sheets:        sheets,
		webhook:       webhook,
		state:         state,
		team:          team,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.PQSheetName,
		interval:      cfg.NotificationInterval,
	}
}

func (s *etaMonitorService) Check(ctx context.Context) error {
	readRange := fmt.Sprintf("%s!A%d:E", s.sheetName, domain.PQStartRow)
	rows, err := s.sheets.ReadRange(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return fmt.Errorf("failed to read PQ sheet: %w", err)
	}

	if len(rows) == 0 {
		slog.Info("no data found in PQ sheet")
		return nil
	}

	now := time.Now()
	for idx, row := range rows {
		s.processRow(row, domain.PQStartRow+idx, now)
	}

	slog.Info("completed ETA check", slog.Int("rows", len(rows)))
	return nil
}

func rowKey(rowNumber int) string {
	return fmt.Sprintf("row_%d", rowNumber)
}

// processRow runs one row through the throttle state machine. Row-level
// failures are logged and never abort the cycle.
func (s *etaMonitorService) processRow(row []string, rowNumber int, now time.Time) {
	initials := domain.Cell(row, domain.PQInitialsColumn)
	eta := domain.Cell(row, domain.PQETAColumn)
	key := rowKey(rowNumber)

	if eta != "" {
		// ETA filled: drop any throttle state for the row
		if err := s.state.Delete(key); err != nil {
			slog.Error("failed to clear notification state",
				slog.String("key", key), slog.String("error", err.Error()))
		}
		return
	}

	if initials == "" {
		return
	}

	userID, ok := s.team.UserID(initials)
	if !ok {
		slog.Warn("unknown initials", slog.Int("row", rowNumber), slog.String("initials", initials))
		return
	}

	due, err := s.shouldNotify(key, now)
	if err != nil {
		slog.Error("failed to read notification state",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if !due {
		slog.Debug("too soon to renotify", slog.Int("row", rowNumber), slog.String("initials", initials))
		return
	}

	message := fmt.Sprintf("<@%s> please update your ETA in the PQs (Row %d)", userID, rowNumber)
	if err := s.webhook.PostWebhook(&slack.WebhookMessage{Text: message}); err != nil {
		// no timestamp recorded: the row stays pending and is retried
		// next cycle
		slog.Error("failed to send ETA reminder",
			slog.Int("row", rowNumber), slog.String("error", err.Error()))
		return
	}

	if err := s.state.Upsert(&entity.StateEntry{Key: key, NotifiedAt: now}); err != nil {
		slog.Error("failed to record notification state",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	slog.Info("sent ETA reminder",
		slog.Int("row", rowNumber), slog.String("initials", initials))
}

// shouldNotify reports whether key is out of its cooling-down window.
func (s *etaMonitorService) shouldNotify(key string, now time.Time) (bool, error) {
	entry, err := s.state.Get(key)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return true, nil
	}

	return now.Sub(entry.NotifiedAt) >= s.interval, nil
}
