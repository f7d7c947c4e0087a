package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
)

// staleQUService implements the weekly stale-QU counter: one DM per person
// with the number of their tracked rows whose date passed the age
// threshold.
type staleQUService struct {
	sheets      contract.SheetValuesReader
	slackClient contract.SlackClient
	team        *config.Team

	spreadsheetID string
	sheetName     string
	staleDays     int
}

func newStaleQU(sheets contract.SheetValuesReader, slackClient contract.SlackClient, team *config.Team, cfg *config.Config) *staleQUService {
	return &staleQUService{
		sheets:        sheets,
		slackClient:   slackClient,
		team:          team,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.QUSheetName,
		staleDays:     cfg.StaleDays,
	}
}

func (s *staleQUService) Check(ctx context.Context) error {
	readRange := fmt.Sprintf("%s!A%d:C", s.sheetName, domain.QUStartRow)
	rows, err := s.sheets.ReadRange(ctx, s.spreadsheetID, readRange)
	if err != nil {
		return fmt.Errorf("failed to read QU sheet: %w", err)
	}

	if len(rows) == 0 {
		slog.Info("no data found in QU sheet")
		return nil
	}

	counts := s.countStale(rows, time.Now())
	if len(counts) == 0 {
		slog.Info("no stale QUs found, no notifications sent")
		return nil
	}

	s.notify(counts)
	return nil
}

// countStale classifies every row and returns the per-person stale count.
// Each qualifying row increments its owner exactly once.
func (s *staleQUService) countStale(rows [][]string, now time.Time) map[string]int {
	cutoff := now.AddDate(0, 0, -s.staleDays)
	slog.Info("checking for stale QUs", slog.String("cutoff", cutoff.Format("2006-01-02")))

	counts := make(map[string]int)

	for idx, row := range rows {
		rowNumber := domain.QUStartRow + idx

		initials := domain.FirstInitials(domain.Cell(row, domain.QUInitialsColumn))
		if initials == "" || s.team.IsIgnored(initials) {
			continue
		}

		dateCell := domain.Cell(row, domain.QUDateColumn)
		if dateCell == "" {
			continue
		}

		date, err := domain.ParseCellDate(dateCell)
		if err != nil {
			slog.Warn("skipping row with unparseable date",
				slog.Int("row", rowNumber), slog.String("value", dateCell))
			continue
		}

		if !date.Before(cutoff) {
			continue
		}

		if _, ok := s.team.UserID(initials); !ok {
			slog.Warn("unknown initials", slog.Int("row", rowNumber), slog.String("initials", initials))
			continue
		}

		counts[initials]++
		slog.Info("found stale QU",
			slog.Int("row", rowNumber), slog.String("initials", initials), slog.String("date", dateCell))
	}

	return counts
}

func staleQUMessage(count int) string {
	plural := ""
	if count != 1 {
		plural = "s"
	}
	return fmt.Sprintf("Please reach out to %d stale QU%s", count, plural)
}

// notify sends one DM per person, in initials order so message delivery is
// deterministic. Send failures are logged and skipped.
func (s *staleQUService) notify(counts map[string]int) {
	initialsList := make([]string, 0, len(counts))
	for initials := range counts {
		initialsList = append(initialsList, initials)
	}
	sort.Strings(initialsList)

	for _, initials := range initialsList {
		count := counts[initials]
		userID, _ := s.team.UserID(initials)

		_, _, err := s.slackClient.PostMessage(userID, slack.MsgOptionText(staleQUMessage(count), false))
		if err != nil {
			slog.Error("failed to send stale QU DM",
				slog.String("initials", initials), slog.String("error", err.Error()))
			continue
		}

		slog.Info("notified about stale QUs",
			slog.String("initials", initials), slog.Int("count", count))
	}
}
