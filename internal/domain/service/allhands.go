package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

const (
	allHandsStateKey = "weekly_all_hands_reminder"
	allHandsInterval = 7 * 24 * time.Hour
	allHandsText     = "Please update the statuses of all your action items in the All Hands document. This MUST be done 24h before All Hands meeting"
)

// allHandsService broadcasts the weekly action-items reminder, throttled
// through the notification state store under a fixed key.
type allHandsService struct {
	webhook contract.WebhookSender
	state   contract.NotificationStateRepo
	team    *config.Team
}

func newAllHands(webhook contract.WebhookSender, state contract.NotificationStateRepo, team *config.Team) *allHandsService {
	return &allHandsService{
		webhook: webhook,
		state:   state,
		team:    team,
	}
}

// Remind sends the reminder unless one already went out within the last
// week. A send failure is returned so run-once mode can exit nonzero.
func (s *allHandsService) Remind(ctx context.Context) error {
	now := time.Now()

	entry, err := s.state.Get(allHandsStateKey)
	if err != nil {
		return fmt.Errorf("failed to load reminder state: %w", err)
	}
	if entry != nil && now.Sub(entry.NotifiedAt) < allHandsInterval {
		slog.Info("all-hands reminder already sent this week, skipping")
		return nil
	}

	recipients := s.team.AllHandsRecipients()
	if len(recipients) == 0 {
		return fmt.Errorf("no all-hands recipients configured")
	}

	tags := make([]string, 0, len(recipients))
	for _, userID := range recipients {
		tags = append(tags, fmt.Sprintf("<@%s>", userID))
	}
	message := strings.Join(tags, " ") + " " + allHandsText

	if err := s.webhook.PostWebhook(&slack.WebhookMessage{Text: message}); err != nil {
		return fmt.Errorf("failed to send all-hands reminder: %w", err)
	}

	if err := s.state.Upsert(&entity.StateEntry{Key: allHandsStateKey, NotifiedAt: now}); err != nil {
		return fmt.Errorf("failed to record reminder state: %w", err)
	}

	slog.Info("sent weekly all-hands reminder", slog.Int("recipients", len(recipients)))
	return nil
}
