package service

import (
	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
)

type Instance struct {
	StaleQU    *staleQUService
	ETAMonitor *etaMonitorService
	AllHands   *allHandsService
}

func NewInstance(cfg *config.Config, team *config.Team, sheets contract.SheetValuesReader, slackClient contract.SlackClient, webhook contract.WebhookSender, state contract.NotificationStateRepo) *Instance {
	return &Instance{
		StaleQU:    newStaleQU(sheets, slackClient, team, cfg),
		ETAMonitor: newETAMonitor(sheets, webhook, state, team, cfg),
		AllHands:   newAllHands(webhook, state, team),
	}
}
