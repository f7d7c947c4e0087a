// Package notifier holds the outgoing Slack transports that are not
// covered by the Web API client directly.
package notifier

import (
	"github.com/slack-go/slack"

	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
)

type webhookClient struct {
	url string
}

// NewWebhookClient returns a WebhookSender bound to one incoming webhook
// URL.
func NewWebhookClient(url string) contract.WebhookSender {
	return &webhookClient{url: url}
}

func (c *webhookClient) PostWebhook(msg *slack.WebhookMessage) error {
	return slack.PostWebhook(c.url, msg)
}
