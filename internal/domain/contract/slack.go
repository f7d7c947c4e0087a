package contract

import "github.com/slack-go/slack"

// SlackClient defines the Slack Web API operations the monitors use.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message; a user ID as channel delivers a DM
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

// WebhookSender posts messages through a Slack incoming webhook
type WebhookSender interface {
	PostWebhook(msg *slack.WebhookMessage) error
}
