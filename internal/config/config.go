package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Monitor names accepted in the MONITORS env var.
const (
	MonitorStaleQU  = "qu"
	MonitorETA      = "eta"
	MonitorAllHands = "allhands"
)

type Config struct {
	SpreadsheetID string
	QUSheetName   string
	PQSheetName   string

	SlackBotToken   string
	SlackWebhookURL string

	GoogleCredentialsPath string
	GoogleCredentialsJSON string

	NotificationInterval time.Duration
	CheckInterval        time.Duration
	StaleDays            int

	QUSchedule       string
	AllHandsSchedule string

	StateBackend  string
	DatabasePath  string
	StateFilePath string

	TeamFile string

	Monitors []string
	RunOnce  bool
	LogLevel string
}

func Load() *Config {
	return &Config{
		SpreadsheetID: strings.TrimSpace(getEnv("SPREADSHEET_ID", "")),
		QUSheetName:   strings.TrimSpace(getEnv("QU_SHEET_NAME", "QU-PU")),
		PQSheetName:   strings.TrimSpace(getEnv("PQ_SHEET_NAME", "Sheet1")),

		SlackBotToken:   strings.TrimSpace(getEnv("SLACK_BOT_TOKEN", "")),
		SlackWebhookURL: strings.TrimSpace(getEnv("SLACK_WEBHOOK_URL", "")),

		GoogleCredentialsPath: strings.TrimSpace(getEnv("GOOGLE_CREDENTIALS_PATH", "")),
		GoogleCredentialsJSON: strings.TrimSpace(getEnv("GOOGLE_CREDENTIALS_JSON", "")),

		NotificationInterval: time.Duration(getEnvInt("NOTIFICATION_INTERVAL", 10800)) * time.Second,
		CheckInterval:        time.Duration(getEnvInt("CHECK_INTERVAL", 300)) * time.Second,
		StaleDays:            getEnvInt("STALE_DAYS", 7),

		QUSchedule:       getEnv("QU_SCHEDULE", "0 9 * * 1"),
		AllHandsSchedule: getEnv("ALL_HANDS_SCHEDULE", "0 9 * * 1"),

		StateBackend:  getEnv("STATE_BACKEND", "sqlite"),
		DatabasePath:  getEnv("DATABASE_PATH", "./sheetwatch.db"),
		StateFilePath: getEnv("STATE_FILE_PATH", "notification_state.json"),

		TeamFile: getEnv("TEAM_FILE", "team.yaml"),

		Monitors: splitList(getEnv("MONITORS", "qu,eta,allhands")),
		RunOnce:  os.Getenv("RUN_ONCE") != "" || os.Getenv("GITHUB_ACTIONS") != "",
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// MonitorEnabled reports whether the named monitor was selected via MONITORS.
func (c *Config) MonitorEnabled(name string) bool {
	for _, m := range c.Monitors {
		if m == name {
			return true
		}
	}
	return false
}

// Validate checks the settings required by the enabled monitors. Missing
// credentials at startup are the only fatal error class.
func (c *Config) Validate() error {
	var missing []string

	needsSheets := c.MonitorEnabled(MonitorStaleQU) || c.MonitorEnabled(MonitorETA)

	if needsSheets {
		if c.SpreadsheetID == "" {
			missing = append(missing, "SPREADSHEET_ID")
		}
		if c.GoogleCredentialsPath == "" && c.GoogleCredentialsJSON == "" {
			missing = append(missing, "GOOGLE_CREDENTIALS_PATH or GOOGLE_CREDENTIALS_JSON")
		}
	}

	if c.MonitorEnabled(MonitorStaleQU) && c.SlackBotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}

	if (c.MonitorEnabled(MonitorETA) || c.MonitorEnabled(MonitorAllHands)) && c.SlackWebhookURL == "" {
		missing = append(missing, "SLACK_WEBHOOK_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if len(c.Monitors) == 0 {
		return fmt.Errorf("no monitors enabled: set MONITORS to a combination of qu, eta, allhands")
	}

	for _, m := range c.Monitors {
		switch m {
		case MonitorStaleQU, MonitorETA, MonitorAllHands:
		default:
			return fmt.Errorf("unknown monitor %q in MONITORS", m)
		}
	}

	switch c.StateBackend {
	case "sqlite", "file":
	default:
		return fmt.Errorf("unknown STATE_BACKEND %q: expected sqlite or file", c.StateBackend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
