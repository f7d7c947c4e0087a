package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockSheets  *mocks.MockSheetValuesReader
	mockSlack   *mocks.MockSlackClient
	mockWebhook *mocks.MockWebhookSender
	mockState   *mocks.MockNotificationStateRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSheets:  mocks.NewMockSheetValuesReader(ctrl),
		mockSlack:   mocks.NewMockSlackClient(ctrl),
		mockWebhook: mocks.NewMockWebhookSender(ctrl),
		mockState:   mocks.NewMockNotificationStateRepo(ctrl),
	}

	return
}

func testTeam() *config.Team {
	return &config.Team{
		Users: map[string]string{
			"CF": "U0TESTCF",
			"DI": "U0TESTDI",
			"SR": "U0TESTSR",
			"CC": "U0TESTCC",
		},
		Ignored:         []string{"AH", "CC"},
		AllHandsExtra:   map[string]string{"MS": "U0TESTMS"},
		AllHandsExclude: []string{"CC"},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		SpreadsheetID:        "spreadsheet-id",
		QUSheetName:          "QU-PU",
		PQSheetName:          "PQs",
		StaleDays:            7,
		NotificationInterval: 3 * time.Hour,
	}
}
