package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/slack-sheet-monitor/internal/config"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

func Test_allHands_Remind(t *testing.T) {
	t.Run("first reminder tags the whole team", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAllHands(m.mockWebhook, m.mockState, testTeam())

		m.mockState.EXPECT().Get(allHandsStateKey).Return(nil, nil)

		var sent string
		m.mockWebhook.EXPECT().
			PostWebhook(gomock.Any()).
			DoAndReturn(func(msg *slack.WebhookMessage) error {
				sent = msg.Text
				return nil
			})

		m.mockState.EXPECT().Upsert(gomock.Any()).Return(nil)

		err := s.Remind(context.Background())
		require.NoError(t, err)

		// CC is excluded; extras come after the tracked members
		assert.Equal(t,
			"<@U0TESTCF> <@U0TESTDI> <@U0TESTSR> <@U0TESTMS> "+allHandsText,
			sent)
	})

	t.Run("skips when a reminder went out within the week", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAllHands(m.mockWebhook, m.mockState, testTeam())

		m.mockState.EXPECT().Get(allHandsStateKey).Return(&entity.StateEntry{
			Key:        allHandsStateKey,
			NotifiedAt: time.Now().Add(-24 * time.Hour),
		}, nil)

		err := s.Remind(context.Background())
		require.NoError(t, err)
	})

	t.Run("sends again after a week", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAllHands(m.mockWebhook, m.mockState, testTeam())

		m.mockState.EXPECT().Get(allHandsStateKey).Return(&entity.StateEntry{
			Key:        allHandsStateKey,
			NotifiedAt: time.Now().Add(-8 * 24 * time.Hour),
		}, nil)
		m.mockWebhook.EXPECT().PostWebhook(gomock.Any()).Return(nil)
		m.mockState.EXPECT().Upsert(gomock.Any()).Return(nil)

		err := s.Remind(context.Background())
		require.NoError(t, err)
	})

	t.Run("failed send returns the error and records nothing", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAllHands(m.mockWebhook, m.mockState, testTeam())

		m.mockState.EXPECT().Get(allHandsStateKey).Return(nil, nil)
		m.mockWebhook.EXPECT().
			PostWebhook(gomock.Any()).
			Return(fmt.Errorf("webhook gone"))

		err := s.Remind(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send all-hands reminder")
	})

	t.Run("empty team is an error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newAllHands(m.mockWebhook, m.mockState, &config.Team{})

		m.mockState.EXPECT().Get(allHandsStateKey).Return(nil, nil)

		err := s.Remind(context.Background())
		require.Error(t, err)
	})
}
