package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_staleQU_countStale(t *testing.T) {
	// midnight keeps the cutoff comparison exact
	now := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rows [][]string
		want map[string]int
	}{
		{
			name: "date older than threshold is counted",
			rows: [][]string{
				{"QU-001", "CF", "12/04/2024"},
			},
			want: map[string]int{"CF": 1},
		},
		{
			name: "recent date is not counted",
			rows: [][]string{
				{"QU-001", "CF", "12/18/2024"},
			},
			want: map[string]int{},
		},
		{
			name: "date exactly at the cutoff is not counted",
			rows: [][]string{
				{"QU-001", "CF", "12/13/2024"},
			},
			want: map[string]int{},
		},
		{
			name: "one day past the cutoff is counted",
			rows: [][]string{
				{"QU-001", "CF", "12/12/2024"},
			},
			want: map[string]int{"CF": 1},
		},
		{
			name: "ignored initials are never counted",
			rows: [][]string{
				{"QU-001", "AH", "01/01/2024"},
				{"QU-002", "CC", "01/01/2024"},
			},
			want: map[string]int{},
		},
		{
			name: "unknown initials are not counted",
			rows: [][]string{
				{"QU-001", "ZZ", "01/01/2024"},
			},
			want: map[string]int{},
		},
		{
			name: "unparseable date is skipped",
			rows: [][]string{
				{"QU-001", "CF", "next week"},
				{"QU-002", "CF", "12/04/2024"},
			},
			want: map[string]int{"CF": 1},
		},
		{
			name: "empty initials and empty date are skipped",
			rows: [][]string{
				{"QU-001", "", "12/04/2024"},
				{"QU-002", "CF", ""},
				{"QU-003"},
			},
			want: map[string]int{},
		},
		{
			name: "each stale row counts once per person",
			rows: [][]string{
				{"QU-001", "CF", "12/04/2024"},
				{"QU-002", "CF", "2024-11-01"},
				{"QU-003", "DI", "11/20/2024"},
			},
			want: map[string]int{"CF": 2, "DI": 1},
		},
		{
			name: "first initials of a shared row own the count",
			rows: [][]string{
				{"QU-001", "di, cf", "12/04/2024"},
			},
			want: map[string]int{"DI": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newStaleQU(m.mockSheets, m.mockSlack, testTeam(), testConfig())

			got := s.countStale(tt.rows, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_staleQU_Check(t *testing.T) {
	t.Run("sends one DM per person with stale rows", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newStaleQU(m.mockSheets, m.mockSlack, testTeam(), testConfig())

		old := time.Now().AddDate(0, 0, -30).Format("01/02/2006")
		rows := [][]string{
			{"QU-001", "CF", old},
			{"QU-002", "CF", old},
			{"QU-003", "DI", old},
			{"QU-004", "DI", time.Now().Format("01/02/2006")},
		}

		m.mockSheets.EXPECT().
			ReadRange(gomock.Any(), "spreadsheet-id", "QU-PU!A1:C").
			Return(rows, nil)

		m.mockSlack.EXPECT().
			PostMessage("U0TESTCF", gomock.Any()).
			Return("", "", nil)
		m.mockSlack.EXPECT().
			PostMessage("U0TESTDI", gomock.Any()).
			Return("", "", nil)

		err := s.Check(context.Background())
		require.NoError(t, err)
	})

	t.Run("no DMs when the sheet is empty", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newStaleQU(m.mockSheets, m.mockSlack, testTeam(), testConfig())

		m.mockSheets.EXPECT().
			ReadRange(gomock.Any(), "spreadsheet-id", "QU-PU!A1:C").
			Return(nil, nil)

		err := s.Check(context.Background())
		require.NoError(t, err)
	})

	t.Run("returns error when the sheet read fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newStaleQU(m.mockSheets, m.mockSlack, testTeam(), testConfig())

		m.mockSheets.EXPECT().
			ReadRange(gomock.Any(), "spreadsheet-id", "QU-PU!A1:C").
			Return(nil, fmt.Errorf("api unavailable"))

		err := s.Check(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read QU sheet")
	})

	t.Run("a failed DM does not block the remaining people", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newStaleQU(m.mockSheets, m.mockSlack, testTeam(), testConfig())

		old := time.Now().AddDate(0, 0, -30).Format("01/02/2006")
		rows := [][]string{
			{"QU-001", "CF", old},
			{"QU-002", "DI", old},
		}

		m.mockSheets.EXPECT().
			ReadRange(gomock.Any(), "spreadsheet-id", "QU-PU!A1:C").
			Return(rows, nil)

		m.mockSlack.EXPECT().
			PostMessage("U0TESTCF", gomock.Any()).
			Return("", "", fmt.Errorf("channel_not_found"))
		m.mockSlack.EXPECT().
			PostMessage("U0TESTDI", gomock.Any()).
			Return("", "", nil)

		err := s.Check(context.Background())
		require.NoError(t, err)
	})
}

func Test_staleQUMessage(t *testing.T) {
	assert.Equal(t, "Please reach out to 1 stale QU", staleQUMessage(1))
	assert.Equal(t, "Please reach out to 2 stale QUs", staleQUMessage(2))
}
