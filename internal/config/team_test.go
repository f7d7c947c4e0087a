package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTeamFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTeam(t *testing.T) {
	path := writeTeamFile(t, `
users:
  cf: U0TESTCF
  DI: U0TESTDI
  CC: U0TESTCC
ignored:
  - ah
  - CC
all_hands_extra:
  ms: U0TESTMS
all_hands_exclude:
  - cc
`)

	team, err := LoadTeam(path)
	require.NoError(t, err)

	t.Run("initials are normalized to uppercase", func(t *testing.T) {
		id, ok := team.UserID("CF")
		require.True(t, ok)
		assert.Equal(t, "U0TESTCF", id)

		_, ok = team.UserID("cf")
		assert.False(t, ok, "lookups use the uppercased form produced by FirstInitials")
	})

	t.Run("ignored list", func(t *testing.T) {
		assert.True(t, team.IsIgnored("AH"))
		assert.True(t, team.IsIgnored("CC"))
		assert.False(t, team.IsIgnored("CF"))
	})

	t.Run("all-hands recipients exclude and extend", func(t *testing.T) {
		assert.Equal(t, []string{"U0TESTCF", "U0TESTDI", "U0TESTMS"}, team.AllHandsRecipients())
	})
}

func TestLoadTeam_MissingFile(t *testing.T) {
	_, err := LoadTeam(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read team file")
}

func TestLoadTeam_InvalidYAML(t *testing.T) {
	path := writeTeamFile(t, "users: [broken")

	_, err := LoadTeam(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse team file")
}

func TestLoadTeam_NoUsers(t *testing.T) {
	path := writeTeamFile(t, "ignored: [AH]")

	_, err := LoadTeam(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no users")
}
