package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Team is the static initials -> Slack user ID mapping plus the initials
// sets that modify monitor behavior. Loaded once at startup from a YAML
// file (see team.example.yaml).
type Team struct {
	// Users maps initials to Slack user IDs.
	Users map[string]string `yaml:"users"`

	// Ignored initials are never counted by the stale-QU monitor.
	Ignored []string `yaml:"ignored"`

	// AllHandsExtra members receive the all-hands reminder even though
	// they are not tracked in the sheets.
	AllHandsExtra map[string]string `yaml:"all_hands_extra"`

	// AllHandsExclude members are tracked in the sheets but skipped by
	// the all-hands reminder.
	AllHandsExclude []string `yaml:"all_hands_exclude"`
}

// LoadTeam reads and validates the team mapping file.
func LoadTeam(path string) (*Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read team file %s: %w", path, err)
	}

	var team Team
	if err := yaml.Unmarshal(data, &team); err != nil {
		return nil, fmt.Errorf("failed to parse team file %s: %w", path, err)
	}

	if len(team.Users) == 0 {
		return nil, fmt.Errorf("team file %s has no users", path)
	}

	team.normalize()
	return &team, nil
}

// normalize uppercases every initials key so lookups match the values
// extracted from sheet cells.
func (t *Team) normalize() {
	t.Users = upperKeys(t.Users)
	t.AllHandsExtra = upperKeys(t.AllHandsExtra)
	for i, initials := range t.Ignored {
		t.Ignored[i] = strings.ToUpper(initials)
	}
	for i, initials := range t.AllHandsExclude {
		t.AllHandsExclude[i] = strings.ToUpper(initials)
	}
}

func upperKeys(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(m))
	for initials, id := range m {
		out[strings.ToUpper(initials)] = id
	}
	return out
}

// UserID resolves initials to a Slack user ID.
func (t *Team) UserID(initials string) (string, bool) {
	id, ok := t.Users[initials]
	return id, ok
}

// IsIgnored reports whether the initials are on the ignore list.
func (t *Team) IsIgnored(initials string) bool {
	for _, ignored := range t.Ignored {
		if ignored == initials {
			return true
		}
	}
	return false
}

// AllHandsRecipients returns the user IDs to tag in the all-hands
// reminder: every mapped user minus the excluded initials, plus the
// extra members, ordered by initials for stable messages.
func (t *Team) AllHandsRecipients() []string {
	excluded := make(map[string]bool, len(t.AllHandsExclude))
	for _, initials := range t.AllHandsExclude {
		excluded[initials] = true
	}

	var initialsList []string
	for initials := range t.Users {
		if !excluded[initials] {
			initialsList = append(initialsList, initials)
		}
	}
	sort.Strings(initialsList)

	ids := make([]string, 0, len(initialsList)+len(t.AllHandsExtra))
	for _, initials := range initialsList {
		ids = append(ids, t.Users[initials])
	}

	var extraList []string
	for initials := range t.AllHandsExtra {
		extraList = append(extraList, initials)
	}
	sort.Strings(extraList)
	for _, initials := range extraList {
		ids = append(ids, t.AllHandsExtra[initials])
	}

	return ids
}
