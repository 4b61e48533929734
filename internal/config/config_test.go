package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locator/internal/config"
	"github.com/katalvlaran/locator/locator"
)

const scenarioTOML = `
query = "A"
lexicographic_ties = true

[group1]
A = { x = 0, y = 0 }
B = { x = 10, y = 10 }

[group2]
X = { x = 1, y = 0 }

[group2.Y]
x = 9
y = 9
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	s, err := config.LoadFromFile(writeScenario(t, scenarioTOML))
	require.NoError(t, err)

	assert.Equal(t, "A", s.Query)
	assert.True(t, s.LexicographicTies)
	assert.Equal(t, locator.Group{"A": {X: 0, Y: 0}, "B": {X: 10, Y: 10}}, s.Group1)
	assert.Equal(t, locator.Group{"X": {X: 1, Y: 0}, "Y": {X: 9, Y: 9}}, s.Group2)
	assert.Len(t, s.Options(), 1)
	require.NoError(t, s.Validate())

	got, err := locator.Locate(s.Group1, s.Group2, s.Query, s.Options()...)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
}

func TestLoadFromFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = config.LoadFromFile(writeScenario(t, "query = ["))
	assert.Error(t, err)

	_, err = config.LoadFromFile(writeScenario(t, "[groupOne]\nA = { x = 0, y = 0 }\n"))
	assert.Error(t, err, "misspelled table must be rejected")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		s    config.Scenario
		want error
	}{
		{"no groups", config.Scenario{Query: "A"}, config.ErrMissingGroup},
		{"empty group2", config.Scenario{Query: "A", Group1: locator.Group{"A": {}}}, config.ErrMissingGroup},
		{"no query", config.Scenario{Group1: locator.Group{"A": {}}, Group2: locator.Group{"X": {}}}, config.ErrEmptyQuery},
		{"ok", config.Scenario{Query: "A", Group1: locator.Group{"A": {}}, Group2: locator.Group{"X": {}}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.s.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	groupsOnly := config.Scenario{Group1: locator.Group{"A": {}}, Group2: locator.Group{"X": {}}}
	assert.NoError(t, groupsOnly.ValidateGroups())
	assert.ErrorIs(t, config.Scenario{}.ValidateGroups(), config.ErrMissingGroup)
}
