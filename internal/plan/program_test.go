package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultProgramIsValid(t *testing.T) {
	program := Default()
	require.NoError(t, program.Validate())
	assert.Len(t, program.Phases, PhaseCount)
}

func TestBuildAssignsContiguousWeekRanges(t *testing.T) {
	phases, weeks := Default().Build()

	require.Len(t, phases, PhaseCount)
	require.Len(t, weeks, TotalWeeks)

	assert.Equal(t, 1, phases[0].FirstWeek)
	assert.Equal(t, TotalWeeks, phases[len(phases)-1].LastWeek)
	for i := 1; i < len(phases); i++ {
		assert.Equal(t, phases[i-1].LastWeek+1, phases[i].FirstWeek,
			"phase ranges must be contiguous")
	}

	for i, week := range weeks {
		assert.Equal(t, i+1, week.ID)
		assert.NotEmpty(t, week.Title)
		assert.NotEmpty(t, week.Items)
		assert.True(t, phases[week.PhaseID-1].Contains(week.ID))
		for _, item := range week.Items {
			assert.False(t, item.Done, "new programs start unchecked")
			assert.Equal(t, week.ID, item.WeekID)
		}
	}
}

func TestLoadRejectsWrongPhaseCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.yaml")
	yaml := `name: Too Short
phases:
  - name: Only Phase
    weeks:
      - title: Week One
        study: ["Read something"]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have 7 phases")
}

func TestLoadRejectsWrongWeekCount(t *testing.T) {
	program := Default()
	program.Phases[6].Weeks = program.Phases[6].Weeks[:len(program.Phases[6].Weeks)-1]

	err := program.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have 48 weeks")
}

func TestValidateRejectsEmptyGoals(t *testing.T) {
	program := Default()
	program.Phases[0].Weeks[0].StudyGoals = nil
	program.Phases[0].Weeks[0].Implementation = nil

	err := program.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no goals")
}

func TestLoadRoundTripsDefault(t *testing.T) {
	// A YAML dump of the default program loads back as a valid program.
	path := filepath.Join(t.TempDir(), "program.yaml")
	data, err := yaml.Marshal(Default())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}
