package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "PROGRESS.md", cfg.ChecklistPath)
	assert.Equal(t, "data/algotrack.db", cfg.DatabasePath)
	assert.Empty(t, cfg.ProgramPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ALGOTRACK_CHECKLIST", "notes/plan.md")
	t.Setenv("ALGOTRACK_DB", "/tmp/track.db")
	t.Setenv("ALGOTRACK_PROGRAM", "custom.yaml")

	cfg := Load()
	assert.Equal(t, "notes/plan.md", cfg.ChecklistPath)
	assert.Equal(t, "/tmp/track.db", cfg.DatabasePath)
	assert.Equal(t, "custom.yaml", cfg.ProgramPath)
}
