package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSessionConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
queue_seed_count: 4
stack_seed_count: 1
seeded_hours: 2
count_min: 10
count_max: 20
passengers:
  PAX-010:
    name: Ada Lovelace
    flight: BA100
    destination: LHR
`)

	cfg, err := loadSessionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.QueueSeedCount)
	assert.Equal(t, 1, cfg.StackSeedCount)
	assert.Equal(t, 2, cfg.SeededHours)
	assert.Equal(t, 10, cfg.CountMin)
	assert.Equal(t, 20, cfg.CountMax)
	require.Len(t, cfg.Passengers, 1)
	assert.Equal(t, "BA100", cfg.Passengers["PAX-010"].Flight)
}

func TestLoadSessionConfig_ShippedDefaults(t *testing.T) {
	cfg, err := loadSessionConfig("../configs/defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.QueueSeedCount)
	assert.Equal(t, 2, cfg.StackSeedCount)
	assert.Equal(t, 5, cfg.SeededHours)
	assert.Len(t, cfg.Passengers, 3)
	assert.Equal(t, "SFO", cfg.Passengers["PAX-001"].Destination)
}

func TestLoadSessionConfig_UnknownFieldFails(t *testing.T) {
	// Strict parsing: typos must cause errors.
	path := writeConfig(t, `
queue_seed_count: 3
stack_seed_count: 2
seeded_hours: 5
count_min: 80
count_max: 150
queue_sead_count: 9
`)

	_, err := loadSessionConfig(path)
	assert.Error(t, err)
}

func TestLoadSessionConfig_InvalidRangeFails(t *testing.T) {
	path := writeConfig(t, `
queue_seed_count: 3
stack_seed_count: 2
seeded_hours: 5
count_min: 150
count_max: 80
`)

	_, err := loadSessionConfig(path)
	assert.Error(t, err)
}

func TestLoadSessionConfig_MissingFile(t *testing.T) {
	_, err := loadSessionConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
