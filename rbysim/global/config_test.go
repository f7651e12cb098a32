package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Mewtwo", config.Attacker.Species)
	assert.Equal(t, "Mew", config.Defender.Species)
	assert.Equal(t, 100, config.MaxTurns)
	assert.NotEmpty(t, config.LogDirectory)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
seed: 42
max_turns: 10
attacker:
  species: Gengar
  level: 50
  move: lick
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), config.Seed)
	assert.Equal(t, 10, config.MaxTurns)
	assert.Equal(t, SideConfig{Species: "Gengar", Level: 50, Move: "lick"}, config.Attacker)
	// untouched fields keep their defaults
	assert.Equal(t, SideConfig{Species: "Mew", Level: 100}, config.Defender)
	assert.Equal(t, 2, config.MaxLogs)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_turns: [1, 2"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := DefaultConfig()
	config.Seed = 7
	config.Defender.Move = "surf"

	require.NoError(t, SaveConfig(path, config))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, populateConfig(config), loaded)
}
