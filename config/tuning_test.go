package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTuningOverridesOnlyListedKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	path := writeTuning(t, t.TempDir(), `
world:
  levelTime: 120
boss:
  damageEnergyScale: 0.5
dialogue:
  tauntEnergy: 20
`)

	require.NoError(t, LoadTuning(path))

	assert.Equal(t, 120.0, World.LevelTime)
	assert.Equal(t, 0.5, Boss.DamageEnergyScale)
	assert.Equal(t, 20.0, Dialogue.TauntEnergy)
	assert.Equal(t, 100.0, Boss.MaxEnergy, "untouched keys keep defaults")
	assert.Equal(t, 2400.0, World.Width)
}

func TestLoadTuningStartsFromDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	World.LevelTime = 5

	path := writeTuning(t, t.TempDir(), "sim:\n  seed: 7\n")
	require.NoError(t, LoadTuning(path))

	assert.Equal(t, 90.0, World.LevelTime)
	assert.Equal(t, int64(7), Sim.Seed)
}

func TestInvalidTuningRestoresDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	path := writeTuning(t, t.TempDir(), "world:\n  floorTop: 200\n  floorBottom: 100\n")

	err := LoadTuning(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "floorBottom")
	assert.Equal(t, 112.0, World.FloorTop)
}

func TestMalformedTuning(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Error(t, ApplyTuning([]byte("world: [")))
	assert.Error(t, LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeTuning(t, dir, "sim:\n  seed: 1\n")
	w, err := WatchTuning(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// edits to other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  seed: 2\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, filepath.Clean(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no tuning event")
	}
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "closing twice is harmless")
}

func TestIsTuningFile(t *testing.T) {
	assert.True(t, isTuningFile("a/b.yaml"))
	assert.True(t, isTuningFile("B.YML"))
	assert.False(t, isTuningFile("b.json"))
}
