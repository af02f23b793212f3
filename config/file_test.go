package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuningOverlaysDefaults(t *testing.T) {
	base := CurrentTuning()
	got, err := ParseTuning([]byte(`
controls:
  sensitivity: 0.005
build:
  maxSteps: 20
`), base)
	require.NoError(t, err)

	assert.Equal(t, 0.005, got.Controls.Sensitivity)
	assert.Equal(t, base.Controls.MoveSpeed, got.Controls.MoveSpeed)
	assert.Equal(t, 20, got.Build.MaxSteps)
	assert.Equal(t, base.Build.StepLength, got.Build.StepLength)
	assert.Equal(t, base.Network, got.Network)
}

func TestParseTuningEmptyDocument(t *testing.T) {
	base := CurrentTuning()
	got, err := ParseTuning(nil, base)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	base := CurrentTuning()

	_, err := ParseTuning([]byte("build:\n  stepLength: 0\n"), base)
	assert.Error(t, err)

	_, err = ParseTuning([]byte("controls:\n  sensitivity: -1\n"), base)
	assert.Error(t, err)

	_, err = ParseTuning([]byte("controls:\n  turbo: true\n"), base)
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoadFileAppliesAndKeepsStateOnError(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)

	dir := t.TempDir()
	good := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(good, []byte("controls:\n  moveSpeed: 7.5\n"), 0o644))
	require.NoError(t, LoadFile(good))
	assert.Equal(t, 7.5, Controls.MoveSpeed)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("controls:\n  moveSpeed: -3\n"), 0o644))
	assert.Error(t, LoadFile(bad))
	assert.Equal(t, 7.5, Controls.MoveSpeed)

	assert.Error(t, LoadFile(filepath.Join(dir, "missing.yaml")))
}
