package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLookKeepsPitchInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	yaw, pitch := 0.0, -0.2
	for i := 0; i < 10000; i++ {
		dx := (rng.Float64() - 0.5) * 4000
		dy := (rng.Float64() - 0.5) * 4000
		yaw, pitch = ApplyLook(yaw, pitch, dx, dy, 0.003)
		require.GreaterOrEqual(t, pitch, -math.Pi/2, "tick %d", i)
		require.LessOrEqual(t, pitch, math.Pi/2, "tick %d", i)
	}
}

func TestApplyLookSigns(t *testing.T) {
	yaw, pitch := ApplyLook(0, 0, 10, 10, 0.003)
	assert.InDelta(t, -0.03, yaw, 1e-12)
	assert.InDelta(t, 0.03, pitch, 1e-12)
}

func TestApplyLookYawIsUnbounded(t *testing.T) {
	yaw, _ := ApplyLook(0, 0, -10000, 0, 0.003)
	assert.InDelta(t, 30.0, yaw, 1e-9)
}

func TestClampPitch(t *testing.T) {
	assert.Equal(t, math.Pi/2, ClampPitch(5))
	assert.Equal(t, -math.Pi/2, ClampPitch(-5))
	assert.Equal(t, 0.5, ClampPitch(0.5))
	assert.Equal(t, 0.0, ClampPitch(math.NaN()))
}

func TestViewDirection(t *testing.T) {
	d := ViewDirection(0, 0)
	assert.InDelta(t, 0, d.X, 1e-12)
	assert.InDelta(t, 0, d.Y, 1e-12)
	assert.InDelta(t, 1, d.Z, 1e-12)

	d = ViewDirection(math.Pi/2, 0)
	assert.InDelta(t, 1, d.X, 1e-12)
	assert.InDelta(t, 0, d.Z, 1e-12)

	d = ViewDirection(1.3, -0.7)
	length := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	assert.InDelta(t, 1, length, 1e-12)
}
