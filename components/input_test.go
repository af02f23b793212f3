package components

import (
	"testing"

	cfg "github.com/automoto/buildfight/config"
	"github.com/stretchr/testify/assert"
)

func tick(in *InputData, evs ...InputEvent) {
	for _, ev := range evs {
		in.Push(ev)
	}
	in.Begin()
}

func press(a cfg.ActionID) InputEvent   { return InputEvent{Kind: InputPress, Action: a} }
func release(a cfg.ActionID) InputEvent { return InputEvent{Kind: InputRelease, Action: a} }

func TestInputEdges(t *testing.T) {
	var in InputData

	tick(&in, press(cfg.ActionBuild))
	assert.True(t, in.IsHeld(cfg.ActionBuild))
	assert.True(t, in.JustPressed(cfg.ActionBuild))
	assert.False(t, in.JustReleased(cfg.ActionBuild))
	in.End()

	tick(&in)
	assert.True(t, in.IsHeld(cfg.ActionBuild))
	assert.False(t, in.JustPressed(cfg.ActionBuild), "held, not a new press")
	in.End()

	tick(&in, release(cfg.ActionBuild))
	assert.False(t, in.IsHeld(cfg.ActionBuild))
	assert.True(t, in.JustReleased(cfg.ActionBuild))
	in.End()

	tick(&in)
	assert.False(t, in.JustReleased(cfg.ActionBuild), "release edge lasts one tick")
}

func TestInputTapWithinOneTickKeepsBothEdges(t *testing.T) {
	var in InputData

	tick(&in, press(cfg.ActionBuild), release(cfg.ActionBuild))
	assert.True(t, in.JustPressed(cfg.ActionBuild))
	in.End()

	tick(&in)
	assert.True(t, in.JustReleased(cfg.ActionBuild))
	in.End()

	tick(&in)
	assert.False(t, in.IsHeld(cfg.ActionBuild))
	assert.False(t, in.JustReleased(cfg.ActionBuild))
}

func TestInputDeferredReleaseKeepsOrderWithLaterPress(t *testing.T) {
	var in InputData

	tick(&in, press(cfg.ActionBuild), release(cfg.ActionBuild), press(cfg.ActionBuild))
	assert.True(t, in.JustPressed(cfg.ActionBuild))
	in.End()

	// The carried release applies first, then the carried press is deferred again.
	tick(&in)
	assert.False(t, in.IsHeld(cfg.ActionBuild))
	assert.True(t, in.JustReleased(cfg.ActionBuild))
	in.End()

	tick(&in)
	assert.True(t, in.JustPressed(cfg.ActionBuild))
}

func TestInputOtherActionsUnaffectedByDeferral(t *testing.T) {
	var in InputData

	tick(&in, press(cfg.ActionFire), release(cfg.ActionFire), press(cfg.ActionMoveForward))
	assert.True(t, in.IsHeld(cfg.ActionMoveForward))
	assert.True(t, in.JustPressed(cfg.ActionFire))
}

func TestConsumePointerDeltaDrains(t *testing.T) {
	var in InputData

	tick(&in,
		InputEvent{Kind: InputPointer, DX: 3, DY: -1},
		InputEvent{Kind: InputPointer, DX: 2, DY: 4},
	)
	dx, dy := in.ConsumePointerDelta()
	assert.Equal(t, 5.0, dx)
	assert.Equal(t, 3.0, dy)

	dx, dy = in.ConsumePointerDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestConsumeWheelDrains(t *testing.T) {
	var in InputData
	tick(&in, InputEvent{Kind: InputWheel, DY: 1}, InputEvent{Kind: InputWheel, DY: 1})
	assert.Equal(t, 2.0, in.ConsumeWheel())
	assert.Zero(t, in.ConsumeWheel())
}

func TestInvalidActionsIgnored(t *testing.T) {
	var in InputData
	tick(&in, press(cfg.ActionNone), press(cfg.ActionCount), press(cfg.ActionID(-3)))
	assert.False(t, in.IsHeld(cfg.ActionNone))
	assert.False(t, in.IsHeld(cfg.ActionCount))
	assert.Equal(t, [cfg.ActionCount]bool{}, in.Current)
}
