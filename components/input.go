package components

import (
	cfg "github.com/automoto/buildfight/config"
	"github.com/yohamta/donburi"
)

// InputEventKind distinguishes queued raw input events
type InputEventKind int

const (
	InputPress InputEventKind = iota
	InputRelease
	InputPointer
	InputWheel
)

// InputEvent is one raw input occurrence, queued by the platform poller.
type InputEvent struct {
	Kind   InputEventKind
	Action cfg.ActionID // InputPress / InputRelease
	DX, DY float64      // InputPointer: pointer movement; InputWheel: DY is the wheel step
}

// InputData stores the held state for the current and previous tick plus the
// drained pointer and wheel accumulators. Events arrive through Push at any
// time and are applied once per tick by Begin; End snapshots the held set for
// edge detection after every system has read it.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	pointerDX, pointerDY float64
	wheel                float64

	queue   []InputEvent
	carried []InputEvent
}

var Input = donburi.NewComponentType[InputData]()

// Push queues an event for the next Begin.
func (in *InputData) Push(ev InputEvent) {
	in.queue = append(in.queue, ev)
}

// Begin applies every queued event. A release following a press of the same
// action within one tick is deferred to the next tick, along with any later
// events for that action, so each edge is observed for a full tick. A press
// following a release is deferred the same way.
func (in *InputData) Begin() {
	pending := make([]InputEvent, 0, len(in.carried)+len(in.queue))
	pending = append(pending, in.carried...)
	pending = append(pending, in.queue...)
	in.carried = nil
	in.queue = in.queue[:0]

	var pressed, released, deferred [cfg.ActionCount]bool
	for _, ev := range pending {
		switch ev.Kind {
		case InputPress, InputRelease:
			a := ev.Action
			if !validAction(a) {
				continue
			}
			if deferred[a] {
				in.carried = append(in.carried, ev)
				continue
			}
			if ev.Kind == InputPress {
				if released[a] {
					deferred[a] = true
					in.carried = append(in.carried, ev)
					continue
				}
				in.Current[a] = true
				pressed[a] = true
				continue
			}
			if pressed[a] {
				deferred[a] = true
				in.carried = append(in.carried, ev)
				continue
			}
			in.Current[a] = false
			released[a] = true
		case InputPointer:
			in.pointerDX += ev.DX
			in.pointerDY += ev.DY
		case InputWheel:
			in.wheel += ev.DY
		}
	}
}

// End records the current held state as the previous tick's.
func (in *InputData) End() {
	in.Previous = in.Current
}

// IsHeld reports whether action is held this tick.
func (in *InputData) IsHeld(action cfg.ActionID) bool {
	return validAction(action) && in.Current[action]
}

// JustPressed reports a press edge: held this tick, not held last tick.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return validAction(action) && in.Current[action] && !in.Previous[action]
}

// JustReleased reports a release edge: held last tick, not held this tick.
func (in *InputData) JustReleased(action cfg.ActionID) bool {
	return validAction(action) && !in.Current[action] && in.Previous[action]
}

// ConsumePointerDelta returns the pointer movement accumulated since the last
// call and resets it.
func (in *InputData) ConsumePointerDelta() (dx, dy float64) {
	dx, dy = in.pointerDX, in.pointerDY
	in.pointerDX, in.pointerDY = 0, 0
	return dx, dy
}

// ConsumeWheel returns the accumulated wheel steps and resets them.
func (in *InputData) ConsumeWheel() float64 {
	w := in.wheel
	in.wheel = 0
	return w
}

func validAction(a cfg.ActionID) bool {
	return a > cfg.ActionNone && a < cfg.ActionCount
}
