package systems

import (
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var pollButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// InputPoller turns ebiten's polled input into queued InputEvents.
type InputPoller struct {
	keys    []ebiten.Key
	actions []cfg.ActionID

	lastX, lastY int
	tracking     bool
}

func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Update pushes this frame's raw input onto the session queue, then applies
// the queue. Must run first in the system order.
func (p *InputPoller) Update(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, key := range p.keys {
		p.actions = cfg.ActionsForKey(p.actions[:0], key)
		p.push(input, components.InputPress, p.actions)
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, key := range p.keys {
		p.actions = cfg.ActionsForKey(p.actions[:0], key)
		p.push(input, components.InputRelease, p.actions)
	}

	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured
	for _, btn := range pollButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			if !captured && btn == ebiten.MouseButtonLeft {
				// The click that captures the cursor does not fire.
				ebiten.SetCursorMode(ebiten.CursorModeCaptured)
				continue
			}
			p.actions = cfg.ActionsForMouseButton(p.actions[:0], btn)
			p.push(input, components.InputPress, p.actions)
		}
		if inpututil.IsMouseButtonJustReleased(btn) {
			p.actions = cfg.ActionsForMouseButton(p.actions[:0], btn)
			p.push(input, components.InputRelease, p.actions)
		}
	}

	x, y := ebiten.CursorPosition()
	if captured && p.tracking {
		if dx, dy := x-p.lastX, y-p.lastY; dx != 0 || dy != 0 {
			input.Push(components.InputEvent{Kind: components.InputPointer, DX: float64(dx), DY: float64(dy)})
		}
	}
	p.lastX, p.lastY, p.tracking = x, y, captured

	// Positive ebiten yoff is a scroll up; queued wheel steps use the
	// opposite sign so scrolling down moves to the next piece.
	if _, yoff := ebiten.Wheel(); yoff > 0 {
		input.Push(components.InputEvent{Kind: components.InputWheel, DY: -1})
	} else if yoff < 0 {
		input.Push(components.InputEvent{Kind: components.InputWheel, DY: 1})
	}

	input.Begin()

	if input.JustPressed(cfg.ActionReleaseCursor) && captured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (p *InputPoller) push(input *components.InputData, kind components.InputEventKind, actions []cfg.ActionID) {
	for _, a := range actions {
		input.Push(components.InputEvent{Kind: kind, Action: a})
	}
}

// EndInputFrame records the held set for next tick's edge detection.
// Must run last in the system order.
func EndInputFrame(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	components.Input.Get(entry).End()
}
