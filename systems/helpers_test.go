package systems

import (
	"testing"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/automoto/buildfight/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// recorder is a Sender that keeps every message.
type recorder struct {
	sent []messages.Message
	err  error
}

func (r *recorder) Send(msg messages.Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recorder) ofType(t messages.Type) []messages.Message {
	var out []messages.Message
	for _, m := range r.sent {
		if m.Type() == t {
			out = append(out, m)
		}
	}
	return out
}

func newSession(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateSession(e)
	require.NotNil(t, entry)
	return e, entry
}

// frame queues evs, runs the given systems as one tick and closes the tick.
func frame(e *ecs.ECS, entry *donburi.Entry, run []ecs.System, evs ...components.InputEvent) {
	input := components.Input.Get(entry)
	for _, ev := range evs {
		input.Push(ev)
	}
	input.Begin()
	for _, s := range run {
		s(e)
	}
	EndInputFrame(e)
}

func pressed(a cfg.ActionID) components.InputEvent {
	return components.InputEvent{Kind: components.InputPress, Action: a}
}

func released(a cfg.ActionID) components.InputEvent {
	return components.InputEvent{Kind: components.InputRelease, Action: a}
}

func wheel(dy float64) components.InputEvent {
	return components.InputEvent{Kind: components.InputWheel, DY: dy}
}

func pointer(dx, dy float64) components.InputEvent {
	return components.InputEvent{Kind: components.InputPointer, DX: dx, DY: dy}
}
