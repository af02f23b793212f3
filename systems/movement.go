package systems

import (
	"time"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/gamemath"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// NewMovementSystem predicts the camera position from held movement keys and
// reports it to the server every tick. The first tick has zero elapsed time.
func NewMovementSystem(sender Sender, now Clock) ecs.System {
	if now == nil {
		now = time.Now
	}
	var last time.Time
	return func(e *ecs.ECS) {
		entry, ok := session(e)
		if !ok {
			return
		}
		input := components.Input.Get(entry)
		camera := components.Camera.Get(entry)

		t := now()
		var dt float64
		if !last.IsZero() {
			dt = t.Sub(last).Seconds()
		}
		last = t

		fx, fz := gamemath.IntentFromKeys(
			input.IsHeld(cfg.ActionMoveForward),
			input.IsHeld(cfg.ActionMoveBack),
			input.IsHeld(cfg.ActionMoveLeft),
			input.IsHeld(cfg.ActionMoveRight),
		)
		dx, dz := gamemath.Displacement(fx, fz, camera.Yaw, cfg.Controls.MoveSpeed, dt)
		camera.Position.X += dx
		camera.Position.Z += dz

		send(sender, messages.Move{
			X:     camera.Position.X,
			Y:     camera.Position.Y,
			Z:     camera.Position.Z,
			Yaw:   camera.Yaw,
			Pitch: camera.Pitch,
		})
	}
}
