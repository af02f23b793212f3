package systems

import (
	"math"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/gamemath"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewBuildSystem handles piece selection from the wheel and proposes a
// placement on each build release edge. Edit releases ask the server to
// remove the structure at the same targeted point.
func NewBuildSystem(sender Sender) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := session(e)
		if !ok {
			return
		}
		input := components.Input.Get(entry)
		loadout := components.Loadout.Get(entry)
		camera := components.Camera.Get(entry)

		if steps := int(math.Round(input.ConsumeWheel())); steps != 0 {
			loadout.Cycle(steps)
		}

		building := input.JustReleased(cfg.ActionBuild)
		editing := input.JustReleased(cfg.ActionEdit)
		if !building && !editing {
			return
		}

		target, hit := gamemath.MarchToGround(camera.Position, camera.View(), cfg.Build.StepLength, cfg.Build.MaxSteps)

		if building {
			log.Debug().
				Float64("x", target.X).Float64("y", target.Y).Float64("z", target.Z).
				Bool("ground", hit).Str("piece", loadout.PieceName()).
				Msg("build")
			send(sender, messages.Build{X: target.X, Y: target.Y, Z: target.Z, Piece: loadout.PieceName()})
		}
		if editing {
			send(sender, messages.Edit{X: target.X, Z: target.Z})
		}
	}
}
