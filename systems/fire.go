package systems

import (
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// NewFireSystem sends one shoot intent along the view direction per fire press.
func NewFireSystem(sender Sender) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := session(e)
		if !ok {
			return
		}
		if !components.Input.Get(entry).JustPressed(cfg.ActionFire) {
			return
		}

		dir := components.Camera.Get(entry).View()
		send(sender, messages.Shoot{DX: dir.X, DY: dir.Y, DZ: dir.Z, Weapon: cfg.Network.Weapon})
	}
}
