package systems

import (
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrientation drains the pointer delta into the camera's yaw and pitch.
func UpdateOrientation(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	camera := components.Camera.Get(entry)

	dx, dy := input.ConsumePointerDelta()
	camera.Yaw, camera.Pitch = gamemath.ApplyLook(camera.Yaw, camera.Pitch, dx, dy, cfg.Controls.Sensitivity)
}
