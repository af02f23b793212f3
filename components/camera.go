package components

import (
	"github.com/automoto/buildfight/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the locally predicted viewpoint. It is owned by the client
// and never written from snapshot data.
type CameraData struct {
	Position gamemath.Vec3
	Yaw      float64
	Pitch    float64
}

// View returns the unit view direction.
func (c *CameraData) View() gamemath.Vec3 {
	return gamemath.ViewDirection(c.Yaw, c.Pitch)
}

var Camera = donburi.NewComponentType[CameraData]()
