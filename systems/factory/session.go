package factory

import (
	"github.com/automoto/buildfight/archetypes"
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/gamemath"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the single entity holding all per-session client state.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Camera.SetValue(session, components.CameraData{
		Position: gamemath.Vec3{X: cfg.Camera.SpawnX, Y: cfg.Camera.SpawnY, Z: cfg.Camera.SpawnZ},
		Yaw:      cfg.Camera.SpawnYaw,
		Pitch:    gamemath.ClampPitch(cfg.Camera.SpawnPitch),
	})
	components.Vitals.SetValue(session, components.NewVitals())
	components.Arena.SetValue(session, components.ArenaData{
		Players: map[messages.PlayerID]messages.PlayerState{},
	})

	return session
}
