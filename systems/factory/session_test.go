package factory

import (
	"testing"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateSession(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSession(e)

	session, ok := components.Camera.First(e.World)
	require.True(t, ok)

	cam := components.Camera.Get(session)
	assert.Equal(t, cfg.Camera.SpawnY, cam.Position.Y)
	assert.Equal(t, cfg.Camera.SpawnZ, cam.Position.Z)

	vitals := components.Vitals.Get(session)
	assert.Equal(t, 100.0, vitals.HP)
	assert.False(t, vitals.Dead())

	assert.Equal(t, 0, components.Loadout.Get(session).Piece)
	assert.NotNil(t, components.Arena.Get(session).Players)
}
