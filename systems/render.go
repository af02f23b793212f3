package systems

import (
	"image/color"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Project maps a world (x, z) point to screen space with a top-down
// orthographic view centred on the camera. Height is ignored.
func Project(camera *components.CameraData, x, z float64, width, height int) math.Vec2 {
	return math.Vec2{
		X: (x-camera.Position.X)*cfg.Render.PixelsPerUnit + float64(width)/2,
		Y: (z-camera.Position.Z)*cfg.Render.PixelsPerUnit + float64(height)/2,
	}
}

// StructureColor returns the fill color for a structure material.
func StructureColor(material string) color.RGBA {
	if c, ok := cfg.Render.StructureColors[material]; ok {
		return c
	}
	return cfg.Render.UnknownMaterial
}

// PlayerColor returns the fill color for a player entry.
func PlayerColor(id, local messages.PlayerID, p messages.PlayerState) color.RGBA {
	switch {
	case !p.Alive():
		return cfg.Render.DeadPlayer
	case local != "" && id == local:
		return cfg.Render.LocalPlayer
	}
	return cfg.Render.RemotePlayer
}

// DrawArena renders the background, ground line, structures, players and projectiles.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(cfg.Render.Background)

	groundY := float32(float64(height) - cfg.Render.GroundMargin)
	vector.StrokeLine(screen, 0, groundY, float32(width), groundY, 1, cfg.Render.GroundLine, false)

	entry, ok := session(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	arena := components.Arena.Get(entry)
	local := components.Match.Get(entry).LocalID

	for _, s := range arena.Structures {
		drawCentered(screen, Project(camera, s.X, s.Z, width, height), cfg.Render.StructureSize, StructureColor(s.Type))
	}
	for id, p := range arena.Players {
		drawCentered(screen, Project(camera, p.X, p.Z, width, height), cfg.Render.PlayerSize, PlayerColor(id, local, p))
	}
	for _, b := range arena.Projectiles {
		drawCentered(screen, Project(camera, b.X, b.Z, width, height), cfg.Render.ProjectileSize, cfg.Render.Projectile)
	}
}

func drawCentered(screen *ebiten.Image, at math.Vec2, size float32, clr color.Color) {
	vector.FillRect(screen, float32(at.X)-size/2, float32(at.Y)-size/2, size, size, clr, false)
}
