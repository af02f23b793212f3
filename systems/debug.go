package systems

import (
	"fmt"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/fonts"
	"github.com/automoto/buildfight/network"
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DebugLines formats the overlay text from session state and transport counters.
func DebugLines(camera *components.CameraData, arena *components.ArenaData, stats network.Stats, tps float64) []string {
	return []string{
		fmt.Sprintf("tps %.1f", tps),
		fmt.Sprintf("pos %.2f %.2f %.2f  yaw %.2f pitch %.2f",
			camera.Position.X, camera.Position.Y, camera.Position.Z, camera.Yaw, camera.Pitch),
		fmt.Sprintf("snapshots %s (seq %d)  players %d  structures %d  bullets %d",
			humanize.Comma(int64(arena.Applied)), arena.Seq,
			len(arena.Players), len(arena.Structures), len(arena.Projectiles)),
		fmt.Sprintf("rx %s in %s msgs  tx %s msgs",
			humanize.Bytes(stats.RxBytes), humanize.Comma(int64(stats.RxMessages)), humanize.Comma(int64(stats.TxMessages))),
		fmt.Sprintf("dropped %d  stale %d  bad frames %d",
			stats.DroppedSends, stats.StaleSnapshots, stats.DecodeErrors),
	}
}

// NewDebugRenderer draws tick and transport counters when the overlay is enabled.
func NewDebugRenderer(stats func() network.Stats) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Overlay {
			return
		}
		entry, ok := session(e)
		if !ok {
			return
		}
		var s network.Stats
		if stats != nil {
			s = stats()
		}
		lines := DebugLines(components.Camera.Get(entry), components.Arena.Get(entry), s, ebiten.ActualTPS())

		face := fonts.Mono.Get()
		height := screen.Bounds().Dy()
		top := height - cfg.HUD.Margin - len(lines)*cfg.HUD.LineHeight - int(cfg.Render.GroundMargin)
		for i, line := range lines {
			text.Draw(screen, line, face, cfg.HUD.Margin, top+(i+1)*cfg.HUD.LineHeight, cfg.Yellow)
		}
	}
}
