package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HUDLines returns the vitals text shown in the top-left corner.
func HUDLines(vitals *components.VitalsData) []string {
	lines := []string{
		fmt.Sprintf("Kills %d/%d", vitals.Kills, cfg.HUD.KillTarget),
		fmt.Sprintf("HP %g  Shield %g", vitals.HP, vitals.Shield),
	}
	if vitals.Dead() {
		lines = append(lines, "DEAD")
	}
	return lines
}

// PieceLabel is the selected build piece as shown in the bottom-right corner.
func PieceLabel(loadout *components.LoadoutData) string {
	return strings.ToUpper(loadout.PieceName()[:1]) + loadout.PieceName()[1:]
}

// DrawHUD renders kills, health, shield and the selected build piece.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := session(e)
	if !ok {
		return
	}
	vitals := components.Vitals.Get(entry)
	face := fonts.HUD.Get()

	clr := cfg.HUD.TextColor
	if vitals.Dead() {
		clr = cfg.HUD.DeadColor
	}
	for i, line := range HUDLines(vitals) {
		text.Draw(screen, line, face, cfg.HUD.Margin, cfg.HUD.Margin+(i+1)*cfg.HUD.LineHeight, clr)
	}

	label := PieceLabel(components.Loadout.Get(entry))
	bounds := text.BoundString(face, label)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	text.Draw(screen, label, face, width-cfg.HUD.Margin-bounds.Dx(), height-cfg.HUD.Margin, cfg.HUD.TextColor)
}

// DrawKillFeed renders recent kill notices in the top-right corner, newest last.
func DrawKillFeed(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := session(e)
	if !ok {
		return
	}
	feed := components.KillFeed.Get(entry)
	face := fonts.HUD.Get()
	width := screen.Bounds().Dx()

	for i, n := range feed.Notices {
		line := fmt.Sprintf("%s eliminated %s", n.Killer, n.Killed)
		bounds := text.BoundString(face, line)
		c := cfg.HUD.TextColor
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * n.Alpha)}
		text.Draw(screen, line, face, width-cfg.HUD.Margin-bounds.Dx(), cfg.HUD.Margin+(i+1)*cfg.HUD.LineHeight, clr)
	}
}
