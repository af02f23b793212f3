package systems

import (
	"image/color"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const resultHint = "Press Enter to continue"

// ResultTitle returns the headline and its color for a finished match.
func ResultTitle(result components.MatchResult) (string, color.RGBA) {
	if result == components.ResultWin {
		return "YOU WIN", cfg.Result.WinColor
	}
	return "YOU LOSE", cfg.Result.LoseColor
}

// ConfirmPressed reports whether any key bound to the confirm action was just pressed.
func ConfirmPressed() bool {
	for _, key := range cfg.Input.Bindings[cfg.ActionConfirm].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// DrawResult renders the end-of-match screen from the world's Match component.
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Result.BackgroundColor, false)

	title, clr := ResultTitle(match.Result)
	titleFont := fonts.Title.Get()
	titleX := (width - text.BoundString(titleFont, title).Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, cfg.Result.TitleY, clr)

	hintFont := fonts.HUD.Get()
	hintX := (width - text.BoundString(hintFont, resultHint).Dx()) / 2
	text.Draw(screen, resultHint, hintFont, hintX, cfg.Result.HintY, cfg.Result.HintColor)
}
