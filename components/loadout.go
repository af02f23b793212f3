package components

import (
	cfg "github.com/automoto/buildfight/config"
	"github.com/yohamta/donburi"
)

// LoadoutData holds the selected build piece, an index into cfg.BuildPieces.
type LoadoutData struct {
	Piece int
}

var Loadout = donburi.NewComponentType[LoadoutData]()

// Cycle moves the selection by steps, wrapping in both directions.
func (l *LoadoutData) Cycle(steps int) {
	n := len(cfg.BuildPieces)
	if n == 0 {
		return
	}
	l.Piece = ((l.Piece+steps)%n + n) % n
}

// PieceName returns the selected piece name as sent in build intents.
func (l *LoadoutData) PieceName() string {
	if l.Piece < 0 || l.Piece >= len(cfg.BuildPieces) {
		return ""
	}
	return cfg.BuildPieces[l.Piece]
}
