package components

import (
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi"
)

// ArenaData is the externally owned world state from the latest accepted
// snapshot. Every field is replaced wholesale, never merged.
type ArenaData struct {
	Players     map[messages.PlayerID]messages.PlayerState
	Structures  []messages.StructureState
	Projectiles []messages.ProjectileState

	// Seq is the sequence number of the applied snapshot, zero if unnumbered.
	Seq uint64
	// Applied counts snapshots applied in this session.
	Applied int
}

var Arena = donburi.NewComponentType[ArenaData]()

// Replace swaps in the contents of snap.
func (a *ArenaData) Replace(snap messages.Snapshot) {
	a.Players = snap.Players
	if a.Players == nil {
		a.Players = map[messages.PlayerID]messages.PlayerState{}
	}
	a.Structures = snap.Structures
	a.Projectiles = snap.Projectiles
	a.Seq = snap.Seq
	a.Applied++
}
