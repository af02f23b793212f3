package components

import (
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi"
)

// VitalsData mirrors the local player's combat status from the latest
// snapshot that contained it. It is never computed locally.
type VitalsData struct {
	HP     float64
	Shield float64
	Kills  int
	State  string
}

var Vitals = donburi.NewComponentType[VitalsData]()

// NewVitals returns the values shown before the first snapshot arrives.
func NewVitals() VitalsData {
	return VitalsData{
		HP:     100,
		Shield: 100,
		State:  messages.StateAlive,
	}
}

// CopyFrom takes every vital from a snapshot player entry.
func (v *VitalsData) CopyFrom(p messages.PlayerState) {
	v.HP = p.HP
	v.Shield = p.Shield
	v.Kills = p.Kills
	v.State = p.State
}

func (v *VitalsData) Dead() bool {
	return v.State == messages.StateDead
}
