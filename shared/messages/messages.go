package messages

import (
	"bytes"
	"encoding/json"
)

// Type is the value of the "t" discriminator carried by every message.
type Type string

const (
	TypeMove  Type = "move"
	TypeShoot Type = "shoot"
	TypeBuild Type = "build"
	TypeEdit  Type = "edit"

	TypeIdentity Type = "id"
	TypeSnapshot Type = "snap"
	TypeKill     Type = "kill"
	TypeEnd      Type = "end"
	TypeJoin     Type = "join"
	TypeFull     Type = "full"
)

// Message is implemented by every wire message.
type Message interface {
	Type() Type
}

// PlayerID identifies a player within a session. The server sends ids both as
// JSON numbers ("pid": 1) and as object keys ("p": {"1": ...}); both forms
// decode to the same PlayerID.
type PlayerID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *PlayerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PlayerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = PlayerID(n.String())
	return nil
}

// Move reports the client's predicted camera state. Sent every tick.
type Move struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// Shoot requests a projectile along a unit direction.
type Shoot struct {
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	DZ     float64 `json:"dz"`
	Weapon string  `json:"w"`
}

// Build proposes a structure at a resolved anchor point.
type Build struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Piece string  `json:"mat"`
}

// Edit asks the server to remove the structure nearest to (X, Z).
type Edit struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Identity assigns the local player id. Sent once at session start.
type Identity struct {
	PlayerID PlayerID `json:"pid"`
}

// PlayerState is one entry of a snapshot's player map.
type PlayerState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Yaw    float64 `json:"yaw,omitempty"`
	Pitch  float64 `json:"pitch,omitempty"`
	HP     float64 `json:"hp"`
	Shield float64 `json:"shield"`
	Kills  int     `json:"kills"`
	State  string  `json:"state"`
}

// Alive reports whether the player is not dead.
func (p PlayerState) Alive() bool {
	return p.State != StateDead
}

const (
	StateAlive = "alive"
	StateDead  = "dead"
)

// StructureState is a placed structure as seen by the server.
type StructureState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Type string  `json:"type"`
	HP   float64 `json:"hp,omitempty"`
}

// ProjectileState is an in-flight bullet.
type ProjectileState struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Z      float64  `json:"z"`
	DX     float64  `json:"dx,omitempty"`
	DY     float64  `json:"dy,omitempty"`
	DZ     float64  `json:"dz,omitempty"`
	Weapon string   `json:"w,omitempty"`
	Owner  PlayerID `json:"pid,omitempty"`
}

// Snapshot is a full-state broadcast. Seq is optional; zero means the sender
// does not number its snapshots.
type Snapshot struct {
	Seq         uint64                   `json:"seq,omitempty"`
	Players     map[PlayerID]PlayerState `json:"p"`
	Structures  []StructureState         `json:"str"`
	Projectiles []ProjectileState        `json:"bullets"`
}

// Kill is an informational kill notice.
type Kill struct {
	Killer PlayerID `json:"killer"`
	Killed PlayerID `json:"killed"`
}

// End terminates the match.
type End struct {
	Winner PlayerID `json:"winner"`
}

// Join announces that a player entered the session.
type Join struct {
	PlayerID PlayerID `json:"pid"`
}

// Full is sent instead of Identity when the session has no free slot.
type Full struct{}

func (Move) Type() Type     { return TypeMove }
func (Shoot) Type() Type    { return TypeShoot }
func (Build) Type() Type    { return TypeBuild }
func (Edit) Type() Type     { return TypeEdit }
func (Identity) Type() Type { return TypeIdentity }
func (Snapshot) Type() Type { return TypeSnapshot }
func (Kill) Type() Type     { return TypeKill }
func (End) Type() Type      { return TypeEnd }
func (Join) Type() Type     { return TypeJoin }
func (Full) Type() Type     { return TypeFull }
