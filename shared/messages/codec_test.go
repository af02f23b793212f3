package messages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFlattensTypeTag(t *testing.T) {
	data, err := Encode(Build{X: 1, Y: 0, Z: 2.5, Piece: "stair"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "build", raw["t"])
	assert.Equal(t, "stair", raw["mat"])
	assert.Equal(t, 2.5, raw["z"])
	assert.Len(t, raw, 5)
}

func TestEncodeShootUsesWeaponKey(t *testing.T) {
	data, err := Encode(Shoot{DX: 0, DY: 0, DZ: 1, Weapon: "ar"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"shoot","dx":0,"dy":0,"dz":1,"w":"ar"}`, string(data))
}

func TestEncodeEmptyPayload(t *testing.T) {
	data, err := Encode(Full{})
	require.NoError(t, err)
	assert.Equal(t, `{"t":"full"}`, string(data))
}

func TestEncodeNil(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}

func TestDecodeServerSnapshot(t *testing.T) {
	frame := `{"t":"snap","p":{"1":{"x":1.5,"y":1,"z":-3,"hp":80,"shield":0,"kills":2,"state":"alive"},
		"2":{"x":0,"y":1,"z":0,"hp":100,"shield":100,"kills":0,"state":"dead"}},
		"str":[{"x":1,"y":0,"z":2,"type":"wood","hp":150}],
		"bullets":[{"x":0,"y":2.5,"z":0,"dx":0,"dy":0,"dz":1,"w":"ar","pid":1}]}`

	msg, err := Decode([]byte(frame))
	require.NoError(t, err)
	snap, ok := msg.(Snapshot)
	require.True(t, ok)

	require.Len(t, snap.Players, 2)
	p1 := snap.Players["1"]
	assert.Equal(t, 80.0, p1.HP)
	assert.Equal(t, 2, p1.Kills)
	assert.True(t, p1.Alive())
	assert.False(t, snap.Players["2"].Alive())
	assert.Zero(t, snap.Seq)

	require.Len(t, snap.Structures, 1)
	assert.Equal(t, "wood", snap.Structures[0].Type)
	require.Len(t, snap.Projectiles, 1)
	assert.Equal(t, PlayerID("1"), snap.Projectiles[0].Owner)
}

func TestDecodeNumericAndStringIdentity(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"id","pid":2}`))
	require.NoError(t, err)
	assert.Equal(t, Identity{PlayerID: "2"}, msg)

	msg, err = Decode([]byte(`{"t":"id","pid":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, Identity{PlayerID: "abc"}, msg)

	msg, err = Decode([]byte(`{"t":"end","winner":null}`))
	require.NoError(t, err)
	assert.Equal(t, End{}, msg)
}

func TestDecodeEvents(t *testing.T) {
	msg, err := Decode([]byte(`{"t":"kill","killer":1,"killed":2}`))
	require.NoError(t, err)
	assert.Equal(t, Kill{Killer: "1", Killed: "2"}, msg)

	msg, err = Decode([]byte(`{"t":"join","pid":2}`))
	require.NoError(t, err)
	assert.Equal(t, Join{PlayerID: "2"}, msg)

	msg, err = Decode([]byte(`{"t":"full"}`))
	require.NoError(t, err)
	assert.Equal(t, Full{}, msg)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = Decode([]byte(`{"x":1}`))
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = Decode([]byte(`{"t":"teleport"}`))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Decode([]byte(`{"t":"snap","p":[1,2]}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncodeDecodeOutbound(t *testing.T) {
	in := Move{X: 1, Y: 2, Z: 3, Yaw: -0.5, Pitch: 0.25}
	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
