package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadoutCyclesBothDirections(t *testing.T) {
	l := LoadoutData{}
	assert.Equal(t, "wall", l.PieceName())

	l.Cycle(-1)
	assert.Equal(t, 3, l.Piece)
	assert.Equal(t, "cone", l.PieceName())

	l.Cycle(1)
	assert.Equal(t, 0, l.Piece)

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		l.Cycle(1)
		seen[l.PieceName()] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, l.Piece)

	l.Cycle(-9)
	assert.Equal(t, 3, l.Piece)
}
