package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFinish(t *testing.T) {
	m := MatchData{LocalID: "1"}
	assert.False(t, m.Over())
	assert.Equal(t, ResultWin, m.Finish("1"))
	assert.True(t, m.Over())

	m = MatchData{LocalID: "1"}
	assert.Equal(t, ResultLose, m.Finish("2"))

	m = MatchData{}
	assert.Equal(t, ResultLose, m.Finish(""), "no identity never wins")
}
