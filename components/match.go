package components

import (
	"github.com/automoto/buildfight/shared/messages"
	"github.com/yohamta/donburi"
)

// MatchResult is the local outcome of a finished match
type MatchResult int

const (
	ResultNone MatchResult = iota
	ResultWin
	ResultLose
)

func (r MatchResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	}
	return "none"
}

// MatchData stores session-level facts received from the server.
type MatchData struct {
	LocalID messages.PlayerID // empty until the id message arrives
	Result  MatchResult
	Winner  messages.PlayerID
	Full    bool // server refused the session
}

var Match = donburi.NewComponentType[MatchData]()

// Finish records the end of the match from the winner's id.
func (m *MatchData) Finish(winner messages.PlayerID) MatchResult {
	m.Winner = winner
	if m.LocalID != "" && winner == m.LocalID {
		m.Result = ResultWin
	} else {
		m.Result = ResultLose
	}
	return m.Result
}

// Over reports whether the match has ended.
func (m *MatchData) Over() bool {
	return m.Result != ResultNone
}
