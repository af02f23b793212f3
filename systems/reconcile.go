package systems

import (
	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// ApplySnapshot replaces the arena with snap and mirrors the local player's
// vitals out of it. A numbered snapshot older than the one already applied is
// ignored. The camera is never touched.
func ApplySnapshot(e *ecs.ECS, snap messages.Snapshot) bool {
	entry, ok := session(e)
	if !ok {
		return false
	}
	arena := components.Arena.Get(entry)
	if snap.Seq > 0 && snap.Seq <= arena.Seq {
		return false
	}
	arena.Replace(snap)

	match := components.Match.Get(entry)
	if match.LocalID == "" {
		return true
	}
	if p, ok := arena.Players[match.LocalID]; ok {
		components.Vitals.Get(entry).CopyFrom(p)
	}
	return true
}

// ApplyEvent applies one non-snapshot server message in arrival order.
func ApplyEvent(e *ecs.ECS, msg messages.Message) {
	entry, ok := session(e)
	if !ok {
		return
	}
	match := components.Match.Get(entry)

	switch m := msg.(type) {
	case messages.Identity:
		match.LocalID = m.PlayerID
		log.Info().Str("pid", string(m.PlayerID)).Msg("assigned identity")
	case messages.Join:
		log.Info().Str("pid", string(m.PlayerID)).Msg("player joined")
	case messages.Kill:
		log.Info().Str("killer", string(m.Killer)).Str("killed", string(m.Killed)).Msg("kill")
		components.KillFeed.Get(entry).Add(m, cfg.HUD.KillFeedSeconds, cfg.HUD.KillFeedMax)
	case messages.End:
		result := match.Finish(m.Winner)
		log.Info().Str("winner", string(m.Winner)).Stringer("result", result).Msg("match over")
	case messages.Full:
		match.Full = true
		log.Warn().Msg("server is full")
	default:
		log.Debug().Str("type", string(msg.Type())).Msg("ignoring message")
	}
}

// UpdateKillFeed fades kill notices by one tick.
func UpdateKillFeed(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	components.KillFeed.Get(entry).Advance(1 / float32(cfg.C.TPS))
}
