package components

import (
	"github.com/automoto/buildfight/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// KillNotice is one line of the kill feed. Alpha fades from 1 to 0.
type KillNotice struct {
	Killer messages.PlayerID
	Killed messages.PlayerID
	Alpha  float32
	fade   *gween.Tween
	done   bool
}

// KillFeedData holds the most recent kill notices, newest last.
type KillFeedData struct {
	Notices []KillNotice
}

var KillFeed = donburi.NewComponentType[KillFeedData]()

// Add appends a notice that fades out over seconds, dropping the oldest
// notices beyond limit.
func (k *KillFeedData) Add(kill messages.Kill, seconds float32, limit int) {
	k.Notices = append(k.Notices, KillNotice{
		Killer: kill.Killer,
		Killed: kill.Killed,
		Alpha:  1,
		fade:   gween.New(1, 0, seconds, ease.InQuad),
	})
	if limit > 0 && len(k.Notices) > limit {
		k.Notices = k.Notices[len(k.Notices)-limit:]
	}
}

// Advance steps every fade by dt seconds and removes finished notices.
func (k *KillFeedData) Advance(dt float32) {
	kept := k.Notices[:0]
	for _, n := range k.Notices {
		if n.fade != nil {
			n.Alpha, n.done = n.fade.Update(dt)
		}
		if n.done {
			continue
		}
		kept = append(kept, n)
	}
	k.Notices = kept
}
