package systems

import (
	"errors"
	"time"

	"github.com/automoto/buildfight/network"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/automoto/buildfight/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/time/rate"
)

// Sender delivers intent messages to the server without blocking.
type Sender interface {
	Send(msg messages.Message) error
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(msg messages.Message) error

func (f SenderFunc) Send(msg messages.Message) error { return f(msg) }

// Clock returns the current time. The movement system measures tick length with it.
type Clock func() time.Time

var sendWarnings = rate.NewLimiter(rate.Every(time.Second), 1)

// send is best effort: failures are logged at most once per second and dropped.
func send(s Sender, msg messages.Message) {
	if s == nil {
		return
	}
	err := s.Send(msg)
	if err == nil || !sendWarnings.Allow() {
		return
	}
	ev := log.Warn()
	if errors.Is(err, network.ErrNotConnected) {
		ev = log.Debug()
	}
	ev.Err(err).Str("type", string(msg.Type())).Msg("dropped outbound message")
}

func session(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Session.First(e.World)
}
