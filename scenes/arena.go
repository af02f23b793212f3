package scenes

import (
	"sync"
	"time"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/network"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/automoto/buildfight/systems"
	"github.com/automoto/buildfight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the match: server messages are applied first, then the
// control systems run once per tick.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	session      *donburi.Entry
	events       []messages.Message
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, client *network.Client) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		netClient:    client,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	// Events first so an end that precedes a server close is not lost.
	as.events = as.netClient.DrainEvents(as.events[:0])
	for _, msg := range as.events {
		systems.ApplyEvent(as.ecs, msg)
	}
	if snap := as.netClient.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(as.ecs, *snap)
	}

	match := components.Match.Get(as.session)
	switch {
	case match.Over():
		as.netClient.Disconnect()
		as.sceneChanger.ChangeScene(NewResultScene(as.sceneChanger, as.netClient, *match))
		return
	case match.Full:
		as.leave("Server is full")
		return
	}

	switch as.netClient.State() {
	case network.StateError:
		msg := "Connection lost"
		if err := as.netClient.LastError(); err != nil {
			msg = err.Error()
		}
		as.leave(msg)
		return
	case network.StateDisconnected:
		as.leave("Disconnected")
		return
	}

	as.ecs.Update()
}

func (as *ArenaScene) leave(status string) {
	log.Info().Str("reason", status).Msg("leaving arena")
	as.netClient.Disconnect()
	as.sceneChanger.ChangeScene(NewConnectScene(as.sceneChanger, as.netClient, status, ""))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())
	as.session = factory.CreateSession(as.ecs)

	poller := systems.NewInputPoller()
	as.ecs.AddSystem(poller.Update)
	as.ecs.AddSystem(systems.UpdateOrientation)
	as.ecs.AddSystem(systems.NewMovementSystem(as.netClient, time.Now))
	as.ecs.AddSystem(systems.NewBuildSystem(as.netClient))
	as.ecs.AddSystem(systems.NewFireSystem(as.netClient))
	as.ecs.AddSystem(systems.UpdateKillFeed)
	as.ecs.AddSystem(systems.EndInputFrame)

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawKillFeed)
	as.ecs.AddRenderer(cfg.Overlay, systems.NewDebugRenderer(as.netClient.Stats))

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}
