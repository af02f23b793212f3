package scenes

import (
	"sync"

	"github.com/automoto/buildfight/components"
	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/network"
	"github.com/automoto/buildfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene shows the win or lose screen after the server ends the match.
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	match        components.MatchData
	once         sync.Once
}

func NewResultScene(sc SceneChanger, client *network.Client, match components.MatchData) *ResultScene {
	return &ResultScene{
		sceneChanger: sc,
		netClient:    client,
		match:        match,
	}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)

	if systems.ConfirmPressed() {
		rs.sceneChanger.ChangeScene(NewConnectScene(rs.sceneChanger, rs.netClient, "", ""))
		return
	}
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	rs.ecs = ecs.NewECS(donburi.NewWorld())
	entry := rs.ecs.World.Entry(rs.ecs.World.Create(components.Match))
	components.Match.SetValue(entry, rs.match)

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResult)
}
