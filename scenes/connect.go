package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/network"
	"github.com/automoto/buildfight/systems"
	"github.com/automoto/buildfight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// ConnectScene asks for a server address and waits for the connection.
type ConnectScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	connectUI    *ui.ConnectUI
	once         sync.Once

	status      string
	autoConnect string
	address     string
	connecting  bool
}

// NewConnectScene shows status on entry. A non-empty autoConnect address is
// dialled immediately.
func NewConnectScene(sc SceneChanger, client *network.Client, status, autoConnect string) *ConnectScene {
	return &ConnectScene{
		sceneChanger: sc,
		netClient:    client,
		status:       status,
		autoConnect:  autoConnect,
	}
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)
	if s.connectUI == nil {
		return
	}

	s.connectUI.Update()

	if !s.connecting {
		return
	}
	switch s.netClient.State() {
	case network.StateConnected:
		systems.RememberServer(s.address)
		s.sceneChanger.ChangeScene(NewArenaScene(s.sceneChanger, s.netClient))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.fail(errMsg)

	case network.StateDisconnected:
		s.fail("Disconnected")
	}
}

func (s *ConnectScene) fail(msg string) {
	s.netClient.Disconnect()
	s.connecting = false
	s.connectUI.SetConnecting(false)
	s.connectUI.SetStatus(msg)
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.connectUI == nil {
		return
	}
	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	connectUI, err := ui.NewConnectUI(cfg.Network.DefaultAddress, s.onConnect, s.sceneChanger.Quit)
	if err != nil {
		log.Error().Err(err).Msg("could not build connect screen")
		s.sceneChanger.Quit()
		return
	}
	s.connectUI = connectUI
	s.connectUI.SetStatus(s.status)

	if s.autoConnect != "" {
		s.onConnect(s.autoConnect)
	}
}

func (s *ConnectScene) onConnect(address string) {
	url, err := network.ResolveURL(address)
	if err != nil {
		s.connectUI.SetStatus(err.Error())
		return
	}

	log.Info().Str("address", address).Str("url", url).Msg("connecting")
	s.address = address
	s.connecting = true
	s.connectUI.SetStatus("Connecting to " + url + "...")
	s.connectUI.SetConnecting(true)
	s.netClient.Connect(url)
}
