package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/fonts"
	"github.com/automoto/buildfight/network"
	"github.com/automoto/buildfight/scenes"
	"github.com/automoto/buildfight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Server     string `help:"Connect to this server address on start instead of showing the connect screen." short:"s"`
	Config     string `help:"YAML file overriding control, build, camera and network tuning." type:"existingfile"`
	Watch      bool   `help:"Reload the --config file whenever it changes."`
	Debug      bool   `help:"Whether to enable debug logging."`
	Overlay    bool   `help:"Draw tick and network counters."`
	Fullscreen bool   `help:"Start in fullscreen mode."`
	NoSettings bool   `help:"Do not load or save user settings." name:"no-settings"`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene   Scene
	client  *network.Client
	watcher *config.Watcher
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current tick.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(server string, watcher *config.Watcher) *Game {
	g := &Game{
		client:  network.NewClient(),
		watcher: watcher,
	}
	g.scene = scenes.NewConnectScene(g, g.client, "", server)
	return g
}

func (g *Game) Update() error {
	g.reloadConfig()
	g.scene.Update()
	if g.quit {
		g.client.Disconnect()
		return ebiten.Termination
	}
	return nil
}

// reloadConfig applies a changed tuning file between ticks.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn().Err(err).Msg("config watcher error")
	default:
	}
	path, ok := g.watcher.Changed()
	if !ok {
		return
	}
	if err := config.LoadFile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("keeping previous config")
		return
	}
	log.Info().Str("path", path).Msg("config reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("buildfight"),
		kong.Description("client for the build-fight arena shooter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
	config.Debug.Overlay = CLI.Overlay

	if !CLI.NoSettings {
		if err := systems.InitPersistence("buildfight"); err != nil {
			log.Warn().Err(err).Msg("settings will not be saved")
		}
		saved, err := systems.LoadSettings()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring saved settings")
		}
		systems.ApplySavedSettings(saved)
	}
	if CLI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	var watcher *config.Watcher
	if CLI.Config != "" {
		if err := config.LoadFile(CLI.Config); err != nil {
			writeError(err)
		}
		if CLI.Watch {
			w, err := config.NewWatcher(CLI.Config)
			if err != nil {
				writeError(fmt.Errorf("watch %s: %w", CLI.Config, err))
			}
			defer w.Close()
			watcher = w
		}
	} else if CLI.Watch {
		writeError(errors.New("--watch requires --config"))
	}

	if err := fonts.LoadDefaults(); err != nil {
		writeError(err)
	}

	ebiten.SetWindowTitle("buildfight")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(CLI.Server, watcher)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
