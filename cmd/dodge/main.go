// Command dodge runs the block-dodging game in an Ebiten window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/dodge/config"
	"github.com/plus3/dodge/debugui"
	debugui_ebiten "github.com/plus3/dodge/debugui/ebiten"
	"github.com/plus3/dodge/game"
	"github.com/plus3/dodge/logging"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults to $DODGE_CONFIG, then built-in values.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	session, err := game.NewSession(cfg, game.WithLogger(log))
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	g := &Game{
		session: session,
		log:     log,
		width:   int(cfg.Screen.Width),
		height:  int(cfg.Screen.Height),
	}

	if *debug {
		g.backend = debugui_ebiten.NewImguiBackend(cfg.Screen.Title, g.width, g.height)
		g.overlay = debugui.Attach(session)
	} else {
		ebiten.SetWindowSize(g.width, g.height)
		ebiten.SetWindowTitle(cfg.Screen.Title)
	}

	log.Info("window opened",
		zap.Int("width", g.width),
		zap.Int("height", g.height),
		zap.Bool("debug", *debug),
	)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	world := session.World().CollectStats()
	log.Info("game closed",
		zap.Bool("player_alive", world.PlayerAlive),
		zap.Int("blocks", world.BlockCount),
		zap.Int64("frames", session.Stats().Frames),
	)
	return nil
}

// loadConfig reads path, or $DODGE_CONFIG when path is empty. With neither
// set the built-in defaults are used.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("DODGE_CONFIG")
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
