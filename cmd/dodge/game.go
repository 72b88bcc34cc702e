package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/dodge/debugui"
	debugui_ebiten "github.com/plus3/dodge/debugui/ebiten"
	"github.com/plus3/dodge/game"
	"github.com/plus3/dodge/input"
	"go.uber.org/zap"
)

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	log     *zap.Logger
	width   int
	height  int

	// Set only with -debug.
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay

	reported bool
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend == nil {
		return g.step()
	}
	return g.backend.Frame(g.step)
}

func (g *Game) step() error {
	if g.session.Over() {
		if !g.reported {
			g.reported = true
			g.log.Info("game over", zap.Int("blocks", g.session.World().BlockCount()))
		}
		if g.overlay != nil {
			g.overlay.Render()
		}
		return nil
	}

	in := readKeyboard()
	if g.overlay != nil && g.overlay.Input.WantCaptureKeyboard {
		in = input.State{}
	}

	if err := g.session.Step(1/float64(ebiten.TPS()), in); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawSnapshot(screen, snap)

	if !snap.Alive() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press Esc to quit", g.width/2-90, g.height/2)
	}

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(g.width, g.height)
	}
	return g.width, g.height
}

// readKeyboard maps WASD and the arrow keys to directions and Space to
// teleport.
func readKeyboard() input.State {
	return input.State{
		Up:       anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Teleport: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
