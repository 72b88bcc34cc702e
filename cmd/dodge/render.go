package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/dodge/game"
	"github.com/plus3/dodge/geom"
)

var background = color.RGBA{A: 255}

// screenRect converts a world box (origin at the centre, y up) to the
// top-left corner and size of a screen rectangle (origin top-left, y down).
func screenRect(bounds geom.Vec2, d game.Drawable) (x, y, w, h float32) {
	x = float32(d.Position.X + bounds.X/2 - d.Size.X/2)
	y = float32(bounds.Y/2 - d.Position.Y - d.Size.Y/2)
	return x, y, float32(d.Size.X), float32(d.Size.Y)
}

func drawSnapshot(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(background)

	for _, b := range snap.Blocks {
		x, y, w, h := screenRect(snap.Bounds, b)
		vector.DrawFilledRect(screen, x, y, w, h, b.Color, false)
	}

	if snap.Player != nil {
		x, y, w, h := screenRect(snap.Bounds, *snap.Player)
		vector.DrawFilledRect(screen, x, y, w, h, snap.Player.Color, false)
	}
}
