package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dodge/sim"
)

// PlayerInspector shows the player and lets its tunables be edited live.
type PlayerInspector struct{}

func (pi *PlayerInspector) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 180), imgui.CondOnce)
	if !imgui.BeginV("Player", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	player, ok := world.Player()
	if !ok {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "Player destroyed")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", world.PlayerId()))
	imgui.Text(fmt.Sprintf("Position: (%.1f, %.1f)", player.Position.X, player.Position.Y))
	imgui.Text(fmt.Sprintf("Size: %.0f x %.0f", player.Size.X, player.Size.Y))
	imgui.Separator()

	floatField("Velocity", &player.Velocity)
	floatField("Teleport", &player.TeleportDistance)

	imgui.End()
}

// floatField edits a non-negative float64 in place.
func floatField(name string, v *float64) {
	f := float32(*v)
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat(fmt.Sprintf("##%s", name), &f) && f >= 0 {
		*v = float64(f)
	}
}
