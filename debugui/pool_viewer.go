package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dodge/spawn"
)

// PoolViewer lists the spawn slots of each orientation.
type PoolViewer struct{}

func (pv *PoolViewer) Render(pool *spawn.Pool) {
	imgui.SetNextWindowPosV(imgui.NewVec2(710, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 400), imgui.CondOnce)
	if !imgui.BeginV("Spawn Pool", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	capacity := pool.Capacity()
	available := pool.Available()
	imgui.Text(fmt.Sprintf("Tracking spawned: %v", pool.TrackSpawned))
	if capacity > 0 {
		imgui.ProgressBarV(float32(available)/float32(capacity), imgui.NewVec2(-1, 0),
			fmt.Sprintf("%d/%d free", available, capacity))
	}

	for _, o := range []spawn.Orientation{spawn.Vertical, spawn.Horizontal} {
		slots := pool.Slots(o)
		if !imgui.TreeNodeStr(fmt.Sprintf("%s (%d)", o, len(slots))) {
			continue
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV(fmt.Sprintf("PoolTable%d", o), 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Location")
			imgui.TableSetupColumn("Direction")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, slot := range slots {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("(%.0f, %.0f)", slot.Location.X, slot.Location.Y))
				imgui.TableNextColumn()
				imgui.Text(slot.Direction.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%v", slot.Spawned))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
