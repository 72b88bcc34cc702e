package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dodge/sim"
)

// BlockRow is one line of the block browser.
type BlockRow struct {
	ID        sim.EntityId
	X, Y      float64
	Direction string
}

// Block browser columns.
const (
	ColumnID = iota
	ColumnX
	ColumnY
	ColumnDirection
)

// BlockBrowser is a sortable, filterable, paged table of every block.
type BlockBrowser struct {
	rows             []BlockRow
	filterText       string
	sortColumn       int
	sortAscending    bool
	maxRowsPerPage   int
	currentPage      int
	selectedEntityId sim.EntityId
}

func NewBlockBrowser(maxRowsPerPage int) *BlockBrowser {
	return &BlockBrowser{
		sortColumn:     ColumnID,
		sortAscending:  true,
		maxRowsPerPage: maxRowsPerPage,
	}
}

func (bb *BlockBrowser) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 400), imgui.CondOnce)
	if !imgui.BeginV("Blocks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by id or direction...", &bb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		bb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BlockTable", 4, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Direction")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		rows := bb.Rows(world)
		start, end := bb.page(len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := bb.selectedEntityId == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bb.selectedEntityId = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Y))
			imgui.TableNextColumn()
			imgui.Text(row.Direction)
		}

		imgui.EndTable()
	}

	total := len(bb.rows)
	if total > bb.maxRowsPerPage {
		totalPages := (total + bb.maxRowsPerPage - 1) / bb.maxRowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d blocks)", bb.currentPage+1, totalPages, total))
		imgui.SameLine()
		if imgui.Button("Prev") && bb.currentPage > 0 {
			bb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && bb.currentPage < totalPages-1 {
			bb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d blocks", total))
	}

	if b := world.Block(bb.selectedEntityId); b != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Selected %d: (%.1f, %.1f) %s at %.0f u/s",
			bb.selectedEntityId, b.Position.X, b.Position.Y, b.Direction, b.Velocity))
	}

	imgui.End()
}

// SortBy sets the sort column and order.
func (bb *BlockBrowser) SortBy(column int, ascending bool) {
	bb.sortColumn = column
	bb.sortAscending = ascending
}

// SetFilter sets the filter text matched against id and direction.
func (bb *BlockBrowser) SetFilter(text string) {
	bb.filterText = text
}

// Rows rebuilds the filtered, sorted rows from the world's blocks.
func (bb *BlockBrowser) Rows(world *sim.World) []BlockRow {
	bb.rows = bb.rows[:0]
	filterLower := strings.ToLower(bb.filterText)

	for id, b := range world.Blocks() {
		row := BlockRow{
			ID:        id,
			X:         b.Position.X,
			Y:         b.Position.Y,
			Direction: b.Direction.String(),
		}

		if filterLower != "" &&
			!strings.Contains(fmt.Sprintf("%d", row.ID), filterLower) &&
			!strings.Contains(row.Direction, filterLower) {
			continue
		}
		bb.rows = append(bb.rows, row)
	}

	bb.sortRows()
	return bb.rows
}

func (bb *BlockBrowser) sortRows() {
	sort.SliceStable(bb.rows, func(i, j int) bool {
		a, b := bb.rows[i], bb.rows[j]
		var less bool

		switch bb.sortColumn {
		case ColumnX:
			less = a.X < b.X
		case ColumnY:
			less = a.Y < b.Y
		case ColumnDirection:
			less = a.Direction < b.Direction
		default:
			less = a.ID < b.ID
		}

		if !bb.sortAscending {
			return !less
		}
		return less
	})
}

func (bb *BlockBrowser) page(total int) (int, int) {
	totalPages := max(1, (total+bb.maxRowsPerPage-1)/bb.maxRowsPerPage)
	bb.currentPage = min(bb.currentPage, totalPages-1)

	start := bb.currentPage * bb.maxRowsPerPage
	end := min(start+bb.maxRowsPerPage, total)
	return start, end
}

// Selected returns the selected block, 0 when none is.
func (bb *BlockBrowser) Selected() sim.EntityId {
	return bb.selectedEntityId
}
