package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termtris/tetris"
)

// kindTags maps each kind to a tview color tag for panel text.
var kindTags = map[tetris.Kind]string{
	tetris.KindI: "aqua",
	tetris.KindO: "yellow",
	tetris.KindT: "fuchsia",
	tetris.KindS: "green",
	tetris.KindZ: "red",
	tetris.KindJ: "blue",
	tetris.KindL: "orange",
}

// GameInfoPanel displays score, level and the next-piece preview
// alongside the board.
type GameInfoPanel struct {
	box      *tview.TextView
	snap     tetris.Snapshot
	last     tetris.ClearResult
	lastGain int
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSnapshot updates the panel with the current game state.
func (p *GameInfoPanel) SetSnapshot(snap tetris.Snapshot) {
	p.snap = snap
	p.refresh()
}

// SetLastGain records the most recent clear for display.
func (p *GameInfoPanel) SetLastGain(result tetris.ClearResult, gained int) {
	p.last = result
	p.lastGain = gained
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Score:[-:-:-] %d\n", p.snap.Score)
	text += fmt.Sprintf("[white]Level:[-:-:-] %d\n", p.snap.Level)
	text += fmt.Sprintf("[white]Lines:[-:-:-] %d\n", p.snap.Lines)
	if p.snap.Combo > 1 {
		text += fmt.Sprintf("[yellow]Combo:[-:-:-] x%d\n", p.snap.Combo)
	}
	if p.lastGain > 0 && p.last.Lines > 0 {
		label := lineClearName(p.last)
		text += fmt.Sprintf("[green]%s[-:-:-] +%d\n", label, p.lastGain)
	}

	if p.snap.Next != tetris.KindNone {
		text += "\n[white::b]Next[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		text += previewLines(p.snap.Next)
	}

	text += "\n[white::b]Keys[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += "[dimgray]←/h →/l[-]  move\n"
	text += "[dimgray]↓/j[-]      soft drop\n"
	text += "[dimgray]↑/k/x[-]    rotate\n"
	text += "[dimgray]z[-]        rotate ccw\n"
	text += "[dimgray]space[-]    hard drop\n"
	text += "[dimgray]q[-]        quit\n"

	if p.snap.Over {
		text += "\n[red::b]GAME OVER[-:-:-]\n"
	}

	p.box.SetText(text)
}

// previewLines renders a kind's rotation-0 shape as two text rows.
func previewLines(kind tetris.Kind) string {
	offs := tetris.Offsets(kind, 0)
	minX, minY := offs[0].X, offs[0].Y
	for _, o := range offs {
		if o.X < minX {
			minX = o.X
		}
		if o.Y < minY {
			minY = o.Y
		}
	}
	var cells [2][4]bool
	for _, o := range offs {
		cells[o.Y-minY][o.X-minX] = true
	}
	tag := kindTags[kind]
	var text string
	for row := 0; row < 2; row++ {
		line := " "
		for col := 0; col < 4; col++ {
			if cells[row][col] {
				line += fmt.Sprintf("[%s]██[-]", tag)
			} else {
				line += "  "
			}
		}
		text += line + "\n"
	}
	return text
}

// lineClearName returns the display name for a clear.
func lineClearName(r tetris.ClearResult) string {
	switch r.Lines {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	case 4:
		return "Tetris!"
	}
	return ""
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *TetrisBoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered container for menu screens.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
