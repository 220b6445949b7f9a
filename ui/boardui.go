// Package ui specifies custom controls for tview to render the tetris
// playing field and surrounding screens in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/tetris"
)

// TetrisBoardUI draws the playing field from engine snapshots. It never
// talks to the engine directly; main feeds it a fresh Snapshot after
// every transition.
type TetrisBoardUI struct {
	Box       *tview.Box
	cfg       *config.Config
	snap      tetris.Snapshot
	styles    map[tetris.Kind]tcell.Color
	ghost     tcell.Color
	grid      tcell.Color
	infoPanel *GameInfoPanel
}

// NewTetrisBoard creates the board widget.
func NewTetrisBoard(c *config.Config) *TetrisBoardUI {
	board := &TetrisBoardUI{
		Box: tview.NewBox(),
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		snap := board.snap
		if snap.Width == 0 {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := snap.Width*2, snap.Height
		left := x + (width-boardW)/2
		top := y + (height-boardH)/2
		if left < x {
			left = x
		}
		if top < y {
			top = y
		}

		for boardY := 0; boardY < snap.Height; boardY++ {
			for boardX := 0; boardX < snap.Width; boardX++ {
				kind := snap.Grid[boardY][boardX]
				drawRune := board.cfg.Theme.Symbols.Empty
				style := tcell.StyleDefault.Foreground(board.grid)
				if kind != tetris.KindNone {
					drawRune = board.cfg.Theme.Symbols.Block
					style = tcell.StyleDefault.Foreground(board.styles[kind])
				}
				screen.SetContent(left+boardX*2, top+boardY, drawRune, nil, style)
				screen.SetContent(left+boardX*2+1, top+boardY, drawRune, nil, style)
			}
		}

		if board.cfg.Theme.DrawGhost && snap.Active != nil {
			board.drawBlocks(screen, left, top, snap.Ghost, board.cfg.Theme.Symbols.Ghost, board.ghost)
		}
		if snap.Active != nil {
			board.drawBlocks(screen, left, top, snap.Active.Blocks, board.cfg.Theme.Symbols.Block, board.styles[snap.Active.Kind])
		}
		return x, y, width, height
	})
	return board
}

// SetSnapshot updates the displayed state and refreshes the side panel.
func (b *TetrisBoardUI) SetSnapshot(snap tetris.Snapshot) {
	b.snap = snap
	if b.infoPanel != nil {
		b.infoPanel.SetSnapshot(snap)
	}
}

// SetLastGain forwards the latest clear's points to the side panel.
func (b *TetrisBoardUI) SetLastGain(result tetris.ClearResult, gained int) {
	if b.infoPanel != nil {
		b.infoPanel.SetLastGain(result, gained)
	}
}

// SetConfig rebuilds the color table from the theme palette.
func (b *TetrisBoardUI) SetConfig(c *config.Config) {
	pieces := c.Theme.Colors.Pieces
	b.styles = map[tetris.Kind]tcell.Color{
		tetris.KindI: tcell.PaletteColor(pieces.I),
		tetris.KindO: tcell.PaletteColor(pieces.O),
		tetris.KindT: tcell.PaletteColor(pieces.T),
		tetris.KindS: tcell.PaletteColor(pieces.S),
		tetris.KindZ: tcell.PaletteColor(pieces.Z),
		tetris.KindJ: tcell.PaletteColor(pieces.J),
		tetris.KindL: tcell.PaletteColor(pieces.L),
	}
	b.ghost = tcell.PaletteColor(c.Theme.Colors.GhostColor)
	b.grid = tcell.PaletteColor(c.Theme.Colors.GridColor)
	b.cfg = c
}

func (b *TetrisBoardUI) drawBlocks(screen tcell.Screen, left, top int, blocks []tetris.Offset, r rune, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for _, p := range blocks {
		if p.X < 0 || p.Y < 0 || p.X >= b.snap.Width || p.Y >= b.snap.Height {
			continue
		}
		screen.SetContent(left+p.X*2, top+p.Y, r, nil, style)
		screen.SetContent(left+p.X*2+1, top+p.Y, r, nil, style)
	}
}
