package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termtris/profile"
)

// ScoreBoard displays the best recorded games.
type ScoreBoard struct {
	box   *tview.TextView
	store *profile.Store
}

// NewScoreBoard creates the high-score screen.
func NewScoreBoard(store *profile.Store) *ScoreBoard {
	sb := &ScoreBoard{
		box:   tview.NewTextView(),
		store: store,
	}
	sb.box.SetDynamicColors(true)
	sb.box.SetBorder(true)
	sb.box.SetTitle(" High Scores ")
	sb.box.SetTitleAlign(tview.AlignCenter)
	sb.box.SetBorderPadding(1, 1, 2, 2)
	return sb
}

// Box returns the underlying tview component.
func (sb *ScoreBoard) Box() *tview.TextView {
	return sb.box
}

// Refresh re-reads the top scores from the store.
func (sb *ScoreBoard) Refresh() {
	top := sb.store.TopScores(10)
	if len(top) == 0 {
		sb.box.SetText("[dimgray]No scores recorded yet.[-]\n\n[dimgray]Press q to go back[-]")
		return
	}

	var text string
	text += "[white::b] #  Player          Score   Lines  Lvl[-:-:-]\n"
	text += "[dimgray]─────────────────────────────────────────[-]\n"
	for rank, entry := range top {
		text += fmt.Sprintf("[white]%2d.[-] %-14s %7d  %5d  %3d\n",
			rank+1, entry.Profile, entry.Score, entry.Lines, entry.Level)
	}
	text += "\n[dimgray]Press q to go back[-]"
	sb.box.SetText(text)
}
