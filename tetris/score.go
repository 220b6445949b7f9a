package tetris

import "time"

// Base points per number of lines cleared in one lock, before the
// level multiplier.
var lineScores = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

const (
	comboBonus     = 50  // per combo count per level, from the second consecutive clear
	backToBackBase = 400 // extra for a Tetris following a Tetris, per level
	softDropBonus  = 1   // per cell
	hardDropBonus  = 2   // per cell
	linesPerLevel  = 10
)

// ScoreState is the scoring side of a session. It is owned by the
// Game controller and only ever advanced through the pure functions
// below.
type ScoreState struct {
	Score      int
	Level      int
	Lines      int
	Combo      int  // consecutive clearing locks; 0 after a non-clearing lock
	BackToBack bool // last clear was a Tetris
}

// NewScoreState returns the starting state: level 1, everything else
// zero.
func NewScoreState() ScoreState {
	return ScoreState{Level: 1}
}

// ApplyClear folds a lock's ClearResult into the state and returns the
// new state together with the points gained. A lock that clears no
// rows resets the combo and scores nothing.
func ApplyClear(s ScoreState, r ClearResult) (ScoreState, int) {
	if r.Lines <= 0 {
		s.Combo = 0
		s.BackToBack = false
		return s, 0
	}

	gained := lineScores[r.Lines] * s.Level
	s.Combo++
	if s.Combo > 1 {
		gained += comboBonus * s.Combo * s.Level
	}
	if r.Tetris && s.BackToBack {
		gained += backToBackBase * s.Level
	}
	s.BackToBack = r.Tetris

	s.Score += gained
	s.Lines += r.Lines
	s.Level = 1 + s.Lines/linesPerLevel
	return s, gained
}

// ApplySoftDrop awards the per-cell soft drop bonus.
func ApplySoftDrop(s ScoreState, cells int) ScoreState {
	if cells > 0 {
		s.Score += cells * softDropBonus
	}
	return s
}

// ApplyHardDrop awards the per-cell hard drop bonus.
func ApplyHardDrop(s ScoreState, cells int) ScoreState {
	if cells > 0 {
		s.Score += cells * hardDropBonus
	}
	return s
}

// GravityInterval returns the time between gravity ticks for a level.
// Starts at 800ms and speeds up by 60ms per level, bottoming out at
// 100ms around level 12.
func GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := 800*time.Millisecond - time.Duration(level-1)*60*time.Millisecond
	if interval < 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}
	return interval
}
