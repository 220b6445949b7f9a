package tetris

import (
	"math/rand"
	"time"
)

// GameConfig holds the parameters for a new session.
type GameConfig struct {
	Width   int
	Height  int
	Profile string // profile identifier carried into Result
	Seed    int64  // bag RNG seed; 0 seeds from the clock
	Pieces  []Kind // fixed spawn sequence replacing the bag (tests)
}

// DefaultGameConfig returns the standard 10x20 field.
func DefaultGameConfig() GameConfig {
	return GameConfig{Width: 10, Height: 20}
}

// ActivePiece is the piece currently under player control. It lives
// outside the board grid until it locks.
type ActivePiece struct {
	Kind     Kind
	Rotation int
	X        int
	Y        int
}

// Blocks returns the piece's absolute cell positions.
func (p ActivePiece) Blocks() []Offset {
	return Blocks(p.Kind, p.Rotation, p.X, p.Y)
}

// Game orchestrates a single session: the board, the active piece,
// the piece queue and the score. All methods are synchronous; a
// session must be driven from a single goroutine.
type Game struct {
	board  *Board
	score  ScoreState
	active *ActivePiece
	over   bool

	rng      *rand.Rand
	bag      []Kind
	queue    []Kind
	sequence bool // queue is a fixed sequence, never refilled

	lastClear ClearResult
	lastGain  int

	profile   string
	startedAt time.Time
	endedAt   time.Time
}

// NewGame creates a session and spawns the first piece. The session is
// already over on return if the very first spawn is blocked, which can
// only happen on degenerate board sizes.
func NewGame(cfg GameConfig) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultGameConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		board:     NewBoard(cfg.Width, cfg.Height),
		score:     NewScoreState(),
		rng:       rand.New(rand.NewSource(seed)),
		profile:   cfg.Profile,
		startedAt: time.Now(),
	}
	if cfg.Pieces != nil {
		g.sequence = true
		g.queue = append([]Kind(nil), cfg.Pieces...)
	}
	g.spawn()
	return g
}

// Board returns the board. Exposed for tests that prepare grid states;
// the UI reads cells through Snapshot instead.
func (g *Game) Board() *Board { return g.board }

// Over reports whether the session has ended.
func (g *Game) Over() bool { return g.over }

// Next returns the upcoming kind, or KindNone when the session is over
// or a fixed sequence is exhausted.
func (g *Game) Next() Kind {
	if g.over || len(g.queue) == 0 {
		return KindNone
	}
	return g.queue[0]
}

// MoveLeft shifts the active piece one column left. Returns false when
// the move is illegal or the session is over; illegal moves are no-ops.
func (g *Game) MoveLeft() bool { return g.move(-1, 0) }

// MoveRight shifts the active piece one column right.
func (g *Game) MoveRight() bool { return g.move(1, 0) }

// SoftDrop moves the active piece down one row and awards the soft
// drop bonus. It never forces a lock; a failed soft drop is a no-op.
func (g *Game) SoftDrop() bool {
	if !g.move(0, 1) {
		return false
	}
	g.score = ApplySoftDrop(g.score, 1)
	return true
}

// Rotate advances the active piece to its next clockwise rotation if
// the rotated placement is legal. No kick search: an obstructed
// rotation is a no-op.
func (g *Game) Rotate() bool { return g.rotate(1) }

// RotateCCW rotates the active piece counterclockwise.
func (g *Game) RotateCCW() bool { return g.rotate(-1) }

// HardDrop drops the active piece to its lowest legal position, awards
// the hard drop bonus for the distance fallen, and locks immediately.
func (g *Game) HardDrop() {
	if g.over || g.active == nil {
		return
	}
	distance := 0
	for g.move(0, 1) {
		distance++
	}
	g.score = ApplyHardDrop(g.score, distance)
	g.lock()
}

// Tick applies one step of gravity. When the piece can no longer fall
// it locks where it is. The caller drives Tick from its own timer at
// GravityInterval(level).
func (g *Game) Tick() {
	if g.over || g.active == nil {
		return
	}
	if !g.move(0, 1) {
		g.lock()
	}
}

// Quit ends the session early. The final score still stands.
func (g *Game) Quit() {
	if g.over {
		return
	}
	g.active = nil
	g.finish()
}

func (g *Game) move(dx, dy int) bool {
	if g.over || g.active == nil {
		return false
	}
	candidate := *g.active
	candidate.X += dx
	candidate.Y += dy
	if !g.board.CanPlace(candidate.Blocks()) {
		return false
	}
	g.active = &candidate
	return true
}

func (g *Game) rotate(delta int) bool {
	if g.over || g.active == nil {
		return false
	}
	candidate := *g.active
	candidate.Rotation += delta
	if !g.board.CanPlace(candidate.Blocks()) {
		return false
	}
	g.active = &candidate
	return true
}

func (g *Game) lock() {
	result := g.board.Lock(g.active.Blocks(), g.active.Kind)
	g.score, g.lastGain = ApplyClear(g.score, result)
	g.lastClear = result
	g.active = nil
	g.spawn()
}

func (g *Game) spawn() {
	kind, ok := g.draw()
	if !ok {
		g.finish()
		return
	}
	if g.board.SpawnBlocked(kind) {
		g.finish()
		return
	}
	anchor := g.board.SpawnAnchor()
	g.active = &ActivePiece{Kind: kind, X: anchor.X, Y: anchor.Y}
}

// draw pops the next kind from the queue, topping the queue up from
// the 7-bag so one piece of lookahead stays visible. A fixed sequence
// reports exhaustion instead of refilling.
func (g *Game) draw() (Kind, bool) {
	if !g.sequence {
		for len(g.queue) < 2 {
			if len(g.bag) == 0 {
				g.bag = append(g.bag, Kinds[:]...)
				g.rng.Shuffle(len(g.bag), func(i, j int) {
					g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
				})
			}
			g.queue = append(g.queue, g.bag[0])
			g.bag = g.bag[1:]
		}
	}
	if len(g.queue) == 0 {
		return KindNone, false
	}
	kind := g.queue[0]
	g.queue = g.queue[1:]
	return kind, true
}

func (g *Game) finish() {
	g.over = true
	g.endedAt = time.Now()
}

// PieceView is the read-only shape of the active piece in a Snapshot.
type PieceView struct {
	Kind   Kind
	Blocks []Offset
}

// Snapshot is a read-only view of the session for renderers. It shares
// no memory with the engine.
type Snapshot struct {
	Width  int
	Height int
	Grid   [][]Kind
	Active *PieceView
	Ghost  []Offset // where the active piece would hard-drop
	Next   Kind
	Score  int
	Level  int
	Lines  int
	Combo  int
	Over   bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Grid:   g.board.Rows(),
		Next:   g.Next(),
		Score:  g.score.Score,
		Level:  g.score.Level,
		Lines:  g.score.Lines,
		Combo:  g.score.Combo,
		Over:   g.over,
	}
	if g.active != nil {
		snap.Active = &PieceView{Kind: g.active.Kind, Blocks: g.active.Blocks()}
		snap.Ghost = g.ghostBlocks()
	}
	return snap
}

// LastClear returns the ClearResult of the most recent lock along with
// the points it gained. Zero values before the first lock.
func (g *Game) LastClear() (ClearResult, int) {
	return g.lastClear, g.lastGain
}

// Score returns the current score state.
func (g *Game) Score() ScoreState { return g.score }

// ghostBlocks projects the active piece to its lowest legal position.
func (g *Game) ghostBlocks() []Offset {
	p := *g.active
	for {
		next := p
		next.Y++
		if !g.board.CanPlace(next.Blocks()) {
			break
		}
		p = next
	}
	return p.Blocks()
}

// Result is the final snapshot handed to the persistence collaborator
// at game over or quit.
type Result struct {
	Profile  string
	Score    int
	Lines    int
	Level    int
	Duration time.Duration
}

// Result returns the session's final snapshot. Before the session ends
// the duration reflects elapsed play time so far.
func (g *Game) Result() Result {
	end := g.endedAt
	if end.IsZero() {
		end = time.Now()
	}
	return Result{
		Profile:  g.profile,
		Score:    g.score.Score,
		Lines:    g.score.Lines,
		Level:    g.score.Level,
		Duration: end.Sub(g.startedAt),
	}
}
