package tetris

// Board is the playing field: a fixed-size grid of cells. A cell holds
// KindNone when empty, otherwise the kind of the piece locked into it.
// The active piece is never written to the grid; only Lock mutates
// cells.
type Board struct {
	width  int
	height int
	grid   [][]Kind // grid[y][x], row 0 is the top row
}

// ClearResult describes the rows removed by a single Lock.
type ClearResult struct {
	Lines  int   // number of rows cleared, 0-4
	Rows   []int // indices of the cleared rows, top to bottom
	Tetris bool  // true for a simultaneous four-row clear
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.grid = make([][]Kind, height)
	for y := range b.grid {
		b.grid[y] = make([]Kind, width)
	}
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Cell returns the content of the cell at (x, y), or KindNone when the
// position is outside the grid.
func (b *Board) Cell(x, y int) Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindNone
	}
	return b.grid[y][x]
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = KindNone
		}
	}
}

// CanPlace reports whether every block lies inside the grid and on an
// empty cell. It is the single legality check behind movement,
// rotation and spawning; illegality is a normal outcome, not an error.
func (b *Board) CanPlace(blocks []Offset) bool {
	for _, p := range blocks {
		if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
			return false
		}
		if b.grid[p.Y][p.X] != KindNone {
			return false
		}
	}
	return true
}

// Lock writes the blocks into the grid as kind and removes any rows
// that became full. All full row indices are collected before
// compaction so simultaneous clears cannot skew each other's indices.
func (b *Board) Lock(blocks []Offset, kind Kind) ClearResult {
	for _, p := range blocks {
		b.grid[p.Y][p.X] = kind
	}

	var full []int
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return ClearResult{}
	}

	// Compact in one pass: keep non-full rows, push empty rows on top.
	remaining := make([][]Kind, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !b.rowFull(y) {
			remaining = append(remaining, b.grid[y])
		}
	}
	cleared := b.height - len(remaining)
	fresh := make([][]Kind, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]Kind, b.width)
	}
	b.grid = append(fresh, remaining...)

	return ClearResult{
		Lines:  cleared,
		Rows:   full,
		Tetris: cleared == 4,
	}
}

// SpawnAnchor returns the default spawn position for new pieces.
func (b *Board) SpawnAnchor() Offset {
	return Offset{X: b.width / 2, Y: 0}
}

// SpawnBlocked reports whether the default spawn placement for kind is
// illegal. This is the game-over predicate.
func (b *Board) SpawnBlocked(kind Kind) bool {
	anchor := b.SpawnAnchor()
	return !b.CanPlace(Blocks(kind, 0, anchor.X, anchor.Y))
}

// Rows returns a copy of the grid, row 0 first.
func (b *Board) Rows() [][]Kind {
	rows := make([][]Kind, b.height)
	for y := range b.grid {
		rows[y] = make([]Kind, b.width)
		copy(rows[y], b.grid[y])
	}
	return rows
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.grid[y][x] == KindNone {
			return false
		}
	}
	return true
}
