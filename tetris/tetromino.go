// Package tetris implements the falling-block game engine: piece
// definitions, the board grid, scoring and the game controller. The
// package performs no I/O; callers poll Snapshot and feed commands.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindNone Kind = iota // empty cell marker
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the seven playable kinds in bag order.
var Kinds = [7]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "."
}

// Offset is a cell position relative to a piece's pivot.
// X grows rightward, Y grows downward.
type Offset struct {
	X int
	Y int
}

// rotations maps each kind to its rotation states. Each state is four
// offsets from the pivot; states advance cyclically on clockwise
// rotation. O has a single state, I/S/Z two, T/J/L four.
var rotations = map[Kind][][]Offset{
	KindI: {
		{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
	KindS: {
		{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	},
	KindZ: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{1, -1}, {0, 0}, {1, 0}, {0, 1}},
	},
	KindJ: {
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
	},
	KindL: {
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
}

// RotationCount returns the number of rotation states for a kind.
func RotationCount(k Kind) int {
	return len(rotations[k])
}

// Offsets returns the cell offsets for the given kind and rotation
// index. The index is taken modulo the kind's rotation count, so
// callers may advance it without wrapping.
func Offsets(k Kind, rotation int) []Offset {
	states := rotations[k]
	n := len(states)
	rotation = ((rotation % n) + n) % n
	return states[rotation]
}

// Blocks returns the absolute cell positions for a piece of the given
// kind and rotation anchored at (x, y).
func Blocks(k Kind, rotation, x, y int) []Offset {
	offs := Offsets(k, rotation)
	blocks := make([]Offset, len(offs))
	for i, o := range offs {
		blocks[i] = Offset{X: x + o.X, Y: y + o.Y}
	}
	return blocks
}
