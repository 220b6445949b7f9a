package tetris

import "testing"

func spawnKinds(t *testing.T, g *Game, n int) []Kind {
	t.Helper()
	snap := g.Snapshot()
	if snap.Active == nil {
		t.Fatal("expected an active piece")
	}
	kinds := []Kind{snap.Active.Kind}
	for len(kinds) < n {
		kind, ok := g.draw()
		if !ok {
			t.Fatal("bag draw should never run out")
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func TestSevenBagPermutations(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Seed: 42})
	kinds := spawnKinds(t, g, 21)

	for bag := 0; bag < 3; bag++ {
		counts := map[Kind]int{}
		for _, kind := range kinds[bag*7 : (bag+1)*7] {
			counts[kind]++
		}
		for _, kind := range Kinds {
			if counts[kind] != 1 {
				t.Fatalf("bag %d: kind %s appeared %d times, want exactly once", bag, kind, counts[kind])
			}
		}
	}
}

func TestBagSeedIsDeterministic(t *testing.T) {
	a := spawnKinds(t, NewGame(GameConfig{Width: 10, Height: 20, Seed: 7}), 14)
	b := spawnKinds(t, NewGame(GameConfig{Width: 10, Height: 20, Seed: 7}), 14)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed should give the same piece order, differs at %d", i)
		}
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindI, KindI}})

	// Block the fall one row below the spawn so the first I locks on
	// the spawn row itself, leaving the next spawn blocked.
	g.board.grid[1][5] = KindZ
	g.HardDrop()

	if !g.Over() {
		t.Fatal("blocked spawn must end the game")
	}
	if g.Snapshot().Active != nil {
		t.Fatal("no active piece may be created after game over")
	}
	if g.MoveLeft() || g.SoftDrop() || g.Rotate() {
		t.Fatal("commands after game over must be no-ops")
	}
	g.Tick() // must not panic or mutate
	if !g.Over() {
		t.Fatal("game must stay over")
	}
}

func TestFixedSequenceEndsGame(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindO}})
	g.HardDrop()
	if !g.Over() {
		t.Fatal("an exhausted piece sequence ends the game")
	}
}

func TestHardDropDistanceBonus(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindI}})
	g.HardDrop()
	// 19 rows fallen at 2 points per cell.
	if got := g.Score().Score; got != 38 {
		t.Fatalf("expected 38 points, got %d", got)
	}
	for x := 3; x <= 6; x++ {
		if g.Board().Cell(x, 19) != KindI {
			t.Fatalf("I should lock on the bottom row, cell (%d,19) is %v", x, g.Board().Cell(x, 19))
		}
	}
}

func TestRotationNeedsHeadroom(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindI}})

	// Vertical I reaches one row above the anchor; on the spawn row
	// that is outside the grid, so the rotation is a no-op.
	if g.Rotate() {
		t.Fatal("rotating I on the spawn row should be illegal")
	}
	if !g.SoftDrop() {
		t.Fatal("soft drop on an empty board should succeed")
	}
	if !g.Rotate() {
		t.Fatal("rotation should succeed one row down")
	}
	if g.active.Rotation != 1 {
		t.Fatalf("rotation index should be 1, got %d", g.active.Rotation)
	}
}

func TestWallStopsMovement(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindO}})
	for i := 0; i < 5; i++ {
		if !g.MoveLeft() {
			t.Fatalf("move %d toward the wall should succeed", i)
		}
	}
	if g.MoveLeft() {
		t.Fatal("moving into the wall must be a no-op")
	}
	if g.active.X != 0 {
		t.Fatalf("piece should rest against the wall at x=0, got %d", g.active.X)
	}
}

// Four O pieces hard-dropped against the left wall fill the leftmost
// two columns of rows 12-19. Columns are not rows: nothing clears.
func TestStackedColumnsDoNotClear(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindO, KindO, KindO, KindO}})
	for piece := 0; piece < 4; piece++ {
		for g.MoveLeft() {
		}
		g.HardDrop()
	}

	if got := g.Score().Lines; got != 0 {
		t.Fatalf("no rows should clear, got %d", got)
	}
	for y := 12; y < 20; y++ {
		for x := 0; x < 2; x++ {
			if g.Board().Cell(x, y) != KindO {
				t.Fatalf("cell (%d,%d) should be filled", x, y)
			}
		}
	}
	// Drop distances 18+16+14+12 at 2 points per cell.
	if got := g.Score().Score; got != 120 {
		t.Fatalf("expected 120 points of drop bonus, got %d", got)
	}
}

// Four I pieces tile the bottom row: two flat across columns 0-7, two
// upright in columns 8 and 9. The upright pieces complete row 19 for a
// single 100-point clear.
func TestRowClearEndToEnd(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindI, KindI, KindI, KindI}})

	// Flat I across columns 0-3.
	g.MoveLeft()
	g.MoveLeft()
	g.MoveLeft()
	g.HardDrop()

	// Flat I across columns 4-7.
	g.MoveRight()
	g.HardDrop()

	// Upright I in column 8.
	g.SoftDrop()
	g.Rotate()
	g.MoveRight()
	g.MoveRight()
	g.MoveRight()
	g.HardDrop()

	if got := g.Score().Lines; got != 0 {
		t.Fatalf("row 19 is not complete yet, got %d lines", got)
	}

	// Upright I in column 9 completes row 19.
	g.SoftDrop()
	g.Rotate()
	for i := 0; i < 4; i++ {
		g.MoveRight()
	}
	g.HardDrop()

	result, gained := g.LastClear()
	if result.Lines != 1 || len(result.Rows) != 1 || result.Rows[0] != 19 {
		t.Fatalf("expected a single clear of row 19, got %+v", result)
	}
	if gained != 100 {
		t.Fatalf("a single at level 1 is worth exactly 100, got %d", gained)
	}
	if got := g.Score().Lines; got != 1 {
		t.Fatalf("expected 1 total line, got %d", got)
	}
	// 38 + 38 drop bonus for the flat pieces, 1 + 32 soft/hard for
	// each upright piece, plus the 100-point clear.
	if got := g.Score().Score; got != 242 {
		t.Fatalf("expected 242 points, got %d", got)
	}
	// The upright pieces' remaining cells shift down one row.
	for y := 17; y < 20; y++ {
		if g.Board().Cell(8, y) != KindI || g.Board().Cell(9, y) != KindI {
			t.Fatalf("columns 8-9 should keep cells at row %d after the clear", y)
		}
	}
}

func TestQuitKeepsFinalScore(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Profile: "alice", Pieces: []Kind{KindI, KindO}})
	g.SoftDrop()
	g.Quit()

	if !g.Over() {
		t.Fatal("quit ends the session")
	}
	if g.MoveLeft() || g.SoftDrop() {
		t.Fatal("commands after quit must be no-ops")
	}
	res := g.Result()
	if res.Profile != "alice" {
		t.Fatalf("result should carry the profile, got %q", res.Profile)
	}
	if res.Score != 1 {
		t.Fatalf("the soft-drop point survives the quit, got %d", res.Score)
	}
	if res.Duration < 0 {
		t.Fatalf("duration should be non-negative, got %v", res.Duration)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := NewGame(GameConfig{Width: 10, Height: 20, Pieces: []Kind{KindT, KindZ}})
	snap := g.Snapshot()

	if snap.Active == nil || snap.Active.Kind != KindT {
		t.Fatal("snapshot should expose the active T piece")
	}
	if snap.Next != KindZ {
		t.Fatalf("snapshot should preview the next piece, got %v", snap.Next)
	}

	// The ghost sits on the floor below the spawn column.
	foundFloor := false
	for _, p := range snap.Ghost {
		if p.Y == 19 {
			foundFloor = true
		}
	}
	if !foundFloor {
		t.Fatal("ghost of a fresh piece should reach the bottom row")
	}

	snap.Grid[0][0] = KindI
	if g.Board().Cell(0, 0) != KindNone {
		t.Fatal("mutating a snapshot must not touch the board")
	}
}
