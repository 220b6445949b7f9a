package profile

import (
	"path/filepath"
	"testing"
	"time"

	"termtris/tetris"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	if err != nil {
		t.Fatalf("NewStore: %s", err)
	}
	return s
}

func TestCreateAndActivate(t *testing.T) {
	s := tempStore(t)

	if _, ok := s.Active(); ok {
		t.Fatal("empty store should have no active profile")
	}

	p, err := s.Create("alice")
	if err != nil {
		t.Fatalf("Create: %s", err)
	}
	if p.Name != "alice" || p.CreatedAt == "" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	active, ok := s.Active()
	if !ok || active.Name != "alice" {
		t.Fatal("creating a profile should make it active")
	}

	if _, err := s.Create("alice"); err == nil {
		t.Fatal("duplicate profile name should be rejected")
	}
	if _, err := s.Create(""); err == nil {
		t.Fatal("empty profile name should be rejected")
	}
	if err := s.SetActive("nobody"); err == nil {
		t.Fatal("activating an unknown profile should fail")
	}
}

func TestRecordGameUpdatesStats(t *testing.T) {
	s := tempStore(t)
	s.Create("bob")

	err := s.RecordGame(tetris.Result{
		Profile: "bob", Score: 500, Lines: 4, Level: 1,
		Duration: 90 * time.Second,
	})
	if err != nil {
		t.Fatalf("RecordGame: %s", err)
	}
	s.RecordGame(tetris.Result{Profile: "bob", Score: 300, Lines: 2, Level: 1})

	p, _ := s.Get("bob")
	if p.GamesPlayed != 2 {
		t.Fatalf("expected 2 games played, got %d", p.GamesPlayed)
	}
	if p.BestScore != 500 {
		t.Fatalf("best score should keep the maximum, got %d", p.BestScore)
	}
	if p.LastPlayed == "" {
		t.Fatal("last played should be set")
	}

	if err := s.RecordGame(tetris.Result{Profile: "nobody"}); err == nil {
		t.Fatal("recording for an unknown profile should fail")
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	s := tempStore(t)
	s.Create("carol")
	for _, score := range []int{200, 800, 500} {
		s.RecordGame(tetris.Result{Profile: "carol", Score: score})
	}

	top := s.TopScores(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Score != 800 || top[1].Score != 500 {
		t.Fatalf("scores should sort descending, got %d then %d", top[0].Score, top[1].Score)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %s", err)
	}
	s.Create("dave")
	s.RecordGame(tetris.Result{Profile: "dave", Score: 42, Lines: 1, Level: 1})

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %s", err)
	}
	p, ok := reopened.Get("dave")
	if !ok || p.BestScore != 42 {
		t.Fatalf("store should persist, got %+v", p)
	}
	active, ok := reopened.Active()
	if !ok || active.Name != "dave" {
		t.Fatal("active profile should persist")
	}
	if len(reopened.TopScores(0)) != 1 {
		t.Fatal("score entries should persist")
	}
}
