// Package profile stores player profiles and finished-game scores in a
// JSON file under the XDG data directory. It is the persistence
// collaborator of the game engine: it only ever receives final
// results, never live game state.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/adrg/xdg"

	"termtris/tetris"
)

var dataFile = "termtris/profiles.json"

// Profile is one named player.
type Profile struct {
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	LastPlayed  string `json:"last_played,omitempty"`
	GamesPlayed int    `json:"games_played"`
	BestScore   int    `json:"best_score"`
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	Profile  string  `json:"profile"`
	Score    int     `json:"score"`
	Lines    int     `json:"lines"`
	Level    int     `json:"level"`
	Duration float64 `json:"duration_seconds"`
	PlayedAt string  `json:"played_at"`
}

type storeData struct {
	ActiveProfile string             `json:"active_profile"`
	Profiles      map[string]Profile `json:"profiles"`
	Scores        []ScoreEntry       `json:"scores"`
}

// Store reads and writes the profile file. Mutating operations save
// immediately, matching how little data there is.
type Store struct {
	path string
	data storeData
}

// DefaultStore opens the store at its XDG data path, creating the
// parent directory if needed.
func DefaultStore() (*Store, error) {
	absPath, err := xdg.DataFile(dataFile)
	if err != nil {
		return nil, err
	}
	return NewStore(absPath)
}

// NewStore opens the store at an explicit path. A missing file yields
// an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: storeData{Profiles: map[string]Profile{}},
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("corrupt profile file %s: %w", path, err)
	}
	if s.data.Profiles == nil {
		s.data.Profiles = map[string]Profile{}
	}
	return s, nil
}

// List returns all profiles sorted by name.
func (s *Store) List() []Profile {
	profiles := make([]Profile, 0, len(s.data.Profiles))
	for _, p := range s.data.Profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles
}

// Get looks a profile up by name.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.data.Profiles[name]
	return p, ok
}

// Create adds a new profile and makes it active.
func (s *Store) Create(name string) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf("profile name cannot be empty")
	}
	if _, ok := s.data.Profiles[name]; ok {
		return Profile{}, fmt.Errorf("profile %q already exists", name)
	}
	p := Profile{Name: name, CreatedAt: now()}
	s.data.Profiles[name] = p
	s.data.ActiveProfile = name
	if err := s.save(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// SetActive marks an existing profile as the active one.
func (s *Store) SetActive(name string) error {
	if _, ok := s.data.Profiles[name]; !ok {
		return fmt.Errorf("unknown profile: %s", name)
	}
	s.data.ActiveProfile = name
	return s.save()
}

// Active returns the active profile, if any.
func (s *Store) Active() (Profile, bool) {
	if s.data.ActiveProfile == "" {
		return Profile{}, false
	}
	return s.Get(s.data.ActiveProfile)
}

// RecordGame appends a finished game to the score list and updates the
// profile's stats. The result's profile must exist.
func (s *Store) RecordGame(res tetris.Result) error {
	p, ok := s.data.Profiles[res.Profile]
	if !ok {
		return fmt.Errorf("unknown profile: %s", res.Profile)
	}
	p.GamesPlayed++
	p.LastPlayed = now()
	if res.Score > p.BestScore {
		p.BestScore = res.Score
	}
	s.data.Profiles[res.Profile] = p
	s.data.Scores = append(s.data.Scores, ScoreEntry{
		Profile:  res.Profile,
		Score:    res.Score,
		Lines:    res.Lines,
		Level:    res.Level,
		Duration: res.Duration.Seconds(),
		PlayedAt: p.LastPlayed,
	})
	return s.save()
}

// TopScores returns the best recorded games, highest score first.
func (s *Store) TopScores(limit int) []ScoreEntry {
	scores := append([]ScoreEntry(nil), s.data.Scores...)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0664)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
