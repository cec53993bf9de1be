package scenario

import (
	"testing"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/house"
)

func TestGenerateFinalState(t *testing.T) {
	tests := []struct {
		name       string
		numPlayers int
		difficulty Difficulty
		seed       uint32
	}{
		{name: "easy 2p", numPlayers: 2, difficulty: Easy, seed: 1},
		{name: "medium 3p", numPlayers: 3, difficulty: Medium, seed: 42},
		{name: "hard 4p", numPlayers: 4, difficulty: Hard, seed: 7},
		{name: "medium 2p", numPlayers: 2, difficulty: Medium, seed: 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParamsFor(tt.difficulty)
			s := GenerateFinalState(engine.New(tt.seed), tt.numPlayers, p)

			total := len(s.AllObjects())
			// The coverage pass may add one object past the sampled target.
			if total < p.TotalItemsMin || total > p.TotalItemsMax+1 {
				t.Errorf("placed %d objects, want %d..%d", total, p.TotalItemsMin, p.TotalItemsMax+1)
			}

			distinctWalls := make(map[house.Color]bool)
			for _, rn := range s.RoomNames() {
				distinctWalls[s.Room(rn).WallColor] = true
			}
			if len(distinctWalls) < 2 {
				t.Errorf("only %d distinct wall colors", len(distinctWalls))
			}

			for _, ot := range house.ObjectTypes {
				if s.CountObjectType(ot) == 0 {
					t.Errorf("no %s placed despite coverage pass", ot)
				}
			}

			styles := make(map[house.Style]bool)
			for _, tok := range s.AllObjects() {
				styles[tok.Style] = true
			}
			if len(styles) < 2 {
				t.Errorf("only %d distinct styles after variety pass", len(styles))
			}
		})
	}
}

func TestGenerateFinalStateDeterministic(t *testing.T) {
	p := ParamsFor(Medium)
	a := GenerateFinalState(engine.New(99), 3, p)
	b := GenerateFinalState(engine.New(99), 3, p)
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("same-seed boards differ:\n%s\n%s", a.Fingerprint(), b.Fingerprint())
	}

	c := GenerateFinalState(engine.New(100), 3, p)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different seeds produced identical boards")
	}
}

func TestGenerateFinalStateRoomSets(t *testing.T) {
	p := ParamsFor(Easy)
	s2 := GenerateFinalState(engine.New(5), 2, p)
	for i, rn := range s2.RoomNames() {
		if rn != house.Rooms2P[i] {
			t.Errorf("2p room %d = %q, want %q", i, rn, house.Rooms2P[i])
		}
	}
	s4 := GenerateFinalState(engine.New(5), 4, p)
	for i, rn := range s4.RoomNames() {
		if rn != house.Rooms34P[i] {
			t.Errorf("4p room %d = %q, want %q", i, rn, house.Rooms34P[i])
		}
	}
}
