package scenario

import (
	"testing"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/rules"
)

func TestAssignConstraints(t *testing.T) {
	tests := []struct {
		name       string
		numPlayers int
		difficulty Difficulty
		seed       uint32
	}{
		{name: "2p easy", numPlayers: 2, difficulty: Easy, seed: 1},
		{name: "3p medium", numPlayers: 3, difficulty: Medium, seed: 42},
		{name: "4p hard", numPlayers: 4, difficulty: Hard, seed: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParamsFor(tt.difficulty)
			solution := GenerateFinalState(engine.New(tt.seed), tt.numPlayers, p)
			assignments := AssignConstraints(engine.New(tt.seed*2), solution, tt.numPlayers, p.RulesPerPlayer, p.WarmCoolBias)

			if len(assignments) != tt.numPlayers {
				t.Fatalf("got %d players, want %d", len(assignments), tt.numPlayers)
			}

			seen := make(map[string]bool)
			for pi, rs := range assignments {
				// The candidate pool dwarfs the quota, so every player
				// fills up.
				if len(rs) != p.RulesPerPlayer {
					t.Errorf("player %d holds %d rules, want %d", pi+1, len(rs), p.RulesPerPlayer)
				}
				for _, c := range rs {
					if seen[c.Key()] {
						t.Errorf("constraint assigned twice: %s", c)
					}
					seen[c.Key()] = true

					if !rules.Evaluate(c, solution) {
						t.Errorf("player %d rule not satisfied by solution: %s", pi+1, c)
					}
				}
			}
		})
	}
}

func TestAssignConstraintsDeterministic(t *testing.T) {
	p := ParamsFor(Medium)
	solution := GenerateFinalState(engine.New(11), 3, p)

	a := AssignConstraints(engine.New(22), solution, 3, p.RulesPerPlayer, p.WarmCoolBias)
	b := AssignConstraints(engine.New(22), solution, 3, p.RulesPerPlayer, p.WarmCoolBias)

	for pi := range a {
		if len(a[pi]) != len(b[pi]) {
			t.Fatalf("player %d rule counts differ", pi+1)
		}
		for i := range a[pi] {
			if a[pi][i].Key() != b[pi][i].Key() {
				t.Errorf("player %d rule %d differs: %s vs %s", pi+1, i, a[pi][i], b[pi][i])
			}
		}
	}
}
