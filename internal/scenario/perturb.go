package scenario

import (
	"fmt"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/house"
	"github.com/MJE43/decorum-scenario-go/internal/rules"
)

// Move is one atomic board edit applied during the backward walk.
// Fields used per action:
//
//	paint:  Room, OldColor, NewColor
//	swap:   Room, Type, OldStyle, NewStyle
//	remove: Room, Type, OldStyle
//	add:    Room, Type, NewStyle
type Move struct {
	Action   Action
	Room     string
	Type     house.ObjectType
	OldStyle house.Style
	NewStyle house.Style
	OldColor house.Color
	NewColor house.Color
}

// Inverse returns the move that exactly undoes this one.
func (m Move) Inverse() Move {
	switch m.Action {
	case ActionPaint:
		return Move{Action: ActionPaint, Room: m.Room, OldColor: m.NewColor, NewColor: m.OldColor}
	case ActionSwap:
		return Move{Action: ActionSwap, Room: m.Room, Type: m.Type, OldStyle: m.NewStyle, NewStyle: m.OldStyle}
	case ActionRemove:
		return Move{Action: ActionAdd, Room: m.Room, Type: m.Type, NewStyle: m.OldStyle}
	case ActionAdd:
		return Move{Action: ActionRemove, Room: m.Room, Type: m.Type, OldStyle: m.NewStyle}
	}
	panic(fmt.Sprintf("scenario: unknown move action %q", m.Action))
}

// Describe renders the move for the perturbation log.
func (m Move) Describe() string {
	switch m.Action {
	case ActionPaint:
		return fmt.Sprintf("Paint %s: %s -> %s", m.Room, m.OldColor, m.NewColor)
	case ActionSwap:
		oldTok := house.Token{Type: m.Type, Style: m.OldStyle}
		newTok := house.Token{Type: m.Type, Style: m.NewStyle}
		return fmt.Sprintf("Swap %s -> %s in %s", oldTok, newTok, m.Room)
	case ActionRemove:
		return fmt.Sprintf("Remove %s from %s", house.Token{Type: m.Type, Style: m.OldStyle}, m.Room)
	case ActionAdd:
		return fmt.Sprintf("Add %s to %s", house.Token{Type: m.Type, Style: m.NewStyle}, m.Room)
	}
	return string(m.Action)
}

// Apply mutates the state with the move.
func (m Move) Apply(s *house.State) {
	switch m.Action {
	case ActionPaint:
		s.PaintRoom(m.Room, m.NewColor)
	case ActionSwap:
		s.SwapObject(m.Room, house.Token{Type: m.Type, Style: m.NewStyle})
	case ActionRemove:
		s.RemoveObject(m.Room, m.Type)
	case ActionAdd:
		s.AddObject(m.Room, house.Token{Type: m.Type, Style: m.NewStyle})
	}
}

// PerturbConfig bounds the backward walk. Zero values are filled by
// PerturbConfigFromDifficulty or the caller's overrides.
type PerturbConfig struct {
	NumPerturbations       int
	MinViolationsPerPlayer int
	AllowedActions         []Action
	ActionWeights          map[Action]float64
	MaxAttempts            int
}

// PerturbConfigFromDifficulty draws the walk length from the preset's
// range and copies its move weights.
func PerturbConfigFromDifficulty(rng *engine.RNG, p Params) PerturbConfig {
	weights := make(map[Action]float64, len(p.PertWeights))
	for a, w := range p.PertWeights {
		weights[a] = w
	}
	return PerturbConfig{
		NumPerturbations:       rng.Int(p.PertMin, p.PertMax),
		MinViolationsPerPlayer: 1,
		AllowedActions:         AllActions,
		ActionWeights:          weights,
		MaxAttempts:            30,
	}
}

// listMoves enumerates every legal move of the allowed kinds from the
// current state.
func listMoves(s *house.State, allowed []Action) []Move {
	allow := make(map[Action]bool, len(allowed))
	for _, a := range allowed {
		allow[a] = true
	}

	var moves []Move
	for _, rn := range s.RoomNames() {
		room := s.Room(rn)

		if allow[ActionPaint] {
			for _, c := range house.Colors {
				if c != room.WallColor {
					moves = append(moves, Move{Action: ActionPaint, Room: rn, OldColor: room.WallColor, NewColor: c})
				}
			}
		}

		if allow[ActionSwap] {
			for _, ot := range house.ObjectTypes {
				tok := room.Object(ot)
				if tok == nil {
					continue
				}
				for _, st := range house.Styles {
					if st != tok.Style {
						moves = append(moves, Move{Action: ActionSwap, Room: rn, Type: ot, OldStyle: tok.Style, NewStyle: st})
					}
				}
			}
		}

		if allow[ActionRemove] {
			for _, ot := range house.ObjectTypes {
				if tok := room.Object(ot); tok != nil {
					moves = append(moves, Move{Action: ActionRemove, Room: rn, Type: ot, OldStyle: tok.Style})
				}
			}
		}

		if allow[ActionAdd] {
			for _, ot := range house.ObjectTypes {
				if room.Object(ot) != nil {
					continue
				}
				for _, st := range house.Styles {
					moves = append(moves, Move{Action: ActionAdd, Room: rn, Type: ot, NewStyle: st})
				}
			}
		}
	}
	return moves
}

// pickRandomMove draws one legal move by weighted without-replacement
// selection. Rejected are the exact inverse of the previous move and any
// move landing on a visited fingerprint. The candidate move is applied,
// inspected and rolled back; the caller applies the accepted move itself.
// Returns ok=false when every candidate is rejected.
func pickRandomMove(rng *engine.RNG, s *house.State, cfg PerturbConfig, visited map[string]bool, lastMove *Move) (Move, string, bool) {
	candidates := engine.Shuffle(rng, listMoves(s, cfg.AllowedActions))
	weights := make([]float64, len(candidates))
	for i, m := range candidates {
		w, ok := cfg.ActionWeights[m.Action]
		if !ok {
			w = 1.0
		}
		weights[i] = w
	}

	for len(candidates) > 0 {
		idx := rng.WeightedIndex(weights)
		if idx < 0 {
			return Move{}, "", false
		}
		move := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)

		if lastMove != nil && move == lastMove.Inverse() {
			continue
		}

		move.Apply(s)
		fp := s.Fingerprint()
		move.Inverse().Apply(s)

		if visited[fp] {
			continue
		}
		return move, fp, true
	}
	return Move{}, "", false
}

// countViolations returns how many of each player's rules the state
// violates.
func countViolations(s *house.State, assignments [][]rules.Constraint) []int {
	out := make([]int, len(assignments))
	for p, rs := range assignments {
		for _, r := range rs {
			if !rules.Evaluate(r, s) {
				out[p]++
			}
		}
	}
	return out
}

func playersMeeting(violations []int, minimum int) int {
	n := 0
	for _, v := range violations {
		if v >= minimum {
			n++
		}
	}
	return n
}

// targetedViolationFix makes extra moves until every player has the
// required number of violated rules, or ten extra moves have been tried.
// Each move must break one specific satisfied rule of an under-target
// player while avoiding visited states and immediate undo.
func targetedViolationFix(rng *engine.RNG, s *house.State, assignments [][]rules.Constraint, minViolations int, visited map[string]bool, moves *[]Move, allowed []Action) {
	const maxExtraMoves = 10

	for iter := 0; iter < maxExtraMoves; iter++ {
		violations := countViolations(s, assignments)
		if playersMeeting(violations, minViolations) == len(assignments) {
			return
		}

		var under []int
		for p, v := range violations {
			if v < minViolations {
				under = append(under, p)
			}
		}
		if len(under) == 0 {
			return
		}
		player := engine.Choice(rng, under)

		var satisfied []rules.Constraint
		for _, r := range assignments[player] {
			if rules.Evaluate(r, s) {
				satisfied = append(satisfied, r)
			}
		}
		satisfied = engine.Shuffle(rng, satisfied)

		found := false
		for _, target := range satisfied {
			candidates := engine.Shuffle(rng, listMoves(s, allowed))
			for _, move := range candidates {
				if len(*moves) > 0 && move == (*moves)[len(*moves)-1].Inverse() {
					continue
				}

				move.Apply(s)
				fp := s.Fingerprint()
				if !visited[fp] && !rules.Evaluate(target, s) {
					visited[fp] = true
					*moves = append(*moves, move)
					found = true
					break
				}
				move.Inverse().Apply(s)
			}
			if found {
				break
			}
		}
		if !found {
			return
		}
	}
}

// GenerateInitialState walks backward from the solution: a weighted random
// walk of NumPerturbations moves, then targeted extra moves until every
// player starts with enough violated rules. The whole walk retries up to
// MaxAttempts times from a fresh copy; the best attempt (most players at
// target) wins even when no attempt fully succeeds.
//
// Returns the initial state, the applied moves in order, and how many
// players met the violation target.
func GenerateInitialState(rng *engine.RNG, solution *house.State, assignments [][]rules.Constraint, cfg PerturbConfig) (*house.State, []Move, int) {
	var bestState *house.State
	var bestMoves []Move
	bestScore := -1

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		state := solution.DeepCopy()
		visited := map[string]bool{state.Fingerprint(): true}
		var movesApplied []Move
		var lastMove *Move

		// Phase 1: random walk.
		for step := 0; step < cfg.NumPerturbations; step++ {
			move, fp, ok := pickRandomMove(rng, state, cfg, visited, lastMove)
			if !ok {
				break
			}
			move.Apply(state)
			visited[fp] = true
			movesApplied = append(movesApplied, move)
			m := move
			lastMove = &m
		}

		// Phase 2: targeted violation repair.
		targetedViolationFix(rng, state, assignments, cfg.MinViolationsPerPlayer, visited, &movesApplied, cfg.AllowedActions)

		violations := countViolations(state, assignments)
		score := playersMeeting(violations, cfg.MinViolationsPerPlayer)

		if score > bestScore {
			bestState = state
			bestMoves = movesApplied
			bestScore = score
		}
		if score == len(assignments) {
			break
		}
	}

	return bestState, bestMoves, bestScore
}
