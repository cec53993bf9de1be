package scenario

import (
	"sort"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/house"
	"github.com/MJE43/decorum-scenario-go/internal/rules"
)

// Diversity deltas applied on top of base salience while filling a
// player's list. Tuned values; changing them shifts which rules players
// end up with.
const (
	bonusNewRoom      = 1.5
	bonusNewKind      = 1.0
	bonusPolarity     = 1.0
	penaltyNoNewRoom  = 2.0
	penaltyRepeatKind = 1.5
	minDrawWeight     = 0.1
)

// playerTally tracks what a player already holds, for diversity scoring.
type playerTally struct {
	rooms       map[string]bool
	kinds       map[rules.Kind]bool
	hasPositive bool
	hasNegative bool
}

// AssignConstraints mines the solution's candidates and deals them to the
// players: warm/cool rules get their bias, duplicates collapse to the
// best-scored copy, and players are filled round-robin by weighted draw
// with diversity adjustments. A player left short when the pool runs dry
// stays short; callers decide whether that is acceptable.
func AssignConstraints(rng *engine.RNG, state *house.State, numPlayers, rulesPerPlayer int, warmCoolBias float64) [][]rules.Constraint {
	cands := rules.Candidates(state)

	for i := range cands {
		if cands[i].Kind.WarmCool() {
			cands[i].Score *= warmCoolBias
		}
	}

	// Deduplicate on key, keeping the highest score. First-seen order is
	// preserved so the later shuffle is the only order randomness.
	byKey := make(map[string]int, len(cands))
	deduped := make([]rules.Constraint, 0, len(cands))
	for _, c := range cands {
		if i, ok := byKey[c.Key()]; ok {
			if c.Score > deduped[i].Score {
				deduped[i] = c
			}
			continue
		}
		byKey[c.Key()] = len(deduped)
		deduped = append(deduped, c)
	}

	// Shuffle, then stable-sort by descending score: equal scores keep
	// their shuffled order.
	candidates := engine.Shuffle(rng, deduped)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	assignments := make([][]rules.Constraint, numPlayers)
	used := make(map[string]bool)
	tallies := make([]playerTally, numPlayers)
	for i := range tallies {
		tallies[i] = playerTally{rooms: make(map[string]bool), kinds: make(map[rules.Kind]bool)}
	}

	for round := 0; round < rulesPerPlayer; round++ {
		for p := 0; p < numPlayers; p++ {
			if len(assignments[p]) >= rulesPerPlayer {
				continue
			}

			pool := eligibleCandidates(candidates, used)
			if len(pool) == 0 {
				break
			}

			weights := make([]float64, len(pool))
			for i, c := range pool {
				weights[i] = compatibilityScore(c, state, &tallies[p])
			}

			idx := rng.WeightedIndex(weights)
			if idx < 0 {
				break
			}
			chosen := pool[idx]

			assignments[p] = append(assignments[p], chosen)
			used[chosen.Key()] = true

			tally := &tallies[p]
			for rn := range chosen.ReferencedRooms(state) {
				tally.rooms[rn] = true
			}
			tally.kinds[chosen.Kind] = true
			if chosen.Kind.Negative() {
				tally.hasNegative = true
			} else {
				tally.hasPositive = true
			}
		}
	}

	return assignments
}

func eligibleCandidates(candidates []rules.Constraint, used map[string]bool) []rules.Constraint {
	out := make([]rules.Constraint, 0, len(candidates))
	for _, c := range candidates {
		if !used[c.Key()] {
			out = append(out, c)
		}
	}
	return out
}

// compatibilityScore adjusts a candidate's salience for one player's
// current holdings, clamped away from zero so every eligible candidate
// keeps a sliver of probability.
func compatibilityScore(c rules.Constraint, state *house.State, tally *playerTally) float64 {
	sc := c.Score
	refs := c.ReferencedRooms(state)
	isNeg := c.Kind.Negative()

	newRoom := false
	for rn := range refs {
		if !tally.rooms[rn] {
			newRoom = true
		}
	}
	if newRoom {
		sc += bonusNewRoom
	}

	if !tally.kinds[c.Kind] {
		sc += bonusNewKind
	}

	if isNeg && !tally.hasNegative {
		sc += bonusPolarity
	} else if !isNeg && !tally.hasPositive {
		sc += bonusPolarity
	}

	// A rule stuck on already-covered rooms narrows the player's view.
	if len(refs) > 0 && !newRoom && len(tally.rooms) >= 2 {
		sc -= penaltyNoNewRoom
	}

	if tally.kinds[c.Kind] {
		sc -= penaltyRepeatKind
	}

	if sc < minDrawWeight {
		sc = minDrawWeight
	}
	return sc
}
