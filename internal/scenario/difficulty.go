// Package scenario wires the generator pipeline together: the solution
// board, the per-player rule assignment, the backward-walk perturbation
// that yields the initial board, and the rendered scenario value handed to
// callers.
package scenario

// Difficulty selects a generation preset.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Action is one of the four atomic board edits.
type Action string

const (
	ActionPaint  Action = "paint"
	ActionSwap   Action = "swap"
	ActionRemove Action = "remove"
	ActionAdd    Action = "add"
)

// AllActions lists the move kinds in canonical order.
var AllActions = []Action{ActionPaint, ActionSwap, ActionRemove, ActionAdd}

// Params are the tuned knobs behind a difficulty preset.
type Params struct {
	NumColors      int
	NumStyles      int
	TotalItemsMin  int
	TotalItemsMax  int
	PatternProb    float64
	RulesPerPlayer int
	PertMin        int
	PertMax        int
	WarmCoolBias   float64
	PertWeights    map[Action]float64
}

var difficultyParams = map[Difficulty]Params{
	Easy: {
		NumColors:      3,
		NumStyles:      3,
		TotalItemsMin:  5,
		TotalItemsMax:  7,
		PatternProb:    0.35,
		RulesPerPlayer: 3,
		PertMin:        3,
		PertMax:        5,
		WarmCoolBias:   1.5,
		PertWeights:    map[Action]float64{ActionPaint: 1.0, ActionSwap: 1.5, ActionRemove: 0.5, ActionAdd: 0.3},
	},
	Medium: {
		NumColors:      3,
		NumStyles:      4,
		TotalItemsMin:  6,
		TotalItemsMax:  9,
		PatternProb:    0.30,
		RulesPerPlayer: 4,
		PertMin:        5,
		PertMax:        8,
		WarmCoolBias:   1.5,
		PertWeights:    map[Action]float64{ActionPaint: 1.0, ActionSwap: 1.5, ActionRemove: 0.8, ActionAdd: 0.3},
	},
	Hard: {
		NumColors:      4,
		NumStyles:      4,
		TotalItemsMin:  7,
		TotalItemsMax:  10,
		PatternProb:    0.25,
		RulesPerPlayer: 4,
		PertMin:        7,
		PertMax:        10,
		WarmCoolBias:   1.5,
		PertWeights:    map[Action]float64{ActionPaint: 1.0, ActionSwap: 1.2, ActionRemove: 1.0, ActionAdd: 0.5},
	},
}

// ParamsFor returns the preset for a difficulty, falling back to medium
// for anything unknown.
func ParamsFor(d Difficulty) Params {
	if p, ok := difficultyParams[d]; ok {
		return p
	}
	return difficultyParams[Medium]
}
