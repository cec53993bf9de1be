package scenario

import (
	"time"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/house"
	"github.com/MJE43/decorum-scenario-go/internal/rules"
)

// PerturbOverrides lets callers override any subset of the perturbation
// config drawn from the difficulty preset.
type PerturbOverrides struct {
	NumPerturbations       *int               `json:"numPerturbations,omitempty"`
	MinViolationsPerPlayer *int               `json:"minViolPerPlayer,omitempty"`
	AllowedActions         []Action           `json:"allowedTypes,omitempty"`
	ActionWeights          map[Action]float64 `json:"typeWeights,omitempty"`
	MaxAttempts            *int               `json:"maxAttempts,omitempty"`
}

// GenerateConfig is the input to Generate. Callers are responsible for
// clamping NumPlayers into {2, 3, 4} and Difficulty into the known presets
// before calling; behavior outside that domain is undefined.
type GenerateConfig struct {
	NumPlayers   int               `json:"numPlayers"`
	Difficulty   Difficulty        `json:"difficulty"`
	Seed         *uint32           `json:"seed,omitempty"`
	Perturbation *PerturbOverrides `json:"perturbation,omitempty"`
	WarmCoolBias *float64          `json:"warmCoolBias,omitempty"`
}

// ConstraintText is one rendered rule.
type ConstraintText struct {
	Text string `json:"text"`
}

// Player is the per-player slice of a scenario: a 1-based id, the voice
// the rules are written in, and the rendered rule texts.
type Player struct {
	ID          int              `json:"id"`
	Voice       string           `json:"voice"`
	Constraints []ConstraintText `json:"constraints"`
}

// Scenario is the serialized output contract: both boards, the players
// with rendered rule text only, and the move log from solution to initial.
type Scenario struct {
	NumPlayers      int        `json:"numPlayers"`
	Difficulty      Difficulty `json:"difficulty"`
	InitialBoard    house.View `json:"initialBoard"`
	SolutionBoard   house.View `json:"solutionBoard"`
	Players         []Player   `json:"players"`
	PerturbationLog []string   `json:"perturbationLog"`
}

// Result carries the scenario plus the structured internals downstream
// code and tests work with: the live states, the constraint records and
// the raw moves.
type Result struct {
	Scenario    Scenario
	Seed        uint32
	Solution    *house.State
	Initial     *house.State
	Assignments [][]rules.Constraint
	Moves       []Move
	// PlayersAtTarget counts players whose violation minimum the best
	// perturbation attempt reached; equal to NumPlayers on full success.
	PlayersAtTarget int
}

// Generate runs the whole pipeline under one seed. Child generators are
// derived from the seed by fixed 32-bit transforms, one per stage, so that
// no stage's draw count can shift another stage's stream:
//
//	solution board   seed
//	assignment       seed * 2
//	perturbation     seed * 3 + 7
//	player i voice   seed * 5 + i
//
// A missing seed falls back to wall-clock milliseconds and is therefore
// not reproducible.
func Generate(cfg GenerateConfig) Result {
	var seed uint32
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = uint32(time.Now().UnixMilli())
	}

	params := ParamsFor(cfg.Difficulty)
	warmCoolBias := params.WarmCoolBias
	if cfg.WarmCoolBias != nil {
		warmCoolBias = *cfg.WarmCoolBias
	}

	stateRNG := engine.New(seed)
	solution := GenerateFinalState(stateRNG, cfg.NumPlayers, params)

	assignRNG := engine.New(seed * 2)
	assignments := AssignConstraints(assignRNG, solution, cfg.NumPlayers, params.RulesPerPlayer, warmCoolBias)

	pertRNG := engine.New(seed*3 + 7)
	pcfg := PerturbConfigFromDifficulty(pertRNG, params)
	applyOverrides(&pcfg, cfg.Perturbation)
	initial, moves, atTarget := GenerateInitialState(pertRNG, solution, assignments, pcfg)

	players := make([]Player, cfg.NumPlayers)
	for i := 0; i < cfg.NumPlayers; i++ {
		voice := rules.VoiceFor(i)
		voiceRNG := engine.New(seed*5 + uint32(i))
		texts := make([]ConstraintText, 0, len(assignments[i]))
		for _, c := range assignments[i] {
			texts = append(texts, ConstraintText{Text: rules.RenderVoiced(c, voice, voiceRNG)})
		}
		players[i] = Player{ID: i + 1, Voice: string(voice), Constraints: texts}
	}

	log := make([]string, 0, len(moves))
	for _, m := range moves {
		log = append(log, m.Describe())
	}

	return Result{
		Scenario: Scenario{
			NumPlayers:      cfg.NumPlayers,
			Difficulty:      cfg.Difficulty,
			InitialBoard:    initial.View(),
			SolutionBoard:   solution.View(),
			Players:         players,
			PerturbationLog: log,
		},
		Seed:            seed,
		Solution:        solution,
		Initial:         initial,
		Assignments:     assignments,
		Moves:           moves,
		PlayersAtTarget: atTarget,
	}
}

// GenerateScenario is the external entry point: the serialized scenario
// only.
func GenerateScenario(cfg GenerateConfig) Scenario {
	return Generate(cfg).Scenario
}

func applyOverrides(pcfg *PerturbConfig, o *PerturbOverrides) {
	if o == nil {
		return
	}
	if o.NumPerturbations != nil {
		pcfg.NumPerturbations = *o.NumPerturbations
	}
	if o.MinViolationsPerPlayer != nil {
		pcfg.MinViolationsPerPlayer = *o.MinViolationsPerPlayer
	}
	if len(o.AllowedActions) > 0 {
		pcfg.AllowedActions = o.AllowedActions
	}
	if len(o.ActionWeights) > 0 {
		pcfg.ActionWeights = o.ActionWeights
	}
	if o.MaxAttempts != nil {
		pcfg.MaxAttempts = *o.MaxAttempts
	}
}
