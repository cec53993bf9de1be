package api

// APIError is the structured error body every failing endpoint returns.
type APIError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e APIError) Error() string { return e.Message }

// Error types.
const (
	ErrTypeValidation = "validation_error"
	ErrTypeNotFound   = "not_found"
	ErrTypeInternal   = "internal_error"
)

// CreateScenarioRequest is the body of POST /api/v1/scenarios. NumPlayers
// outside {2, 3, 4} and unknown difficulties are clamped to defaults
// before the generator runs.
type CreateScenarioRequest struct {
	NumPlayers   int      `json:"numPlayers"`
	Difficulty   string   `json:"difficulty"`
	Seed         *uint32  `json:"seed,omitempty"`
	WarmCoolBias *float64 `json:"warmCoolBias,omitempty"`

	Perturbation *PerturbationRequest `json:"perturbation,omitempty"`
}

// PerturbationRequest mirrors scenario.PerturbOverrides on the wire.
type PerturbationRequest struct {
	NumPerturbations       *int               `json:"numPerturbations,omitempty"`
	MinViolationsPerPlayer *int               `json:"minViolPerPlayer,omitempty"`
	AllowedTypes           []string           `json:"allowedTypes,omitempty"`
	TypeWeights            map[string]float64 `json:"typeWeights,omitempty"`
	MaxAttempts            *int               `json:"maxAttempts,omitempty"`
}

// ShareRequest is the body of the share endpoint.
type ShareRequest struct {
	RuleIndex int `json:"ruleIndex"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Uptime   string `json:"uptime"`
}

// ShareEvent is pushed to websocket watchers when a rule is revealed.
type ShareEvent struct {
	Type      string `json:"type"`
	PlayerID  int    `json:"playerId"`
	RuleIndex int    `json:"ruleIndex"`
	Text      string `json:"text"`
}
