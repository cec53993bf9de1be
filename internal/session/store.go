// Package session keeps generated scenarios in memory under opaque tokens
// and mediates condition sharing between players. Nothing is ever written
// to disk; sessions vanish at expiry or process exit.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MJE43/decorum-scenario-go/internal/house"
	"github.com/MJE43/decorum-scenario-go/internal/scenario"
)

// ErrNotFound marks lookups of unknown or expired tokens.
var ErrNotFound = fmt.Errorf("session: not found")

// Session is one stored scenario plus its sharing state. Shared[p][i]
// records that player p+1 revealed rule i to the table.
type Session struct {
	Token     string            `json:"token"`
	Scenario  scenario.Scenario `json:"scenario"`
	Shared    [][]bool          `json:"shared"`
	CreatedAt time.Time         `json:"createdAt"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// SharedRule is one rule a player revealed.
type SharedRule struct {
	PlayerID  int    `json:"playerId"`
	RuleIndex int    `json:"ruleIndex"`
	Text      string `json:"text"`
}

// PlayerView is what one player may see: the boards' public side, their
// own rules and whatever the table has shared.
type PlayerView struct {
	Token        string              `json:"token"`
	NumPlayers   int                 `json:"numPlayers"`
	Difficulty   scenario.Difficulty `json:"difficulty"`
	InitialBoard house.View          `json:"initialBoard"`
	Player       scenario.Player     `json:"player"`
	SharedRules  []SharedRule        `json:"sharedRules"`
}

// Store is an in-memory session store with TTL expiry. Safe for
// concurrent use.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
	now      func() time.Time
}

// New creates a store whose sessions live for ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create stores a scenario under a fresh opaque token.
func (s *Store) Create(sc scenario.Scenario) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	shared := make([][]bool, len(sc.Players))
	for i, p := range sc.Players {
		shared[i] = make([]bool, len(p.Constraints))
	}

	now := s.now()
	sess := &Session{
		Token:     uuid.NewString(),
		Scenario:  sc,
		Shared:    shared,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for a token, or ErrNotFound once it expired.
func (s *Store) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Share marks one of a player's rules as revealed and returns it.
// PlayerID is 1-based, ruleIndex 0-based.
func (s *Store) Share(token string, playerID, ruleIndex int) (SharedRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	sess, ok := s.sessions[token]
	if !ok {
		return SharedRule{}, ErrNotFound
	}
	if playerID < 1 || playerID > len(sess.Scenario.Players) {
		return SharedRule{}, fmt.Errorf("session: no player %d", playerID)
	}
	player := sess.Scenario.Players[playerID-1]
	if ruleIndex < 0 || ruleIndex >= len(player.Constraints) {
		return SharedRule{}, fmt.Errorf("session: player %d has no rule %d", playerID, ruleIndex)
	}

	sess.Shared[playerID-1][ruleIndex] = true
	return SharedRule{
		PlayerID:  playerID,
		RuleIndex: ruleIndex,
		Text:      player.Constraints[ruleIndex].Text,
	}, nil
}

// PlayerView assembles what one player is allowed to see: the initial
// board, their own rules, and rules other players shared. The solution
// board stays hidden.
func (s *Store) PlayerView(token string, playerID int) (PlayerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	sess, ok := s.sessions[token]
	if !ok {
		return PlayerView{}, ErrNotFound
	}
	if playerID < 1 || playerID > len(sess.Scenario.Players) {
		return PlayerView{}, fmt.Errorf("session: no player %d", playerID)
	}

	var shared []SharedRule
	for pi, flags := range sess.Shared {
		if pi == playerID-1 {
			continue
		}
		for ri, on := range flags {
			if !on {
				continue
			}
			shared = append(shared, SharedRule{
				PlayerID:  pi + 1,
				RuleIndex: ri,
				Text:      sess.Scenario.Players[pi].Constraints[ri].Text,
			})
		}
	}

	return PlayerView{
		Token:        token,
		NumPlayers:   sess.Scenario.NumPlayers,
		Difficulty:   sess.Scenario.Difficulty,
		InitialBoard: sess.Scenario.InitialBoard,
		Player:       sess.Scenario.Players[playerID-1],
		SharedRules:  shared,
	}, nil
}

// Len reports how many live sessions the store holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	return len(s.sessions)
}

// purgeLocked drops expired sessions. Callers hold s.mu.
func (s *Store) purgeLocked() {
	now := s.now()
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
