package rules

import (
	"fmt"

	"github.com/MJE43/decorum-scenario-go/internal/house"
)

// Constraint is a ground constraint: a kind plus the parameters that kind
// requires. Unused fields stay at their zero value. Score is the salience
// assigned by the miner, later adjusted by the assigner.
type Constraint struct {
	Kind   Kind
	Room   string
	Area   string
	AreaB  string
	Color  house.Color
	ColorB house.Color
	Style  house.Style
	StyleB house.Style
	Type   house.ObjectType
	TypeB  house.ObjectType
	N      int
	Score  float64
}

// Key is the canonical identity of a constraint: the kind plus its
// parameters in a fixed field order. Two constraints with equal keys are
// the same rule regardless of score.
func (c Constraint) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s|%s|%s|%d",
		c.Kind, c.Room, c.Area, c.AreaB, c.Color, c.ColorB, c.Style, c.StyleB, c.Type, c.TypeB, c.N)
}

// String identifies the constraint for logs and test failures.
func (c Constraint) String() string {
	return fmt.Sprintf("Constraint(%s)", c.Key())
}

// ReferencedRooms returns the room names the constraint speaks about
// directly: its room parameter and the rooms of its area parameters.
// Globally-quantified constraints reference no rooms.
func (c Constraint) ReferencedRooms(s *house.State) map[string]bool {
	refs := make(map[string]bool)
	if c.Room != "" {
		refs[c.Room] = true
	}
	layout := s.Layout()
	for _, area := range []string{c.Area, c.AreaB} {
		if area == "" {
			continue
		}
		for _, rn := range layout[area] {
			refs[rn] = true
		}
	}
	return refs
}
