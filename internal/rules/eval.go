package rules

import (
	"fmt"

	"github.com/MJE43/decorum-scenario-go/internal/house"
)

// Evaluate reports whether the constraint is satisfied by the state. Every
// kind evaluates totally and without side effects; an unknown kind panics,
// since it can only mean a broken catalogue registration.
func Evaluate(c Constraint, s *house.State) bool {
	switch c.Kind {

	case RoomWallColorIs:
		return s.Room(c.Room).WallColor == c.Color
	case RoomWallColorIsNot:
		return s.Room(c.Room).WallColor != c.Color
	case RoomWallWarm:
		return s.Room(c.Room).WallColor.Warm()
	case RoomWallCool:
		return s.Room(c.Room).WallColor.Cool()

	case RoomHasObjectType:
		return s.Room(c.Room).Object(c.Type) != nil
	case RoomNoObjectType:
		return s.Room(c.Room).Object(c.Type) == nil
	case RoomHasStyle:
		return s.Room(c.Room).HasStyle(c.Style)
	case RoomNoStyle:
		return !s.Room(c.Room).HasStyle(c.Style)
	case RoomHasColorObject:
		return s.Room(c.Room).HasObjectColor(c.Color)
	case RoomNoColorObject:
		return !s.Room(c.Room).HasObjectColor(c.Color)

	case AreaHasObjectType:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.Object(c.Type) != nil {
				return true
			}
		}
		return false
	case AreaNoObjectType:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.Object(c.Type) != nil {
				return false
			}
		}
		return true
	case AreaHasColorObject:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.HasObjectColor(c.Color) {
				return true
			}
		}
		return false
	case AreaNoColorObject:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.HasObjectColor(c.Color) {
				return false
			}
		}
		return true
	case AreaHasStyle:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.HasStyle(c.Style) {
				return true
			}
		}
		return false
	case AreaNoStyle:
		for _, r := range s.RoomsInArea(c.Area) {
			if r.HasStyle(c.Style) {
				return false
			}
		}
		return true

	case ExactlyNRoomsColor:
		return s.CountWallColor(c.Color) == c.N
	case AtLeastNObjectType:
		return s.CountObjectType(c.Type) >= c.N
	case AtLeastNColorObjects:
		return s.CountObjectColor(c.Color) >= c.N
	case AtLeastNStyleObjects:
		return s.CountObjectStyle(c.Style) >= c.N
	case NoColorObjectsInHouse:
		return s.CountObjectColor(c.Color) == 0
	case AtLeastNWarmObjects:
		return s.CountWarmObjects() >= c.N
	case AtLeastNCoolObjects:
		return s.CountCoolObjects() >= c.N

	case AllObjectTypeSameColor:
		// Vacuously true below two instances.
		toks := objectsOfType(s, c.Type)
		if len(toks) < 2 {
			return true
		}
		for _, tok := range toks {
			if tok.Color() != c.Color {
				return false
			}
		}
		return true
	case AllObjectTypeSameStyle:
		toks := objectsOfType(s, c.Type)
		if len(toks) < 2 {
			return true
		}
		for _, tok := range toks {
			if tok.Style != c.Style {
				return false
			}
		}
		return true

	case ColorRoomCountEqual:
		return s.CountWallColor(c.Color) == s.CountWallColor(c.ColorB)
	case RoomWithTypeMustHaveType:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.Object(c.Type) != nil && room.Object(c.TypeB) == nil {
				return false
			}
		}
		return true
	case NoRoomMoreThanOneStyle:
		for _, rn := range s.RoomNames() {
			count := 0
			for _, tok := range s.Room(rn).Objects() {
				if tok.Style == c.Style {
					count++
				}
			}
			if count > 1 {
				return false
			}
		}
		return true

	case AboveStyleNoWallColor:
		return styleNeighborClear(s, c.Style, c.Color, s.Above)
	case BelowStyleNoWallColor:
		return styleNeighborClear(s, c.Style, c.Color, s.Below)
	case BesideStyleNoWallColor:
		return styleNeighborClear(s, c.Style, c.Color, s.Beside)
	case DiagStyleNoWallColor:
		return styleNeighborClear(s, c.Style, c.Color, s.Diagonal)
	case DiagRoomsSameWall:
		for _, p := range s.DiagonalPairs() {
			if s.Room(p[0]).WallColor != s.Room(p[1]).WallColor {
				return false
			}
		}
		return true
	case AdjRoomsDiffWall:
		for _, p := range s.AdjacentPairs() {
			if s.Room(p[0]).WallColor == s.Room(p[1]).WallColor {
				return false
			}
		}
		return true

	case WallColorForbidsStyle:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.WallColor == c.Color && room.HasStyle(c.Style) {
				return false
			}
		}
		return true
	case WallColorForbidsObjColor:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.WallColor == c.Color && room.HasObjectColor(c.ColorB) {
				return false
			}
		}
		return true
	case StylePairNeverTogether:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.HasStyle(c.Style) && room.HasStyle(c.StyleB) {
				return false
			}
		}
		return true
	case ObjTypeRequiresWallColor:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.Object(c.Type) != nil && room.WallColor != c.Color {
				return false
			}
		}
		return true
	case ObjTypeForbidsObjType:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.Object(c.Type) != nil && room.Object(c.TypeB) != nil {
				return false
			}
		}
		return true

	case MoreWarmThanCool:
		return s.CountWarmObjects() > s.CountCoolObjects()
	case MoreCoolThanWarm:
		return s.CountCoolObjects() > s.CountWarmObjects()
	case WallMatchesObject:
		// Empty rooms are vacuous; only furnished rooms must match.
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.ObjectCount() > 0 && !room.HasObjectColor(room.WallColor) {
				return false
			}
		}
		return true
	case NoWallMatchesObject:
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.HasObjectColor(room.WallColor) {
				return false
			}
		}
		return true
	case ExclusionZone:
		// At most one qualifying room; zero also satisfies.
		count := 0
		for _, rn := range s.RoomNames() {
			room := s.Room(rn)
			if room.WallColor == c.Color && room.Object(c.Type) != nil {
				count++
			}
		}
		return count <= 1

	case ColorObjsGtStyleObjs:
		return s.CountObjectColor(c.Color) > s.CountObjectStyle(c.Style)
	case StyleObjsGtColorObjs:
		return s.CountObjectStyle(c.Style) > s.CountObjectColor(c.Color)
	case MoreTypeInAreaThan:
		return countTypeInArea(s, c.Type, c.Area) > countTypeInArea(s, c.TypeB, c.AreaB)
	case ColorCountGtColorCount:
		return s.CountObjectColor(c.Color) > s.CountObjectColor(c.ColorB)
	}

	panic(fmt.Sprintf("rules: unknown constraint kind %q", c.Kind))
}

// objectsOfType collects the tokens of one type across the house.
func objectsOfType(s *house.State, t house.ObjectType) []house.Token {
	out := make([]house.Token, 0, 4)
	for _, rn := range s.RoomNames() {
		if tok := s.Room(rn).Object(t); tok != nil {
			out = append(out, *tok)
		}
	}
	return out
}

// styleNeighborClear reports that no room holding the style has its partner
// in the given direction painted the color. Rooms without a partner in that
// direction, and houses without the style at all, satisfy vacuously.
func styleNeighborClear(s *house.State, st house.Style, c house.Color, partner func(string) *house.Room) bool {
	for _, rn := range s.RoomNames() {
		if !s.Room(rn).HasStyle(st) {
			continue
		}
		if p := partner(rn); p != nil && p.WallColor == c {
			return false
		}
	}
	return true
}

// countTypeInArea counts rooms of the area holding an object of the type.
func countTypeInArea(s *house.State, t house.ObjectType, area string) int {
	n := 0
	for _, r := range s.RoomsInArea(area) {
		if r.Object(t) != nil {
			n++
		}
	}
	return n
}
