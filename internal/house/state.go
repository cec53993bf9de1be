package house

import (
	"sort"
	"strings"
)

// Room sets per player-count variant. Order is grid order: the first two
// rooms sit upstairs left-to-right, the last two downstairs left-to-right.
var (
	Rooms2P  = []string{"Bathroom", "Bedroom", "Living Room", "Kitchen"}
	Rooms34P = []string{"Bedroom A", "Bedroom B", "Living Room", "Kitchen"}
)

// Named areas of the house. Upstairs and downstairs are the vertical areas,
// left side and right side the horizontal ones. Every room belongs to
// exactly one of each.
const (
	AreaUpstairs   = "upstairs"
	AreaDownstairs = "downstairs"
	AreaLeft       = "left side"
	AreaRight      = "right side"
)

// AreaNames lists all areas in canonical order.
var AreaNames = []string{AreaUpstairs, AreaDownstairs, AreaLeft, AreaRight}

// VerticalAreas lists the two floor areas.
var VerticalAreas = []string{AreaUpstairs, AreaDownstairs}

// RoomNamesFor returns the room set for a player count.
func RoomNamesFor(numPlayers int) []string {
	if numPlayers == 2 {
		return Rooms2P
	}
	return Rooms34P
}

// State is the full house: four rooms on a 2x2 grid. Not safe for
// concurrent mutation; generation code holds one State per goroutine.
type State struct {
	NumPlayers int
	order      []string
	rooms      map[string]*Room
}

// New builds a house for the player count with every wall Red and every
// slot empty.
func New(numPlayers int) *State {
	names := RoomNamesFor(numPlayers)
	s := &State{
		NumPlayers: numPlayers,
		order:      names,
		rooms:      make(map[string]*Room, len(names)),
	}
	for _, name := range names {
		s.rooms[name] = &Room{Name: name, WallColor: Red}
	}
	return s
}

// RoomNames returns the room names in grid order.
func (s *State) RoomNames() []string { return s.order }

// Room returns the named room, or nil for an unknown name.
func (s *State) Room(name string) *Room { return s.rooms[name] }

// Layout maps each area name to its two rooms, derived from grid order.
func (s *State) Layout() map[string][]string {
	return map[string][]string{
		AreaUpstairs:   {s.order[0], s.order[1]},
		AreaDownstairs: {s.order[2], s.order[3]},
		AreaLeft:       {s.order[0], s.order[2]},
		AreaRight:      {s.order[1], s.order[3]},
	}
}

// RoomsInArea returns the rooms of an area in layout order.
func (s *State) RoomsInArea(area string) []*Room {
	names := s.Layout()[area]
	out := make([]*Room, 0, len(names))
	for _, n := range names {
		out = append(out, s.rooms[n])
	}
	return out
}

// gridIndex returns the room's position in grid order, or -1.
func (s *State) gridIndex(name string) int {
	for i, n := range s.order {
		if n == name {
			return i
		}
	}
	return -1
}

// roomAt returns the room at grid (row, col), or nil off the grid.
func (s *State) roomAt(row, col int) *Room {
	if row < 0 || row > 1 || col < 0 || col > 1 {
		return nil
	}
	return s.rooms[s.order[row*2+col]]
}

// Above returns the room directly above the named room, or nil for an
// upstairs room.
func (s *State) Above(name string) *Room {
	i := s.gridIndex(name)
	if i < 0 {
		return nil
	}
	return s.roomAt(i/2-1, i%2)
}

// Below returns the room directly below the named room, or nil for a
// downstairs room.
func (s *State) Below(name string) *Room {
	i := s.gridIndex(name)
	if i < 0 {
		return nil
	}
	return s.roomAt(i/2+1, i%2)
}

// Beside returns the room on the same floor as the named room.
func (s *State) Beside(name string) *Room {
	i := s.gridIndex(name)
	if i < 0 {
		return nil
	}
	return s.roomAt(i/2, 1-i%2)
}

// Diagonal returns the room's single diagonal partner.
func (s *State) Diagonal(name string) *Room {
	i := s.gridIndex(name)
	if i < 0 {
		return nil
	}
	return s.roomAt(1-i/2, 1-i%2)
}

// AdjacentPairs enumerates the four rook-adjacent room pairs. Each pair is
// ordered lexicographically and appears exactly once; the pair list itself
// is sorted.
func (s *State) AdjacentPairs() [][2]string {
	pairs := [][2]string{
		orderedPair(s.order[0], s.order[1]),
		orderedPair(s.order[2], s.order[3]),
		orderedPair(s.order[0], s.order[2]),
		orderedPair(s.order[1], s.order[3]),
	}
	sortPairs(pairs)
	return pairs
}

// DiagonalPairs enumerates the two diagonal room pairs, canonically ordered.
func (s *State) DiagonalPairs() [][2]string {
	pairs := [][2]string{
		orderedPair(s.order[0], s.order[3]),
		orderedPair(s.order[1], s.order[2]),
	}
	sortPairs(pairs)
	return pairs
}

func orderedPair(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

func sortPairs(pairs [][2]string) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
}

// AllObjects returns every token in the house, rooms in grid order.
func (s *State) AllObjects() []Token {
	out := make([]Token, 0, 12)
	for _, name := range s.order {
		out = append(out, s.rooms[name].Objects()...)
	}
	return out
}

// CountWallColor returns how many rooms are painted the color.
func (s *State) CountWallColor(c Color) int {
	n := 0
	for _, name := range s.order {
		if s.rooms[name].WallColor == c {
			n++
		}
	}
	return n
}

// CountObjectColor returns how many objects in the house have the color.
func (s *State) CountObjectColor(c Color) int {
	n := 0
	for _, tok := range s.AllObjects() {
		if tok.Color() == c {
			n++
		}
	}
	return n
}

// CountObjectStyle returns how many objects in the house have the style.
func (s *State) CountObjectStyle(st Style) int {
	n := 0
	for _, tok := range s.AllObjects() {
		if tok.Style == st {
			n++
		}
	}
	return n
}

// CountObjectType returns how many rooms hold an object of the type.
func (s *State) CountObjectType(t ObjectType) int {
	n := 0
	for _, name := range s.order {
		if s.rooms[name].Object(t) != nil {
			n++
		}
	}
	return n
}

// CountWarmObjects returns how many objects are warm colored.
func (s *State) CountWarmObjects() int {
	n := 0
	for _, tok := range s.AllObjects() {
		if tok.Color().Warm() {
			n++
		}
	}
	return n
}

// CountCoolObjects returns how many objects are cool colored.
func (s *State) CountCoolObjects() int {
	n := 0
	for _, tok := range s.AllObjects() {
		if tok.Color().Cool() {
			n++
		}
	}
	return n
}

// AddObject places tok in its slot. Returns false, leaving the state
// untouched, when the slot is occupied.
func (s *State) AddObject(roomName string, tok Token) bool {
	room := s.rooms[roomName]
	if room.Object(tok.Type) != nil {
		return false
	}
	t := tok
	room.setObject(tok.Type, &t)
	return true
}

// RemoveObject empties the slot for the type and returns the removed token,
// or nil when the slot was already empty.
func (s *State) RemoveObject(roomName string, t ObjectType) *Token {
	room := s.rooms[roomName]
	old := room.Object(t)
	if old == nil {
		return nil
	}
	room.setObject(t, nil)
	return old
}

// SwapObject replaces the token in tok's slot and returns the old token,
// or nil, leaving the state untouched, when the slot is empty.
func (s *State) SwapObject(roomName string, tok Token) *Token {
	room := s.rooms[roomName]
	old := room.Object(tok.Type)
	if old == nil {
		return nil
	}
	t := tok
	room.setObject(tok.Type, &t)
	return old
}

// PaintRoom repaints a room and returns the previous color.
func (s *State) PaintRoom(roomName string, c Color) Color {
	room := s.rooms[roomName]
	old := room.WallColor
	room.WallColor = c
	return old
}

// DeepCopy returns an independent copy of the state.
func (s *State) DeepCopy() *State {
	out := &State{
		NumPlayers: s.NumPlayers,
		order:      s.order,
		rooms:      make(map[string]*Room, len(s.rooms)),
	}
	for name, room := range s.rooms {
		cp := &Room{Name: room.Name, WallColor: room.WallColor}
		for _, ot := range ObjectTypes {
			if tok := room.Object(ot); tok != nil {
				t := *tok
				cp.setObject(ot, &t)
			}
		}
		out.rooms[name] = cp
	}
	return out
}

// Fingerprint returns a canonical key for the board configuration: rooms in
// lexicographic name order, each contributing its wall color and the style
// in each slot (empty slots contribute the empty string). Two states are
// semantically equal exactly when their fingerprints match. Used for cycle
// detection during the perturbation walk.
func (s *State) Fingerprint() string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		room := s.rooms[name]
		b.WriteString(string(room.WallColor))
		for _, ot := range ObjectTypes {
			b.WriteByte('|')
			if tok := room.Object(ot); tok != nil {
				b.WriteString(string(tok.Style))
			}
		}
		b.WriteByte(';')
	}
	return b.String()
}
