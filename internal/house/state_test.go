package house

import (
	"testing"
)

func TestNewState(t *testing.T) {
	tests := []struct {
		name       string
		numPlayers int
		wantRooms  []string
	}{
		{name: "2 players", numPlayers: 2, wantRooms: Rooms2P},
		{name: "3 players", numPlayers: 3, wantRooms: Rooms34P},
		{name: "4 players", numPlayers: 4, wantRooms: Rooms34P},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.numPlayers)
			names := s.RoomNames()
			if len(names) != 4 {
				t.Fatalf("got %d rooms, want 4", len(names))
			}
			for i, want := range tt.wantRooms {
				if names[i] != want {
					t.Errorf("room %d = %q, want %q", i, names[i], want)
				}
				room := s.Room(want)
				if room.WallColor != Red {
					t.Errorf("%s initial wall = %s, want Red", want, room.WallColor)
				}
				if room.ObjectCount() != 0 {
					t.Errorf("%s starts with %d objects", want, room.ObjectCount())
				}
			}
		})
	}
}

func TestLayoutPartition(t *testing.T) {
	for _, numPlayers := range []int{2, 3} {
		s := New(numPlayers)
		layout := s.Layout()

		// Every room is in exactly one vertical and one horizontal area.
		for _, name := range s.RoomNames() {
			vert, horiz := 0, 0
			for _, area := range []string{AreaUpstairs, AreaDownstairs} {
				for _, rn := range layout[area] {
					if rn == name {
						vert++
					}
				}
			}
			for _, area := range []string{AreaLeft, AreaRight} {
				for _, rn := range layout[area] {
					if rn == name {
						horiz++
					}
				}
			}
			if vert != 1 || horiz != 1 {
				t.Errorf("%d players: %s in %d vertical and %d horizontal areas", numPlayers, name, vert, horiz)
			}
		}
		for _, area := range AreaNames {
			if len(layout[area]) != 2 {
				t.Errorf("area %q has %d rooms, want 2", area, len(layout[area]))
			}
		}
	}
}

func TestGridNeighbors(t *testing.T) {
	s := New(2)
	// Grid: Bathroom Bedroom / Living Room Kitchen.
	tests := []struct {
		room                       string
		above, below, beside, diag string
	}{
		{room: "Bathroom", above: "", below: "Living Room", beside: "Bedroom", diag: "Kitchen"},
		{room: "Bedroom", above: "", below: "Kitchen", beside: "Bathroom", diag: "Living Room"},
		{room: "Living Room", above: "Bathroom", below: "", beside: "Kitchen", diag: "Bedroom"},
		{room: "Kitchen", above: "Bedroom", below: "", beside: "Living Room", diag: "Bathroom"},
	}

	name := func(r *Room) string {
		if r == nil {
			return ""
		}
		return r.Name
	}

	for _, tt := range tests {
		t.Run(tt.room, func(t *testing.T) {
			if got := name(s.Above(tt.room)); got != tt.above {
				t.Errorf("Above = %q, want %q", got, tt.above)
			}
			if got := name(s.Below(tt.room)); got != tt.below {
				t.Errorf("Below = %q, want %q", got, tt.below)
			}
			if got := name(s.Beside(tt.room)); got != tt.beside {
				t.Errorf("Beside = %q, want %q", got, tt.beside)
			}
			if got := name(s.Diagonal(tt.room)); got != tt.diag {
				t.Errorf("Diagonal = %q, want %q", got, tt.diag)
			}
		})
	}
}

func TestPairEnumerations(t *testing.T) {
	s := New(2)

	adj := s.AdjacentPairs()
	if len(adj) != 4 {
		t.Fatalf("got %d adjacent pairs, want 4", len(adj))
	}
	diag := s.DiagonalPairs()
	if len(diag) != 2 {
		t.Fatalf("got %d diagonal pairs, want 2", len(diag))
	}

	seen := make(map[[2]string]bool)
	for _, p := range append(append([][2]string{}, adj...), diag...) {
		if p[0] >= p[1] {
			t.Errorf("pair %v is not in lexicographic order", p)
		}
		if seen[p] {
			t.Errorf("pair %v appears twice", p)
		}
		seen[p] = true
	}
	// Rook pairs and diagonal pairs together cover all 6 room pairs.
	if len(seen) != 6 {
		t.Errorf("pairs cover %d distinct pairs, want 6", len(seen))
	}
}

func TestMutations(t *testing.T) {
	s := New(2)

	if !s.AddObject("Kitchen", Token{Type: Lamp, Style: Modern}) {
		t.Fatal("AddObject into empty slot failed")
	}
	if s.AddObject("Kitchen", Token{Type: Lamp, Style: Retro}) {
		t.Error("AddObject into occupied slot succeeded")
	}
	if got := s.Room("Kitchen").Object(Lamp).Style; got != Modern {
		t.Errorf("occupied-slot add overwrote the token: style %s", got)
	}

	old := s.SwapObject("Kitchen", Token{Type: Lamp, Style: Retro})
	if old == nil || old.Style != Modern {
		t.Errorf("SwapObject returned %v, want Modern lamp", old)
	}
	if s.SwapObject("Kitchen", Token{Type: Curio, Style: Retro}) != nil {
		t.Error("SwapObject on empty slot returned a token")
	}

	removed := s.RemoveObject("Kitchen", Lamp)
	if removed == nil || removed.Style != Retro {
		t.Errorf("RemoveObject returned %v, want Retro lamp", removed)
	}
	if s.RemoveObject("Kitchen", Lamp) != nil {
		t.Error("RemoveObject on empty slot returned a token")
	}

	if old := s.PaintRoom("Bedroom", Blue); old != Red {
		t.Errorf("PaintRoom returned %s, want Red", old)
	}
	if s.Room("Bedroom").WallColor != Blue {
		t.Error("PaintRoom did not repaint")
	}
}

func TestCounts(t *testing.T) {
	s := New(2)
	s.PaintRoom("Bathroom", Blue)
	s.PaintRoom("Bedroom", Blue)
	s.AddObject("Kitchen", Token{Type: Lamp, Style: Modern})        // Blue
	s.AddObject("Kitchen", Token{Type: Curio, Style: Retro})        // Yellow
	s.AddObject("Bedroom", Token{Type: WallHanging, Style: Modern}) // Red

	if got := s.CountWallColor(Blue); got != 2 {
		t.Errorf("CountWallColor(Blue) = %d, want 2", got)
	}
	if got := s.CountWallColor(Red); got != 2 {
		t.Errorf("CountWallColor(Red) = %d, want 2", got)
	}
	if got := s.CountObjectColor(Blue); got != 1 {
		t.Errorf("CountObjectColor(Blue) = %d, want 1", got)
	}
	if got := s.CountObjectStyle(Modern); got != 2 {
		t.Errorf("CountObjectStyle(Modern) = %d, want 2", got)
	}
	if got := s.CountObjectType(Lamp); got != 1 {
		t.Errorf("CountObjectType(Lamp) = %d, want 1", got)
	}
	if got := s.CountWarmObjects(); got != 2 {
		t.Errorf("CountWarmObjects = %d, want 2", got)
	}
	if got := s.CountCoolObjects(); got != 1 {
		t.Errorf("CountCoolObjects = %d, want 1", got)
	}
}

func TestFingerprintAndDeepCopy(t *testing.T) {
	s := New(2)
	s.PaintRoom("Kitchen", Green)
	s.AddObject("Bedroom", Token{Type: Lamp, Style: Antique})

	cp := s.DeepCopy()
	if cp.Fingerprint() != s.Fingerprint() {
		t.Fatal("copy fingerprint differs from original")
	}

	cp.PaintRoom("Kitchen", Blue)
	if cp.Fingerprint() == s.Fingerprint() {
		t.Error("repainting the copy did not change its fingerprint")
	}
	if s.Room("Kitchen").WallColor != Green {
		t.Error("mutating the copy touched the original")
	}

	cp2 := s.DeepCopy()
	cp2.SwapObject("Bedroom", Token{Type: Lamp, Style: Retro})
	if s.Room("Bedroom").Object(Lamp).Style != Antique {
		t.Error("swapping in the copy touched the original token")
	}
}

func TestStyleColorBijection(t *testing.T) {
	for _, ot := range ObjectTypes {
		seen := make(map[Color]bool)
		for _, st := range Styles {
			c := StyleColor[ot][st]
			if seen[c] {
				t.Errorf("%s: color %s mapped twice", ot, c)
			}
			seen[c] = true
			if ColorStyle[ot][c] != st {
				t.Errorf("%s: reverse map broken for %s", ot, st)
			}
		}
		if len(seen) != 4 {
			t.Errorf("%s: style map covers %d colors, want 4", ot, len(seen))
		}
	}
}

func TestViewAgreesWithStyleColor(t *testing.T) {
	s := New(3)
	s.AddObject("Bedroom A", Token{Type: Lamp, Style: Unusual})
	s.AddObject("Kitchen", Token{Type: Curio, Style: Modern})

	v := s.View()
	if v.NumPlayers != 3 || len(v.Rooms) != 4 {
		t.Fatalf("view shape wrong: %+v", v)
	}
	for _, rv := range v.Rooms {
		for ot, tv := range map[ObjectType]*TokenView{Lamp: rv.Lamp, WallHanging: rv.WallHanging, Curio: rv.Curio} {
			if tv == nil {
				continue
			}
			want := StyleColor[ot][Style(tv.Style)]
			if tv.Color != string(want) {
				t.Errorf("%s %s serialized color %s, want %s", rv.Name, ot, tv.Color, want)
			}
		}
	}
	if len(v.Layout[AreaUpstairs]) != 2 {
		t.Error("layout missing upstairs rooms")
	}
}
