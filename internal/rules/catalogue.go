package rules

import (
	"github.com/MJE43/decorum-scenario-go/internal/house"
)

// Candidates enumerates every constraint the state satisfies, tagged with a
// base salience score. Scores are tuned weights; the assigner draws against
// them, so changing any value changes the generated rule distribution.
//
// Emission is constructive: each group only builds constraints it has just
// proved true on the state, so a candidate that fails Evaluate is a bug.
func Candidates(s *house.State) []Constraint {
	var cands []Constraint
	add := func(c Constraint) { cands = append(cands, c) }

	roomNames := s.RoomNames()

	// Room-specific constraints.
	for _, rn := range roomNames {
		room := s.Room(rn)

		for _, color := range house.Colors {
			if room.WallColor == color {
				add(Constraint{Kind: RoomWallColorIs, Room: rn, Color: color, Score: 6.0})
			} else {
				add(Constraint{Kind: RoomWallColorIsNot, Room: rn, Color: color, Score: 3.0})
			}
		}

		if room.WallColor.Warm() {
			add(Constraint{Kind: RoomWallWarm, Room: rn, Score: 4.0})
		} else {
			add(Constraint{Kind: RoomWallCool, Room: rn, Score: 4.0})
		}

		for _, ot := range house.ObjectTypes {
			if room.Object(ot) != nil {
				add(Constraint{Kind: RoomHasObjectType, Room: rn, Type: ot, Score: 5.0})
			} else {
				// Trivial negations about empty rooms score low.
				sc := 2.0
				if room.ObjectCount() > 0 {
					sc = 4.0
				}
				add(Constraint{Kind: RoomNoObjectType, Room: rn, Type: ot, Score: sc})
			}
		}

		for _, style := range house.Styles {
			if room.HasStyle(style) {
				add(Constraint{Kind: RoomHasStyle, Room: rn, Style: style, Score: 5.5})
			} else {
				sc := 2.0
				if room.ObjectCount() > 0 {
					sc = 4.5
				}
				add(Constraint{Kind: RoomNoStyle, Room: rn, Style: style, Score: sc})
			}
		}

		for _, color := range house.Colors {
			if room.HasObjectColor(color) {
				add(Constraint{Kind: RoomHasColorObject, Room: rn, Color: color, Score: 5.0})
			} else {
				sc := 2.0
				if room.ObjectCount() > 0 {
					sc = 4.0
				}
				add(Constraint{Kind: RoomNoColorObject, Room: rn, Color: color, Score: sc})
			}
		}
	}

	// Area constraints.
	for _, area := range house.AreaNames {
		areaRooms := s.RoomsInArea(area)
		areaHasObjects := false
		for _, r := range areaRooms {
			if r.ObjectCount() > 0 {
				areaHasObjects = true
			}
		}

		for _, ot := range house.ObjectTypes {
			has := false
			for _, r := range areaRooms {
				if r.Object(ot) != nil {
					has = true
				}
			}
			if has {
				add(Constraint{Kind: AreaHasObjectType, Area: area, Type: ot, Score: 6.0})
			} else {
				sc := 2.0
				if areaHasObjects {
					sc = 5.5
				}
				add(Constraint{Kind: AreaNoObjectType, Area: area, Type: ot, Score: sc})
			}
		}

		for _, color := range house.Colors {
			has := false
			for _, r := range areaRooms {
				if r.HasObjectColor(color) {
					has = true
				}
			}
			if has {
				add(Constraint{Kind: AreaHasColorObject, Area: area, Color: color, Score: 5.5})
			} else {
				sc := 2.0
				if areaHasObjects {
					sc = 5.0
				}
				add(Constraint{Kind: AreaNoColorObject, Area: area, Color: color, Score: sc})
			}
		}

		for _, style := range house.Styles {
			has := false
			for _, r := range areaRooms {
				if r.HasStyle(style) {
					has = true
				}
			}
			if has {
				add(Constraint{Kind: AreaHasStyle, Area: area, Style: style, Score: 5.5})
			} else {
				sc := 2.0
				if areaHasObjects {
					sc = 5.0
				}
				add(Constraint{Kind: AreaNoStyle, Area: area, Style: style, Score: sc})
			}
		}
	}

	// Global counts.
	for _, color := range house.Colors {
		nWalls := s.CountWallColor(color)
		if nWalls >= 1 && nWalls <= 3 {
			sc := 5.5
			if nWalls <= 2 {
				sc = 7.0
			}
			add(Constraint{Kind: ExactlyNRoomsColor, Color: color, N: nWalls, Score: sc})
		}

		nObjs := s.CountObjectColor(color)
		if nObjs == 0 {
			add(Constraint{Kind: NoColorObjectsInHouse, Color: color, Score: 6.0})
		} else {
			// Only the tightest thresholds; tighter scores higher.
			lo := nObjs - 1
			if lo < 1 {
				lo = 1
			}
			for k := lo; k <= nObjs; k++ {
				sc := 4.0 + 2.5*(float64(k)/float64(nObjs))
				add(Constraint{Kind: AtLeastNColorObjects, Color: color, N: k, Score: sc})
			}
		}
	}

	for _, ot := range house.ObjectTypes {
		count := s.CountObjectType(ot)
		if count >= 2 {
			lo := count - 1
			if lo < 2 {
				lo = 2
			}
			for k := lo; k <= count; k++ {
				sc := 4.0 + 2.0*(float64(k)/float64(count))
				add(Constraint{Kind: AtLeastNObjectType, Type: ot, N: k, Score: sc})
			}
		}
	}

	for _, style := range house.Styles {
		count := s.CountObjectStyle(style)
		if count >= 2 {
			lo := count - 1
			if lo < 2 {
				lo = 2
			}
			for k := lo; k <= count; k++ {
				sc := 4.0 + 2.0*(float64(k)/float64(count))
				add(Constraint{Kind: AtLeastNStyleObjects, Style: style, N: k, Score: sc})
			}
		}
	}

	// Global qualitative: only emitted when at least two instances exist and
	// actually share the property, never on vacuous truth.
	for _, ot := range house.ObjectTypes {
		toks := objectsOfType(s, ot)
		if len(toks) < 2 {
			continue
		}
		sameColor, sameStyle := true, true
		for _, tok := range toks[1:] {
			if tok.Color() != toks[0].Color() {
				sameColor = false
			}
			if tok.Style != toks[0].Style {
				sameStyle = false
			}
		}
		if sameColor {
			add(Constraint{Kind: AllObjectTypeSameColor, Type: ot, Color: toks[0].Color(), Score: 7.5})
		}
		if sameStyle {
			add(Constraint{Kind: AllObjectTypeSameStyle, Type: ot, Style: toks[0].Style, Score: 7.5})
		}
	}

	// Relational.
	for i, ca := range house.Colors {
		for _, cb := range house.Colors[i+1:] {
			na, nb := s.CountWallColor(ca), s.CountWallColor(cb)
			if na != nb {
				continue
			}
			sc := 4.0
			if na > 0 {
				sc = 7.5
			}
			add(Constraint{Kind: ColorRoomCountEqual, Color: ca, ColorB: cb, Score: sc})
		}
	}

	for _, ta := range house.ObjectTypes {
		for _, tb := range house.ObjectTypes {
			if ta == tb {
				continue
			}
			valid, hasTypeA := true, false
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.Object(ta) != nil {
					hasTypeA = true
					if room.Object(tb) == nil {
						valid = false
						break
					}
				}
			}
			if valid && hasTypeA {
				add(Constraint{Kind: RoomWithTypeMustHaveType, Type: ta, TypeB: tb, Score: 8.0})
			}
		}
	}

	for _, style := range house.Styles {
		valid, exists := true, false
		for _, rn := range roomNames {
			count := 0
			for _, tok := range s.Room(rn).Objects() {
				if tok.Style == style {
					count++
				}
			}
			if count >= 1 {
				exists = true
			}
			if count > 1 {
				valid = false
				break
			}
		}
		if valid && exists {
			add(Constraint{Kind: NoRoomMoreThanOneStyle, Style: style, Score: 6.5})
		}
	}

	// Temperature counts.
	warmCt, coolCt := s.CountWarmObjects(), s.CountCoolObjects()
	if warmCt >= 2 {
		add(Constraint{Kind: AtLeastNWarmObjects, N: warmCt, Score: 5.0})
	}
	if warmCt >= 3 {
		add(Constraint{Kind: AtLeastNWarmObjects, N: warmCt - 1, Score: 4.0})
	}
	if coolCt >= 2 {
		add(Constraint{Kind: AtLeastNCoolObjects, N: coolCt, Score: 5.0})
	}
	if coolCt >= 3 {
		add(Constraint{Kind: AtLeastNCoolObjects, N: coolCt - 1, Score: 4.0})
	}
	if warmCt > coolCt {
		add(Constraint{Kind: MoreWarmThanCool, Score: 5.5})
	}
	if coolCt > warmCt {
		add(Constraint{Kind: MoreCoolThanWarm, Score: 5.5})
	}

	// Spatial.
	cands = append(cands, spatialCandidates(s)...)

	// Conditional.
	cands = append(cands, conditionalCandidates(s)...)

	// Wall/object matching and exclusion zones.
	anyObjects := len(s.AllObjects()) > 0
	if anyObjects {
		matchesEverywhere, matchesNowhere := true, true
		for _, rn := range roomNames {
			room := s.Room(rn)
			if room.HasObjectColor(room.WallColor) {
				matchesNowhere = false
			} else if room.ObjectCount() > 0 {
				matchesEverywhere = false
			}
		}
		if matchesEverywhere {
			add(Constraint{Kind: WallMatchesObject, Score: 7.0})
		}
		if matchesNowhere {
			add(Constraint{Kind: NoWallMatchesObject, Score: 6.5})
		}
	}

	for _, color := range house.Colors {
		for _, ot := range house.ObjectTypes {
			qualifying := 0
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.WallColor == color && room.Object(ot) != nil {
					qualifying++
				}
			}
			// Exactly one keeps the rule informative: it permits the room
			// that qualifies and blocks a second one.
			if qualifying == 1 {
				add(Constraint{Kind: ExclusionZone, Color: color, Type: ot, Score: 6.5})
			}
		}
	}

	// Quantity comparisons: larger gaps score higher.
	cands = append(cands, quantityCandidates(s)...)

	return cands
}

func spatialCandidates(s *house.State) []Constraint {
	var cands []Constraint

	directions := []struct {
		kind    Kind
		partner func(string) *house.Room
	}{
		{AboveStyleNoWallColor, s.Above},
		{BelowStyleNoWallColor, s.Below},
		{BesideStyleNoWallColor, s.Beside},
		{DiagStyleNoWallColor, s.Diagonal},
	}

	for _, style := range house.Styles {
		if s.CountObjectStyle(style) == 0 {
			continue
		}
		for _, d := range directions {
			// Require at least one style room with a partner in this
			// direction, so the rule is never emitted vacuously.
			grounded := false
			for _, rn := range s.RoomNames() {
				if s.Room(rn).HasStyle(style) && d.partner(rn) != nil {
					grounded = true
					break
				}
			}
			if !grounded {
				continue
			}
			for _, color := range house.Colors {
				if styleNeighborClear(s, style, color, d.partner) {
					cands = append(cands, Constraint{Kind: d.kind, Style: style, Color: color, Score: 6.5})
				}
			}
		}
	}

	sameDiag := true
	for _, p := range s.DiagonalPairs() {
		if s.Room(p[0]).WallColor != s.Room(p[1]).WallColor {
			sameDiag = false
		}
	}
	if sameDiag {
		cands = append(cands, Constraint{Kind: DiagRoomsSameWall, Score: 7.5})
	}

	diffAdj := true
	for _, p := range s.AdjacentPairs() {
		if s.Room(p[0]).WallColor == s.Room(p[1]).WallColor {
			diffAdj = false
		}
	}
	if diffAdj {
		cands = append(cands, Constraint{Kind: AdjRoomsDiffWall, Score: 8.0})
	}

	return cands
}

func conditionalCandidates(s *house.State) []Constraint {
	var cands []Constraint
	roomNames := s.RoomNames()

	wallColorUsed := func(c house.Color) bool { return s.CountWallColor(c) > 0 }

	for _, wall := range house.Colors {
		if !wallColorUsed(wall) {
			continue
		}

		for _, style := range house.Styles {
			clean := true
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.WallColor == wall && room.HasStyle(style) {
					clean = false
					break
				}
			}
			if !clean {
				continue
			}
			// The rule carries more weight when the forbidden style exists
			// somewhere else in the house to be kept out.
			sc := 5.0
			if s.CountObjectStyle(style) > 0 {
				sc = 7.5
			}
			cands = append(cands, Constraint{Kind: WallColorForbidsStyle, Color: wall, Style: style, Score: sc})
		}

		for _, obj := range house.Colors {
			clean := true
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.WallColor == wall && room.HasObjectColor(obj) {
					clean = false
					break
				}
			}
			if !clean {
				continue
			}
			sc := 4.5
			if s.CountObjectColor(obj) > 0 {
				sc = 7.0
			}
			cands = append(cands, Constraint{Kind: WallColorForbidsObjColor, Color: wall, ColorB: obj, Score: sc})
		}
	}

	for i, sa := range house.Styles {
		for _, sb := range house.Styles[i+1:] {
			if s.CountObjectStyle(sa) == 0 || s.CountObjectStyle(sb) == 0 {
				continue
			}
			together := false
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.HasStyle(sa) && room.HasStyle(sb) {
					together = true
					break
				}
			}
			if !together {
				cands = append(cands, Constraint{Kind: StylePairNeverTogether, Style: sa, StyleB: sb, Score: 6.5})
			}
		}
	}

	for _, ot := range house.ObjectTypes {
		count := s.CountObjectType(ot)
		if count == 0 {
			continue
		}
		var wall house.Color
		uniform := true
		first := true
		for _, rn := range roomNames {
			room := s.Room(rn)
			if room.Object(ot) == nil {
				continue
			}
			if first {
				wall = room.WallColor
				first = false
			} else if room.WallColor != wall {
				uniform = false
				break
			}
		}
		if uniform {
			sc := 5.0
			if count >= 2 {
				sc = 7.0
			}
			cands = append(cands, Constraint{Kind: ObjTypeRequiresWallColor, Type: ot, Color: wall, Score: sc})
		}
	}

	for i, ta := range house.ObjectTypes {
		for _, tb := range house.ObjectTypes[i+1:] {
			if s.CountObjectType(ta) == 0 || s.CountObjectType(tb) == 0 {
				continue
			}
			together := false
			for _, rn := range roomNames {
				room := s.Room(rn)
				if room.Object(ta) != nil && room.Object(tb) != nil {
					together = true
					break
				}
			}
			if !together {
				cands = append(cands, Constraint{Kind: ObjTypeForbidsObjType, Type: ta, TypeB: tb, Score: 6.5})
			}
		}
	}

	return cands
}

func quantityCandidates(s *house.State) []Constraint {
	var cands []Constraint

	gapScore := func(diff int) float64 {
		if diff > 3 {
			diff = 3
		}
		return 6.0 + float64(diff)
	}

	for _, color := range house.Colors {
		cc := s.CountObjectColor(color)
		for _, style := range house.Styles {
			sc := s.CountObjectStyle(style)
			if cc >= 2 && cc > sc {
				cands = append(cands, Constraint{Kind: ColorObjsGtStyleObjs, Color: color, Style: style, Score: gapScore(cc - sc)})
			}
			if sc >= 2 && sc > cc {
				cands = append(cands, Constraint{Kind: StyleObjsGtColorObjs, Style: style, Color: color, Score: gapScore(sc - cc)})
			}
		}
	}

	for _, ta := range house.ObjectTypes {
		for _, areaA := range house.VerticalAreas {
			na := countTypeInArea(s, ta, areaA)
			for _, tb := range house.ObjectTypes {
				for _, areaB := range house.VerticalAreas {
					if ta == tb && areaA == areaB {
						continue
					}
					nb := countTypeInArea(s, tb, areaB)
					if na > nb {
						cands = append(cands, Constraint{
							Kind: MoreTypeInAreaThan,
							Type: ta, Area: areaA,
							TypeB: tb, AreaB: areaB,
							Score: gapScore(na - nb),
						})
					}
				}
			}
		}
	}

	for _, ca := range house.Colors {
		na := s.CountObjectColor(ca)
		if na < 2 {
			continue
		}
		for _, cb := range house.Colors {
			if ca == cb {
				continue
			}
			nb := s.CountObjectColor(cb)
			if na > nb {
				cands = append(cands, Constraint{Kind: ColorCountGtColorCount, Color: ca, ColorB: cb, Score: gapScore(na - nb)})
			}
		}
	}

	return cands
}
