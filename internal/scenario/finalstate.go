package scenario

import (
	"github.com/MJE43/decorum-scenario-go/internal/engine"
	"github.com/MJE43/decorum-scenario-go/internal/house"
)

// slot is one placement target: a room and the object type of its slot.
type slot struct {
	room string
	typ  house.ObjectType
}

// GenerateFinalState builds a plausible solution board. Wall colors come
// from a reduced palette with at least two distinct colors on the walls;
// objects are placed with optional pattern biasing (a themed object type,
// wall-color matching) so the miner later finds structure worth turning
// into rules.
func GenerateFinalState(rng *engine.RNG, numPlayers int, p Params) *house.State {
	state := house.New(numPlayers)
	roomNames := state.RoomNames()

	numColors := p.NumColors
	if numColors > len(house.Colors) {
		numColors = len(house.Colors)
	}
	numStyles := p.NumStyles
	if numStyles > len(house.Styles) {
		numStyles = len(house.Styles)
	}
	colorsUsed := engine.Sample(rng, house.Colors, numColors)
	stylesUsed := engine.Sample(rng, house.Styles, numStyles)

	// Wall colors, resampled until at least two distinct ones appear.
	var walls []house.Color
	for attempt := 0; attempt < 100; attempt++ {
		walls = walls[:0]
		distinct := make(map[house.Color]bool)
		for range roomNames {
			c := engine.Choice(rng, colorsUsed)
			walls = append(walls, c)
			distinct[c] = true
		}
		if len(distinct) >= 2 {
			break
		}
	}
	for i, rn := range roomNames {
		state.PaintRoom(rn, walls[i])
	}

	target := rng.Int(p.TotalItemsMin, p.TotalItemsMax)

	allSlots := make([]slot, 0, len(roomNames)*len(house.ObjectTypes))
	for _, rn := range roomNames {
		for _, ot := range house.ObjectTypes {
			allSlots = append(allSlots, slot{room: rn, typ: ot})
		}
	}
	shuffled := engine.Shuffle(rng, allSlots)

	// Optional theme: one object type leaning hard into one style.
	var themeType house.ObjectType
	var themeStyle house.Style
	hasTheme := rng.Float64() < 0.4
	if hasTheme {
		themeType = engine.Choice(rng, house.ObjectTypes)
		themeStyle = engine.Choice(rng, stylesUsed)
	}

	placed := 0
	for _, sl := range shuffled {
		if placed >= target {
			break
		}

		style := engine.Choice(rng, stylesUsed)

		if hasTheme && sl.typ == themeType && rng.Float64() < 0.7 {
			style = themeStyle
		} else if rng.Float64() < p.PatternProb {
			// Try to echo the wall color in the object.
			wall := state.Room(sl.room).WallColor
			if cand, ok := house.ColorStyle[sl.typ][wall]; ok {
				if styleChosen(stylesUsed, cand) {
					style = cand
				}
			}
		}

		state.AddObject(sl.room, house.Token{Type: sl.typ, Style: style})
		placed++
	}

	ensureObjectTypeCoverage(rng, state, stylesUsed)
	ensureStyleVariety(rng, state, stylesUsed)

	return state
}

func styleChosen(stylesUsed []house.Style, s house.Style) bool {
	for _, st := range stylesUsed {
		if st == s {
			return true
		}
	}
	return false
}

// ensureObjectTypeCoverage places one object of any type that is missing
// from the house entirely.
func ensureObjectTypeCoverage(rng *engine.RNG, state *house.State, stylesUsed []house.Style) {
	for _, ot := range house.ObjectTypes {
		if state.CountObjectType(ot) > 0 {
			continue
		}
		var empty []string
		for _, rn := range state.RoomNames() {
			if state.Room(rn).Object(ot) == nil {
				empty = append(empty, rn)
			}
		}
		if len(empty) == 0 {
			continue
		}
		rn := engine.Choice(rng, empty)
		style := engine.Choice(rng, stylesUsed)
		state.AddObject(rn, house.Token{Type: ot, Style: style})
	}
}

// ensureStyleVariety reskins one object when every placed object shares a
// single style and the palette offers an alternative. The first object
// found is the one changed; the scan stops there.
func ensureStyleVariety(rng *engine.RNG, state *house.State, stylesUsed []house.Style) {
	present := make(map[house.Style]bool)
	for _, tok := range state.AllObjects() {
		present[tok.Style] = true
	}
	if len(present) >= 2 || len(stylesUsed) < 2 {
		return
	}
	for _, rn := range state.RoomNames() {
		for _, ot := range house.ObjectTypes {
			tok := state.Room(rn).Object(ot)
			if tok == nil {
				continue
			}
			others := make([]house.Style, 0, len(stylesUsed)-1)
			for _, st := range stylesUsed {
				if st != tok.Style {
					others = append(others, st)
				}
			}
			if len(others) == 0 {
				return
			}
			newStyle := engine.Choice(rng, others)
			state.SwapObject(rn, house.Token{Type: ot, Style: newStyle})
			return
		}
	}
}
