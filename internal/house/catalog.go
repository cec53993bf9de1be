// Package house models the four-room house a scenario is played in: the
// closed color/style/object palettes, the token identity rules, the 2x2
// room grid with its named areas, and the primitive board mutations the
// perturbation walk is built from.
package house

import "strings"

// Color is a wall or object color. The palette is closed.
type Color string

const (
	Red    Color = "Red"
	Yellow Color = "Yellow"
	Blue   Color = "Blue"
	Green  Color = "Green"
)

// Colors lists the full palette in canonical order.
var Colors = []Color{Red, Yellow, Blue, Green}

// Warm reports whether the color is warm. Red and Yellow are warm,
// Blue and Green are cool.
func (c Color) Warm() bool { return c == Red || c == Yellow }

// Cool reports whether the color is cool.
func (c Color) Cool() bool { return c == Blue || c == Green }

// Style is an object style. The set is closed.
type Style string

const (
	Modern  Style = "Modern"
	Antique Style = "Antique"
	Retro   Style = "Retro"
	Unusual Style = "Unusual"
)

// Styles lists all styles in canonical order.
var Styles = []Style{Modern, Antique, Retro, Unusual}

// Lower returns the style name in lowercase for rendered text.
func (s Style) Lower() string { return strings.ToLower(string(s)) }

// ObjectType is one of the three object slots every room has.
type ObjectType string

const (
	Lamp        ObjectType = "Lamp"
	WallHanging ObjectType = "Wall Hanging"
	Curio       ObjectType = "Curio"
)

// ObjectTypes lists all object types in canonical slot order.
var ObjectTypes = []ObjectType{Lamp, WallHanging, Curio}

// Lower returns the type name in lowercase for rendered text.
func (t ObjectType) Lower() string { return strings.ToLower(string(t)) }

// Plural returns the lowercase plural used in rendered text.
func (t ObjectType) Plural() string {
	switch t {
	case Lamp:
		return "lamps"
	case WallHanging:
		return "wall hangings"
	case Curio:
		return "curios"
	}
	return strings.ToLower(string(t)) + "s"
}

// StyleColor fixes the color of every (type, style) pairing, per the game's
// component set. The map is bijective per type: within one object type every
// style has a distinct color, so color determines style and vice versa.
var StyleColor = map[ObjectType]map[Style]Color{
	Lamp: {
		Modern:  Blue,
		Antique: Yellow,
		Retro:   Red,
		Unusual: Green,
	},
	WallHanging: {
		Modern:  Red,
		Antique: Green,
		Retro:   Blue,
		Unusual: Yellow,
	},
	Curio: {
		Modern:  Green,
		Antique: Blue,
		Retro:   Yellow,
		Unusual: Red,
	},
}

// ColorStyle is the inverse of StyleColor: (type, color) to style.
var ColorStyle = func() map[ObjectType]map[Color]Style {
	inv := make(map[ObjectType]map[Color]Style, len(StyleColor))
	for ot, m := range StyleColor {
		inv[ot] = make(map[Color]Style, len(m))
		for style, color := range m {
			inv[ot][color] = style
		}
	}
	return inv
}()
