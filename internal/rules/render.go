package rules

import (
	"strconv"
	"strings"

	"github.com/MJE43/decorum-scenario-go/internal/engine"
)

// Templates keep to "must" / "must not" / "may" / "may not" modals so the
// voice transforms can rewrite them mechanically.
var templates = map[Kind]string{
	RoomWallColorIs:    "The {room} must be painted {color}.",
	RoomWallColorIsNot: "The {room} must not be painted {color}.",
	RoomWallWarm:       "The {room} must be painted a warm color.",
	RoomWallCool:       "The {room} must be painted a cool color.",

	RoomHasObjectType:  "The {room} must contain a {objType}.",
	RoomNoObjectType:   "The {room} must not contain a {objType}.",
	RoomHasStyle:       "The {room} must contain at least one {style} item.",
	RoomNoStyle:        "The {room} must not contain any {style} items.",
	RoomHasColorObject: "The {room} must contain at least one {color} object.",
	RoomNoColorObject:  "The {room} must not contain any {color} objects.",

	AreaHasObjectType:  "The {area} must contain a {objType}.",
	AreaNoObjectType:   "The {area} must not contain any {objTypePlural}.",
	AreaHasColorObject: "The {area} must contain at least one {color} object.",
	AreaNoColorObject:  "The {area} must not contain any {color} objects.",
	AreaHasStyle:       "The {area} must contain at least one {style} item.",
	AreaNoStyle:        "The {area} must not contain any {style} items.",

	ExactlyNRoomsColor:    "Exactly {n} {roomWord} must be painted {color}.",
	AtLeastNObjectType:    "There must be at least {n} {objTypePlural} in the house.",
	AtLeastNColorObjects:  "There must be at least {n} {color} {objectWord} in the house.",
	AtLeastNStyleObjects:  "There must be at least {n} {style} {objectWord} in the house.",
	NoColorObjectsInHouse: "There must not be any {color} objects in the house.",
	AtLeastNWarmObjects:   "There must be at least {n} warm-colored {objectWord} in the house.",
	AtLeastNCoolObjects:   "There must be at least {n} cool-colored {objectWord} in the house.",

	AllObjectTypeSameColor: "All {objTypePlural} in the house must be {color}.",
	AllObjectTypeSameStyle: "All {objTypePlural} in the house must be {style}.",

	ColorRoomCountEqual:      "The number of {colorA} rooms must equal the number of {colorB} rooms.",
	RoomWithTypeMustHaveType: "Any room with a {objTypeA} must also contain a {objTypeB}.",
	NoRoomMoreThanOneStyle:   "No room may contain more than one {style} item.",

	AboveStyleNoWallColor:  "No room containing {aStyle} item may have a {color} room above it.",
	BelowStyleNoWallColor:  "No room containing {aStyle} item may have a {color} room below it.",
	BesideStyleNoWallColor: "No room containing {aStyle} item may have a {color} room beside it.",
	DiagStyleNoWallColor:   "No room containing {aStyle} item may have a {color} room diagonal from it.",
	DiagRoomsSameWall:      "Rooms diagonal from each other must be painted the same color.",
	AdjRoomsDiffWall:       "No two adjacent rooms may be painted the same color.",

	WallColorForbidsStyle:    "A {color} room must not contain any {style} items.",
	WallColorForbidsObjColor: "A {colorA} room must not contain any {colorB} objects.",
	StylePairNeverTogether:   "No room may contain both {aStyleA} item and {aStyleB} item.",
	ObjTypeRequiresWallColor: "Every room with a {objType} must be painted {color}.",
	ObjTypeForbidsObjType:    "No room may contain both a {objTypeA} and a {objTypeB}.",

	MoreWarmThanCool:    "The house must contain more warm-colored objects than cool-colored objects.",
	MoreCoolThanWarm:    "The house must contain more cool-colored objects than warm-colored objects.",
	WallMatchesObject:   "Every room with objects must contain at least one object matching its wall color.",
	NoWallMatchesObject: "No room may contain an object matching its wall color.",
	ExclusionZone:       "At most one {color} room may contain a {objType}.",

	ColorObjsGtStyleObjs:   "There must be more {color} objects than {style} objects in the house.",
	StyleObjsGtColorObjs:   "There must be more {style} objects than {color} objects in the house.",
	MoreTypeInAreaThan:     "There must be more {objTypeAPlural} {areaA} than {objTypeBPlural} {areaB}.",
	ColorCountGtColorCount: "There must be more {colorA} objects than {colorB} objects in the house.",
}

// Render produces the neutral-voice sentence for a constraint.
func Render(c Constraint) string {
	tmpl, ok := templates[c.Kind]
	if !ok {
		return c.String()
	}

	pairs := []string{
		"{room}", c.Room,
		"{area}", c.Area,
		"{areaA}", c.Area,
		"{areaB}", c.AreaB,
		"{color}", string(c.Color),
		"{colorA}", string(c.Color),
		"{colorB}", string(c.ColorB),
		"{style}", c.Style.Lower(),
		"{styleA}", c.Style.Lower(),
		"{styleB}", c.StyleB.Lower(),
		"{aStyle}", withArticle(c.Style.Lower()),
		"{aStyleA}", withArticle(c.Style.Lower()),
		"{aStyleB}", withArticle(c.StyleB.Lower()),
		"{objType}", c.Type.Lower(),
		"{objTypePlural}", c.Type.Plural(),
		"{objTypeA}", c.Type.Lower(),
		"{objTypeAPlural}", c.Type.Plural(),
		"{objTypeB}", c.TypeB.Lower(),
		"{objTypeBPlural}", c.TypeB.Plural(),
		"{n}", strconv.Itoa(c.N),
		"{roomWord}", countWord(c.N, "room"),
		"{objectWord}", countWord(c.N, "object"),
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func countWord(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// withArticle prepends the indefinite article ("an antique", "a retro").
func withArticle(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}

// RenderVoiced renders a constraint in a player's voice. The neutral voice
// passes the template through untouched; the other voices draw a prefix
// from their list with the given generator and rewrite the modal verbs to
// fit it. Prefix draws must come from the player's dedicated generator so
// that rendering stays reproducible per player.
func RenderVoiced(c Constraint, v Voice, rng *engine.RNG) string {
	text := Render(c)
	if v == VoiceNeutral {
		return text
	}
	prefixes, ok := voicePrefixes[v]
	if !ok {
		return text
	}
	prefix := engine.Choice(rng, prefixes)
	return prefix + transformForVoice(text, v) + "."
}
