// Package rules defines the constraint catalogue: the closed set of
// constraint kinds, their evaluation semantics over a house state, the
// candidate miner that enumerates satisfied constraints with salience
// scores, and the natural-language rendering with per-player voices.
package rules

// Kind tags a constraint. The set is closed; the evaluator dispatches on it
// exhaustively and treats any other value as a programming error.
type Kind string

const (
	// Room wall color.
	RoomWallColorIs    Kind = "room_wall_color_is"
	RoomWallColorIsNot Kind = "room_wall_color_is_not"
	RoomWallWarm       Kind = "room_wall_warm"
	RoomWallCool       Kind = "room_wall_cool"

	// Room object presence, style, color.
	RoomHasObjectType  Kind = "room_has_object_type"
	RoomNoObjectType   Kind = "room_no_object_type"
	RoomHasStyle       Kind = "room_has_style"
	RoomNoStyle        Kind = "room_no_style"
	RoomHasColorObject Kind = "room_has_color_object"
	RoomNoColorObject  Kind = "room_no_color_object"

	// Areas: upstairs, downstairs, left side, right side.
	AreaHasObjectType  Kind = "area_has_object_type"
	AreaNoObjectType   Kind = "area_no_object_type"
	AreaHasColorObject Kind = "area_has_color_object"
	AreaNoColorObject  Kind = "area_no_color_object"
	AreaHasStyle       Kind = "area_has_style"
	AreaNoStyle        Kind = "area_no_style"

	// Global counts.
	ExactlyNRoomsColor    Kind = "exactly_n_rooms_color"
	AtLeastNObjectType    Kind = "at_least_n_object_type"
	AtLeastNColorObjects  Kind = "at_least_n_color_objects"
	AtLeastNStyleObjects  Kind = "at_least_n_style_objects"
	NoColorObjectsInHouse Kind = "no_color_objects_in_house"
	AtLeastNWarmObjects   Kind = "at_least_n_warm_objects"
	AtLeastNCoolObjects   Kind = "at_least_n_cool_objects"

	// Global qualitative.
	AllObjectTypeSameColor Kind = "all_object_type_same_color"
	AllObjectTypeSameStyle Kind = "all_object_type_same_style"

	// Relational.
	ColorRoomCountEqual      Kind = "color_room_count_equal"
	RoomWithTypeMustHaveType Kind = "room_with_type_must_have_type"
	NoRoomMoreThanOneStyle   Kind = "no_room_more_than_one_style"

	// Spatial. The directional kinds forbid a wall color on the partner
	// room of any room holding the style; the pair kinds range over the
	// whole grid.
	AboveStyleNoWallColor  Kind = "above_style_no_wall_color"
	BelowStyleNoWallColor  Kind = "below_style_no_wall_color"
	BesideStyleNoWallColor Kind = "beside_style_no_wall_color"
	DiagStyleNoWallColor   Kind = "diag_style_no_wall_color"
	DiagRoomsSameWall      Kind = "diag_rooms_same_wall"
	AdjRoomsDiffWall       Kind = "adj_rooms_diff_wall"

	// Conditional.
	WallColorForbidsStyle    Kind = "wall_color_forbids_style"
	WallColorForbidsObjColor Kind = "wall_color_forbids_obj_color"
	StylePairNeverTogether   Kind = "style_pair_never_together"
	ObjTypeRequiresWallColor Kind = "obj_type_requires_wall_color"
	ObjTypeForbidsObjType    Kind = "obj_type_forbids_obj_type"

	// Temperature and whole-house quirks.
	MoreWarmThanCool    Kind = "more_warm_than_cool"
	MoreCoolThanWarm    Kind = "more_cool_than_warm"
	WallMatchesObject   Kind = "wall_matches_object"
	NoWallMatchesObject Kind = "no_wall_matches_object"
	ExclusionZone       Kind = "exclusion_zone"

	// Quantity comparisons.
	ColorObjsGtStyleObjs   Kind = "color_objs_gt_style_objs"
	StyleObjsGtColorObjs   Kind = "style_objs_gt_color_objs"
	MoreTypeInAreaThan     Kind = "more_type_in_area_than"
	ColorCountGtColorCount Kind = "color_count_gt_color_count"
)

// negativeKinds are the prohibitions. The assigner uses this split to mix
// each player's rule list between "must" and "must not" rules.
var negativeKinds = map[Kind]bool{
	RoomWallColorIsNot:       true,
	RoomNoObjectType:         true,
	RoomNoStyle:              true,
	RoomNoColorObject:        true,
	AreaNoObjectType:         true,
	AreaNoColorObject:        true,
	AreaNoStyle:              true,
	NoColorObjectsInHouse:    true,
	AboveStyleNoWallColor:    true,
	BelowStyleNoWallColor:    true,
	BesideStyleNoWallColor:   true,
	DiagStyleNoWallColor:     true,
	AdjRoomsDiffWall:         true,
	WallColorForbidsStyle:    true,
	WallColorForbidsObjColor: true,
	StylePairNeverTogether:   true,
	ObjTypeForbidsObjType:    true,
	ExclusionZone:            true,
	NoWallMatchesObject:      true,
}

// Negative reports whether the kind is a prohibition.
func (k Kind) Negative() bool { return negativeKinds[k] }

// warmCoolKinds are the temperature-flavored kinds whose base scores the
// assigner multiplies by the warm/cool bias.
var warmCoolKinds = map[Kind]bool{
	RoomWallWarm:        true,
	RoomWallCool:        true,
	AtLeastNWarmObjects: true,
	AtLeastNCoolObjects: true,
	MoreWarmThanCool:    true,
	MoreCoolThanWarm:    true,
}

// WarmCool reports whether the kind is temperature flavored.
func (k Kind) WarmCool() bool { return warmCoolKinds[k] }
