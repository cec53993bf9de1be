package house

// TokenView is the serialized form of a placed token. The color field is
// redundant with the style but spelled out for consumers; it always agrees
// with StyleColor.
type TokenView struct {
	Style string `json:"style"`
	Color string `json:"color"`
}

// RoomView is the serialized form of one room.
type RoomView struct {
	Name        string     `json:"name"`
	WallColor   string     `json:"wallColor"`
	Lamp        *TokenView `json:"lamp"`
	WallHanging *TokenView `json:"wallHanging"`
	Curio       *TokenView `json:"curio"`
}

// View is the serialized form of a house state consumed by the HTTP
// surface and the browser viewer.
type View struct {
	NumPlayers int                 `json:"numPlayers"`
	Rooms      []RoomView          `json:"rooms"`
	Layout     map[string][]string `json:"layout"`
}

// View renders the state for serialization. Rooms appear in grid order.
func (s *State) View() View {
	v := View{
		NumPlayers: s.NumPlayers,
		Rooms:      make([]RoomView, 0, len(s.order)),
		Layout:     s.Layout(),
	}
	for _, name := range s.order {
		room := s.rooms[name]
		rv := RoomView{Name: name, WallColor: string(room.WallColor)}
		rv.Lamp = tokenView(room.Object(Lamp))
		rv.WallHanging = tokenView(room.Object(WallHanging))
		rv.Curio = tokenView(room.Object(Curio))
		v.Rooms = append(v.Rooms, rv)
	}
	return v
}

func tokenView(tok *Token) *TokenView {
	if tok == nil {
		return nil
	}
	return &TokenView{Style: string(tok.Style), Color: string(tok.Color())}
}
