package entity

// Player is a display name bound to a piece kind.
type Player struct {
	Name  string `json:"name"`
	Piece Cell   `json:"piece"`
}
