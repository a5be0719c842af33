package entity

type Player struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

// NewPlayer returns a player with zero score.
func NewPlayer(id string) *Player {
	return &Player{ID: id}
}

// IncreaseScore adds delta to the score.
func (that *Player) IncreaseScore(delta int) {
	that.Score += delta
}
