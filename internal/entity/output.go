package entity

// GameOutput is the client facing view of a game. Storage bookkeeping such as the
// creation time and the validation memo is left out.
type GameOutput struct {
	ID           string     `json:"id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Board        [][]string `json:"board"`
	ActivePlayer Role       `json:"active_player"`
	Status       Status     `json:"status"`
	Result       Result     `json:"result"`
	WinningLine  []Coord    `json:"winning_line"`
	MoveCount    int        `json:"move_count"`
	Player1ID    string     `json:"player1"`
	Player2ID    string     `json:"player2"`
}

// Output returns a detached copy of the game for responses.
func (that *Game) Output() *GameOutput {
	line := make([]Coord, len(that.WinningLine))
	copy(line, that.WinningLine)

	return &GameOutput{
		ID:           that.ID,
		Width:        that.Width,
		Height:       that.Height,
		Board:        that.Board.Rows(),
		ActivePlayer: that.ActivePlayer,
		Status:       that.Status,
		Result:       that.Result,
		WinningLine:  line,
		MoveCount:    that.MoveCount,
		Player1ID:    that.Player1ID,
		Player2ID:    that.Player2ID,
	}
}
