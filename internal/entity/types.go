package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusPrestart Status = iota
	StatusReady
	StatusInProgress
	StatusFinished
)

var statusNames = map[Status]string{
	StatusPrestart:   "prestart",
	StatusReady:      "ready",
	StatusInProgress: "inprogress",
	StatusFinished:   "finished",
}

func (that Status) String() string {
	if name, ok := statusNames[that]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(that))
}

func (that Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: status %d", apperror.ErrUnknownValue, int(that))
	}
	return []byte(name), nil
}

func (that *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*that = status
			return nil
		}
	}
	return fmt.Errorf("%w: status %q", apperror.ErrUnknownValue, text)
}

// Result is the outcome of a game, meaningful only once it is finished.
type Result int

const (
	ResultNone Result = iota
	ResultDraw
	ResultWinPlayerOne
	ResultWinPlayerTwo
	ResultForfeitPlayerOne
	ResultForfeitPlayerTwo
)

var resultNames = map[Result]string{
	ResultNone:             "none",
	ResultDraw:             "draw",
	ResultWinPlayerOne:     "win_player1",
	ResultWinPlayerTwo:     "win_player2",
	ResultForfeitPlayerOne: "forfeit_player1",
	ResultForfeitPlayerTwo: "forfeit_player2",
}

func (that Result) String() string {
	if name, ok := resultNames[that]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", int(that))
}

func (that Result) MarshalText() ([]byte, error) {
	name, ok := resultNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: result %d", apperror.ErrUnknownValue, int(that))
	}
	return []byte(name), nil
}

func (that *Result) UnmarshalText(text []byte) error {
	for result, name := range resultNames {
		if name == string(text) {
			*that = result
			return nil
		}
	}
	return fmt.Errorf("%w: result %q", apperror.ErrUnknownValue, text)
}

// IsWin reports whether the result was reached by completing a line.
func (that Result) IsWin() bool {
	return that == ResultWinPlayerOne || that == ResultWinPlayerTwo
}

// IsForfeit reports whether the result was reached by a player giving up.
func (that Result) IsForfeit() bool {
	return that == ResultForfeitPlayerOne || that == ResultForfeitPlayerTwo
}

// Role identifies one of the two seats of a game.
type Role int

const (
	PlayerOne Role = iota
	PlayerTwo
)

func (that Role) String() string {
	switch that {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("role(%d)", int(that))
	}
}

func (that Role) MarshalText() ([]byte, error) {
	if that != PlayerOne && that != PlayerTwo {
		return nil, fmt.Errorf("%w: role %d", apperror.ErrUnknownValue, int(that))
	}
	return []byte(that.String()), nil
}

func (that *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "player1":
		*that = PlayerOne
	case "player2":
		*that = PlayerTwo
	default:
		return fmt.Errorf("%w: role %q", apperror.ErrUnknownValue, text)
	}
	return nil
}

// Opponent returns the other seat.
func (that Role) Opponent() Role {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Token returns the mark the role places on the board.
func (that Role) Token() Cell {
	if that == PlayerOne {
		return TokenX
	}
	return TokenO
}

func (that Role) winResult() Result {
	if that == PlayerOne {
		return ResultWinPlayerOne
	}
	return ResultWinPlayerTwo
}

func (that Role) forfeitResult() Result {
	if that == PlayerOne {
		return ResultForfeitPlayerOne
	}
	return ResultForfeitPlayerTwo
}

// Coord is an (x, y) board position. It encodes as a two element JSON array.
type Coord [2]int

func (that Coord) X() int { return that[0] }
func (that Coord) Y() int { return that[1] }

// Move is a request to place the acting player's token at (X, Y).
type Move struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	PlayerID string `json:"player_id"`
}
