package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 10

	// WinLength is the number of aligned tokens that wins the game.
	WinLength = 5
)

// GameOptions carries creation parameters. Zero dimensions fall back to the defaults,
// zero maxima disable the upper bound.
type GameOptions struct {
	Width         int
	Height        int
	DefaultWidth  int
	DefaultHeight int
	MaxWidth      int
	MaxHeight     int
	CreatedAt     time.Time
}

type Game struct {
	ID           string    `json:"id"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Board        Board     `json:"board"`
	ActivePlayer Role      `json:"active_player"`
	Status       Status    `json:"status"`
	Result       Result    `json:"result"`
	WinningLine  []Coord   `json:"winning_line"`
	MoveCount    int       `json:"move_count"`
	Player1ID    string    `json:"player1"`
	Player2ID    string    `json:"player2"`
	CreatedAt    time.Time `json:"created_at"`

	validationErr error
}

// NewGame issues a challenge from player1ID to player2ID.
func NewGame(id, player1ID, player2ID string, opts GameOptions) (*Game, error) {
	if player1ID == "" || player2ID == "" {
		return nil, apperror.ErrPlayerNotSet
	}

	if player1ID == player2ID {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSamePlayers, player1ID)
	}

	width, height, err := opts.dimensions()
	if err != nil {
		return nil, err
	}

	game := &Game{
		ID:           id,
		Width:        width,
		Height:       height,
		ActivePlayer: PlayerOne,
		Status:       StatusPrestart,
		Result:       ResultNone,
		WinningLine:  []Coord{},
		Player1ID:    player1ID,
		Player2ID:    player2ID,
		CreatedAt:    opts.CreatedAt,
	}
	game.Board.Initialize(width, height)

	return game, nil
}

func (that GameOptions) dimensions() (int, int, error) {
	width, height := that.Width, that.Height

	if width == 0 {
		width = that.DefaultWidth
		if width == 0 {
			width = DefaultWidth
		}
	}

	if height == 0 {
		height = that.DefaultHeight
		if height == 0 {
			height = DefaultHeight
		}
	}

	if width < 0 || height < 0 ||
		(that.MaxWidth > 0 && width > that.MaxWidth) ||
		(that.MaxHeight > 0 && height > that.MaxHeight) {
		return 0, 0, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	return width, height, nil
}

// RoleOf maps a player id to its seat. The second value is false for non-participants.
func (that *Game) RoleOf(playerID string) (Role, bool) {
	switch playerID {
	case that.Player1ID:
		return PlayerOne, true
	case that.Player2ID:
		return PlayerTwo, true
	default:
		return PlayerOne, false
	}
}

// PlayerID returns the id seated at role.
func (that *Game) PlayerID(role Role) string {
	if role == PlayerOne {
		return that.Player1ID
	}
	return that.Player2ID
}

// IsParticipant reports whether playerID is one of the two players.
func (that *Game) IsParticipant(playerID string) bool {
	_, ok := that.RoleOf(playerID)
	return ok
}

func (that *Game) IsPrestart() bool {
	return that.Status == StatusPrestart
}

func (that *Game) IsReady() bool {
	return that.Status == StatusReady
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// SubmitMove validates, applies and scores a move as one unit. On any validation
// failure the game is left untouched.
func (that *Game) SubmitMove(move Move) error {
	if err := that.ValidateMove(move); err != nil {
		return err
	}

	mover := that.ActivePlayer
	that.applyMove(move)

	if line := that.winningLine(move.X, move.Y, mover.Token()); line != nil {
		that.finishGame(mover.winResult(), line)
		return nil
	}

	if that.isDraw() {
		that.finishGame(ResultDraw, nil)
		return nil
	}

	that.ActivePlayer = mover.Opponent()

	return nil
}

// Validate checks the structural invariants of a decoded game.
func (that *Game) Validate() error {
	if that.Player1ID == "" || that.Player2ID == "" {
		return apperror.ErrPlayerNotSet
	}

	if that.Player1ID == that.Player2ID {
		return fmt.Errorf("%w: %s", apperror.ErrSamePlayers, that.Player1ID)
	}

	if that.Board.Width() != that.Width || that.Board.Height() != that.Height {
		return fmt.Errorf("%w: board %dx%d, game %dx%d", apperror.ErrInvalidDimensions,
			that.Board.Width(), that.Board.Height(), that.Width, that.Height)
	}

	if occupied := that.Board.Occupied(); occupied != that.MoveCount {
		return fmt.Errorf("move count %d does not match %d occupied cells", that.MoveCount, occupied)
	}

	if (that.Result != ResultNone) != that.IsFinished() {
		return fmt.Errorf("result %s inconsistent with status %s", that.Result, that.Status)
	}

	if that.Result.IsWin() != (len(that.WinningLine) == WinLength) {
		return fmt.Errorf("result %s inconsistent with winning line of %d", that.Result, len(that.WinningLine))
	}

	return nil
}
