package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
)

// ValidateMove checks a move against status, turn, bounds and occupancy, in that order.
// It records the failure, or clears the previous one, and never touches the board.
func (that *Game) ValidateMove(move Move) error {
	that.validationErr = that.checkMove(move)
	return that.validationErr
}

// LastValidationError returns the failure of the latest ValidateMove call, nil after a success.
func (that *Game) LastValidationError() error {
	return that.validationErr
}

func (that *Game) checkMove(move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	// a non-participant never owns the turn
	if role, ok := that.RoleOf(move.PlayerID); !ok || role != that.ActivePlayer {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.Contains(move.X, move.Y) {
		return fmt.Errorf("%w: %d/%d on %dx%d", apperror.ErrOutOfBounds, move.X, move.Y, that.Width, that.Height)
	}

	if that.Board.Get(move.X, move.Y) != EmptyCell {
		return fmt.Errorf("%w: slot %d/%d", apperror.ErrCellOccupied, move.X, move.Y)
	}

	return nil
}

// applyMove places the active player's token. Turn and result are left to the caller.
func (that *Game) applyMove(move Move) {
	that.Board.Set(move.X, move.Y, that.ActivePlayer.Token())
	that.MoveCount++

	if that.IsPrestart() || that.IsReady() {
		that.Status = StatusInProgress
	}
}

// isDraw reports a full board; only meaningful after a move that did not win.
func (that *Game) isDraw() bool {
	return that.MoveCount == that.Width*that.Height
}
