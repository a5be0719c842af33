package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
)

// AcceptChallenge moves a PRESTART game to READY on behalf of the challenged player.
func (that *Game) AcceptChallenge(playerID string) error {
	if !that.IsPrestart() {
		return fmt.Errorf("%w: status is %s", apperror.ErrInvalidStatusForAccept, that.Status)
	}

	if playerID != that.Player2ID {
		return apperror.ErrNotChallengee
	}

	that.Status = StatusReady

	return nil
}

// Forfeit ends the game in favour of the opponent of playerID. The board is not touched.
func (that *Game) Forfeit(playerID string) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	role, ok := that.RoleOf(playerID)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrNotParticipant, playerID)
	}

	that.finishGame(role.forfeitResult(), nil)

	return nil
}

// finishGame is a no-op on a finished game, so a decided outcome is never overwritten.
func (that *Game) finishGame(result Result, line []Coord) {
	if that.IsFinished() {
		return
	}

	that.Status = StatusFinished
	that.Result = result

	if line != nil {
		that.WinningLine = line
	} else if that.WinningLine == nil {
		that.WinningLine = []Coord{}
	}
}
