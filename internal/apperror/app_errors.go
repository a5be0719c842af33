package apperror

import "errors"

var (
	ErrGameFinished           = errors.New("this game is already over")
	ErrNotYourTurn            = errors.New("it is not your turn")
	ErrOutOfBounds            = errors.New("coordinates are not within bounds")
	ErrCellOccupied           = errors.New("slot cannot be used")
	ErrNotChallengee          = errors.New("cannot accept challenge of game if user is not the challengee")
	ErrInvalidStatusForAccept = errors.New("cannot accept challenge of game if status is not prestart")
	ErrNotParticipant         = errors.New("game does not belong to player")
)

var (
	ErrPlayerNotSet      = errors.New("player1 and/or player2 not set")
	ErrSamePlayers       = errors.New("player1 and player2 can't be the same")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrUnknownValue      = errors.New("unknown value")
	ErrConcurrentUpdate  = errors.New("game was modified concurrently")
)
