package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/entity"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/repository"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type scorerDep interface {
	ApplyResult(ctx context.Context, game *entity.Game) error
}

// GameConfig holds the board limits applied to new challenges.
type GameConfig struct {
	DefaultWidth  int
	DefaultHeight int
	MaxWidth      int
	MaxHeight     int
}

type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	scorer     scorerDep

	config GameConfig
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep, scorer scorerDep, config GameConfig) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		scorer:     scorer,

		config: config,
	}
}

// GetOrCreatePlayer returns the player with the given id, registering it when unknown.
// An empty id registers a player under a fresh id.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx, uuid.NewString())
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player, err = that.createPlayer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to create player %s: %w", id, err)
		}

		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// CreateGame issues a challenge from player1ID to player2ID. Zero dimensions use the
// configured defaults.
func (that *GameManager) CreateGame(ctx context.Context, player1ID, player2ID string, width, height int) (*entity.GameOutput, error) {
	log := that.logger.With("method", "CreateGame")

	game, err := entity.NewGame(uuid.NewString(), player1ID, player2ID, entity.GameOptions{
		Width:         width,
		Height:        height,
		DefaultWidth:  that.config.DefaultWidth,
		DefaultHeight: that.config.DefaultHeight,
		MaxWidth:      that.config.MaxWidth,
		MaxHeight:     that.config.MaxHeight,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	for _, playerID := range []string{player1ID, player2ID} {
		if _, err = that.playerRepo.GetByID(ctx, playerID); err != nil {
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game created", "game_id", game.ID, "width", game.Width, "height", game.Height)

	return game.Output(), nil
}

// GetGame returns the game state. A non-empty playerID must belong to a participant.
func (that *GameManager) GetGame(ctx context.Context, gameID, playerID string) (*entity.GameOutput, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if playerID != "" && !game.IsParticipant(playerID) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotParticipant, playerID)
	}

	return game.Output(), nil
}

func (that *GameManager) AcceptChallenge(ctx context.Context, gameID, playerID string) (*entity.GameOutput, error) {
	return that.update(ctx, "AcceptChallenge", gameID, func(game *entity.Game) error {
		return game.AcceptChallenge(playerID)
	})
}

func (that *GameManager) SubmitMove(ctx context.Context, gameID string, move entity.Move) (*entity.GameOutput, error) {
	return that.update(ctx, "SubmitMove", gameID, func(game *entity.Game) error {
		return game.SubmitMove(move)
	})
}

func (that *GameManager) Forfeit(ctx context.Context, gameID, playerID string) (*entity.GameOutput, error) {
	return that.update(ctx, "Forfeit", gameID, func(game *entity.Game) error {
		return game.Forfeit(playerID)
	})
}

// update runs op on the stored game and settles scores once the game has just finished.
func (that *GameManager) update(ctx context.Context, method, gameID string, op func(game *entity.Game) error) (*entity.GameOutput, error) {
	log := that.logger.With("method", method, "game_id", gameID)

	var wasFinished bool
	game, err := that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		wasFinished = game.IsFinished()
		return op(game)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if !wasFinished && game.IsFinished() {
		log.Info("game finished", "result", game.Result.String())

		if err = that.scorer.ApplyResult(ctx, game); err != nil {
			log.Error("failed to apply result", "error", err)
		}
	}

	return game.Output(), nil
}

func (that *GameManager) createPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player := entity.NewPlayer(id)

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}
