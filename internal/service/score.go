package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

// ScoreConfig holds the points awarded per outcome.
type ScoreConfig struct {
	Win  int
	Draw int
}

type playerScoreDep interface {
	AddScore(ctx context.Context, id string, delta int) (*entity.Player, error)
}

type ScoreService struct {
	logger  *slog.Logger
	players playerScoreDep
	config  ScoreConfig
}

func NewScoreService(logger *slog.Logger, players playerScoreDep, config ScoreConfig) *ScoreService {
	return &ScoreService{
		logger:  logger,
		players: players,
		config:  config,
	}
}

type award struct {
	playerID string
	delta    int
}

// ApplyResult credits the players of a finished game according to its result.
func (that *ScoreService) ApplyResult(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "ApplyResult", "game_id", game.ID)

	if !game.IsFinished() {
		return fmt.Errorf("%w: %s", ErrGameNotFinished, game.ID)
	}

	for _, a := range that.awards(game) {
		if a.delta == 0 {
			continue
		}

		player, err := that.players.AddScore(ctx, a.playerID, a.delta)
		if err != nil {
			return fmt.Errorf("failed to add score to player %s: %w", a.playerID, err)
		}

		log.Info("score updated", "player_id", player.ID, "delta", a.delta, "score", player.Score)
	}

	return nil
}

func (that *ScoreService) awards(game *entity.Game) []award {
	switch game.Result {
	case entity.ResultWinPlayerOne, entity.ResultForfeitPlayerTwo:
		return []award{{playerID: game.Player1ID, delta: that.config.Win}}
	case entity.ResultWinPlayerTwo, entity.ResultForfeitPlayerOne:
		return []award{{playerID: game.Player2ID, delta: that.config.Win}}
	case entity.ResultDraw:
		return []award{
			{playerID: game.Player1ID, delta: that.config.Draw},
			{playerID: game.Player2ID, delta: that.config.Draw},
		}
	default:
		return nil
	}
}
