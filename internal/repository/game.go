package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const defaultUpdateRetries = 3

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	// Update loads the game, applies fn and stores the result only if nobody wrote the
	// game in between. An error from fn aborts the update and is returned as is.
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type dbGame struct {
	client  *redis.Client
	retries int
}

// NewGameRepository returns a redis backed repository. A non-positive retries value
// falls back to the default.
func NewGameRepository(client *redis.Client, retries int) GameRepository {
	if retries <= 0 {
		retries = defaultUpdateRetries
	}

	return &dbGame{
		client:  client,
		retries: retries,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return getGame(ctx, that.client, id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

func (that *dbGame) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	for attempt := 0; attempt < that.retries; attempt++ {
		var updated *entity.Game

		err := that.client.Watch(ctx, func(tx *redis.Tx) error {
			game, err := getGame(ctx, tx, id)
			if err != nil {
				return err
			}

			if err = fn(game); err != nil {
				return err
			}

			gameJSON, err := json.Marshal(game)
			if err != nil {
				return fmt.Errorf("could not marshal game: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, gameJSON, 0)
				return nil
			})
			if err != nil {
				return err
			}

			updated = game
			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrConcurrentUpdate, id)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getGame(ctx context.Context, client getter, id string) (*entity.Game, error) {
	response, err := client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if err = existingGame.Validate(); err != nil {
		return nil, fmt.Errorf("stored game %s is corrupt: %w", id, err)
	}

	return &existingGame, nil
}
