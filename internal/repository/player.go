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

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	// AddScore atomically adds delta to the stored score of the player.
	AddScore(ctx context.Context, id string, delta int) (*entity.Player, error)
}

type dbPlayer struct {
	client  *redis.Client
	retries int
}

func NewPlayerRepository(client *redis.Client, retries int) PlayerRepository {
	if retries <= 0 {
		retries = defaultUpdateRetries
	}

	return &dbPlayer{
		client:  client,
		retries: retries,
	}
}

func playerKey(id string) string {
	return "player:" + id
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	err = that.client.Set(ctx, playerKey(player.ID), playerJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	return getPlayer(ctx, that.client, id)
}

func (that *dbPlayer) AddScore(ctx context.Context, id string, delta int) (*entity.Player, error) {
	key := playerKey(id)

	for attempt := 0; attempt < that.retries; attempt++ {
		var updated *entity.Player

		err := that.client.Watch(ctx, func(tx *redis.Tx) error {
			player, err := getPlayer(ctx, tx, id)
			if err != nil {
				return err
			}

			player.IncreaseScore(delta)

			playerJSON, err := json.Marshal(player)
			if err != nil {
				return fmt.Errorf("failed to marshal player: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, playerJSON, 0)
				return nil
			})
			if err != nil {
				return err
			}

			updated = player
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

	return nil, fmt.Errorf("%w: player %s", apperror.ErrConcurrentUpdate, id)
}

func getPlayer(ctx context.Context, client getter, id string) (*entity.Player, error) {
	response, err := client.Get(ctx, playerKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	var existingPlayer entity.Player
	if err = json.Unmarshal([]byte(response), &existingPlayer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &existingPlayer, nil
}
