package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/config"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/entity"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/repository/storage"
)

func newTestComponents(t *testing.T) (context.Context, *Components) {
	t.Helper()

	ctx := context.Background()
	server := miniredis.RunT(t)

	redisStorage, err := storage.NewRedisStorage(ctx, server.Addr(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisStorage.Close() })

	conf := &config.Config{
		Game:  config.Game{DefaultWidth: 10, DefaultHeight: 10, MaxWidth: 50, MaxHeight: 50, UpdateRetries: 3},
		Score: config.Score{Win: 3, Draw: 1},
	}

	return ctx, NewComponents(slog.New(slog.NewJSONHandler(io.Discard, nil)), conf, redisStorage)
}

func TestComponents_FullGame(t *testing.T) {
	ctx, c := newTestComponents(t)
	manager := c.GameManager

	// Given: two registered players and an accepted challenge
	alice, err := manager.GetOrCreatePlayer(ctx, "alice")
	require.NoError(t, err)
	bob, err := manager.GetOrCreatePlayer(ctx, "bob")
	require.NoError(t, err)

	game, err := manager.CreateGame(ctx, alice.ID, bob.ID, 0, 0)
	require.NoError(t, err)

	game, err = manager.AcceptChallenge(ctx, game.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, game.Status)

	// When: alice builds a diagonal while bob plays along the bottom row
	for i := 0; i < 4; i++ {
		_, err = manager.SubmitMove(ctx, game.ID, entity.Move{X: i, Y: i, PlayerID: alice.ID})
		require.NoError(t, err)
		_, err = manager.SubmitMove(ctx, game.ID, entity.Move{X: i, Y: 9, PlayerID: bob.ID})
		require.NoError(t, err)
	}

	game, err = manager.SubmitMove(ctx, game.ID, entity.Move{X: 4, Y: 4, PlayerID: alice.ID})
	require.NoError(t, err)

	// Then: alice wins, the state is persisted and only she is credited
	assert.Equal(t, entity.ResultWinPlayerOne, game.Result)
	assert.Equal(t, []entity.Coord{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, game.WinningLine)

	stored, err := manager.GetGame(ctx, game.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, game, stored)

	alice, err = c.Players.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	bob, err = c.Players.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, alice.Score)
	assert.Equal(t, 0, bob.Score)

	// and the finished game rejects further actions without scoring again
	_, err = manager.Forfeit(ctx, game.ID, alice.ID)
	require.ErrorIs(t, err, apperror.ErrGameFinished)

	alice, err = c.Players.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, alice.Score)
}

func TestComponents_DrawCreditsBothPlayers(t *testing.T) {
	ctx, c := newTestComponents(t)
	manager := c.GameManager

	for _, id := range []string{"alice", "bob"} {
		_, err := manager.GetOrCreatePlayer(ctx, id)
		require.NoError(t, err)
	}

	// Given: a 2x2 board, too small for any line
	game, err := manager.CreateGame(ctx, "alice", "bob", 2, 2)
	require.NoError(t, err)

	// When: it is filled
	moves := []entity.Move{
		{X: 0, Y: 0, PlayerID: "alice"},
		{X: 1, Y: 0, PlayerID: "bob"},
		{X: 0, Y: 1, PlayerID: "alice"},
		{X: 1, Y: 1, PlayerID: "bob"},
	}
	for _, move := range moves {
		game, err = manager.SubmitMove(ctx, game.ID, move)
		require.NoError(t, err)
	}

	// Then: the game is drawn and both players get the draw points
	assert.Equal(t, entity.ResultDraw, game.Result)
	assert.Empty(t, game.WinningLine)

	for _, id := range []string{"alice", "bob"} {
		player, err := c.Players.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, player.Score)
	}
}
