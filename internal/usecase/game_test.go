package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/apperror"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/entity"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/fiveinarow-backend/mocks/usecase"
)

var (
	errSomeError     = errors.New("some error")
	errStorageIsFull = errors.New("storage is full")
	errRedisDown     = errors.New("redis down")
)

type mocks struct {
	playerRepo *mockedUseCase.MockplayerRepoDep
	gameRepo   *mockedUseCase.MockgameRepoDep
	scorer     *mockedUseCase.MockscorerDep
}

func newTestManager(t *testing.T) (*GameManager, mocks) {
	t.Helper()

	m := mocks{
		playerRepo: mockedUseCase.NewMockplayerRepoDep(t),
		gameRepo:   mockedUseCase.NewMockgameRepoDep(t),
		scorer:     mockedUseCase.NewMockscorerDep(t),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := NewGameManager(logger, m.playerRepo, m.gameRepo, m.scorer, GameConfig{
		DefaultWidth:  10,
		DefaultHeight: 10,
		MaxWidth:      20,
		MaxHeight:     20,
	})

	return manager, m
}

func newStoredGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("game1", "alice", "bob", entity.GameOptions{Width: 10, Height: 10})
	require.NoError(t, err)

	return game
}

// expectUpdate makes the game repository apply the callback to game, like the redis
// implementation does on a single attempt.
func expectUpdate(m mocks, game *entity.Game) {
	m.gameRepo.EXPECT().
		Update(mock.Anything, game.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*entity.Game) error) (*entity.Game, error) {
			if err := fn(game); err != nil {
				return nil, err
			}
			return game, nil
		}).
		Once()
}

func TestGameManager_GetOrCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new player when playerID is empty", func(t *testing.T) {
		// Given: a player repository accepting new players
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: calling GetOrCreatePlayer with an empty playerID
		player, err := manager.GetOrCreatePlayer(ctx, "")

		// Then: a new player with a fresh id and zero score is returned
		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.Zero(t, player.Score)
	})

	t.Run("Returns existing player when playerID is known", func(t *testing.T) {
		manager, m := newTestManager(t)

		existingPlayer := &entity.Player{ID: "player123", Score: 9}
		m.playerRepo.EXPECT().
			GetByID(mock.Anything, "player123").
			Return(existingPlayer, nil).
			Once()

		player, err := manager.GetOrCreatePlayer(ctx, "player123")

		require.NoError(t, err)
		assert.Equal(t, existingPlayer, player)
	})

	t.Run("Registers an unknown playerID", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().
			GetByID(mock.Anything, "newcomer").
			Return(nil, repository.ErrPlayerNotFound).
			Once()
		m.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, &entity.Player{ID: "newcomer"}).
			Return(nil).
			Once()

		player, err := manager.GetOrCreatePlayer(ctx, "newcomer")

		require.NoError(t, err)
		assert.Equal(t, "newcomer", player.ID)
	})

	t.Run("Returns error if playerRepo.GetByID fails", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().
			GetByID(mock.Anything, "playerErr").
			Return(nil, errSomeError).
			Once()

		player, err := manager.GetOrCreatePlayer(ctx, "playerErr")

		require.ErrorIs(t, err, errSomeError)
		assert.Nil(t, player)
	})

	t.Run("Returns error if playerRepo.CreateOrUpdate fails for new player", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(errStorageIsFull).
			Once()

		player, err := manager.GetOrCreatePlayer(ctx, "")

		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, player)
	})
}

func TestGameManager_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a challenge with default dimensions", func(t *testing.T) {
		// Given: two registered players
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(&entity.Player{ID: "alice"}, nil).Once()
		m.playerRepo.EXPECT().GetByID(mock.Anything, "bob").Return(&entity.Player{ID: "bob"}, nil).Once()

		var saved *entity.Game
		m.gameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(func(_ context.Context, game *entity.Game) { saved = game }).
			Return(nil).
			Once()

		// When: a game is created without dimensions
		game, err := manager.CreateGame(ctx, "alice", "bob", 0, 0)

		// Then: a prestart game on the default board is stored
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, saved.ID, game.ID)
		assert.Equal(t, 10, game.Width)
		assert.Equal(t, 10, game.Height)
		assert.Equal(t, entity.StatusPrestart, game.Status)
		assert.Equal(t, entity.PlayerOne, game.ActivePlayer)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("Uses requested dimensions", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&entity.Player{}, nil).Twice()
		m.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(nil).Once()

		game, err := manager.CreateGame(ctx, "alice", "bob", 15, 7)

		require.NoError(t, err)
		assert.Equal(t, 15, game.Width)
		assert.Equal(t, 7, game.Height)
		assert.Len(t, game.Board, 7)
		assert.Len(t, game.Board[0], 15)
	})

	t.Run("Rejects a challenge to oneself", func(t *testing.T) {
		manager, _ := newTestManager(t)

		game, err := manager.CreateGame(ctx, "alice", "alice", 0, 0)

		require.ErrorIs(t, err, apperror.ErrSamePlayers)
		assert.Nil(t, game)
	})

	t.Run("Rejects a board over the limit", func(t *testing.T) {
		manager, _ := newTestManager(t)

		game, err := manager.CreateGame(ctx, "alice", "bob", 21, 10)

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
		assert.Nil(t, game)
	})

	t.Run("Rejects an unknown challengee", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(&entity.Player{ID: "alice"}, nil).Once()
		m.playerRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, repository.ErrPlayerNotFound).Once()

		game, err := manager.CreateGame(ctx, "alice", "ghost", 0, 0)

		require.ErrorIs(t, err, repository.ErrPlayerNotFound)
		assert.Nil(t, game)
	})

	t.Run("Returns error if gameRepo.CreateOrUpdate fails", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.playerRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&entity.Player{}, nil).Twice()
		m.gameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		game, err := manager.CreateGame(ctx, "alice", "bob", 0, 0)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_GetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the game to a participant", func(t *testing.T) {
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		m.gameRepo.EXPECT().GetByID(mock.Anything, "game1").Return(stored, nil).Once()

		game, err := manager.GetGame(ctx, "game1", "bob")

		require.NoError(t, err)
		assert.Equal(t, stored.Output(), game)
	})

	t.Run("Returns the game without a player", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.gameRepo.EXPECT().GetByID(mock.Anything, "game1").Return(newStoredGame(t), nil).Once()

		_, err := manager.GetGame(ctx, "game1", "")

		require.NoError(t, err)
	})

	t.Run("Rejects an outsider", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.gameRepo.EXPECT().GetByID(mock.Anything, "game1").Return(newStoredGame(t), nil).Once()

		game, err := manager.GetGame(ctx, "game1", "mallory")

		require.ErrorIs(t, err, apperror.ErrNotParticipant)
		assert.Nil(t, game)
	})

	t.Run("Returns error if the game is missing", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.gameRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, repository.ErrGameNotFound).Once()

		_, err := manager.GetGame(ctx, "nope", "alice")

		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})
}

func TestGameManager_AcceptChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("Challengee accepts", func(t *testing.T) {
		manager, m := newTestManager(t)

		expectUpdate(m, newStoredGame(t))

		game, err := manager.AcceptChallenge(ctx, "game1", "bob")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusReady, game.Status)
		m.scorer.AssertNotCalled(t, "ApplyResult", mock.Anything, mock.Anything)
	})

	t.Run("Challenger cannot accept", func(t *testing.T) {
		manager, m := newTestManager(t)

		expectUpdate(m, newStoredGame(t))

		game, err := manager.AcceptChallenge(ctx, "game1", "alice")

		require.ErrorIs(t, err, apperror.ErrNotChallengee)
		assert.Nil(t, game)
	})
}

func TestGameManager_SubmitMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Regular move passes the turn", func(t *testing.T) {
		// Given: a fresh challenge
		manager, m := newTestManager(t)
		expectUpdate(m, newStoredGame(t))

		// When: the challenger plays
		game, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 4, Y: 4, PlayerID: "alice"})

		// Then: the game is in progress and nobody is scored
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, game.Status)
		assert.Equal(t, entity.PlayerTwo, game.ActivePlayer)
		assert.Equal(t, "x", game.Board[4][4])
		m.scorer.AssertNotCalled(t, "ApplyResult", mock.Anything, mock.Anything)
	})

	t.Run("Winning move settles the score once", func(t *testing.T) {
		// Given: four x in a row on row 0
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		for i := 0; i < 4; i++ {
			require.NoError(t, stored.SubmitMove(entity.Move{X: i, Y: 0, PlayerID: "alice"}))
			require.NoError(t, stored.SubmitMove(entity.Move{X: i, Y: 1, PlayerID: "bob"}))
		}
		expectUpdate(m, stored)

		m.scorer.EXPECT().
			ApplyResult(mock.Anything, stored).
			Return(nil).
			Once()

		// When: the fifth is played
		game, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 4, Y: 0, PlayerID: "alice"})

		// Then: player one wins
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.ResultWinPlayerOne, game.Result)
		assert.Equal(t, []entity.Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, game.WinningLine)
	})

	t.Run("Scoring failure does not fail the move", func(t *testing.T) {
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		for i := 0; i < 4; i++ {
			require.NoError(t, stored.SubmitMove(entity.Move{X: 0, Y: i, PlayerID: "alice"}))
			require.NoError(t, stored.SubmitMove(entity.Move{X: 1, Y: i, PlayerID: "bob"}))
		}
		expectUpdate(m, stored)

		m.scorer.EXPECT().ApplyResult(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		game, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 0, Y: 4, PlayerID: "alice"})

		require.NoError(t, err)
		assert.Equal(t, entity.ResultWinPlayerOne, game.Result)
	})

	t.Run("Invalid move is returned and not scored", func(t *testing.T) {
		manager, m := newTestManager(t)
		expectUpdate(m, newStoredGame(t))

		game, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 0, Y: 0, PlayerID: "bob"})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Nil(t, game)
		m.scorer.AssertNotCalled(t, "ApplyResult", mock.Anything, mock.Anything)
	})

	t.Run("Move on a finished game is not scored again", func(t *testing.T) {
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		require.NoError(t, stored.Forfeit("bob"))
		expectUpdate(m, stored)

		_, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 0, Y: 0, PlayerID: "alice"})

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		m.scorer.AssertNotCalled(t, "ApplyResult", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent update is reported", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.gameRepo.EXPECT().
			Update(mock.Anything, "game1", mock.Anything).
			Return(nil, apperror.ErrConcurrentUpdate).
			Once()

		_, err := manager.SubmitMove(ctx, "game1", entity.Move{X: 0, Y: 0, PlayerID: "alice"})

		require.ErrorIs(t, err, apperror.ErrConcurrentUpdate)
	})
}

func TestGameManager_Forfeit(t *testing.T) {
	ctx := context.Background()

	t.Run("Forfeit finishes and scores the game", func(t *testing.T) {
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		expectUpdate(m, stored)
		m.scorer.EXPECT().ApplyResult(mock.Anything, stored).Return(nil).Once()

		game, err := manager.Forfeit(ctx, "game1", "alice")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.ResultForfeitPlayerOne, game.Result)
		assert.Empty(t, game.WinningLine)
	})

	t.Run("Second forfeit is rejected", func(t *testing.T) {
		manager, m := newTestManager(t)

		stored := newStoredGame(t)
		require.NoError(t, stored.Forfeit("alice"))
		expectUpdate(m, stored)

		_, err := manager.Forfeit(ctx, "game1", "bob")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.ResultForfeitPlayerOne, stored.Result)
	})

	t.Run("Outsider cannot forfeit", func(t *testing.T) {
		manager, m := newTestManager(t)
		expectUpdate(m, newStoredGame(t))

		_, err := manager.Forfeit(ctx, "game1", "mallory")

		require.ErrorIs(t, err, apperror.ErrNotParticipant)
	})
}
