package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/fiveinarow-backend/internal/config"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/repository"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/repository/storage"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/service"
	"github.com/rocketscienceinc/fiveinarow-backend/internal/usecase"
	"github.com/rocketscienceinc/fiveinarow-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Components are the wired collaborators of a running application.
type Components struct {
	Players     repository.PlayerRepository
	Games       repository.GameRepository
	Scorer      *service.ScoreService
	GameManager *usecase.GameManager
}

// NewComponents wires repositories, scoring and the game manager on top of redisStorage.
func NewComponents(logger *slog.Logger, conf *config.Config, redisStorage *storage.RedisStorage) *Components {
	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, conf.Game.UpdateRetries)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Game.UpdateRetries)

	scorer := service.NewScoreService(logger, playerRepo, service.ScoreConfig{
		Win:  conf.Score.Win,
		Draw: conf.Score.Draw,
	})

	gameManager := usecase.NewGameManager(logger, playerRepo, gameRepo, scorer, usecase.GameConfig{
		DefaultWidth:  conf.Game.DefaultWidth,
		DefaultHeight: conf.Game.DefaultHeight,
		MaxWidth:      conf.Game.MaxWidth,
		MaxHeight:     conf.Game.MaxHeight,
	})

	return &Components{
		Players:     playerRepo,
		Games:       gameRepo,
		Scorer:      scorer,
		GameManager: gameManager,
	}
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	// game operations have no network surface yet, only liveness and health are served
	_ = NewComponents(logger, conf, redisStorage)
	log.Info("Game manager ready", "default_width", conf.Game.DefaultWidth, "default_height", conf.Game.DefaultHeight)

	// run HTTP server
	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, redisStorage)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
