package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const goodbye = "Thanks for playing!"

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoring, err := minimax.ParseScoring(conf.Scoring)
	if err != nil {
		return fmt.Errorf("invalid scoring: %w", err)
	}

	matchRepo, closeStorage, err := newMatchRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	display := terminal.New(screen, conf.ComputerDelay)
	display.Start(ctx)

	gameController := tictactoe.NewGameController(logger, display, minimax.New(scoring), firstPlayer(conf.FirstPlayer))
	matchManager := usecase.NewMatchManager(logger, matchRepo, gameController, display)

	log.Info("Starting match", "scoring", scoring, "storage", conf.Storage)
	tally, err := matchManager.Play(ctx)
	display.Close()

	fmt.Println(goodbye)
	if tally.Games() > 0 {
		fmt.Printf("You won %d, the computer won %d, %d tied.\n", tally.HumanWins, tally.ComputerWins, tally.Ties)
	}

	if errors.Is(err, apperror.ErrCanceled) {
		log.Info("Match canceled by player")
		return nil
	}

	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return nil
}

func newMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryMatchRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			slog.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMatchRepository(redisStorage.Connection, conf.Redis.TTL), closeStorage, nil
}

func firstPlayer(setting string) entity.Cell {
	switch setting {
	case config.FirstPlayerHuman:
		return entity.Human
	case config.FirstPlayerComputer:
		return entity.Computer
	default:
		return entity.Empty
	}
}
