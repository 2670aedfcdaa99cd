package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	Play(ctx context.Context) (entity.Board, error)
	Reset()
}

type matchDisplay interface {
	ShowScore(tally entity.Tally)
	AskPlayAgain(ctx context.Context) (bool, error)
}

// MatchManager plays consecutive games against the same opponent and keeps
// the running score. The match is removed from storage when it ends.
type MatchManager struct {
	logger     *slog.Logger
	matchRepo  matchRepo
	controller gameController
	display    matchDisplay

	newID func() string
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, controller gameController, display matchDisplay) *MatchManager {
	return &MatchManager{
		logger:     logger.With("component", "match-manager"),
		matchRepo:  matchRepo,
		controller: controller,
		display:    display,
		newID:      uuid.NewString,
	}
}

// Play runs games until the player declines another one or cancels, and
// returns the final score.
func (that *MatchManager) Play(ctx context.Context) (entity.Tally, error) {
	match, err := that.createMatch(ctx)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to create match: %w", err)
	}

	defer that.deleteMatch(context.WithoutCancel(ctx), match.ID)

	var tally entity.Tally
	for {
		that.controller.Reset()

		board, err := that.controller.Play(ctx)
		if err != nil {
			return tally, fmt.Errorf("failed to play game: %w", err)
		}

		if tally, err = that.recordGame(ctx, match.ID, board); err != nil {
			return tally, fmt.Errorf("failed to record game: %w", err)
		}

		that.display.ShowScore(tally)

		again, err := that.display.AskPlayAgain(ctx)
		if err != nil {
			return tally, fmt.Errorf("failed to ask for another game: %w", err)
		}

		if !again {
			return tally, nil
		}
	}
}

func (that *MatchManager) createMatch(ctx context.Context) (*entity.Match, error) {
	match := entity.NewMatch(that.newID())

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	that.logger.Info("match started", "matchID", match.ID)

	return match, nil
}

func (that *MatchManager) recordGame(ctx context.Context, matchID string, board entity.Board) (entity.Tally, error) {
	match, err := that.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get match: %w", err)
	}

	if err = match.Record(board); err != nil {
		return match.Tally(), err
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return match.Tally(), fmt.Errorf("failed to update match: %w", err)
	}

	tally := match.Tally()
	that.logger.Info("game recorded",
		"matchID", matchID,
		"board", board.String(),
		"humanWins", tally.HumanWins,
		"computerWins", tally.ComputerWins,
		"ties", tally.Ties,
	)

	return tally, nil
}

func (that *MatchManager) deleteMatch(ctx context.Context, matchID string) {
	log := that.logger.With("method", "deleteMatch", "matchID", matchID)

	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		log.Error("failed to delete match", "error", err)
		return
	}

	log.Info("match deleted")
}
