package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func board(t *testing.T, notation string) entity.Board {
	t.Helper()

	b, err := entity.ParseBoard(notation)
	require.NoError(t, err)

	return b
}

func newManager(repo matchRepo, controller gameController, display matchDisplay) *MatchManager {
	manager := NewMatchManager(discardLogger(), repo, controller, display)
	manager.newID = func() string { return "match-1" }
	return manager
}

func TestMatchManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays until the player declines and keeps the score", func(t *testing.T) {
		// Given: three games, a computer win, a tie and another computer win
		repo := repository.NewMemoryMatchRepository()
		controller := &mockGameController{}
		controller.On("Reset").Return().Times(3)
		controller.On("Play", ctx).Return(board(t, "XXXOO____"), nil).Once()
		controller.On("Play", ctx).Return(board(t, "XOXXOOOXX"), nil).Once()
		controller.On("Play", ctx).Return(board(t, "XOOOO_XXX"), nil).Once()

		display := &mockMatchDisplay{}
		display.On("ShowScore", entity.Tally{ComputerWins: 1}).Return().Once()
		display.On("ShowScore", entity.Tally{ComputerWins: 1, Ties: 1}).Return().Once()
		display.On("ShowScore", entity.Tally{ComputerWins: 2, Ties: 1}).Return().Once()
		display.On("AskPlayAgain", ctx).Return(true, nil).Twice()
		display.On("AskPlayAgain", ctx).Return(false, nil).Once()

		manager := newManager(repo, controller, display)

		// When: the match is played
		tally, err := manager.Play(ctx)

		// Then: the final score is returned and the match is cleaned up
		require.NoError(t, err)
		assert.Equal(t, entity.Tally{ComputerWins: 2, Ties: 1}, tally)
		controller.AssertExpectations(t)
		display.AssertExpectations(t)

		_, err = repo.GetByID(ctx, "match-1")
		require.ErrorIs(t, err, repository.ErrMatchNotFound)
	})

	t.Run("Cancel during a game ends the match", func(t *testing.T) {
		// Given: the player cancels in the middle of the first game
		repo := repository.NewMemoryMatchRepository()
		controller := &mockGameController{}
		controller.On("Reset").Return().Once()
		controller.On("Play", ctx).Return(entity.NewBoard(), apperror.ErrCanceled).Once()
		display := &mockMatchDisplay{}

		manager := newManager(repo, controller, display)

		// When: the match is played
		tally, err := manager.Play(ctx)

		// Then: the cancellation propagates, nothing was scored and the match is removed
		require.ErrorIs(t, err, apperror.ErrCanceled)
		assert.Zero(t, tally.Games())
		display.AssertNotCalled(t, "ShowScore", mock.Anything)

		_, err = repo.GetByID(ctx, "match-1")
		require.ErrorIs(t, err, repository.ErrMatchNotFound)
	})

	t.Run("Cancel at the play again prompt ends the match", func(t *testing.T) {
		repo := repository.NewMemoryMatchRepository()
		controller := &mockGameController{}
		controller.On("Reset").Return().Once()
		controller.On("Play", ctx).Return(board(t, "OOOXX_X__"), nil).Once()
		display := &mockMatchDisplay{}
		display.On("ShowScore", entity.Tally{HumanWins: 1}).Return().Once()
		display.On("AskPlayAgain", ctx).Return(false, apperror.ErrCanceled).Once()

		manager := newManager(repo, controller, display)

		tally, err := manager.Play(ctx)

		require.ErrorIs(t, err, apperror.ErrCanceled)
		assert.Equal(t, entity.Tally{HumanWins: 1}, tally)
	})

	t.Run("Returns error if the match cannot be created", func(t *testing.T) {
		// Given: a repository that is down
		repo := &mockMatchRepo{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Match")).Return(errRedisDown).Once()
		controller := &mockGameController{}

		manager := newManager(repo, controller, &mockMatchDisplay{})

		// When: the match is played
		_, err := manager.Play(ctx)

		// Then: the storage error is returned and no game is started
		require.ErrorIs(t, err, errRedisDown)
		controller.AssertNotCalled(t, "Play", mock.Anything)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if the game cannot be recorded", func(t *testing.T) {
		// Given: the match is lost from storage between games
		repo := &mockMatchRepo{}
		repo.On("CreateOrUpdate", ctx, mock.MatchedBy(func(m *entity.Match) bool {
			return m.ID == "match-1" && len(m.Games) == 0
		})).Return(nil).Once()
		repo.On("GetByID", ctx, "match-1").Return(&entity.Match{}, repository.ErrMatchNotFound).Once()
		repo.On("DeleteByID", mock.Anything, "match-1").Return(repository.ErrMatchNotFound).Once()

		controller := &mockGameController{}
		controller.On("Reset").Return().Once()
		controller.On("Play", ctx).Return(board(t, "XXXOO____"), nil).Once()

		manager := newManager(repo, controller, &mockMatchDisplay{})

		// When: the match is played
		_, err := manager.Play(ctx)

		// Then: the lookup error is returned and cleanup is still attempted
		require.ErrorIs(t, err, repository.ErrMatchNotFound)
		repo.AssertExpectations(t)
	})
}
