package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
)

type State uint8

const (
	AwaitingFirstPlayer State = iota
	HumanTurn
	ComputerTurn
	Terminal
)

func (that State) String() string {
	switch that {
	case AwaitingFirstPlayer:
		return "awaiting-first-player"
	case HumanTurn:
		return "human-turn"
	case ComputerTurn:
		return "computer-turn"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("state(%d)", uint8(that))
	}
}

type engine interface {
	Search(board entity.Board, acting entity.Cell) (minimax.Result, error)
}

// GameController runs a single game: it alternates turns, applies moves to the
// board it owns and reports the outcome.
type GameController struct {
	logger  *slog.Logger
	display Display
	engine  engine
	cursor  *cursor.Controller

	// firstPlayer is fixed by configuration; Empty means ask the display.
	firstPlayer entity.Cell

	board entity.Board
	state State
}

func NewGameController(logger *slog.Logger, display Display, engine engine, firstPlayer entity.Cell) *GameController {
	return &GameController{
		logger:      logger.With("component", "game-controller"),
		display:     display,
		engine:      engine,
		cursor:      cursor.New(),
		firstPlayer: firstPlayer,
		board:       entity.NewBoard(),
		state:       AwaitingFirstPlayer,
	}
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) State() State {
	return that.state
}

// Reset prepares a fresh board for the next game of a match.
func (that *GameController) Reset() {
	that.board = entity.NewBoard()
	that.state = AwaitingFirstPlayer
	that.cursor.Reset()
}

// Play steps the game until it is over and returns the final board.
func (that *GameController) Play(ctx context.Context) (entity.Board, error) {
	for that.state != Terminal {
		if err := that.Step(ctx); err != nil {
			return that.board, err
		}
	}

	return that.board, nil
}

// Step performs one transition of the turn state machine.
func (that *GameController) Step(ctx context.Context) error {
	switch that.state {
	case AwaitingFirstPlayer:
		return that.chooseFirstPlayer(ctx)
	case HumanTurn:
		return that.humanTurn(ctx)
	case ComputerTurn:
		return that.computerTurn()
	case Terminal:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown state: %s", that.state)
	}
}

func (that *GameController) chooseFirstPlayer(ctx context.Context) error {
	first := that.firstPlayer
	if first == entity.Empty {
		chosen, err := that.display.ChooseFirstPlayer(ctx)
		if err != nil {
			return fmt.Errorf("failed to choose first player: %w", err)
		}
		first = chosen
	}

	if !first.IsMarker() {
		return fmt.Errorf("%w: first player %s", apperror.ErrInvalidMarker, first)
	}

	that.logger.Info("game started", "first", first)
	that.state = turnOf(first)

	return nil
}

func (that *GameController) humanTurn(ctx context.Context) error {
	that.display.AnnounceTurn(entity.Human)

	index, err := that.readSelection(ctx)
	if err != nil {
		return err
	}

	if err = that.board.Place(index, entity.Human); err != nil {
		return fmt.Errorf("failed to place human move: %w", err)
	}

	that.logger.Debug("human move", "cell", index, "board", that.board.String())
	that.display.RenderMove(index, entity.Human)
	that.advance(entity.Human)

	return nil
}

// readSelection drives the cursor until the human selects a free cell.
func (that *GameController) readSelection(ctx context.Context) (int, error) {
	log := that.logger.With("method", "readSelection")

	that.cursor.Reset()
	that.display.MoveCursor(that.cursor.Position())

	for {
		direction := that.display.ReadDirection(ctx)
		if direction == cursor.Cancel {
			return entity.NoMove, apperror.ErrCanceled
		}

		position, selected, err := that.cursor.Apply(direction)
		switch {
		case errors.Is(err, apperror.ErrOutOfBounds):
			that.display.ReportOutOfBounds()
			continue
		case err != nil:
			log.Warn("ignoring input", "error", err)
			continue
		}

		if !selected {
			that.display.MoveCursor(position)
			continue
		}

		if !slices.Contains(that.board.LegalMoves(), position) {
			log.Debug("occupied cell selected", "cell", position)
			that.display.ReportInvalidSelection()
			continue
		}

		return position, nil
	}
}

func (that *GameController) computerTurn() error {
	that.display.AnnounceTurn(entity.Computer)

	result, err := that.engine.Search(that.board, entity.Computer)
	if err != nil {
		return fmt.Errorf("failed to search computer move: %w", err)
	}

	if err = that.board.Place(result.Move, entity.Computer); err != nil {
		return fmt.Errorf("failed to place computer move: %w", err)
	}

	that.logger.Debug("computer move",
		"cell", result.Move,
		"score", result.Score,
		"nodes", result.Nodes,
		"board", that.board.String(),
	)
	that.display.RenderMove(result.Move, entity.Computer)
	that.advance(entity.Computer)

	return nil
}

func (that *GameController) advance(moved entity.Cell) {
	if !that.board.IsTerminal() {
		that.state = turnOf(moved.Opponent())
		return
	}

	that.state = Terminal

	winner, _ := that.board.Winner()
	that.logger.Info("game finished", "winner", winner, "board", that.board.String())
	that.display.ReportOutcome(winner)
}

func turnOf(marker entity.Cell) State {
	if marker == entity.Computer {
		return ComputerTurn
	}
	return HumanTurn
}
