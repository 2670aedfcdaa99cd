package tictactoe

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Display is everything the turn loop needs from the screen and keyboard.
type Display interface {
	// ChooseFirstPlayer asks who opens the game. It returns apperror.ErrCanceled
	// when the player interrupts.
	ChooseFirstPlayer(ctx context.Context) (entity.Cell, error)
	AnnounceTurn(marker entity.Cell)

	// ReadDirection blocks until the next navigation event. Cancel is returned
	// on interrupt or when ctx is done.
	ReadDirection(ctx context.Context) cursor.Direction
	MoveCursor(position int)
	ReportOutOfBounds()

	RenderMove(index int, marker entity.Cell)
	ReportInvalidSelection()

	// ReportOutcome receives entity.Empty for a tie.
	ReportOutcome(winner entity.Cell)
}
