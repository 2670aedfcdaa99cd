package tictactoe

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockDisplay struct {
	mock.Mock
}

func newMockDisplay() *mockDisplay {
	display := &mockDisplay{}

	// cursor movement and turn banners are cosmetic in most tests
	display.On("AnnounceTurn", mock.Anything).Return().Maybe()
	display.On("MoveCursor", mock.Anything).Return().Maybe()

	return display
}

func (that *mockDisplay) ChooseFirstPlayer(ctx context.Context) (entity.Cell, error) {
	args := that.Called(ctx)
	return args.Get(0).(entity.Cell), args.Error(1)
}

func (that *mockDisplay) AnnounceTurn(marker entity.Cell) {
	that.Called(marker)
}

func (that *mockDisplay) ReadDirection(ctx context.Context) cursor.Direction {
	args := that.Called(ctx)
	return args.Get(0).(cursor.Direction)
}

func (that *mockDisplay) MoveCursor(position int) {
	that.Called(position)
}

func (that *mockDisplay) ReportOutOfBounds() {
	that.Called()
}

func (that *mockDisplay) RenderMove(index int, marker entity.Cell) {
	that.Called(index, marker)
}

func (that *mockDisplay) ReportInvalidSelection() {
	that.Called()
}

func (that *mockDisplay) ReportOutcome(winner entity.Cell) {
	that.Called(winner)
}

// script queues directions to be returned by ReadDirection in order.
func (that *mockDisplay) script(directions ...cursor.Direction) {
	for _, direction := range directions {
		that.On("ReadDirection", mock.Anything).Return(direction).Once()
	}
}
