// Package cursor moves the highlighted cell around the 3x3 board in response
// to directional input.
package cursor

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Direction is one navigation event read from the player.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
	Select
	Cancel
)

const (
	Start     = 4
	gridWidth = 3
	lastCell  = gridWidth*gridWidth - 1
)

func (that Direction) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Select:
		return "select"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("direction(%d)", uint8(that))
	}
}

// Controller holds the highlighted cell. A failed move leaves it unchanged.
type Controller struct {
	position int
}

func New() *Controller {
	return &Controller{position: Start}
}

func (that *Controller) Position() int {
	return that.position
}

func (that *Controller) Reset() {
	that.position = Start
}

func (that *Controller) MoveUp() (int, error) {
	if that.position < gridWidth {
		return that.position, outOfBounds(Up, that.position)
	}

	that.position -= gridWidth
	return that.position, nil
}

func (that *Controller) MoveDown() (int, error) {
	if that.position > lastCell-gridWidth {
		return that.position, outOfBounds(Down, that.position)
	}

	that.position += gridWidth
	return that.position, nil
}

func (that *Controller) MoveLeft() (int, error) {
	if that.position%gridWidth == 0 {
		return that.position, outOfBounds(Left, that.position)
	}

	that.position--
	return that.position, nil
}

func (that *Controller) MoveRight() (int, error) {
	if that.position%gridWidth == gridWidth-1 {
		return that.position, outOfBounds(Right, that.position)
	}

	that.position++
	return that.position, nil
}

// Select returns the highlighted cell. Whether the cell is free is the caller's concern.
func (that *Controller) Select() int {
	return that.position
}

// Apply dispatches a navigation event. selected is true only for Select.
// Cancel is not handled here: it belongs to whoever runs the input loop.
func (that *Controller) Apply(direction Direction) (position int, selected bool, err error) {
	switch direction {
	case Up:
		position, err = that.MoveUp()
	case Down:
		position, err = that.MoveDown()
	case Left:
		position, err = that.MoveLeft()
	case Right:
		position, err = that.MoveRight()
	case Select:
		return that.Select(), true, nil
	default:
		return that.position, false, fmt.Errorf("%w: %s", apperror.ErrUnknownDirection, direction)
	}

	return position, false, err
}

func outOfBounds(direction Direction, position int) error {
	return fmt.Errorf("%w: %s from %d", apperror.ErrOutOfBounds, direction, position)
}
