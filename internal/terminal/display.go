// Package terminal draws the board on a tcell screen and reads the player's
// keys.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/cursor"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	title         = "Tic Tac Toe - you are O, the computer is X"
	cursorMarker  = '‾'
	outOfBounds   = "!"
	invalidMove   = "Invalid move"
	humanPrompt   = "Your move: arrow keys to move, enter to select, q to quit"
	computerTurn  = "Computer is thinking..."
	firstPrompt   = "Who goes first? (h)uman or (c)omputer"
	againPrompt   = "Play again? (y/n)"
	humanWon      = "You won!"
	computerWon   = "The computer wins."
	tieGame       = "It's a tie."
	scoreTemplate = "Score - you: %d  computer: %d  ties: %d"
)

var (
	styleDefault = tcell.StyleDefault
	styleBold    = tcell.StyleDefault.Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Display implements the game and match displays on top of a tcell screen.
type Display struct {
	screen tcell.Screen
	delay  time.Duration

	cursor int
	score  entity.Tally

	done      chan struct{}
	closeOnce sync.Once
}

// NewScreen opens the real terminal in raw mode.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	return screen, nil
}

// New wraps an initialised screen. delay is how long the computer appears to
// think before its move is drawn.
func New(screen tcell.Screen, delay time.Duration) *Display {
	return &Display{
		screen: screen,
		delay:  delay,
		cursor: cursor.Start,
		done:   make(chan struct{}),
	}
}

// Start draws the empty board and makes blocking reads return when ctx is done.
func (that *Display) Start(ctx context.Context) {
	that.screen.HideCursor()
	that.redraw()

	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-that.done:
		}
	}()
}

// Close restores the terminal.
func (that *Display) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
		that.screen.Fini()
	})
}

func (that *Display) ChooseFirstPlayer(ctx context.Context) (entity.Cell, error) {
	that.drawText(promptRow, styleBold, firstPrompt)
	defer that.drawText(promptRow, styleDefault, "")

	for {
		key := that.readKey(ctx)
		if key == nil || isCancel(key) {
			return entity.Empty, apperror.ErrCanceled
		}

		switch key.Rune() {
		case 'h', 'H':
			return entity.Human, nil
		case 'c', 'C':
			return entity.Computer, nil
		}
	}
}

func (that *Display) AnnounceTurn(marker entity.Cell) {
	if marker == entity.Computer {
		that.drawText(turnRow, styleDefault, computerTurn)
		that.pause()
		return
	}

	that.drawText(turnRow, styleDefault, humanPrompt)
}

func (that *Display) ReadDirection(ctx context.Context) cursor.Direction {
	for {
		key := that.readKey(ctx)
		if key == nil {
			return cursor.Cancel
		}

		if direction, ok := directionFor(key); ok {
			return direction
		}
	}
}

func (that *Display) MoveCursor(position int) {
	that.setRune(cursors[that.cursor], ' ', styleDefault)
	that.cursor = position
	that.setRune(cursors[that.cursor], cursorMarker, styleBold)
	that.drawText(messageRow, styleDefault, "")
}

func (that *Display) ReportOutOfBounds() {
	that.drawText(messageRow, styleWarning, outOfBounds)
}

func (that *Display) RenderMove(index int, marker entity.Cell) {
	that.setRune(squares[index], marker.Symbol(), styleBold)
	that.drawText(messageRow, styleDefault, "")
}

func (that *Display) ReportInvalidSelection() {
	that.drawText(messageRow, styleWarning, invalidMove)
}

func (that *Display) ReportOutcome(winner entity.Cell) {
	that.setRune(cursors[that.cursor], ' ', styleDefault)
	that.drawText(turnRow, styleDefault, "")

	switch winner {
	case entity.Human:
		that.drawText(messageRow, styleBold, humanWon)
	case entity.Computer:
		that.drawText(messageRow, styleBold, computerWon)
	default:
		that.drawText(messageRow, styleBold, tieGame)
	}
}

func (that *Display) ShowScore(tally entity.Tally) {
	that.score = tally
	that.drawText(scoreRow, styleDefault, scoreLine(tally))
}

// AskPlayAgain clears the board when the player wants another game.
func (that *Display) AskPlayAgain(ctx context.Context) (bool, error) {
	that.drawText(promptRow, styleBold, againPrompt)
	defer that.drawText(promptRow, styleDefault, "")

	for {
		key := that.readKey(ctx)
		if key == nil || isCancel(key) {
			return false, apperror.ErrCanceled
		}

		switch key.Rune() {
		case 'y', 'Y':
			that.cursor = cursor.Start
			that.redraw()
			return true, nil
		case 'n', 'N':
			return false, nil
		}
	}
}

func (that *Display) pause() {
	if that.delay <= 0 {
		return
	}

	timer := time.NewTimer(that.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-that.done:
	}
}

// readKey returns the next key press, or nil once ctx is done or the screen
// has been closed.
func (that *Display) readKey(ctx context.Context) *tcell.EventKey {
	for {
		if ctx.Err() != nil {
			return nil
		}

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventInterrupt:
			// loop around to the ctx check
		}
	}
}

func (that *Display) redraw() {
	that.screen.Clear()
	that.drawText(titleRow, styleBold, title)
	drawGrid(that.screen)
	if that.score.Games() > 0 {
		that.drawText(scoreRow, styleDefault, scoreLine(that.score))
	}
	that.screen.Show()
}

func (that *Display) setRune(p point, r rune, style tcell.Style) {
	that.screen.SetContent(p.x, p.y, r, nil, style)
	that.screen.Show()
}

// drawText replaces the whole row with text.
func (that *Display) drawText(row int, style tcell.Style, text string) {
	width, _ := that.screen.Size()

	col := 0
	for _, r := range text {
		that.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		that.screen.SetContent(col, row, ' ', nil, styleDefault)
	}

	that.screen.Show()
}

// drawGrid draws the board lines. Points already covered by an earlier line in
// the same draw become intersections.
func drawGrid(screen tcell.Screen) {
	drawn := make(map[point]struct{})
	for _, l := range gridLines {
		drawLine(screen, l, drawn)
	}
}

func drawLine(screen tcell.Screen, l line, drawn map[point]struct{}) {
	glyph := '│'
	step := point{0, 1}
	if l.horizontal() {
		glyph = '─'
		step = point{1, 0}
	}

	for p := l.from; p.x <= l.to.x && p.y <= l.to.y; p = (point{p.x + step.x, p.y + step.y}) {
		r := glyph
		if _, ok := drawn[p]; ok {
			r = '┼'
		}
		screen.SetContent(p.x, p.y, r, nil, styleDefault)
		drawn[p] = struct{}{}
	}
}

func directionFor(key *tcell.EventKey) (cursor.Direction, bool) {
	if isCancel(key) {
		return cursor.Cancel, true
	}

	switch key.Key() {
	case tcell.KeyUp:
		return cursor.Up, true
	case tcell.KeyDown:
		return cursor.Down, true
	case tcell.KeyLeft:
		return cursor.Left, true
	case tcell.KeyRight:
		return cursor.Right, true
	case tcell.KeyEnter:
		return cursor.Select, true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'k':
			return cursor.Up, true
		case 'j':
			return cursor.Down, true
		case 'h':
			return cursor.Left, true
		case 'l':
			return cursor.Right, true
		case ' ':
			return cursor.Select, true
		}
	}

	return 0, false
}

func isCancel(key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	default:
		return false
	}
}

func scoreLine(tally entity.Tally) string {
	return fmt.Sprintf(scoreTemplate, tally.HumanWins, tally.ComputerWins, tally.Ties)
}
