package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Tally is the win/tie count of a match.
type Tally struct {
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
	Ties         int `json:"ties"`
}

func (that Tally) Games() int {
	return that.HumanWins + that.ComputerWins + that.Ties
}

// Match is the append-only history of finished games played in one session.
type Match struct {
	ID    string  `json:"id"`
	Games []Board `json:"games"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:    id,
		Games: []Board{},
	}
}

// Record appends a finished board to the history.
func (that *Match) Record(board Board) error {
	if !board.IsTerminal() {
		return fmt.Errorf("%w: board %s", apperror.ErrGameNotFinished, board.String())
	}

	that.Games = append(that.Games, board)

	return nil
}

func (that *Match) Tally() Tally {
	var tally Tally

	for i := range that.Games {
		winner, ok := that.Games[i].Winner()
		switch {
		case !ok:
			tally.Ties++
		case winner == Human:
			tally.HumanWins++
		case winner == Computer:
			tally.ComputerWins++
		}
	}

	return tally
}
