// Package minimax picks the computer's move by searching the complete game
// tree from the current position. Tic-tac-toe has at most 9 plies, so the tree
// is expanded in full without pruning and thrown away after every call.
package minimax

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Scoring decides the magnitude of a decided game.
type Scoring uint8

const (
	// ScoringDepthWeighted scores a win by 1 + the number of empty cells left,
	// so faster wins and slower losses are preferred.
	ScoringDepthWeighted Scoring = iota
	// ScoringFlat scores every win as 1.
	ScoringFlat
)

var ErrUnknownScoring = errors.New("unknown scoring policy")

func ParseScoring(name string) (Scoring, error) {
	switch name {
	case "depth", "":
		return ScoringDepthWeighted, nil
	case "flat":
		return ScoringFlat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScoring, name)
	}
}

func (that Scoring) String() string {
	if that == ScoringFlat {
		return "flat"
	}
	return "depth"
}

// SearchNode is one position of the game tree.
type SearchNode struct {
	Board    entity.Board
	ToMove   entity.Cell
	Move     int
	Children []*SearchNode

	score  int
	scored bool
}

func (that *SearchNode) IsLeaf() bool {
	return len(that.Children) == 0
}

// Result describes the outcome of one search.
type Result struct {
	Move  int
	Score int
	Nodes int
}

type Engine struct {
	scoring Scoring
}

func New(scoring Scoring) *Engine {
	return &Engine{scoring: scoring}
}

func (that *Engine) Scoring() Scoring {
	return that.scoring
}

// BestMove returns the optimal move for acting on board.
func (that *Engine) BestMove(board entity.Board, acting entity.Cell) (int, error) {
	result, err := that.Search(board, acting)
	if err != nil {
		return entity.NoMove, err
	}

	return result.Move, nil
}

// Search expands and scores the tree rooted at board. Among equally scored
// moves the lowest index wins.
func (that *Engine) Search(board entity.Board, acting entity.Cell) (Result, error) {
	if !acting.IsMarker() {
		return Result{Move: entity.NoMove}, fmt.Errorf("%w: %s", apperror.ErrInvalidMarker, acting)
	}

	if board.IsTerminal() {
		return Result{Move: entity.NoMove}, fmt.Errorf("%w: board %s", apperror.ErrNoLegalMoves, board.String())
	}

	root, nodes := that.expand(board, acting, entity.NoMove)

	var best *SearchNode
	for _, child := range root.Children {
		score := that.Score(child)
		if best == nil || better(acting, score, best.score) {
			best = child
		}
	}

	return Result{
		Move:  best.Move,
		Score: best.score,
		Nodes: nodes,
	}, nil
}

// Tree expands the full game tree below board with toMove to play next.
// Scores are left to be computed lazily by Score.
func (that *Engine) Tree(board entity.Board, toMove entity.Cell) (*SearchNode, error) {
	if !toMove.IsMarker() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidMarker, toMove)
	}

	root, _ := that.expand(board, toMove, entity.NoMove)

	return root, nil
}

// Evaluate returns the backed-up value of board: positive when the computer
// wins under best play, negative when the human does, zero for a tie.
func (that *Engine) Evaluate(board entity.Board, toMove entity.Cell) (int, error) {
	root, err := that.Tree(board, toMove)
	if err != nil {
		return 0, err
	}

	return that.Score(root), nil
}

// Score computes the minimax value of node once and caches it on the node.
func (that *Engine) Score(node *SearchNode) int {
	if node.scored {
		return node.score
	}

	if node.IsLeaf() {
		node.score = that.terminalScore(&node.Board)
		node.scored = true
		return node.score
	}

	best := that.Score(node.Children[0])
	for _, child := range node.Children[1:] {
		if score := that.Score(child); better(node.ToMove, score, best) {
			best = score
		}
	}

	node.score = best
	node.scored = true

	return node.score
}

func (that *Engine) expand(board entity.Board, toMove entity.Cell, move int) (*SearchNode, int) {
	node := &SearchNode{
		Board:  board,
		ToMove: toMove,
		Move:   move,
	}
	nodes := 1

	if board.IsTerminal() {
		return node, nodes
	}

	legal := board.LegalMoves()
	node.Children = make([]*SearchNode, 0, len(legal))
	for _, index := range legal {
		next := board.Clone()
		// index comes from LegalMoves and toMove is a marker, Place cannot fail
		_ = next.Place(index, toMove)

		child, count := that.expand(next, toMove.Opponent(), index)
		node.Children = append(node.Children, child)
		nodes += count
	}

	return node, nodes
}

func (that *Engine) terminalScore(board *entity.Board) int {
	winner, ok := board.Winner()
	if !ok {
		return 0
	}

	weight := 1
	if that.scoring == ScoringDepthWeighted {
		weight += board.EmptyCount()
	}

	if winner == entity.Computer {
		return weight
	}
	return -weight
}

// better reports whether score beats current from the point of view of the
// side to move: the computer maximises, the human minimises.
func better(toMove entity.Cell, score, current int) bool {
	if toMove == entity.Computer {
		return score > current
	}
	return score < current
}
