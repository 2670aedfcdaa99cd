package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type memoryMatch struct {
	mu      sync.Mutex
	matches map[string]entity.Match
}

// NewMemoryMatchRepository keeps matches in process memory.
func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]entity.Match),
	}
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = copyMatch(match)

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[id]
	if !ok {
		return &entity.Match{}, ErrMatchNotFound
	}

	existingMatch := copyMatch(&match)

	return &existingMatch, nil
}

func (that *memoryMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}

func copyMatch(match *entity.Match) entity.Match {
	return entity.Match{
		ID:    match.ID,
		Games: slices.Clone(match.Games),
	}
}
