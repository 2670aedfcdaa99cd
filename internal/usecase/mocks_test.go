package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	return that.Called(ctx, match).Error(0)
}

func (that *mockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(*entity.Match), args.Error(1)
}

func (that *mockMatchRepo) DeleteByID(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}

type mockGameController struct {
	mock.Mock
}

func (that *mockGameController) Play(ctx context.Context) (entity.Board, error) {
	args := that.Called(ctx)
	return args.Get(0).(entity.Board), args.Error(1)
}

func (that *mockGameController) Reset() {
	that.Called()
}

type mockMatchDisplay struct {
	mock.Mock
}

func (that *mockMatchDisplay) ShowScore(tally entity.Tally) {
	that.Called(tally)
}

func (that *mockMatchDisplay) AskPlayAgain(ctx context.Context) (bool, error) {
	args := that.Called(ctx)
	return args.Bool(0), args.Error(1)
}
