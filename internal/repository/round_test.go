package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/testing/suite"
)

func newRound() *entity.Round {
	return &entity.Round{
		ID:   "123",
		Rows: 3,
		Cols: 3,
		Board: []entity.Symbol{
			entity.SymbolX, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.SymbolO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		},
		Players: []entity.Player{
			{Name: "Alice", Symbol: entity.SymbolX},
			{Name: "Bob", Symbol: entity.SymbolO},
		},
		Turn:   entity.SymbolX,
		Status: entity.StatusOngoing,
		Moves:  2,
	}
}

func TestRoundRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roundRepo := NewRoundRepository(st.Redis)

	// Given: a round in progress
	round := newRound()

	// When: CreateOrUpdate is called twice
	require.NoError(t, roundRepo.CreateOrUpdate(ctx, round))

	round.Moves = 3
	round.Turn = entity.SymbolO
	err := roundRepo.CreateOrUpdate(ctx, round)

	// Then: the latest snapshot is stored
	require.NoError(t, err)

	stored, err := roundRepo.GetByID(ctx, round.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Moves)
	assert.Equal(t, entity.SymbolO, stored.Turn)
}

func TestRoundRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Redis)

		// Given: a stored round
		round := newRound()
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, round))

		// When: GetByID is called with existing ID
		retrieved, err := roundRepo.GetByID(ctx, round.ID)

		// Then: the retrieved round should match the saved one
		require.NoError(t, err)
		assert.Equal(t, round.ID, retrieved.ID)
		assert.Equal(t, round.Board, retrieved.Board)
		assert.Equal(t, round.Players, retrieved.Players)
		assert.Equal(t, round.Status, retrieved.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Redis)

		// When: GetByID is called with non-existent ID
		retrieved, err := roundRepo.GetByID(ctx, "9999999")

		// Then: an ErrRoundNotFound error should be returned
		require.ErrorIs(t, err, ErrRoundNotFound)
		assert.Empty(t, retrieved.ID)
	})
}

func TestRoundRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	roundRepo := NewRoundRepository(st.Redis)

	// Given: a stored round
	round := newRound()
	require.NoError(t, roundRepo.CreateOrUpdate(ctx, round))

	// When: DeleteByID is called
	err := roundRepo.DeleteByID(ctx, round.ID)

	// Then: the round is gone
	require.NoError(t, err)

	_, err = roundRepo.GetByID(ctx, round.ID)
	assert.ErrorIs(t, err, ErrRoundNotFound)
}
