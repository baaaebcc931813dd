//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/floydgo/internal/board"
	. "github.com/frankkopp/floydgo/internal/types"
)

func TestExchangeQuietMoveIsNegative(t *testing.T) {
	b := board.NewBoard(board.StartFen)
	// a quiet pawn push to an empty square: victim value -1, no
	// recapture term, no promotion.
	m := NewMove(SquareOf(4, 1), SquareOf(4, 3), Quiet, 0)
	assert.Equal(t, -1, exchange(b, m))
}

func TestExchangeUndefendedCaptureIsVictimValue(t *testing.T) {
	b := board.NewBoard("4k3/8/8/3n4/8/8/3R4/4K3 w - - 0 1")
	rookTakesKnight := NewMove(SquareOf(3, 1), SquareOf(3, 4), Quiet, 0)
	// the knight is undefended, so the pessimistic recapture term
	// never applies: the estimate is exactly the victim's value.
	assert.Equal(t, 3, exchange(b, rookTakesKnight))
}

func TestExchangeDefendedCaptureSubtractsMover(t *testing.T) {
	b := board.NewBoard("4k3/4n3/8/3p4/3R4/8/8/4K3 w - - 0 1")
	rookTakesPawn := NewMove(SquareOf(3, 3), SquareOf(3, 4), Quiet, 0)
	// the pawn on d5 is defended by the knight on e7, so the
	// estimate pessimistically subtracts the rook's own value.
	assert.Equal(t, 1-5, exchange(b, rookTakesPawn))
}

func TestFilterAndSortOrdersDescending(t *testing.T) {
	b := board.NewBoard("4k3/8/8/3n4/8/8/3R4/4K3 w - - 0 1")
	var moveList [MaxMoves]Move
	n := b.GenerateMoves(moveList[:])
	n = filterAndSort(b, moveList[:n], n, MinInt)
	assert.Greater(t, n, 0)

	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = exchange(b, moveList[i])
	}
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i])
	}
	// the rook takes the undefended knight: that capture must sort
	// first since it is the best-scoring move in the list.
	rookTakesKnight := NewMove(SquareOf(3, 1), SquareOf(3, 4), Quiet, 0)
	assert.Equal(t, rookTakesKnight, moveList[0])
}

func TestFilterAndSortThresholdDropsLosingQuietMoves(t *testing.T) {
	b := board.NewBoard(board.StartFen)
	var moveList [MaxMoves]Move
	n := b.GenerateMoves(moveList[:])
	n = filterAndSort(b, moveList[:n], n, 0)
	// no captures or promotions are available from the start
	// position, so a threshold of 0 must drop every quiet move.
	assert.Equal(t, 0, n)
}

func TestMoveToFront(t *testing.T) {
	moves := []Move{
		NewMove(SquareOf(0, 0), SquareOf(0, 1), Quiet, 0),
		NewMove(SquareOf(1, 0), SquareOf(1, 1), Quiet, 0),
		NewMove(SquareOf(2, 0), SquareOf(2, 1), Quiet, 0),
	}
	a, b, c := moves[0], moves[1], moves[2]
	moveToFront(moves, len(moves), c)
	assert.Equal(t, []Move{c, a, b}, moves)
}

func TestMoveToFrontLeavesListIfNotFound(t *testing.T) {
	moves := []Move{
		NewMove(SquareOf(0, 0), SquareOf(0, 1), Quiet, 0),
		NewMove(SquareOf(1, 0), SquareOf(1, 1), Quiet, 0),
	}
	before := append([]Move(nil), moves...)
	moveToFront(moves, len(moves), NewMove(SquareOf(5, 5), SquareOf(5, 6), Quiet, 0))
	assert.Equal(t, before, moves)
}
