//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/floydgo/internal/board"
	"github.com/frankkopp/floydgo/internal/evaluator"
	"github.com/frankkopp/floydgo/internal/search"
	"github.com/frankkopp/floydgo/internal/transpositiontable"
	. "github.com/frankkopp/floydgo/internal/types"
)

func newTestEngine(fen string) (*search.Engine, *board.Board) {
	b := board.NewBoard(fen)
	eng := search.NewEngine(b, evaluator.NewEvaluator(), transpositiontable.NewTtTable())
	return eng, b
}

// TestMateInOne: white mates in one with the rook.
func TestMateInOne(t *testing.T) {
	eng, _ := newTestEngine("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	search.RootSearch(eng, search.NewTarget(2), nil, nil)

	assert.Equal(t, MateValue-1, eng.Score)
	assert.NotEqual(t, MoveNone, eng.BestMove)
	assert.GreaterOrEqual(t, eng.PV.Len, 1)
	assert.Equal(t, eng.BestMove, eng.PV.Move(0))
}

// TestStalemate: no legal moves and not in check scores as a draw.
func TestStalemate(t *testing.T) {
	eng, _ := newTestEngine("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	search.RootSearch(eng, search.NewTarget(4), nil, nil)

	assert.Equal(t, 0, eng.Score)
	assert.Equal(t, MoveNone, eng.BestMove)
	assert.Equal(t, 0, eng.PV.Len)
}

// TestStartposDepthZero: depth 0 must equal a direct call to Evaluate.
func TestStartposDepthZero(t *testing.T) {
	eng, b := newTestEngine(board.StartFen)
	want := eng.Eval.Evaluate(b)

	search.RootSearch(eng, search.NewTarget(0), nil, nil)

	assert.Equal(t, want, eng.Score)
}

// TestBoardConservation: RootSearch must leave the board exactly as
// it found it.
func TestBoardConservation(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	eng, b := newTestEngine(fen)
	before := board.NewBoard(fen)

	search.RootSearch(eng, search.NewTarget(3), nil, nil)

	assert.True(t, before.Equal(b))
}

// TestAbortMidIteration: an aggressive movetime must still return a
// playable move and an intact board.
func TestAbortMidIteration(t *testing.T) {
	fen := board.StartFen
	eng, b := newTestEngine(fen)
	before := board.NewBoard(fen)

	target := search.NewTarget(20)
	target.MaxTime = 50 * time.Millisecond

	start := time.Now()
	search.RootSearch(eng, target, nil, nil)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 500*time.Millisecond)
	assert.NotEqual(t, MoveNone, eng.BestMove)
	assert.True(t, before.Equal(b))
	assert.LessOrEqual(t, eng.PV.Len, 1)
}

// TestStopRequestsAbort exercises the external-cancel path: calling
// Stop from the info callback must end the search promptly and still
// leave a playable best move.
func TestStopRequestsAbort(t *testing.T) {
	eng, _ := newTestEngine(board.StartFen)
	target := search.NewTarget(20)

	calls := 0
	search.RootSearch(eng, target, func(interface{}) bool {
		calls++
		eng.Stop()
		return false
	}, nil)

	assert.GreaterOrEqual(t, calls, 1)
	assert.NotEqual(t, MoveNone, eng.BestMove)
}

// TestPVFollowUp: iteration N+1 must search iteration N's PV move
// first at the root.
func TestPVFollowUp(t *testing.T) {
	eng, _ := newTestEngine("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")

	var firstMovesPerIteration []Move
	search.RootSearch(eng, search.NewTarget(3), func(interface{}) bool {
		firstMovesPerIteration = append(firstMovesPerIteration, eng.PV.Move(0))
		return false
	}, nil)

	for i := 1; i < len(firstMovesPerIteration); i++ {
		if firstMovesPerIteration[i-1] == MoveNone {
			continue
		}
		assert.Equal(t, firstMovesPerIteration[i-1], firstMovesPerIteration[i],
			"iteration %d must follow up on iteration %d's root move", i, i-1)
	}
}

// TestDeterminism: the same position and depth must produce the same
// bestMove and score.
func TestDeterminism(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	eng1, _ := newTestEngine(fen)
	search.RootSearch(eng1, search.NewTarget(3), nil, nil)

	eng2, _ := newTestEngine(fen)
	search.RootSearch(eng2, search.NewTarget(3), nil, nil)

	assert.Equal(t, eng1.BestMove, eng2.BestMove)
	assert.Equal(t, eng1.Score, eng2.Score)
}

// TestForcedCapture: white's undefended bishop has just given check
// on d7; every king move
// escapes the check, but recapturing it is the only move that isn't
// down a whole piece for nothing.
func TestForcedCapture(t *testing.T) {
	eng, _ := newTestEngine("4k3/3B4/8/8/8/8/8/4K3 b - - 0 1")
	search.RootSearch(eng, search.NewTarget(3), nil, nil)

	assert.NotEqual(t, MoveNone, eng.BestMove)
	assert.Greater(t, eng.NodeCount, uint64(0))
	assert.Equal(t, SquareOf(4, 7), eng.BestMove.From()) // e8
	assert.Equal(t, SquareOf(3, 6), eng.BestMove.To())   // d7
}
