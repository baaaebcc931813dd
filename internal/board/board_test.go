//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/floydgo/internal/types"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/8/8/4k3/8/8/4K3/7R w - - 3 27",
	}
	for _, fen := range fens {
		b := NewBoard(fen)
		assert.Equal(t, fen, b.Fen())
	}
}

func TestSetFenInvalid(t *testing.T) {
	b := &Board{}
	err := b.SetFen("not a fen")
	assert.Error(t, err)
}

func TestSideToMoveAndPieceAt(t *testing.T) {
	b := NewBoard(StartFen)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, MakePiece(White, Rook), b.PieceAt(SquareOf(0, 0)))
	assert.Equal(t, MakePiece(Black, King), b.PieceAt(SquareOf(4, 7)))
	assert.Equal(t, PieceNone, b.PieceAt(SquareOf(4, 4)))
}

// TestMakeUndoConservesBoard checks that playing every pseudo-legal move from
// fen and undoing it restores the board to bitwise identity, the
// round-trip property.
func TestMakeUndoConservesBoard(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		before := NewBoard(fen)
		after := NewBoard(fen)

		var moveList [MaxMoves]Move
		n := after.GenerateMoves(moveList[:])
		assert.Greater(t, n, 0)

		for i := 0; i < n; i++ {
			after.MakeMove(moveList[i])
			after.UndoMove()
			assert.True(t, before.Equal(after), "fen %q move %s", fen, moveList[i])
		}
	}
}

func TestInCheck(t *testing.T) {
	b := NewBoard("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	assert.False(t, b.InCheck())

	b = NewBoard("4k2R/8/4K3/8/8/8/8/8 b - - 0 1")
	assert.True(t, b.InCheck())
}

func TestRepetitionByFiftyMoveRule(t *testing.T) {
	b := NewBoard("8/8/8/4k3/8/8/4K3/7R w - - 99 60")
	assert.False(t, b.Repetition())
	// one quiet king move pushes the halfmove clock to 100
	var moveList [MaxMoves]Move
	n := b.GenerateMoves(moveList[:])
	played := false
	for i := 0; i < n && !played; i++ {
		if moveList[i].Flag() == Quiet && b.PieceAt(moveList[i].From()).Type() == King {
			b.MakeMove(moveList[i])
			played = true
		}
	}
	assert.True(t, played)
	assert.True(t, b.Repetition())
}

func TestRepetitionByThreefold(t *testing.T) {
	b := NewBoard("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	zk := b.ZobristKey()

	shuttle := func() {
		b.MakeMove(NewMove(SquareOf(7, 0), SquareOf(7, 1), Quiet, PromoQueen))
		b.MakeMove(NewMove(SquareOf(4, 7), SquareOf(3, 7), Quiet, PromoQueen))
		b.MakeMove(NewMove(SquareOf(7, 1), SquareOf(7, 0), Quiet, PromoQueen))
		b.MakeMove(NewMove(SquareOf(3, 7), SquareOf(4, 7), Quiet, PromoQueen))
	}
	shuttle()
	assert.Equal(t, zk, b.ZobristKey())
	assert.False(t, b.Repetition())
	shuttle()
	assert.True(t, b.Repetition())
}
