//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	. "github.com/frankkopp/floydgo/internal/types"
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// AttackersCount returns how many pieces of color by attack sq. The
// search core only ever tests it against zero, so it never needs to
// be more than "enough".
func (b *Board) AttackersCount(sq Square, by Color) int {
	count := 0

	// pawns: a pawn of color `by` attacks sq if sq is one of its two
	// forward-diagonal squares, i.e. the pawn sits diagonally *behind*
	// sq from the mover's perspective.
	pawnRankDelta := 1
	if by == Black {
		pawnRankDelta = -1
	}
	for _, df := range [2]int{-1, 1} {
		f := sq.File() - df
		r := sq.Rank() - pawnRankDelta
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		if p := b.squares[SquareOf(f, r)]; p == MakePiece(by, Pawn) {
			count++
		}
	}

	for _, d := range knightDeltas {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		if p := b.squares[SquareOf(f, r)]; p == MakePiece(by, Knight) {
			count++
		}
	}

	for _, d := range kingDeltas {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		if p := b.squares[SquareOf(f, r)]; p == MakePiece(by, King) {
			count++
		}
	}

	for _, d := range bishopDirs {
		if b.rayAttacker(sq, d, by, Bishop, Queen) {
			count++
		}
	}
	for _, d := range rookDirs {
		if b.rayAttacker(sq, d, by, Rook, Queen) {
			count++
		}
	}

	return count
}

// rayAttacker walks from sq in direction d and reports whether the
// first occupied square holds a `by`-colored piece of type want1 or
// want2 (the slider types that attack along that direction).
func (b *Board) rayAttacker(sq Square, d [2]int, by Color, want1, want2 PieceType) bool {
	f, r := sq.File()+d[0], sq.Rank()+d[1]
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		p := b.squares[SquareOf(f, r)]
		if p != PieceNone {
			if p.Color() == by && (p.Type() == want1 || p.Type() == want2) {
				return true
			}
			return false
		}
		f += d[0]
		r += d[1]
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool {
	kingSq := b.kingSquare(b.sideToMove)
	if kingSq == SqNone {
		return false
	}
	return b.AttackersCount(kingSq, b.sideToMove.Flip()) > 0
}

// WasLegalMove reports whether the last move made with MakeMove left
// the mover's own king safe. Must be called before the matching
// UndoMove.
func (b *Board) WasLegalMove() bool {
	mover := b.sideToMove.Flip()
	kingSq := b.kingSquare(mover)
	if kingSq == SqNone {
		return true
	}
	return b.AttackersCount(kingSq, b.sideToMove) == 0
}
