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

// PlyNumber is the monotonic ply counter since the position was
// loaded, used by the search core to compute mate-distance scores.
func (b *Board) PlyNumber() int { return b.plyNumber }

// IsPromotion reports whether moving the piece on `from` to `to`
// would be a pawn promotion.
func (b *Board) IsPromotion(from, to Square) bool {
	p := b.squares[from]
	if p.Type() != Pawn {
		return false
	}
	if p.Color() == White {
		return to.Rank() == 7
	}
	return to.Rank() == 0
}

// XSideAttacks returns the attack count on sq by the side NOT to
// move - the side that would recapture if the side to move played a
// move landing on sq. The search core only tests it against zero.
func (b *Board) XSideAttacks(sq Square) int {
	return b.AttackersCount(sq, b.sideToMove.Flip())
}

// Repetition reports a draw by threefold repetition or the
// fifty-move rule.
func (b *Board) Repetition() bool {
	if b.halfmoveClock >= 100 {
		return true
	}
	seen := 0
	for _, h := range b.hashHistory {
		if h == b.hashKey {
			seen++
			if seen >= 3 {
				return true
			}
		}
	}
	return false
}

// ZobristKey returns the current position's hash.
func (b *Board) ZobristKey() uint64 { return b.hashKey }
