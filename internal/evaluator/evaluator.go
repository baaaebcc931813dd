//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package evaluator contains the static evaluation used by the
// search core: material plus a per-square-table positional bonus,
// returned in millipawns from the side-to-move's perspective. The
// search treats it as a black box - it never inspects the
// coefficient vector below, only calls Evaluate.
package evaluator

import (
	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/floydgo/internal/logging"
	"github.com/frankkopp/floydgo/internal/search"
	. "github.com/frankkopp/floydgo/internal/types"
)

// Evaluator computes a static position score. Create with
// NewEvaluator().
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator returns a ready Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// pieceValueMp is material value in millipawns, indexed by PieceType.
var pieceValueMp = [...]int{
	NoPieceType: 0,
	Pawn:        1000,
	Knight:      3200,
	Bishop:      3300,
	Rook:        5000,
	Queen:       9000,
	King:        0,
}

// pst is a per-piece-type, white-perspective 8x8 positional bonus
// table in millipawns, indexed [pieceType][rank*8+file]. Black's
// bonus is read from the vertically mirrored square.
var pst = [7][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// Evaluate returns b's value in millipawns from the perspective of
// the side to move.
func (e *Evaluator) Evaluate(b search.Board) int {
	score := 0
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == PieceNone {
			continue
		}
		pstSquare := int(sq)
		if p.Color() == Black {
			pstSquare = int(sq) ^ 0x38 // mirror rank for black
		}
		v := pieceValueMp[p.Type()] + pst[p.Type()][pstSquare]
		if p.Color() == White {
			score += v
		} else {
			score -= v
		}
	}
	if b.SideToMove() == Black {
		score = -score
	}
	return score
}

// ResetEvaluate invalidates any cached evaluation state. This
// implementation has none, but the method exists so a future
// coefficient-tuning pass (or a cache) has a hook to invalidate.
func (e *Evaluator) ResetEvaluate() {}
