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

var promoChoices = [4]PromoType{PromoQueen, PromoRook, PromoBishop, PromoKnight}

// GenerateMoves appends all pseudo-legal moves for the side to move
// into moveList and returns the count. Pseudo-legal: own-king safety
// is not checked here (the search core filters that by making the
// move and calling WasLegalMove).
func (b *Board) GenerateMoves(moveList []Move) int {
	n := 0
	us := b.sideToMove
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == PieceNone || p.Color() != us {
			continue
		}
		switch p.Type() {
		case Pawn:
			n = b.genPawnMoves(sq, us, moveList, n)
		case Knight:
			n = b.genStepMoves(sq, knightDeltas[:], moveList, n)
		case King:
			n = b.genStepMoves(sq, kingDeltas[:], moveList, n)
			n = b.genCastles(sq, us, moveList, n)
		case Bishop:
			n = b.genSliderMoves(sq, bishopDirs[:], moveList, n)
		case Rook:
			n = b.genSliderMoves(sq, rookDirs[:], moveList, n)
		case Queen:
			n = b.genSliderMoves(sq, bishopDirs[:], moveList, n)
			n = b.genSliderMoves(sq, rookDirs[:], moveList, n)
		}
	}
	return n
}

func (b *Board) genStepMoves(from Square, deltas [][2]int, moveList []Move, n int) int {
	us := b.squares[from].Color()
	for _, d := range deltas {
		f, r := from.File()+d[0], from.Rank()+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		to := SquareOf(f, r)
		target := b.squares[to]
		if target != PieceNone && target.Color() == us {
			continue
		}
		moveList[n] = NewMove(from, to, Quiet, 0)
		n++
	}
	return n
}

func (b *Board) genSliderMoves(from Square, dirs [][2]int, moveList []Move, n int) int {
	us := b.squares[from].Color()
	for _, d := range dirs {
		f, r := from.File()+d[0], from.Rank()+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			to := SquareOf(f, r)
			target := b.squares[to]
			if target != PieceNone && target.Color() == us {
				break
			}
			moveList[n] = NewMove(from, to, Quiet, 0)
			n++
			if target != PieceNone {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return n
}

func (b *Board) genPawnMoves(from Square, us Color, moveList []Move, n int) int {
	rankDelta, startRank, promoRank := 1, 1, 7
	if us == Black {
		rankDelta, startRank, promoRank = -1, 6, 0
	}

	addPawnMove := func(to Square, flag MoveFlag) {
		if to.Rank() == promoRank && flag != EnPassant {
			for _, pt := range promoChoices {
				moveList[n] = NewMove(from, to, Promotion, pt)
				n++
			}
			return
		}
		moveList[n] = NewMove(from, to, flag, 0)
		n++
	}

	// single push
	oneF, oneR := from.File(), from.Rank()+rankDelta
	if oneR >= 0 && oneR <= 7 {
		oneTo := SquareOf(oneF, oneR)
		if b.squares[oneTo] == PieceNone {
			addPawnMove(oneTo, Quiet)
			// double push
			if from.Rank() == startRank {
				twoTo := SquareOf(oneF, oneR+rankDelta)
				if b.squares[twoTo] == PieceNone {
					moveList[n] = NewMove(from, twoTo, Quiet, 0)
					n++
				}
			}
		}
	}

	// captures (incl. en passant)
	for _, df := range [2]int{-1, 1} {
		f := from.File() + df
		r := from.Rank() + rankDelta
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		to := SquareOf(f, r)
		target := b.squares[to]
		if target != PieceNone && target.Color() != us {
			addPawnMove(to, Quiet)
		} else if to == b.epSquare && b.epSquare != SqNone {
			addPawnMove(to, EnPassant)
		}
	}

	return n
}

func (b *Board) genCastles(kingSq Square, us Color, moveList []Move, n int) int {
	opp := us.Flip()
	if b.AttackersCount(kingSq, opp) > 0 {
		return n // can't castle out of check
	}

	type castle struct {
		right      CastleRights
		kingTo     Square
		pathSquare []Square // squares the king crosses or lands on, must be unattacked
		empty      []Square // squares that must be empty (excludes king's own square)
	}

	var candidates []castle
	if us == White {
		candidates = []castle{
			{WhiteKingSide, SquareOf(6, 0), []Square{SquareOf(5, 0), SquareOf(6, 0)}, []Square{SquareOf(5, 0), SquareOf(6, 0)}},
			{WhiteQueenSide, SquareOf(2, 0), []Square{SquareOf(3, 0), SquareOf(2, 0)}, []Square{SquareOf(1, 0), SquareOf(2, 0), SquareOf(3, 0)}},
		}
	} else {
		candidates = []castle{
			{BlackKingSide, SquareOf(6, 7), []Square{SquareOf(5, 7), SquareOf(6, 7)}, []Square{SquareOf(5, 7), SquareOf(6, 7)}},
			{BlackQueenSide, SquareOf(2, 7), []Square{SquareOf(3, 7), SquareOf(2, 7)}, []Square{SquareOf(1, 7), SquareOf(2, 7), SquareOf(3, 7)}},
		}
	}

	for _, c := range candidates {
		if b.castleRights&c.right == 0 {
			continue
		}
		blocked := false
		for _, sq := range c.empty {
			if b.squares[sq] != PieceNone {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		throughCheck := false
		for _, sq := range c.pathSquare {
			if b.AttackersCount(sq, opp) > 0 {
				throughCheck = true
				break
			}
		}
		if throughCheck {
			continue
		}
		moveList[n] = NewMove(kingSq, c.kingTo, Castle, 0)
		n++
	}
	return n
}
