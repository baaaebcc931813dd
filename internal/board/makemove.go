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

// MakeMove applies m. Pairs with UndoMove; legality (own-king safety)
// is not checked here - call WasLegalMove after.
func (b *Board) MakeMove(m Move) {
	b.history = append(b.history, snapshot{
		squares:        b.squares,
		sideToMove:     b.sideToMove,
		castleRights:   b.castleRights,
		epSquare:       b.epSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		hashKey:        b.hashKey,
	})

	from, to := m.From(), m.To()
	mover := b.sideToMove
	piece := b.squares[from]
	captured := b.squares[to]

	switch m.Flag() {
	case EnPassant:
		capSq := to - 8
		if mover == Black {
			capSq = to + 8
		}
		captured = b.squares[capSq]
		b.squares[capSq] = PieceNone
		b.squares[to] = piece
		b.squares[from] = PieceNone
	case Castle:
		b.squares[to] = piece
		b.squares[from] = PieceNone
		switch to {
		case SquareOf(6, 0):
			b.squares[SquareOf(5, 0)] = b.squares[SquareOf(7, 0)]
			b.squares[SquareOf(7, 0)] = PieceNone
		case SquareOf(2, 0):
			b.squares[SquareOf(3, 0)] = b.squares[SquareOf(0, 0)]
			b.squares[SquareOf(0, 0)] = PieceNone
		case SquareOf(6, 7):
			b.squares[SquareOf(5, 7)] = b.squares[SquareOf(7, 7)]
			b.squares[SquareOf(7, 7)] = PieceNone
		case SquareOf(2, 7):
			b.squares[SquareOf(3, 7)] = b.squares[SquareOf(0, 7)]
			b.squares[SquareOf(0, 7)] = PieceNone
		}
	case Promotion:
		var pt PieceType
		switch m.PromotionType() {
		case PromoQueen:
			pt = Queen
		case PromoRook:
			pt = Rook
		case PromoBishop:
			pt = Bishop
		case PromoKnight:
			pt = Knight
		}
		b.squares[to] = MakePiece(mover, pt)
		b.squares[from] = PieceNone
	default:
		b.squares[to] = piece
		b.squares[from] = PieceNone
	}

	newEp := SqNone
	if piece.Type() == Pawn {
		diff := int(to) - int(from)
		if diff == 16 {
			newEp = from + 8
		} else if diff == -16 {
			newEp = from - 8
		}
	}

	b.castleRights &^= castleRightsLostBy(from)
	b.castleRights &^= castleRightsLostBy(to)
	if piece.Type() == King {
		if mover == White {
			b.castleRights &^= WhiteKingSide | WhiteQueenSide
		} else {
			b.castleRights &^= BlackKingSide | BlackQueenSide
		}
	}

	if piece.Type() == Pawn || captured != PieceNone {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}

	b.epSquare = newEp
	b.sideToMove = mover.Flip()
	b.plyNumber++
	b.hashKey = computeHash(b)
	b.hashHistory = append(b.hashHistory, b.hashKey)
}

// UndoMove reverts the most recent MakeMove.
func (b *Board) UndoMove() {
	n := len(b.history) - 1
	snap := b.history[n]
	b.history = b.history[:n]
	b.squares = snap.squares
	b.sideToMove = snap.sideToMove
	b.castleRights = snap.castleRights
	b.epSquare = snap.epSquare
	b.halfmoveClock = snap.halfmoveClock
	b.fullmoveNumber = snap.fullmoveNumber
	b.hashKey = snap.hashKey
	b.plyNumber--
	b.hashHistory = b.hashHistory[:len(b.hashHistory)-1]
}

func castleRightsLostBy(sq Square) CastleRights {
	switch sq {
	case SquareOf(0, 0):
		return WhiteQueenSide
	case SquareOf(7, 0):
		return WhiteKingSide
	case SquareOf(0, 7):
		return BlackQueenSide
	case SquareOf(7, 7):
		return BlackKingSide
	default:
		return 0
	}
}
