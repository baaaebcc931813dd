//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Color is white or black.
type Color int8

// the two colors
const (
	White Color = iota
	Black
	ColorNone
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is the kind of piece, independent of color.
type PieceType int8

// piece types, in the order used to index pieceValue
const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a colored piece occupying a square, or PieceNone for empty.
type Piece int8

// PieceNone marks an empty square.
const PieceNone Piece = 0

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return PieceNone
	}
	return Piece(int8(c)*8 + int8(pt))
}

// Type returns the piece type, ignoring color.
func (p Piece) Type() PieceType {
	if p == PieceNone {
		return NoPieceType
	}
	return PieceType(int8(p) % 8)
}

// Color returns the color of the piece. Undefined for PieceNone.
func (p Piece) Color() Color {
	if int8(p) >= 8 {
		return Black
	}
	return White
}

// pieceValue is the fixed material table used only by the exchange
// estimator: K=27 (sentinel: the king is always the last recapturer
// and never "captured"), Q=9, R=5, B=N=3, P=1. Empty square is -1
// so that quiet moves to empty squares get a negative pre-score.
var pieceValue = [...]int{
	NoPieceType: -1,
	Pawn:        1,
	Knight:      3,
	Bishop:      3,
	Rook:        5,
	Queen:       9,
	King:        27,
}

// Value returns the exchange-estimator material value of the piece.
func (p Piece) Value() int {
	return pieceValue[p.Type()]
}

var pieceLetters = [...]byte{
	NoPieceType: '.',
	Pawn:        'p',
	Knight:      'n',
	Bishop:      'b',
	Rook:        'r',
	Queen:       'q',
	King:        'k',
}

// String returns the FEN piece letter, upper case for white.
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	l := pieceLetters[p.Type()]
	if p.Color() == White {
		l -= 'a' - 'A'
	}
	return string(l)
}
