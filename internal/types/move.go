//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Move is a move encoded as a non-negative 16-bit integer:
//
//	bits  0.. 5  from square
//	bits  6..11  to square
//	bits 12..13  special-move flag (Quiet, Promotion, EnPassant, Castle)
//	bits 14..15  promotion piece index (Queen, Rook, Bishop, Knight),
//	             only meaningful when flag == Promotion
//
// The low 16 bits carry the whole move, so a pre-score can be packed
// into the high bits of a wider int and stripped again:
// (score<<16) | (move & 0xffff). The search package's filterAndSort
// does not pack; it sorts (score, move) pairs instead.
type Move uint16

// MoveNone is the zero value: no move.
const MoveNone Move = 0

// MoveFlag distinguishes the special move kinds that need decoding
// beyond a plain from/to pair.
type MoveFlag uint16

// move flags
const (
	Quiet MoveFlag = iota
	Promotion
	EnPassant
	Castle
)

// PromoType enumerates the four promotion choices, used to index
// promotionValue.
type PromoType uint16

// promotion choices
const (
	PromoQueen PromoType = iota
	PromoRook
	PromoBishop
	PromoKnight
)

const (
	fromMask  = 0x3f
	toShift   = 6
	toMask    = 0x3f
	flagShift = 12
	flagMask  = 0x3
	promoShift = 14
	promoMask  = 0x3
)

// NewMove packs a from/to/flag/promotion quadruple into a Move.
func NewMove(from, to Square, flag MoveFlag, promo PromoType) Move {
	return Move(uint16(from)&fromMask |
		(uint16(to)&toMask)<<toShift |
		(uint16(flag)&flagMask)<<flagShift |
		(uint16(promo)&promoMask)<<promoShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(uint16(m) & fromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((uint16(m) >> toShift) & toMask) }

// Flag returns the special-move flag.
func (m Move) Flag() MoveFlag { return MoveFlag((uint16(m) >> flagShift) & flagMask) }

// PromotionType returns the promotion choice. Only meaningful when
// Flag() == Promotion.
func (m Move) PromotionType() PromoType { return PromoType((uint16(m) >> promoShift) & promoMask) }

// promotionValue is the fixed promotion-gain table, indexed by the
// two promotion bits of the move encoding: Q=9, R=5, B=N=3.
var promotionValue = [...]int{
	PromoQueen:  9,
	PromoRook:   5,
	PromoBishop: 3,
	PromoKnight: 3,
}

// Value returns the material gain table entry for the promotion choice.
func (pt PromoType) Value() int { return promotionValue[pt] }

func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Flag() == Promotion {
		switch m.PromotionType() {
		case PromoQueen:
			s += "q"
		case PromoRook:
			s += "r"
		case PromoBishop:
			s += "b"
		case PromoKnight:
			s += "n"
		}
	}
	return s
}
