//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	"math/rand"

	. "github.com/frankkopp/floydgo/internal/types"
)

var (
	zobristPieceSquare [16][64]uint64
	zobristSideToMove  uint64
	zobristCastling    [16]uint64
	zobristEpFile      [8]uint64
)

// zobristSeed is fixed so hashes (and therefore repetition detection)
// are deterministic across runs, which the search core's determinism
// invariant depends on.
const zobristSeed = 0xF10D

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for piece := 0; piece < 16; piece++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[piece][sq] = r.Uint64()
		}
	}
	zobristSideToMove = r.Uint64()
	for i := range zobristCastling {
		zobristCastling[i] = r.Uint64()
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = r.Uint64()
	}
}

func computeHash(b *Board) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != PieceNone {
			h ^= zobristPieceSquare[p][sq]
		}
	}
	if b.sideToMove == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[b.castleRights]
	if b.epSquare != SqNone {
		h ^= zobristEpFile[b.epSquare.File()]
	}
	return h
}
