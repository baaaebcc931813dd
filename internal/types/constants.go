//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import "math"

// MaxMoves bounds the pseudo-legal move list generated for any one
// position; 225 is comfortably above the theoretical maximum (218).
const MaxMoves = 225

// MaxDepth bounds the iterative-deepening ceiling and the PV buffer.
const MaxDepth = 128

// Infinity is the sentinel used for alpha/beta at the edges of the
// search window. MinInt is its negation and also the "keep all
// moves" move-ordering threshold.
const (
	Infinity = math.MaxInt32
	MinInt   = -Infinity
)

// MateValue is the score magnitude assigned to the side that is
// checkmated, before subtracting the distance from the search root.
const MateValue = 32000
