//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"strings"

	. "github.com/frankkopp/floydgo/internal/types"
)

// PV is the principal-variation buffer threaded through the search.
// Each recursive frame owns its own pvIndex and only ever
// truncates/extends the suffix starting at that index - see
// pvSearch for the splice semantics that keep this invariant.
type PV struct {
	moves [MaxDepth]Move
	Len   int
}

// Move returns the move at index i. Callers only call this for
// i < Len.
func (pv *PV) Move(i int) Move { return pv.moves[i] }

// Truncate sets Len, discarding anything beyond it. It never grows
// the buffer - use Append/Set for that.
func (pv *PV) Truncate(n int) { pv.Len = n }

// Append adds a move at the current end and grows Len by one.
func (pv *PV) Append(m Move) {
	if pv.Len < len(pv.moves) {
		pv.moves[pv.Len] = m
		pv.Len++
	}
}

// Set overwrites the move at index i without changing Len. Used when
// i is already within the buffer (e.g. moveToFront's effect on pv[0]).
func (pv *PV) Set(i int, m Move) { pv.moves[i] = m }

// spliceFrom copies pv.moves[from:pv.Len] down to start at `to` and
// shrinks Len to match - the mechanism pvSearch uses to fold a
// successful research's line into the parent's PV at pvIndex.
func (pv *PV) spliceFrom(from, to int) {
	shift := from - to
	for j := 0; from+j < pv.Len; j++ {
		pv.moves[to+j] = pv.moves[from+j]
	}
	pv.Len -= shift
}

// String renders the PV in UCI-ish long algebraic form.
func (pv *PV) String() string {
	var sb strings.Builder
	for i := 0; i < pv.Len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pv.moves[i].String())
	}
	return sb.String()
}
