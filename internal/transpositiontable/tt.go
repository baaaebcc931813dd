//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package transpositiontable will eventually back the search core's
// ttWrite hook with a real hash table keyed by Zobrist hash, storing
// depth/bound/move per entry. For now it only has to satisfy the
// hook's contract: the returned score equals the input score,
// bit-exact, whatever Store chooses to remember. A future concrete
// table only needs to keep that contract - the search core never
// inspects what (if anything) got cached.
package transpositiontable

// TtTable is a stub transposition table: a pass-through that
// satisfies search.TranspositionTable without caching anything yet.
// Not safe for concurrent use.
type TtTable struct {
	hits   uint64
	misses uint64
}

// NewTtTable returns a ready, empty table.
func NewTtTable() *TtTable {
	return &TtTable{}
}

// Store is the ttWrite hook: a dummy pass-through today, but any
// future implementation must preserve this exact contract - it may
// use depth/alpha/beta to decide whether and how to cache, but the
// returned value must equal score unchanged.
func (t *TtTable) Store(depth, alpha, beta, score int) int {
	t.misses++
	return score
}

// Clear discards all entries and resets the hit/miss counters. The
// stub holds no entries, so only the counters change. Nothing in this
// module calls it; the UCI "ucinewgame" handler only resets the board.
func (t *TtTable) Clear() {
	t.hits = 0
	t.misses = 0
}
