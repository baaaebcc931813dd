//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"sort"

	. "github.com/frankkopp/floydgo/internal/types"
)

// exchange returns a pessimistic one-ply material-change estimate for
// candidate move m: not a full static-exchange evaluation, just
// enough to drive move ordering and threshold filtering.
func exchange(b Board, m Move) int {
	from, to := m.From(), m.To()
	victim := b.PieceAt(to)
	score := victim.Value()

	if b.XSideAttacks(to) != 0 {
		mover := b.PieceAt(from)
		score -= mover.Value()
	} else if b.IsPromotion(from, to) {
		score += m.PromotionType().Value() - 1
	}
	return score
}

// scoredMove packs a pre-score with its move as a struct rather than
// folding both into one packed int, since Go has no spare high bits
// to borrow from a fixed-width encoding the way a (score<<16)|move
// trick would need.
type scoredMove struct {
	score int
	move  Move
}

// filterAndSort keeps only moves whose exchange() estimate is >=
// moveFilter and returns them in descending order of that estimate,
// overwriting the prefix of moveList. Ties are broken by move value
// only for determinism, never meaningfully.
//
// Threshold semantics: MinInt keeps every move (full-width search, or
// check evasions); 0 keeps non-losing captures/promotions.
func filterAndSort(b Board, moveList []Move, nrMoves, moveFilter int) int {
	scored := make([]scoredMove, 0, nrMoves)
	for i := 0; i < nrMoves; i++ {
		s := exchange(b, moveList[i])
		if s >= moveFilter {
			scored = append(scored, scoredMove{score: s, move: moveList[i]})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].move < scored[j].move
	})

	for i, sm := range scored {
		moveList[i] = sm.move
	}
	return len(scored)
}

// filterLegalMoves keeps only moves that leave the mover's own king
// safe, by playing and undoing each one. Used only at PV nodes -
// scout and quiescence instead test WasLegalMove after making each
// move and skip illegal ones without counting them as nodes.
func filterLegalMoves(b Board, moveList []Move, nrMoves int) int {
	j := 0
	for i := 0; i < nrMoves; i++ {
		b.MakeMove(moveList[i])
		legal := b.WasLegalMove()
		b.UndoMove()
		if legal {
			moveList[j] = moveList[i]
			j++
		}
	}
	return j
}

// moveToFront rotates list[0:i+1] right by one so that move becomes
// list[0], where i is move's current index. Leaves the list
// unchanged if move is not present. Used to make PV-search follow a
// previously discovered PV move first.
func moveToFront(moveList []Move, nrMoves int, move Move) {
	for i := 0; i < nrMoves; i++ {
		if moveList[i] != move {
			continue
		}
		copy(moveList[1:i+1], moveList[0:i])
		moveList[0] = move
		return
	}
}
