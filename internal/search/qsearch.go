//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	. "github.com/frankkopp/floydgo/internal/types"
)

// qSearch resolves tactical noise at the search horizon: it searches
// only captures/promotions (and, in check, every evasion) until the
// position is quiet, then stands on the static evaluation. It is
// itself a null-window search with window [alpha, alpha+1] - callers
// treat it as a scout leaf. qSearch never polls for abort: it is
// bounded in practice by capture sequences.
func (e *Engine) qSearch(alpha int) int {
	check := e.Board.InCheck()
	bestScore := MinInt
	if !check {
		bestScore = e.Eval.Evaluate(e.Board)
	}
	if bestScore > alpha {
		return e.ttWrite(0, alpha, alpha+1, bestScore)
	}

	var moveList [MaxMoves]Move
	n := e.Board.GenerateMoves(moveList[:])
	filter := 0
	if check {
		filter = MinInt
	}
	n = filterAndSort(e.Board, moveList[:n], n, filter)

	for i := 0; i < n && bestScore <= alpha; i++ {
		func() {
			e.Board.MakeMove(moveList[i])
			defer e.Board.UndoMove()
			if !e.Board.WasLegalMove() {
				return
			}
			e.NodeCount++
			score := -e.qSearch(-(alpha + 1))
			if score > bestScore {
				bestScore = score
			}
		}()
	}

	if bestScore == MinInt {
		bestScore = e.endScore(check)
	}
	return e.ttWrite(0, alpha, alpha+1, bestScore)
}
