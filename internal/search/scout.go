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

// scout is the fast null-window alpha-beta probe used by pvSearch to
// confirm that non-PV siblings fail low, with window [alpha, alpha+1].
// It is also the only frame that polls for abort - pvSearch inherits
// cancellation through its recursion into scout.
func (e *Engine) scout(depth, alpha int) int {
	e.NodeCount++
	if e.Board.Repetition() {
		return e.drawScore()
	}
	if depth == 0 {
		return e.qSearch(alpha)
	}

	e.checkAbort()

	check := e.Board.InCheck()
	bestScore := MinInt

	var moveList [MaxMoves]Move
	n := e.Board.GenerateMoves(moveList[:])
	n = filterAndSort(e.Board, moveList[:n], n, MinInt)

	checkExt := 0
	if check {
		checkExt = 1
	}
	for i := 0; i < n && bestScore <= alpha; i++ {
		// MakeMove/UndoMove are paired inside this closure so that
		// defer runs UndoMove even when the recursive scout() call
		// panics with abortSignal - the board unwinds one ply per
		// stack frame as the panic propagates, so by the time
		// rootSearch's recover() runs the board is already back at
		// the search root with no replay bookkeeping required.
		func() {
			e.Board.MakeMove(moveList[i])
			defer e.Board.UndoMove()
			if !e.Board.WasLegalMove() {
				return
			}
			newDepth := depth - 1 + checkExt
			if newDepth < 0 {
				newDepth = 0
			}
			score := -e.scout(newDepth, -(alpha + 1))
			if score > bestScore {
				bestScore = score
			}
		}()
	}

	if bestScore == MinInt {
		bestScore = e.endScore(check)
	}
	return e.ttWrite(depth, alpha, alpha+1, bestScore)
}
