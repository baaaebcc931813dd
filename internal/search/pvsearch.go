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

// pvSearch is the full-window principal-variation search: the first
// (expected-best) move is searched with an open window, every sibling
// with a null window via scout, and re-searched with the full window
// on fail-high. It maintains e.PV starting at pvIndex - see the
// splice step below for the invariant that keeps the stored line
// rooted at pvIndex after a successful research.
//
// Every MakeMove is paired with a deferred UndoMove so that an abort
// panicking up through a recursive scout()/pvSearch() call still
// unwinds the board correctly one ply per stack frame.
func (e *Engine) pvSearch(depth, alpha, beta, pvIndex int) int {
	e.NodeCount++
	if e.Board.Repetition() {
		return e.drawScore()
	}

	check := e.Board.InCheck()
	moveFilter := MinInt
	bestScore := MinInt

	// Frontier: drop into PV-line quiescence by only considering
	// gainful moves, rather than calling qSearch directly - this
	// keeps the PV shape consistent through the horizon.
	if depth == 0 && !check {
		bestScore = e.Eval.Evaluate(e.Board)
		if bestScore >= beta {
			e.PV.Truncate(pvIndex)
			return e.ttWrite(depth, alpha, beta, bestScore)
		}
		moveFilter = 0
	}

	var moveList [MaxMoves]Move
	n := e.Board.GenerateMoves(moveList[:])
	n = filterAndSort(e.Board, moveList[:n], n, moveFilter)
	n = filterLegalMoves(e.Board, moveList[:n], n)

	checkExt := 0
	if check {
		checkExt = 1
	}

	if n > 0 {
		if pvIndex < e.PV.Len {
			moveToFront(moveList[:n], n, e.PV.Move(pvIndex))
		} else {
			e.PV.Append(moveList[0])
		}
		firstMove := moveList[0]

		func() {
			e.Board.MakeMove(firstMove)
			defer e.Board.UndoMove()

			newDepth := depth - 1 + checkExt
			if newDepth < 0 {
				newDepth = 0
			}
			newAlpha := alpha
			if bestScore > newAlpha {
				newAlpha = bestScore
			}
			score := -e.pvSearch(newDepth, -beta, -newAlpha, pvIndex+1)
			if score > bestScore {
				bestScore = score
			} else {
				e.PV.Truncate(pvIndex) // quiescence: this line didn't improve, drop it
			}
		}()

		for i := 1; i < n && bestScore < beta; i++ {
			func() {
				e.Board.MakeMove(moveList[i])
				defer e.Board.UndoMove()

				newAlpha := alpha
				if bestScore > newAlpha {
					newAlpha = bestScore
				}
				newDepth := depth - 1 + checkExt // reduction hook: 0 in this implementation
				if newDepth < 0 {
					newDepth = 0
				}
				score := -e.scout(newDepth, -(newAlpha + 1))
				if score <= bestScore {
					return
				}

				pvLen := e.PV.Len
				e.PV.Append(moveList[i])
				researchDepth := depth - 1 + checkExt
				if researchDepth < 0 {
					researchDepth = 0
				}
				score = -e.pvSearch(researchDepth, -beta, -newAlpha, pvLen+1)
				if score > bestScore {
					bestScore = score
					e.PV.spliceFrom(pvLen, pvIndex)
				} else {
					e.PV.Truncate(pvLen) // research failed, roll back
				}
			}()
		}
	}

	if bestScore == MinInt {
		bestScore = e.endScore(check)
	}

	return e.ttWrite(depth, alpha, beta, bestScore)
}
