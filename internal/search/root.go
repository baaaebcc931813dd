//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"time"

	. "github.com/frankkopp/floydgo/internal/types"
)

// NewTarget builds a Target with an unbounded score window and the
// given depth ceiling; set NodeCount/ScoreLo/ScoreHi/MaxTime on the
// result for the limits that matter to the caller.
func NewTarget(depth int) Target {
	if depth > MaxDepth {
		depth = MaxDepth
	}
	return Target{Depth: depth, ScoreLo: MinInt, ScoreHi: Infinity}
}

func scoreEndsSearch(score int, t Target) bool {
	return score <= t.ScoreLo || score >= t.ScoreHi
}

// RootSearch is the caller's entry point: iterative deepening over
// [0, target.Depth], reporting progress through infoFn and stopping
// either when the iteration ceiling is reached, an iteration's score
// leaves target's score window, infoFn asks to stop, or the search
// is aborted by timeout/Stop().
//
// On return, e.Score, e.BestMove, e.PV, e.Depth, e.Seconds and
// e.NodeCount hold the result. One call mutates e and e.Board and
// returns; the search has no state carried between calls.
func RootSearch(e *Engine, target Target, infoFn InfoFn, infoData interface{}) {
	startTime := time.Now()
	e.NodeCount = 0
	e.BestMove = MoveNone
	e.PV.Truncate(0)
	e.RootPlyNumber = e.Board.PlyNumber()
	e.nodeLimit = target.NodeCount
	e.InfoFunction = infoFn
	e.InfoData = infoData

	disarm := e.armTimer(target.MaxTime)
	defer disarm()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(abortSignal); !ok {
			panic(r) // a genuine programming-invariant failure, not an abort
		}
		// Search aborted: the board has unwound all the way back to
		// the root via the deferred UndoMove calls each search frame
		// leaves on its stack, so it is already self-consistent.
		e.Seconds = time.Since(startTime).Seconds()
		if e.PV.Len > 0 && e.PV.Move(0) == e.BestMove {
			e.PV.Truncate(1)
		} else {
			e.PV.Truncate(0)
		}
		if e.InfoFunction != nil {
			_ = e.InfoFunction(e.InfoData)
		}
	}()

	stop := false
	for iteration := 0; iteration <= target.Depth && !stop; iteration++ {
		e.Depth = iteration
		e.Score = e.pvSearch(iteration, -Infinity, Infinity, 0)
		e.Seconds = time.Since(startTime).Seconds()
		if e.PV.Len > 0 {
			e.BestMove = e.PV.Move(0)
		}
		if e.InfoFunction != nil {
			stop = e.InfoFunction(e.InfoData)
		}
		if scoreEndsSearch(e.Score, target) {
			stop = true
		}
	}
}
