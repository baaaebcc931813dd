//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package search is the alpha-beta tree explorer: iterative
// deepening, principal-variation search with null-window scout
// re-searches, quiescence and a cheap exchange-based move orderer.
// Board representation, move legality and static evaluation are
// external collaborators (see Board and Evaluator); this package
// only ever calls them through those interfaces.
package search

import (
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/floydgo/internal/logging"
	"github.com/frankkopp/floydgo/internal/util"
	. "github.com/frankkopp/floydgo/internal/types"
)

// InfoFn is the progress callback invoked once per completed (or
// aborted) iteration. Returning true asks the root driver to stop
// after the current iteration.
type InfoFn func(data interface{}) bool

// Target packages the termination policy for one rootSearch call.
type Target struct {
	Depth     int           // iteration ceiling, in [0, MaxDepth]
	NodeCount uint64        // 0 = unbounded
	ScoreLo   int           // returned score at/outside [ScoreLo,ScoreHi] ends the search
	ScoreHi   int
	Time      time.Duration // soft deadline (informational to callers)
	MaxTime   time.Duration // hard deadline; 0 = no timer armed
}

// Engine is the mutable state threaded by pointer through every
// search routine for one rootSearch call: board handle, node
// counter, current best line and the cooperative abort token. It has
// a single owner for the duration of a call - there is no aliasing
// and no locking.
type Engine struct {
	Board Board
	Eval  Evaluator
	TT    TranspositionTable // may be nil; nil behaves as a pass-through

	RootPlyNumber int
	Depth         int
	Score         int
	BestMove      Move
	PV            PV
	NodeCount     uint64
	Seconds       float64

	Pondering    bool
	InfoFunction InfoFn
	InfoData     interface{}

	log *logging.Logger

	abortFlag *util.Bool
	nodeLimit uint64
}

// NewEngine creates an Engine ready for rootSearch. tt may be nil.
func NewEngine(b Board, eval Evaluator, tt TranspositionTable) *Engine {
	return &Engine{
		Board:     b,
		Eval:      eval,
		TT:        tt,
		BestMove:  MoveNone,
		abortFlag: util.NewBool(false),
		log:       myLogging.GetLog(),
	}
}

// ttWrite is the transposition-table hook. Its contract is that the
// returned score equals the input score, bit-exact, whether or not a
// concrete table is wired in - storing must never change what the
// caller sees.
func (e *Engine) ttWrite(depth, alpha, beta, score int) int {
	if e.TT == nil {
		return score
	}
	return e.TT.Store(depth, alpha, beta, score)
}

// endScore returns the terminal score for a side-to-move with no
// legal moves: checkmate (encoded with root distance so shorter
// mates score higher) or stalemate/draw.
func (e *Engine) endScore(check bool) int {
	if !check {
		return 0
	}
	rootDistance := e.Board.PlyNumber() - e.RootPlyNumber
	return -MateValue + rootDistance
}

// drawScore is the score assigned to a repetition/fifty-move draw.
func (e *Engine) drawScore() int { return 0 }
