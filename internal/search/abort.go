//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import "time"

// abortSignal is the sentinel panic value used to unwind the whole
// search stack back to rootSearch's recover() landing pad: scout
// polls the abort flag at node entry and panics, every recursive
// caller lets it propagate, and rootSearch is the only frame that
// recovers.
type abortSignal struct{}

// checkAbort panics with abortSignal if the search has been told to
// stop, by timeout or by an external Stop() call, or once NodeCount
// has reached the target's non-zero node limit. Only scout polls
// it: pvSearch does not poll directly, it inherits the abort through
// its own recursion into scout.
func (e *Engine) checkAbort() {
	if e.abortFlag.Load() || (e.nodeLimit != 0 && e.NodeCount >= e.nodeLimit) {
		panic(abortSignal{})
	}
}

// Stop requests cooperative cancellation of a running search, e.g.
// in response to a UCI "stop" command. Safe to call from any
// goroutine; takes effect at the next scout node with depth > 0
// (scout hands depth-0 nodes to qSearch before it polls).
func (e *Engine) Stop() {
	e.abortFlag.Store(true)
}

// armTimer starts a background timer that flips the abort flag after
// d, unless Pondering is set (a ponder search has no timer and runs
// until Stop or its other limits end it). Returns a disarm func that must be
// called exactly once, on every return path out of rootSearch.
func (e *Engine) armTimer(d time.Duration) (disarm func()) {
	e.abortFlag.Store(false)
	if d <= 0 || e.Pondering {
		return func() {}
	}
	t := time.AfterFunc(d, func() {
		e.abortFlag.Store(true)
	})
	return func() { t.Stop() }
}
