//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Command floydgo is a minimal UCI front end over the search core: it
// only ever builds a board, a target descriptor and a search.Engine,
// and drives RootSearch. Protocol parsing and the non-interactive
// -fen/-depth harness below exist only to exercise the search core
// from the command line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/floydgo/internal/board"
	"github.com/frankkopp/floydgo/internal/config"
	"github.com/frankkopp/floydgo/internal/evaluator"
	"github.com/frankkopp/floydgo/internal/logging"
	"github.com/frankkopp/floydgo/internal/search"
	"github.com/frankkopp/floydgo/internal/transpositiontable"
	. "github.com/frankkopp/floydgo/internal/types"
	"github.com/frankkopp/floydgo/internal/util"
)

// secondsToDuration converts Engine.Seconds (wall time accumulated as
// a float64) into a time.Duration suitable for util.Nps.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("cpuprofile", false, "profile the search core with pprof and write cpu.pprof to the working directory")
	fen := flag.String("fen", board.StartFen, "fen to search; used only together with -depth (non-interactive mode)")
	depth := flag.Int("depth", 0, "run one search to this depth on -fen and print the result, then exit; 0 starts the UCI loop instead")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()
	log.Info("floydgo starting")

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// searchSem serializes the single search the engine may have
	// in flight at any time against overlapping "go" commands from
	// the UCI loop - the same concurrency guard FrankyGo uses to
	// bound its lazy-SMP worker fan-out, narrowed here to a single
	// permit since this search core is explicitly single-threaded.
	// "stop" does not take the semaphore; it calls Engine.Stop
	// directly.
	searchSem := semaphore.NewWeighted(1)

	if *depth > 0 {
		runOnce(searchSem, *fen, *depth)
		return
	}

	runUCI(searchSem)
}

func runOnce(sem *semaphore.Weighted, fen string, depth int) {
	b := board.NewBoard(fen)
	eng := newEngine(b)

	ctx := context.Background()
	_ = sem.Acquire(ctx, 1)
	defer sem.Release(1)

	defer util.TimeTrack(time.Now(), "runOnce search")
	search.RootSearch(eng, search.NewTarget(depth), nil, nil)

	nps := util.Nps(eng.NodeCount, secondsToDuration(eng.Seconds))
	out.Printf("bestmove %s  score %d  depth %d  nodes %d  nps %d  pv %s\n",
		eng.BestMove, eng.Score, eng.Depth, eng.NodeCount, nps, eng.PV.String())
}

func newEngine(b *board.Board) *search.Engine {
	eval := evaluator.NewEvaluator()
	tt := transpositiontable.NewTtTable()
	return search.NewEngine(b, eval, tt)
}

// runUCI implements the subset of the UCI protocol this search core
// needs to be driven end-to-end: uci, isready, ucinewgame, position,
// go depth/movetime, stop, quit.
func runUCI(sem *semaphore.Weighted) {
	b := board.NewBoard(board.StartFen)
	eng := newEngine(b)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			fmt.Println("id name floydgo")
			fmt.Println("id author frankkopp/floydgo contributors")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			_ = b.SetFen(board.StartFen)
		case "position":
			handlePosition(b, fields[1:])
		case "go":
			handleGo(eng, sem, fields[1:])
		case "stop":
			eng.Stop()
		case "quit":
			return
		}
	}
}

func handlePosition(b *board.Board, args []string) {
	if len(args) == 0 {
		return
	}
	i := 0
	switch args[0] {
	case "startpos":
		_ = b.SetFen(board.StartFen)
		i = 1
	case "fen":
		// fen is 6 whitespace-separated fields
		end := 1
		for end < len(args) && end < 7 && args[end] != "moves" {
			end++
		}
		_ = b.SetFen(strings.Join(args[1:end], " "))
		i = end
	}
	if i < len(args) && args[i] == "moves" {
		for _, uciMove := range args[i+1:] {
			applyUCIMove(b, uciMove)
		}
	}
}

// applyUCIMove looks up uciMove (e.g. "e2e4", "e7e8q") among the
// board's pseudo-legal moves by its long-algebraic rendering and
// plays it. Unknown tokens are silently ignored - the UCI protocol
// never sends an illegal move in practice.
func applyUCIMove(b *board.Board, uciMove string) {
	var moveList [MaxMoves]Move
	n := b.GenerateMoves(moveList[:])
	for i := 0; i < n; i++ {
		if moveList[i].String() == uciMove {
			b.MakeMove(moveList[i])
			return
		}
	}
}

func handleGo(eng *search.Engine, sem *semaphore.Weighted, args []string) {
	target := search.NewTarget(config.Settings.Search.DefaultDepth)
	target.MaxTime = time.Duration(config.Settings.Search.DefaultMoveTimeMs) * time.Millisecond

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					target.Depth = search.NewTarget(d).Depth
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if ms, err := strconv.Atoi(args[i+1]); err == nil {
					target.MaxTime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "ponder":
			eng.Pondering = true
		}
	}

	ctx := context.Background()
	_ = sem.Acquire(ctx, 1)
	go func() {
		defer sem.Release(1)
		search.RootSearch(eng, target, func(interface{}) bool {
			nps := util.Nps(eng.NodeCount, secondsToDuration(eng.Seconds))
			fmt.Printf("info depth %d score cp %d nodes %d nps %d pv %s\n",
				eng.Depth, eng.Score, eng.NodeCount, nps, eng.PV.String())
			return false
		}, nil)
		fmt.Printf("bestmove %s\n", eng.BestMove)
	}()
}
