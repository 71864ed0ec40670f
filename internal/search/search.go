//
// Mariner - UCI chess engine in GO
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search contains the parallel iterative deepening
// alpha-beta search of the engine. The main thread runs iterative
// deepening with time management, helper threads run an identical
// search loop with slightly perturbed parameters. All threads
// share the transposition table and the abort flag, everything
// else is thread private.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/Thomas-Neill/mariner/internal/config"
	"github.com/Thomas-Neill/mariner/internal/evaluator"
	"github.com/Thomas-Neill/mariner/internal/history"
	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/movegen"
	"github.com/Thomas-Neill/mariner/internal/moveslice"
	"github.com/Thomas-Neill/mariner/internal/position"
	"github.com/Thomas-Neill/mariner/internal/transpositiontable"
	. "github.com/Thomas-Neill/mariner/internal/types"
	"github.com/Thomas-Neill/mariner/internal/uciInterface"
	"github.com/Thomas-Neill/mariner/internal/util"
)

var out = message.NewPrinter(language.German)

// RootMove bundles a root move with its current and previous
// iteration score and its principal variation
type RootMove struct {
	Move          Move
	Score         Value
	PreviousScore Value
	Pv            moveslice.MoveSlice
}

// thread holds all search state private to one search thread:
// its own copy of the position, its root move list, history
// heuristics, evaluator (with pawn cache), move generators and
// pv lines. Only the node counters are read by other threads
// (relaxed, advisory).
type thread struct {
	id        int
	search    *Search
	pos       position.Position
	rootMoves []RootMove

	depth          int
	selDepth       int
	completedDepth int

	nodes  atomic.Uint64
	tbHits atomic.Uint64

	eval    *evaluator.Evaluator
	history *history.History
	mg      []*movegen.Movegen
	pv      []moveslice.MoveSlice
}

func (t *thread) mainThread() bool {
	return t.id == 0
}

// Search represents the data structure for a chess engine search.
// Create a new instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.TtTable
	threads []*thread

	// shared signals - abortSignal terminates the search in every
	// thread on the next poll, searchStopped is set after all
	// threads have joined
	abortSignal   atomic.Bool
	searchStopped atomic.Bool
	minimal       atomic.Bool

	startTime         time.Time
	lastUciUpdateTime time.Time
	limits            *Limits
	tm                timeManager

	lastSearchResult *Result
	hasResult        bool
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance. Until a uci handler
// is set with SetUciHandler() all output will be sent to the log.
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
	}
	s.InitThreads(config.Settings.Search.Threads)
	return s
}

// InitThreads allocates the thread local search state for the
// given number of threads. All per thread structures are allocated
// once and reused across searches.
// Must not be called during a search.
func (s *Search) InitThreads(count int) {
	if count < 1 {
		count = 1
	}
	s.threads = make([]*thread, count)
	for i := 0; i < count; i++ {
		t := &thread{
			id:        i,
			search:    s,
			rootMoves: make([]RootMove, 0, MaxMoves),
			eval:      evaluator.NewEvaluator(),
			history:   history.NewHistory(),
			mg:        make([]*movegen.Movegen, MaxDepth+2),
			pv:        make([]moveslice.MoveSlice, MaxDepth+2),
		}
		for d := 0; d <= MaxDepth+1; d++ {
			t.mg[d] = movegen.NewMoveGen()
			t.mg[d].SetHistoryData(t.history)
			t.pv[d] = make(moveslice.MoveSlice, 0, MaxDepth+2)
		}
		s.threads[i] = t
	}
	s.log.Infof("Search threads: %d", count)
}

// ResetThreads zeroes all data of the threads which is kept
// between searches (history heuristics, pawn caches). Used for
// a new game.
func (s *Search) ResetThreads() {
	for _, t := range s.threads {
		t.history.Clear()
		t.eval.ResetPawnCache()
	}
}

// NewGame stops any running searches and resets the search state
// to be ready for a different game. Any caches or state will be reset.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.ResetThreads()
}

// StartSearch starts the search on the given position with
// the given search limits. Search can be stopped with StopSearch().
// Search status can be checked with IsSearching().
// This takes a copy of the position and the search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// run search
	go s.run(&p, &sl)
	// wait until search is running and initialization
	// is done before returning to caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible.
// The search stops gracefully and a result will be sent to UCI.
// This will wait for the search to be stopped before returning.
func (s *Search) StopSearch() {
	s.abortSignal.Store(true)
	s.WaitWhileSearching()
}

// IsSearching checks if search is running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching checks if search is running and blocks until
// search has stopped.
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the UCI handler to communicate with the
// UCI user interface. If not set output will be sent to the log.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// SetMinimal sets the minimal output mode in which intermediate
// info lines are suppressed
func (s *Search) SetMinimal(b bool) {
	s.minimal.Store(b)
}

// IsReady initializes the search (e.g. the transposition table)
// and signals the uci handler when done.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes and clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	// just remove the tt and re-initialize
	s.tt = nil
	s.initialize()
	if s.tt != nil {
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// TotalNodes sums the nodes searched by all threads. The sum is
// advisory - no ordering between the threads' counters is needed.
func (s *Search) TotalNodes() uint64 {
	var total uint64
	for _, t := range s.threads {
		total += t.nodes.Load()
	}
	return total
}

// TotalTBHits sums the table base hits of all threads
func (s *Search) TotalTBHits() uint64 {
	var total uint64
	for _, t := range s.threads {
		total += t.tbHits.Load()
	}
	return total
}

// LastSearchResult returns a copy of the last search result
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// NodesVisited returns the number of visited nodes in the last search
func (s *Search) NodesVisited() uint64 {
	return s.TotalNodes()
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine.
// It prepares the threads, spawns the helpers, runs the main
// thread's iterative deepening and collects the result.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.lastUciUpdateTime = s.startTime
	s.log.Infof("Searching: %s", p.StringFen())

	s.abortSignal.Store(false)
	s.searchStopped.Store(false)
	s.hasResult = false
	s.limits = sl
	s.initialize()
	s.tm = newTimeManager(p, sl)

	// prepare the per thread state - position copy and root moves
	legal := s.prepareSearch(p, sl)

	// bump tt generation so entries of earlier searches are
	// replaced preferentially
	s.tt.AgeEntries()

	// release the init phase lock to signal the calling go routine
	// waiting in StartSearch() to return
	s.initSemaphore.Release(1)

	var result *Result
	switch {
	case legal == 0:
		// mate or stalemate - no move to play
		value := ValueDraw
		if p.InCheck() {
			value = -ValueMate
		}
		result = &Result{BestMove: MoveNone, BestValue: value}
	case s.checkDrawRepAnd50(p):
		// the game is already drawn - play any legal move
		result = &Result{BestMove: s.threads[0].rootMoves[0].Move, BestValue: ValueDraw}
		s.sendRootInfoToUci(s.threads[0], ValueDraw)
	default:
		// helper fan-out
		var wg sync.WaitGroup
		for _, t := range s.threads[1:] {
			wg.Add(1)
			go func(t *thread) {
				defer wg.Done()
				s.iterativeDeepening(t)
			}(t)
		}
		// the main thread searches in this goroutine
		s.iterativeDeepening(s.threads[0])

		// terminate helpers and wait for them
		s.abortSignal.Store(true)
		wg.Wait()

		result = s.collectResult()
	}

	s.searchStopped.Store(true)

	result.SearchTime = time.Since(s.startTime)
	s.lastSearchResult = result
	s.hasResult = true

	s.log.Infof("Search finished after %s: %s", result.SearchTime, result.String())

	// we send a result in any case - even when the search was stopped
	s.sendResult(result)
}

// prepareSearch populates the root move list of every thread: the
// intersection of searchmoves with the legal moves (preserving the
// user's order) or all legal moves, and gives every thread its own
// copy of the position. Returns the number of root moves.
func (s *Search) prepareSearch(p *position.Position, sl *Limits) int {
	mg := movegen.NewMoveGen()
	legalMoves := mg.GenerateLegalMoves(p, movegen.GenAll)

	rootMoves := make([]RootMove, 0, MaxMoves)
	if sl.Moves.Len() > 0 {
		for i := 0; i < sl.Moves.Len(); i++ {
			if legalMoves.Contains(sl.Moves.At(i)) {
				rootMoves = append(rootMoves, RootMove{Move: sl.Moves.At(i), Score: ValueNA, PreviousScore: ValueNA})
			}
		}
	}
	if len(rootMoves) == 0 {
		for i := 0; i < legalMoves.Len(); i++ {
			rootMoves = append(rootMoves, RootMove{Move: legalMoves.At(i), Score: ValueNA, PreviousScore: ValueNA})
		}
	}

	for _, t := range s.threads {
		t.pos = *p
		t.rootMoves = t.rootMoves[:0]
		t.rootMoves = append(t.rootMoves, rootMoves...)
		t.depth = 0
		t.selDepth = 0
		t.completedDepth = 0
		t.nodes.Store(0)
		t.tbHits.Store(0)
		for d := range t.mg {
			t.mg[d].ResetOnDemand()
			t.mg[d].ClearKillers()
		}
		for d := range t.pv {
			t.pv[d].Clear()
		}
	}
	return len(rootMoves)
}

// iterativeDeepening runs the iterative deepening loop for one
// thread. Helper threads use a depth offset and a slightly widened
// aspiration window to diversify the search tree.
func (s *Search) iterativeDeepening(t *thread) {
	maxDepth := MaxDepth - 1
	if s.limits.Depth > 0 {
		maxDepth = s.limits.Depth
	}

	bestValue := ValueNA

	startDepth := 1
	if !t.mainThread() {
		startDepth += t.id & 1
	}

	for depth := startDepth; depth <= maxDepth; depth++ {
		t.depth = depth

		value := s.aspirationSearch(t, depth, bestValue)
		if s.abortSignal.Load() {
			break
		}
		bestValue = value
		t.completedDepth = depth

		// sort the root moves for the next iteration and remember
		// the scores. Moves which failed low keep their previous
		// score for the ordering.
		sortRootMoves(t, 0)
		for i := range t.rootMoves {
			if t.rootMoves[i].Score != -ValueInfinite {
				t.rootMoves[i].PreviousScore = t.rootMoves[i].Score
			}
		}

		if t.mainThread() {
			s.sendRootInfoToUci(t, bestValue)
			if s.stopConditions(t, bestValue) {
				break
			}
		}
	}

	// the main thread terminates the search for everyone. When the
	// search is finished early (depth/mate limit) in infinite mode
	// we wait for the stop command before setting the signal.
	if t.mainThread() {
		for s.limits.Infinite && !s.abortSignal.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		s.abortSignal.Store(true)
	}
}

// aspirationSearch searches with a narrow window around the score
// of the previous iteration and widens the window on failure
func (s *Search) aspirationSearch(t *thread, depth int, prev Value) Value {
	alpha := -ValueInfinite
	beta := ValueInfinite
	delta := Value(config.Settings.Search.AspirationWindow)

	// helper threads use a slightly wider start window
	delta += Value(4 * t.id)

	if config.Settings.Search.UseAspiration &&
		depth >= config.Settings.Search.AspirationDepth && prev != ValueNA {
		alpha = maxValue(prev-delta, -ValueInfinite)
		beta = minValue(prev+delta, ValueInfinite)
	}

	for {
		value := s.rootSearch(t, depth, alpha, beta)
		if s.abortSignal.Load() {
			return value
		}
		switch {
		case value <= alpha:
			// fail low - lower alpha and pull beta towards the value
			beta = (alpha + beta) / 2
			alpha = maxValue(value-delta, -ValueInfinite)
		case value >= beta:
			// fail high - raise beta
			beta = minValue(value+delta, ValueInfinite)
		default:
			return value
		}
		delta += delta / 2
	}
}

// rootSearch searches all root moves of the thread at the given
// depth. The root move list is updated with the scores and pv.
func (s *Search) rootSearch(t *thread, depth int, alpha Value, beta Value) Value {
	bestValue := -ValueInfinite

	for i := range t.rootMoves {
		rm := &t.rootMoves[i]
		t.pos.DoMove(rm.Move)
		t.nodes.Add(1)

		var value Value
		if i == 0 {
			value = -s.alphabeta(t, depth-1, 1, -beta, -alpha, true)
		} else {
			value = -s.alphabeta(t, depth-1, 1, -alpha-1, -alpha, false)
			if value > alpha && value < beta {
				value = -s.alphabeta(t, depth-1, 1, -beta, -alpha, true)
			}
		}
		t.pos.UndoMove()

		if s.abortSignal.Load() {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
		}
		if value > alpha {
			alpha = value
			rm.Score = value
			rm.Pv.Clear()
			rm.Pv.PushBack(rm.Move)
			for j := 0; j < t.pv[1].Len(); j++ {
				rm.Pv.PushBack(t.pv[1].At(j))
			}
			if value >= beta {
				return value
			}
		} else {
			// keep the ordering of the previous iteration for
			// moves which did not improve alpha
			rm.Score = -ValueInfinite
		}
	}
	return bestValue
}

// sortRootMoves is an insertion sort of the root moves by
// descending score beginning at the given index. Stable for
// equal scores. Moves which failed low keep their relative order
// through the previous score.
func sortRootMoves(t *thread, begin int) {
	rootMoves := t.rootMoves
	for i := begin + 1; i < len(rootMoves); i++ {
		tmp := rootMoves[i]
		j := i - 1
		for j >= begin && less(&rootMoves[j], &tmp) {
			rootMoves[j+1] = rootMoves[j]
			j--
		}
		rootMoves[j+1] = tmp
	}
}

func less(a *RootMove, b *RootMove) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.PreviousScore < b.PreviousScore
}

// stopConditions checks the limits which end the search after a
// completed iteration. Only called by the main thread.
func (s *Search) stopConditions(t *thread, bestValue Value) bool {
	if s.abortSignal.Load() {
		return true
	}
	if s.limits.Mate > 0 && bestValue.IsCheckMateValue() &&
		bestValue > 0 && bestValue.MateIn() <= s.limits.Mate {
		return true
	}
	if s.limits.Nodes > 0 && s.TotalNodes() >= s.limits.Nodes {
		return true
	}
	if s.tm.timeControl && time.Since(s.startTime) > s.tm.optimalUsage {
		return true
	}
	// with a single reply there is nothing to decide
	if s.tm.timeControl && len(t.rootMoves) == 1 {
		return true
	}
	return false
}

// checkTime is polled by the main thread during the search and
// sets the abort signal when the hard limits are exceeded.
// Helper threads only observe the abort signal.
func (s *Search) checkTime() {
	if s.tm.timeControl && time.Since(s.startTime) > s.tm.maxUsage {
		s.abortSignal.Store(true)
	}
	if s.limits.Nodes > 0 && s.TotalNodes() >= s.limits.Nodes {
		s.abortSignal.Store(true)
	}
	// a regular search update for long running searches
	if time.Since(s.lastUciUpdateTime) > time.Second {
		s.lastUciUpdateTime = time.Now()
		if s.uciHandlerPtr != nil && !s.minimal.Load() {
			t := s.threads[0]
			nodes := s.TotalNodes()
			elapsed := time.Since(s.startTime)
			s.uciHandlerPtr.SendSearchUpdate(t.depth, t.selDepth, nodes,
				util.Nps(nodes, elapsed), elapsed, s.tt.Hashfull())
		}
	}
}

// collectResult builds the search result from the main thread's
// root move list
func (s *Search) collectResult() *Result {
	t := s.threads[0]
	sortRootMoves(t, 0)
	best := t.rootMoves[0]

	result := &Result{
		BestMove:    best.Move,
		BestValue:   best.PreviousScore,
		PonderMove:  MoveNone,
		SearchDepth: t.completedDepth,
		ExtraDepth:  t.selDepth,
	}
	if best.Score != ValueNA && best.Score != -ValueInfinite {
		result.BestValue = best.Score
	}
	result.Pv.Clone(&best.Pv)
	if best.Pv.Len() > 1 {
		result.PonderMove = best.Pv.At(1)
	}
	return result
}

// checkDrawRepAnd50 checks for a draw by threefold repetition or
// the 50 moves rule on the root position
func (s *Search) checkDrawRepAnd50(p *position.Position) bool {
	return p.CheckRepetitions(2) || p.Rule50() >= 100
}

// sends the search result to the uci handler if a handler is available
func (s *Search) sendResult(result *Result) {
	if s.uciHandlerPtr == nil {
		s.log.Infof("Result: %s", result.String())
		return
	}
	p := &s.threads[0].pos
	ponder := ""
	if result.PonderMove != MoveNone {
		ponder = p.MoveUci(result.PonderMove)
	}
	s.uciHandlerPtr.SendResult(p.MoveUci(result.BestMove), ponder)
}

// sendRootInfoToUci sends an info line about the last completed
// iteration of the main thread
func (s *Search) sendRootInfoToUci(t *thread, value Value) {
	if s.minimal.Load() {
		return
	}
	nodes := s.TotalNodes()
	elapsed := time.Since(s.startTime)
	pv := &t.rootMoves[0].Pv
	pvs := make([]string, 0, pv.Len())
	for i := 0; i < pv.Len(); i++ {
		pvs = append(pvs, t.pos.MoveUci(pv.At(i)))
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			t.completedDepth,
			t.selDepth,
			value,
			nodes,
			util.Nps(nodes, elapsed),
			elapsed,
			s.tt.Hashfull(),
			s.TotalTBHits(),
			joinStrings(pvs))
	} else {
		s.slog.Infof(out.Sprintf("depth %d seldepth %d score %s nodes %d nps %d time %d hashfull %d tbhits %d pv %s",
			t.completedDepth, t.selDepth, value.StringUci(), nodes,
			util.Nps(nodes, elapsed), elapsed.Milliseconds(),
			s.tt.Hashfull(), s.TotalTBHits(), joinStrings(pvs)))
	}
}

// sends an info string to the uci handler if a handler is available
func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// initialize sets up the transposition table if not yet present
func (s *Search) initialize() {
	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else if s.tt == nil {
		// search relies on a table instance - use a minimal one
		s.tt = transpositiontable.NewTtTable(0)
	}
}

func joinStrings(parts []string) string {
	result := ""
	for i, p := range parts {
		if i > 0 {
			result += " "
		}
		result += p
	}
	return result
}

func maxValue(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func minValue(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}
