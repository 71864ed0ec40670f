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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thomas-Neill/mariner/internal/config"
	"github.com/Thomas-Neill/mariner/internal/movegen"
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

func runSearch(t *testing.T, fen string, sl *Limits) Result {
	t.Helper()
	s := NewSearch()
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	return s.LastSearchResult()
}

// from the start position any depth 1 search must return one of
// the 20 legal moves
func TestSearchDepth1StartPos(t *testing.T) {
	sl := NewSearchLimits()
	sl.Depth = 1
	result := runSearch(t, position.StartFen, sl)

	mg := movegen.NewMoveGen()
	p := position.NewPosition()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	assert.True(t, legal.Contains(result.BestMove),
		"best move %s not legal", result.BestMove.StringUci())
}

// mate in one - the rook mates on a8
func TestSearchMateIn1(t *testing.T) {
	sl := NewSearchLimits()
	sl.Depth = 4
	result := runSearch(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", sl)

	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.Equal(t, 1, result.BestValue.MateIn())
	assert.Equal(t, "mate 1", result.BestValue.StringUci())
}

func TestSearchMateIn2(t *testing.T) {
	sl := NewSearchLimits()
	sl.Depth = 5
	// two rooks deliver a ladder mate in 2
	result := runSearch(t, "7k/8/8/8/8/8/R7/1R5K w - - 0 1", sl)
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.Equal(t, 2, result.BestValue.MateIn())
}

// stalemate - no legal moves, not in check
func TestSearchStalemate(t *testing.T) {
	sl := NewSearchLimits()
	sl.Depth = 4
	result := runSearch(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", sl)
	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, ValueDraw, result.BestValue)
}

// a position repeated three times is a draw
func TestSearchRepetitionDraw(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, ucis := range []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	} {
		m := mg.GetMoveFromUci(p, ucis)
		require.NotEqual(t, MoveNone, m)
		p.DoMove(m)
	}

	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 2
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.Equal(t, ValueDraw, s.LastSearchResult().BestValue)
}

// increasing the thread count must not change the correctness of
// the result on forced mates
func TestSearchMultiThreaded(t *testing.T) {
	savedThreads := config.Settings.Search.Threads
	defer func() { config.Settings.Search.Threads = savedThreads }()

	for _, threads := range []int{1, 2, 4} {
		config.Settings.Search.Threads = threads
		sl := NewSearchLimits()
		sl.Depth = 4
		result := runSearch(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", sl)
		assert.Equal(t, "a1a8", result.BestMove.StringUci(), "threads=%d", threads)
		assert.Equal(t, 1, result.BestValue.MateIn(), "threads=%d", threads)
	}
}

func TestSearchNodeLimit(t *testing.T) {
	sl := NewSearchLimits()
	sl.Nodes = 10_000
	sl.Depth = MaxDepth - 1
	s := NewSearch()
	p := position.NewPosition()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	// some overshoot is expected as the limit is polled
	assert.Less(t, s.TotalNodes(), uint64(200_000))
	assert.NotEqual(t, MoveNone, s.LastSearchResult().BestMove)
}

func TestSearchMoveTime(t *testing.T) {
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 200 * time.Millisecond
	s := NewSearch()
	p := position.NewPosition()
	start := time.Now()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	elapsed := time.Since(start)
	assert.Less(t, elapsed, 2*time.Second)
	assert.NotEqual(t, MoveNone, s.LastSearchResult().BestMove)
}

func TestSearchStop(t *testing.T) {
	sl := NewSearchLimits()
	sl.Infinite = true
	s := NewSearch()
	p := position.NewPosition()
	s.StartSearch(*p, *sl)
	assert.True(t, s.IsSearching())
	time.Sleep(100 * time.Millisecond)
	s.StopSearch()
	assert.False(t, s.IsSearching())
	assert.NotEqual(t, MoveNone, s.LastSearchResult().BestMove)
}

// searchmoves restricts the root moves
func TestSearchMoves(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	a2a3 := mg.GetMoveFromUci(p, "a2a3")
	require.NotEqual(t, MoveNone, a2a3)

	sl := NewSearchLimits()
	sl.Depth = 3
	sl.Moves.PushBack(a2a3)

	s := NewSearch()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.Equal(t, a2a3, s.LastSearchResult().BestMove)
}

func TestTimeManager(t *testing.T) {
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.WhiteTime = 60 * time.Second
	sl.BlackTime = 60 * time.Second
	tm := newTimeManager(p, sl)
	assert.True(t, tm.timeControl)
	assert.Greater(t, tm.optimalUsage, time.Duration(0))
	assert.GreaterOrEqual(t, tm.maxUsage, tm.optimalUsage)
	assert.Less(t, tm.maxUsage, 60*time.Second)

	sl = NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 500 * time.Millisecond
	tm = newTimeManager(p, sl)
	assert.Equal(t, tm.optimalUsage, tm.maxUsage)
	assert.LessOrEqual(t, tm.maxUsage, 500*time.Millisecond)
}
