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
	"time"

	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// moveOverhead is subtracted from the available time to cover
// protocol and scheduling latency
const moveOverhead = 20 * time.Millisecond

// timeManager derives the time budget for a search from the clock
// fields of the search limits. optimalUsage is the time after which
// no new iteration is started, maxUsage is the hard limit polled
// during the search.
type timeManager struct {
	timeControl  bool
	optimalUsage time.Duration
	maxUsage     time.Duration
}

// newTimeManager sets up the time control for the given position
// and search limits
func newTimeManager(p *position.Position, sl *Limits) timeManager {
	tm := timeManager{}
	if !sl.TimeControl {
		return tm
	}
	tm.timeControl = true

	// fixed time per move
	if sl.MoveTime > 0 {
		budget := sl.MoveTime - moveOverhead
		if budget < time.Millisecond {
			budget = time.Millisecond
		}
		tm.optimalUsage = budget
		tm.maxUsage = budget
		return tm
	}

	// remaining time and increment of the side to move
	var remaining, inc time.Duration
	switch p.SideToMove() {
	case White:
		remaining, inc = sl.WhiteTime, sl.WhiteInc
	case Black:
		remaining, inc = sl.BlackTime, sl.BlackInc
	}

	movesToGo := sl.MovesToGo
	if movesToGo == 0 {
		// sudden death or increment games - assume a number of
		// moves still to play
		movesToGo = 25
	}

	tm.optimalUsage = remaining/time.Duration(movesToGo) + 3*inc/4
	tm.maxUsage = 5 * tm.optimalUsage
	if hardLimit := remaining - moveOverhead; tm.maxUsage > hardLimit {
		tm.maxUsage = hardLimit
	}
	if tm.maxUsage < time.Millisecond {
		tm.maxUsage = time.Millisecond
	}
	if tm.optimalUsage > tm.maxUsage {
		tm.optimalUsage = tm.maxUsage
	}
	return tm
}
