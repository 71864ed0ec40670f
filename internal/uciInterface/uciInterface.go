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

// Package uciInterface defines the interface the search uses to
// send UCI protocol messages to a uci handler. This is necessary
// as GO does not allow circular imports - uci imports search to
// hold an instance of Search and Search needs a call back
// reference to the uci handler.
package uciInterface

import (
	"time"

	. "github.com/Thomas-Neill/mariner/internal/types"
)

// UciDriver defines an interface for the search to be able to
// send uci protocol messages through a uci handler which
// implements this interface.
//
// Moves and pv are passed as already formatted strings as the
// conversion (Chess960 castling notation) needs the position
// which only the search has at hand.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(info string)
	SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64,
		nps uint64, time time.Duration, hashfull int, tbHits uint64, pv string)
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64,
		time time.Duration, hashfull int)
	SendResult(bestMove string, ponderMove string)
}
