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

// Package history provides the move ordering heuristics gathered
// during a search. Each search thread owns a private instance so
// no synchronization is needed.
package history

import (
	. "github.com/Thomas-Neill/mariner/internal/types"
)

const (
	// bounds for the history counters to keep them within a
	// useful range
	maxHistoryValue int32 = 1 << 14

	// CorrectionSize is the number of entries of each eval
	// correction table
	CorrectionSize = 16_384

	correctionGrain int32 = 256
	correctionMax   int32 = 64 * correctionGrain
)

// History is a data structure holding all history heuristics of
// one search thread: quiet move history, capture (noisy) history,
// counter moves as a one ply continuation signal and the static
// eval correction history indexed by pawn hash.
type History struct {
	quietHistory   [ColorLength][SqLength][SqLength]int32
	captureHistory [PieceLength][SqLength][PtLength]int32
	counterMoves   [PieceLength][SqLength]Move
	pawnCorrection [ColorLength][CorrectionSize]int32
}

// NewHistory creates a new History instance
func NewHistory() *History {
	return &History{}
}

// Clear resets all history data e.g. for a new game
func (h *History) Clear() {
	*h = History{}
}

// QuietValue returns the history value for a quiet move of the
// given color
func (h *History) QuietValue(c Color, m Move) int32 {
	return h.quietHistory[c][m.From()][m.To()]
}

// CaptureValue returns the capture history value for a noisy move
func (h *History) CaptureValue(m Move) int32 {
	return h.captureHistory[m.Piece()][m.To()][m.Captured().TypeOf()]
}

// CounterMove returns the stored counter move against the given
// previous move or MoveNone
func (h *History) CounterMove(prev Move) Move {
	if prev == MoveNone {
		return MoveNone
	}
	return h.counterMoves[prev.Piece()][prev.To()]
}

// UpdateQuiet rewards a quiet move which caused a beta cutoff and
// punishes the quiet moves searched before it. The gravity formula
// keeps values bounded.
func (h *History) UpdateQuiet(c Color, bestMove Move, depth int, searched []Move) {
	bonus := historyBonus(depth)
	h.applyQuiet(c, bestMove, bonus)
	for _, m := range searched {
		if m != bestMove {
			h.applyQuiet(c, m, -bonus)
		}
	}
}

// UpdateCapture rewards or punishes a noisy move
func (h *History) UpdateCapture(m Move, depth int, good bool) {
	bonus := historyBonus(depth)
	if !good {
		bonus = -bonus
	}
	entry := &h.captureHistory[m.Piece()][m.To()][m.Captured().TypeOf()]
	*entry += bonus - *entry*abs32(bonus)/maxHistoryValue
}

// UpdateCounterMove stores the move which refuted the given
// previous move
func (h *History) UpdateCounterMove(prev Move, counter Move) {
	if prev == MoveNone {
		return
	}
	h.counterMoves[prev.Piece()][prev.To()] = counter
}

// Correction returns the stored eval correction for the pawn
// structure hash in centipawns
func (h *History) Correction(c Color, pawnKey uint64) Value {
	return Value(h.pawnCorrection[c][pawnKey%CorrectionSize] / correctionGrain)
}

// UpdateCorrection moves the eval correction for the pawn structure
// hash towards the observed difference between search result and
// static evaluation
func (h *History) UpdateCorrection(c Color, pawnKey uint64, diff Value, depth int) {
	entry := &h.pawnCorrection[c][pawnKey%CorrectionSize]
	weight := int32(depth + 1)
	if weight > 16 {
		weight = 16
	}
	value := (*entry*(256-weight) + int32(diff)*correctionGrain*weight) / 256
	*entry = clamp32(value, -correctionMax, correctionMax)
}

func (h *History) applyQuiet(c Color, m Move, bonus int32) {
	entry := &h.quietHistory[c][m.From()][m.To()]
	*entry += bonus - *entry*abs32(bonus)/maxHistoryValue
}

func historyBonus(depth int) int32 {
	bonus := int32(depth * depth)
	if bonus > maxHistoryValue/2 {
		bonus = maxHistoryValue / 2
	}
	return bonus
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
