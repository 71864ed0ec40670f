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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestQuietHistory(t *testing.T) {
	h := NewHistory()
	good := CreateMove(SqG1, SqF3, WhiteKnight, PieceNone, PieceNone, FlagNone)
	bad := CreateMove(SqB1, SqA3, WhiteKnight, PieceNone, PieceNone, FlagNone)

	assert.Zero(t, h.QuietValue(White, good))
	h.UpdateQuiet(White, good, 6, []Move{bad, good})
	assert.Greater(t, h.QuietValue(White, good), int32(0))
	assert.Less(t, h.QuietValue(White, bad), int32(0))
	// colors are independent
	assert.Zero(t, h.QuietValue(Black, good))

	// values stay bounded no matter how often they are updated
	for i := 0; i < 10_000; i++ {
		h.UpdateQuiet(White, good, 12, nil)
	}
	assert.LessOrEqual(t, h.QuietValue(White, good), int32(1<<14))
}

func TestCounterMoves(t *testing.T) {
	h := NewHistory()
	prev := CreateMove(SqE7, SqE5, BlackPawn, PieceNone, PieceNone, FlagPawnDouble)
	counter := CreateMove(SqG1, SqF3, WhiteKnight, PieceNone, PieceNone, FlagNone)

	assert.Equal(t, MoveNone, h.CounterMove(prev))
	h.UpdateCounterMove(prev, counter)
	assert.Equal(t, counter, h.CounterMove(prev))
	assert.Equal(t, MoveNone, h.CounterMove(MoveNone))
}

func TestCorrectionHistory(t *testing.T) {
	h := NewHistory()
	pawnKey := uint64(0xDEADBEEF)

	assert.Zero(t, h.Correction(White, pawnKey))
	for i := 0; i < 50; i++ {
		h.UpdateCorrection(White, pawnKey, 40, 8)
	}
	corr := h.Correction(White, pawnKey)
	assert.Greater(t, corr, Value(0))
	assert.LessOrEqual(t, corr, Value(64))
	// other color unaffected
	assert.Zero(t, h.Correction(Black, pawnKey))

	h.Clear()
	assert.Zero(t, h.Correction(White, pawnKey))
}

func TestCaptureHistory(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqE4, SqD5, WhitePawn, BlackPawn, PieceNone, FlagNone)
	assert.Zero(t, h.CaptureValue(m))
	h.UpdateCapture(m, 5, true)
	assert.Greater(t, h.CaptureValue(m), int32(0))
	h.UpdateCapture(m, 5, false)
	h.UpdateCapture(m, 5, false)
	assert.Less(t, h.CaptureValue(m), int32(0))
}
