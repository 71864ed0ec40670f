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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePacking(t *testing.T) {
	cases := []struct{ mg, eg Value }{
		{0, 0}, {1, 1}, {-1, -1}, {100, -100}, {-100, 100},
		{1234, -4321}, {-32000, 32000}, {17, 0}, {0, -17},
	}
	for _, c := range cases {
		s := S(c.mg, c.eg)
		assert.Equal(t, c.mg, s.Mg(), "mg of S(%d,%d)", c.mg, c.eg)
		assert.Equal(t, c.eg, s.Eg(), "eg of S(%d,%d)", c.mg, c.eg)
	}
}

func TestScoreArithmetic(t *testing.T) {
	a := S(10, -20)
	b := S(-3, 50)
	sum := a + b
	assert.Equal(t, Value(7), sum.Mg())
	assert.Equal(t, Value(30), sum.Eg())

	diff := a - b
	assert.Equal(t, Value(13), diff.Mg())
	assert.Equal(t, Value(-70), diff.Eg())

	scaled := a * 3
	assert.Equal(t, Value(30), scaled.Mg())
	assert.Equal(t, Value(-60), scaled.Eg())
}

// the tapered value must always lie between the mid game and the
// end game value for any phase
func TestScoreTaperBounds(t *testing.T) {
	cases := []Score{S(0, 0), S(100, -100), S(-77, 33), S(500, 900), S(-12, -700)}
	for _, s := range cases {
		lo, hi := s.Mg(), s.Eg()
		if lo > hi {
			lo, hi = hi, lo
		}
		for phase := 0; phase <= MidGame; phase++ {
			v := s.Taper(phase)
			assert.GreaterOrEqual(t, v, lo-1)
			assert.LessOrEqual(t, v, hi+1)
		}
		assert.Equal(t, s.Mg(), s.Taper(MidGame))
		assert.Equal(t, s.Eg(), s.Taper(0))
	}
}

func TestUpdatePhase(t *testing.T) {
	// full material
	assert.Equal(t, MidGame, UpdatePhase(24))
	// pawn/king endgame
	assert.Equal(t, 0, UpdatePhase(0))
	// monotonic
	last := -1
	for v := 0; v <= 24; v++ {
		p := UpdatePhase(v)
		assert.Greater(t, p, last)
		last = p
	}
}
