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

import "fmt"

// Score is a mid game and an end game value packed into a single
// 32-bit integer. The mid game value lives in the lower 16 bits,
// the end game value in the upper 16 bits. Packed scores can be
// added and subtracted as plain integers which keeps the tapered
// evaluation accumulation cheap.
type Score int32

// MidGame is the maximum game phase. A phase of MidGame means full
// material is on the board, a phase of 0 a pawn/king endgame.
const MidGame = 256

// S creates a packed score from a mid game and an end game value
func S(mg Value, eg Value) Score {
	return Score(int32(eg)<<16) + Score(mg)
}

// Mg extracts the mid game value of a packed score
func (s Score) Mg() Value {
	return Value(int16(uint16(uint32(s))))
}

// Eg extracts the end game value of a packed score.
// The rounding constant corrects for borrow from mid game
// arithmetic on the lower half.
func (s Score) Eg() Value {
	return Value(int16(uint16((uint32(s) + 0x8000) >> 16)))
}

// Taper blends the mid game and end game value of the score
// using the given phase in [0, MidGame]
func (s Score) Taper(phase int) Value {
	return Value((int(s.Mg())*phase + int(s.Eg())*(MidGame-phase)) / MidGame)
}

// UpdatePhase scales a sum of piece phase weights (24 with full
// material) to the phase range [0, MidGame]
func UpdatePhase(phaseValue int) int {
	return (phaseValue*MidGame + 12) / 24
}

// String returns a string representation of the score
func (s Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.Mg(), s.Eg())
}
