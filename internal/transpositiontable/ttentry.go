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

package transpositiontable

import (
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// Bound describes how the stored score relates to the true value
// of the position
type Bound uint8

// Bound constants
const (
	BoundNone  Bound = 0
	BoundUpper Bound = 1
	BoundLower Bound = 2
	BoundExact Bound = BoundUpper | BoundLower
)

// TtEntry struct is the data structure for each entry in the
// transposition table. Each entry is 16 bytes.
//
// The upper 32 bits of the position key are stored as a validation
// fragment. Entries are written by multiple threads without locks -
// a torn entry simply fails the fragment validation on probe.
type TtEntry struct {
	key32    uint32 // upper 32 bits of the zobrist key
	move     uint32 // 27-bit move
	score    int16  // value from the search
	eval     int16  // static evaluation
	depth    int8   // search depth of the stored value
	genBound uint8  // generation 6-bit, bound 2-bit
}

// TtEntrySize is the size in bytes for each TtEntry
const TtEntrySize = 16

// Move returns the best/refutation move of the entry
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Score returns the stored search value
func (e *TtEntry) Score() Value {
	return Value(e.score)
}

// Eval returns the stored static evaluation
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the depth of the stored search value
func (e *TtEntry) Depth() int {
	return int(e.depth)
}

// Bound returns the bound type of the stored search value
func (e *TtEntry) Bound() Bound {
	return Bound(e.genBound & 0b11)
}

func (e *TtEntry) generation() uint8 {
	return e.genBound >> 2
}
