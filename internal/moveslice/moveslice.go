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

// Package moveslice provides a data structure for chess moves to
// manage list of moves (e.g. move list, principal variation).
package moveslice

import (
	"strings"

	. "github.com/Thomas-Neill/mariner/internal/types"
)

// MoveSlice is a slice of Moves
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 length
func NewMoveSlice(cap int) *MoveSlice {
	moves := make(MoveSlice, 0, cap)
	return &moves
}

// Len returns the number of moves currently stored in the slice
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move at the end of the slice
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at the given index
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set writes the move at the given index
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Clear removes all moves from the slice, but retains the current capacity
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Contains checks if the slice contains the given move
func (ms *MoveSlice) Contains(m Move) bool {
	for _, move := range *ms {
		if move == m {
			return true
		}
	}
	return false
}

// Clone copies the moves of the given slice into this slice
func (ms *MoveSlice) Clone(other *MoveSlice) {
	ms.Clear()
	*ms = append(*ms, *other...)
}

// StringUci returns a string with all moves of the slice in UCI
// protocol format separated by a space
func (ms *MoveSlice) StringUci() string {
	var os strings.Builder
	size := len(*ms)
	for i, m := range *ms {
		os.WriteString(m.StringUci())
		if i < size-1 {
			os.WriteString(" ")
		}
	}
	return os.String()
}
