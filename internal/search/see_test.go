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

	"github.com/stretchr/testify/assert"

	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestSeeSimpleWin(t *testing.T) {
	// rook takes an undefended pawn
	p := position.NewPosition("4k3/8/8/4p3/8/8/8/4R1K1 w - - 0 1")
	m := CreateMove(SqE1, SqE5, WhiteRook, BlackPawn, PieceNone, FlagNone)
	assert.Equal(t, Pawn.ValueOf(), see(p, m))
}

func TestSeeLosingCapture(t *testing.T) {
	// rook takes a pawn which is defended by a pawn
	p := position.NewPosition("4k3/5p2/4p3/8/8/8/8/4R1K1 w - - 0 1")
	m := CreateMove(SqE1, SqE6, WhiteRook, BlackPawn, PieceNone, FlagNone)
	assert.Equal(t, Pawn.ValueOf()-Rook.ValueOf(), see(p, m))
}

func TestSeeExchange(t *testing.T) {
	// pawn takes a knight which is defended - winning exchange for
	// the pawn side
	p := position.NewPosition("4k3/8/3p4/4n3/3P4/8/8/4K3 w - - 0 1")
	m := CreateMove(SqD4, SqE5, WhitePawn, BlackKnight, PieceNone, FlagNone)
	assert.Equal(t, Knight.ValueOf()-Pawn.ValueOf(), see(p, m))
}

func TestSeeEqualExchange(t *testing.T) {
	// rook takes rook, recaptured by the king - equal
	p := position.NewPosition("4r3/5k2/8/8/8/8/8/4R1K1 w - - 0 1")
	m := CreateMove(SqE1, SqE8, WhiteRook, BlackRook, PieceNone, FlagNone)
	assert.Equal(t, Value(0), see(p, m))
}
