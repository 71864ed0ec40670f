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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestMoveSlice(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, ms.Len())

	m1 := CreateMove(SqE2, SqE4, WhitePawn, PieceNone, PieceNone, FlagPawnDouble)
	m2 := CreateMove(SqG1, SqF3, WhiteKnight, PieceNone, PieceNone, FlagNone)

	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m1, ms.At(0))
	assert.Equal(t, m2, ms.At(1))
	assert.True(t, ms.Contains(m1))
	assert.False(t, ms.Contains(MoveNone))
	assert.Equal(t, "e2e4 g1f3", ms.StringUci())

	ms.Set(0, m2)
	assert.Equal(t, m2, ms.At(0))

	clone := NewMoveSlice(8)
	clone.Clone(ms)
	assert.Equal(t, ms.Len(), clone.Len())

	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 2, clone.Len())
}
