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

func TestMoveEncoding(t *testing.T) {
	m := CreateMove(SqE2, SqE4, WhitePawn, PieceNone, PieceNone, FlagPawnDouble)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, PieceNone, m.Captured())
	assert.Equal(t, PieceNone, m.Promoted())
	assert.True(t, m.IsPawnDouble())
	assert.False(t, m.IsCastle())
	assert.False(t, m.IsEnPassant())
	assert.True(t, m.IsQuiet())
	assert.Equal(t, "e2e4", m.StringUci())

	m = CreateMove(SqD5, SqE6, WhitePawn, BlackKnight, PieceNone, FlagNone)
	assert.Equal(t, BlackKnight, m.Captured())
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsNoisy())
	assert.False(t, m.IsQuiet())

	m = CreateMove(SqE7, SqE8, WhitePawn, PieceNone, WhiteQueen, FlagNone)
	assert.Equal(t, WhiteQueen, m.Promoted())
	assert.True(t, m.IsPromotion())
	assert.True(t, m.IsNoisy())
	assert.Equal(t, "e7e8q", m.StringUci())

	m = CreateMove(SqE5, SqD6, WhitePawn, PieceNone, PieceNone, FlagEnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsNoisy())

	m = CreateMove(SqE1, SqG1, WhiteKing, PieceNone, PieceNone, FlagCastle)
	assert.True(t, m.IsCastle())
	assert.True(t, m.IsQuiet())
	assert.Equal(t, "e1g1", m.StringUci())
}

func TestMoveNone(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.StringUci())
	assert.False(t, MoveNone.IsValid())
}

func TestMove27BitLayout(t *testing.T) {
	// the move word must fit into the lowest 27 bits
	m := CreateMove(SqH8, SqH8, BlackKing, BlackQueen, BlackQueen, FlagCastle)
	assert.Zero(t, uint32(m)&^uint32(0x7FFFFFF))
}
