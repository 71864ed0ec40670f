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

func TestBitboardBasics(t *testing.T) {
	b := BbZero
	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	b.PushSquare(SqE4)
	assert.Equal(t, 3, b.PopCount())
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, 2, b.PopCount())
	b.PopSquare(SqE4)
	assert.Equal(t, SqH8, b.Lsb())
}

func TestShiftBitboard(t *testing.T) {
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(SqE4.Bb(), North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(SqE4.Bb(), South))
	assert.Equal(t, SqF4.Bb(), ShiftBitboard(SqE4.Bb(), East))
	assert.Equal(t, SqD4.Bb(), ShiftBitboard(SqE4.Bb(), West))
	// no wrap around
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), Southwest))
	assert.Equal(t, BbZero, ShiftBitboard(SqH8.Bb(), Northeast))
}

func TestPawnAndLeaperAttacks(t *testing.T) {
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(White, SqE4))
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(Black, SqE4))
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
	assert.Equal(t, 8, GetPseudoAttacks(Knight, SqE4).PopCount())
	assert.Equal(t, 2, GetPseudoAttacks(Knight, SqA1).PopCount())
	assert.Equal(t, 8, GetPseudoAttacks(King, SqE4).PopCount())
	assert.Equal(t, 3, GetPseudoAttacks(King, SqA1).PopCount())
}

// the magic lookups must agree with the simple ray walker for
// random occupancies
func TestMagicAttacks(t *testing.T) {
	rng := NewPrnG(4711)
	for i := 0; i < 1_000; i++ {
		occupied := Bitboard(rng.Rand64() & rng.Rand64())
		sq := Square(rng.Rand64() % 64)
		assert.Equal(t, slidingAttack(&rookDirections, sq, occupied),
			GetAttacksBb(Rook, sq, occupied))
		assert.Equal(t, slidingAttack(&bishopDirections, sq, occupied),
			GetAttacksBb(Bishop, sq, occupied))
		assert.Equal(t,
			GetAttacksBb(Rook, sq, occupied)|GetAttacksBb(Bishop, sq, occupied),
			GetAttacksBb(Queen, sq, occupied))
	}
}

func TestIntermediate(t *testing.T) {
	assert.Equal(t, SqF1.Bb()|SqG1.Bb(), Intermediate(SqE1, SqH1))
	assert.Equal(t, SqD4.Bb()|SqE5.Bb()|SqF6.Bb(), Intermediate(SqC3, SqG7))
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
	assert.Equal(t, BbZero, Intermediate(SqE1, SqF1))
	// symmetric
	assert.Equal(t, Intermediate(SqH1, SqE1), Intermediate(SqE1, SqH1))
}

func TestPawnMasks(t *testing.T) {
	// passed pawn mask of a white pawn on e4 covers d5-f8
	mask := SqE4.PassedPawnMask(White)
	assert.True(t, mask.Has(SqD5))
	assert.True(t, mask.Has(SqE8))
	assert.True(t, mask.Has(SqF7))
	assert.False(t, mask.Has(SqE4))
	assert.False(t, mask.Has(SqD4))
	assert.False(t, mask.Has(SqE3))

	// forward file
	assert.Equal(t, SqE5.Bb()|SqE6.Bb()|SqE7.Bb()|SqE8.Bb(), SqE4.ForwardFile(White))
	assert.Equal(t, SqE3.Bb()|SqE2.Bb()|SqE1.Bb(), SqE4.ForwardFile(Black))
}

func TestSquareBasics(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA1.To(Southwest))
	assert.Equal(t, SqA8, SqA1.Mirror())
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("x9"))
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, Rank2, SqE7.RelativeRank(Black))
	assert.Equal(t, Rank7, SqE7.RelativeRank(White))
}
