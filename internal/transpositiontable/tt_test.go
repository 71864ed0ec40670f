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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestEntrySize(t *testing.T) {
	assert.LessOrEqual(t, int(unsafe.Sizeof(TtEntry{})), TtEntrySize)
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(2)
	key := position.Key(0x1234_5678_9ABC_DEF0)
	move := CreateMove(SqE2, SqE4, WhitePawn, PieceNone, PieceNone, FlagPawnDouble)

	_, ok := tt.Probe(key)
	assert.False(t, ok)

	tt.Put(key, move, 5, Value(23), Value(17), BoundExact)
	e, ok := tt.Probe(key)
	require.True(t, ok)
	assert.Equal(t, move, e.Move())
	assert.Equal(t, Value(23), e.Score())
	assert.Equal(t, Value(17), e.Eval())
	assert.Equal(t, 5, e.Depth())
	assert.Equal(t, BoundExact, e.Bound())

	// a different key hashing to a different slot misses
	_, ok = tt.Probe(key + 1)
	assert.False(t, ok)
}

// a key mapping to the same slot but with a different fragment
// must fail validation
func TestFragmentValidation(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(0x1111_0000_0000_0001)
	tt.Put(key, MoveNone, 3, Value(1), Value(1), BoundLower)

	// same slot index (lower bits), different upper fragment
	other := position.Key(0x2222_0000_0000_0001)
	_, ok := tt.Probe(other)
	assert.False(t, ok)
}

func TestReplacementPolicy(t *testing.T) {
	tt := NewTtTable(1)
	// two keys with identical slot index but different fragments
	keyA := position.Key(0x1111_0000_0000_0042)
	keyB := position.Key(0x2222_0000_0000_0042)

	// deeper entries are not replaced by shallower ones of other
	// positions within the same generation
	tt.Put(keyA, MoveNone, 10, Value(5), Value(5), BoundExact)
	tt.Put(keyB, MoveNone, 4, Value(7), Value(7), BoundExact)
	_, okA := tt.Probe(keyA)
	_, okB := tt.Probe(keyB)
	assert.True(t, okA)
	assert.False(t, okB)

	// higher depth replaces
	tt.Put(keyB, MoveNone, 12, Value(7), Value(7), BoundExact)
	_, okA = tt.Probe(keyA)
	_, okB = tt.Probe(keyB)
	assert.False(t, okA)
	assert.True(t, okB)

	// stale generations are always replaced
	tt.AgeEntries()
	tt.Put(keyA, MoveNone, 1, Value(5), Value(5), BoundExact)
	_, okA = tt.Probe(keyA)
	assert.True(t, okA)
}

// an update of the same position with MoveNone keeps the stored move
func TestUpdatePreservesMove(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(0xABCD_0000_0000_0099)
	move := CreateMove(SqG1, SqF3, WhiteKnight, PieceNone, PieceNone, FlagNone)

	tt.Put(key, move, 4, Value(10), Value(10), BoundExact)
	tt.Put(key, MoveNone, 6, Value(12), Value(12), BoundLower)

	e, ok := tt.Probe(key)
	require.True(t, ok)
	assert.Equal(t, move, e.Move())
	assert.Equal(t, 6, e.Depth())
}

func TestResize(t *testing.T) {
	tt := NewTtTable(2)
	assert.NotZero(t, tt.Len())

	err := tt.Resize(MaxSizeInMB + 1)
	assert.Error(t, err)
	// old table still live
	assert.NotZero(t, tt.Len())

	require.NoError(t, tt.Resize(1))
	key := position.Key(0x4242_0000_0000_0007)
	tt.Put(key, MoveNone, 1, Value(1), Value(1), BoundExact)
	tt.Clear()
	_, ok := tt.Probe(key)
	assert.False(t, ok)
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	for i := uint64(0); i < 1000; i++ {
		// keys map to the first slots with valid fragments
		key := position.Key(i | 0x1_0000_0000)
		tt.Put(key, MoveNone, 1, Value(1), Value(1), BoundExact)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
