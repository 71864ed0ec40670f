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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestGenerateLegalMovesStartPos(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	moves := mg.GenerateLegalMoves(p, GenAll)
	assert.Equal(t, 20, moves.Len())

	expected := map[string]bool{
		"a2a3": true, "a2a4": true, "b2b3": true, "b2b4": true,
		"c2c3": true, "c2c4": true, "d2d3": true, "d2d4": true,
		"e2e3": true, "e2e4": true, "f2f3": true, "f2f4": true,
		"g2g3": true, "g2g4": true, "h2h3": true, "h2h4": true,
		"b1a3": true, "b1c3": true, "g1f3": true, "g1h3": true,
	}
	for i := 0; i < moves.Len(); i++ {
		assert.True(t, expected[moves.At(i).StringUci()],
			"unexpected move %s", moves.At(i).StringUci())
	}
}

func TestGenerateNoMovesOnStalemate(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	moves := mg.GenerateLegalMoves(p, GenAll)
	assert.Equal(t, 0, moves.Len())
	assert.False(t, mg.HasLegalMove(p))
	assert.False(t, p.InCheck())
}

func TestGenerateCheckEvasions(t *testing.T) {
	mg := NewMoveGen()
	// back rank check - only a block or a king move help
	p := position.NewPosition("6k1/5ppp/8/8/8/8/8/4r1K1 w - - 0 1")
	require.True(t, p.InCheck())
	moves := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		assert.True(t, p.IsLegalMove(moves.At(i)))
	}
	assert.Greater(t, moves.Len(), 0)
}

func TestGenerateEnPassant(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	moves := mg.GenerateLegalMoves(p, GenAll)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsEnPassant() {
			found = true
			assert.Equal(t, SqE5, moves.At(i).From())
			assert.Equal(t, SqD6, moves.At(i).To())
		}
	}
	assert.True(t, found, "en passant capture not generated")
}

func TestGeneratePromotions(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("5n2/4P1k1/8/8/8/8/8/4K3 w - - 0 1")
	moves := mg.GeneratePseudoLegalMoves(p, GenNoisy)
	promoCount := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsPromotion() {
			promoCount++
		}
	}
	// 4 push promotions and 4 capture promotions (exf8)
	assert.Equal(t, 8, promoCount)
}

// the staged generator must yield exactly the pseudo legal moves,
// each once, with the pv move first
func TestStagedGeneration(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	all := mg.GeneratePseudoLegalMoves(p, GenAll)
	expected := map[Move]bool{}
	for i := 0; i < all.Len(); i++ {
		expected[all.At(i)] = false
	}

	pvMove := all.At(7)
	mg2 := NewMoveGen()
	mg2.SetPvMove(pvMove)

	first := mg2.GetNextMove(p, GenAll)
	assert.Equal(t, pvMove, first)

	seen := map[Move]bool{first: true}
	count := 1
	for m := mg2.GetNextMove(p, GenAll); m != MoveNone; m = mg2.GetNextMove(p, GenAll) {
		assert.False(t, seen[m], "move %s returned twice", m.StringUci())
		seen[m] = true
		count++
	}
	assert.Equal(t, len(expected), count, "staged generation must yield all moves")
	for m := range expected {
		assert.True(t, seen[m], "move %s missing from staged generation", m.StringUci())
	}
}

func TestStagedGenerationNoisyOnly(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for m := mg.GetNextMove(p, GenNoisy); m != MoveNone; m = mg.GetNextMove(p, GenNoisy) {
		assert.True(t, m.IsNoisy(), "quiet move %s in noisy generation", m.StringUci())
	}
}

func TestMoveIsPseudoLegal(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		assert.True(t, MoveIsPseudoLegal(p, legal.At(i)))
	}

	// moves which do not fit the position
	assert.False(t, MoveIsPseudoLegal(p,
		CreateMove(SqE4, SqE5, WhitePawn, PieceNone, PieceNone, FlagNone)))
	assert.False(t, MoveIsPseudoLegal(p,
		CreateMove(SqE7, SqE5, BlackPawn, PieceNone, PieceNone, FlagPawnDouble)))
	assert.False(t, MoveIsPseudoLegal(p,
		CreateMove(SqE2, SqE4, WhitePawn, PieceNone, PieceNone, FlagNone))) // double move needs its flag
	assert.False(t, MoveIsPseudoLegal(p,
		CreateMove(SqE1, SqG1, WhiteKing, PieceNone, PieceNone, FlagCastle)))
	assert.False(t, MoveIsPseudoLegal(p,
		CreateMove(SqD1, SqD7, WhiteQueen, BlackPawn, PieceNone, FlagNone)))
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	m := mg.GetMoveFromUci(p, "e2e4")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.True(t, m.IsPawnDouble())

	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "e2e5"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "xyz"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, ""))

	// promotion
	p = position.NewPosition("8/4P1k1/8/8/8/8/5K2/8 w - - 0 1")
	m = mg.GetMoveFromUci(p, "e7e8q")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, WhiteQueen, m.Promoted())
}
