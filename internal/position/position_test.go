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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Thomas-Neill/mariner/internal/types"
)

func TestSetupFromFen(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	require.NoError(t, err)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.Rule50())
	assert.Equal(t, 32, p.OccupiedAll().PopCount())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, 24, p.PhaseValue())
	assert.Equal(t, MidGame, p.Phase())
	assert.Equal(t, Score(0), p.Material())
	assert.Equal(t, StartFen, p.StringFen())
}

func TestSetupInvalidFen(t *testing.T) {
	invalid := []string{
		"",
		"8/8/8/8/8/8/8/8 w - - 0 1",                                  // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN", // incomplete board
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",   // invalid piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",   // invalid side
	}
	for _, fen := range invalid {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, "fen should be invalid: %s", fen)
	}
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

// snapshot of all incrementally maintained fields for exact
// make/unmake comparison
type posSnapshot struct {
	fen            string
	key            Key
	pawnKey        Key
	nonPawnKeyW    Key
	nonPawnKeyB    Key
	minorKey       Key
	majorKey       Key
	materialKey    Key
	material       Score
	phaseValue     int
	phase          int
	nonPawnCountW  int
	nonPawnCountB  int
	checkers       Bitboard
	epSquare       Square
	rule50         int
	histPly        int
	castlingRights CastlingRights
}

func snapshot(p *Position) posSnapshot {
	return posSnapshot{
		fen:            p.StringFen(),
		key:            p.key,
		pawnKey:        p.pawnKey,
		nonPawnKeyW:    p.nonPawnKey[White],
		nonPawnKeyB:    p.nonPawnKey[Black],
		minorKey:       p.minorKey,
		majorKey:       p.majorKey,
		materialKey:    p.materialKey,
		material:       p.material,
		phaseValue:     p.phaseValue,
		phase:          p.phase,
		nonPawnCountW:  p.nonPawnCount[White],
		nonPawnCountB:  p.nonPawnCount[Black],
		checkers:       p.checkers,
		epSquare:       p.epSquare,
		rule50:         p.rule50,
		histPly:        p.histPly,
		castlingRights: p.castlingRights,
	}
}

// recompute all hash keys from scratch and compare them with the
// incrementally maintained values
func assertKeysFromScratch(t *testing.T, p *Position) {
	t.Helper()
	var key, pawnKey, minorKey, majorKey, materialKey Key
	var nonPawnKey [2]Key
	counts := [PieceLength]int{}

	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.pieceOn[sq]
		if pc == PieceNone {
			continue
		}
		key ^= pieceKeys[pc][sq]
		pt := pc.TypeOf()
		switch {
		case pt == Pawn:
			pawnKey ^= pieceKeys[pc][sq]
		case pt == King:
			nonPawnKey[pc.ColorOf()] ^= pieceKeys[pc][sq]
			minorKey ^= pieceKeys[pc][sq]
			majorKey ^= pieceKeys[pc][sq]
		case pt >= Rook:
			nonPawnKey[pc.ColorOf()] ^= pieceKeys[pc][sq]
			majorKey ^= pieceKeys[pc][sq]
		default:
			nonPawnKey[pc.ColorOf()] ^= pieceKeys[pc][sq]
			minorKey ^= pieceKeys[pc][sq]
		}
		counts[pc]++
	}
	// material key hashes the piece counts - XORing the keys for
	// counts 0..n-1 builds the same digest as incremental updates
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		if !pc.IsValid() {
			continue
		}
		for n := 0; n < counts[pc]; n++ {
			materialKey ^= pieceKeys[pc][n]
		}
	}
	key ^= castleKeys[p.castlingRights]
	if p.sideToMove == Black {
		key ^= sideKey
	}
	if p.epSquare != SqNone {
		key ^= pieceKeys[PieceNone][p.epSquare]
	}

	assert.Equal(t, key, p.key, "full key mismatch on %s", p.StringFen())
	assert.Equal(t, pawnKey, p.pawnKey, "pawn key mismatch on %s", p.StringFen())
	assert.Equal(t, nonPawnKey[White], p.nonPawnKey[White])
	assert.Equal(t, nonPawnKey[Black], p.nonPawnKey[Black])
	assert.Equal(t, minorKey, p.minorKey)
	assert.Equal(t, majorKey, p.majorKey)
	assert.Equal(t, materialKey, p.materialKey)
}

// bitboards, piece board and counters must agree on every square
func assertBoardConsistency(t *testing.T, p *Position) {
	t.Helper()
	all := BbZero
	for pt := Pawn; pt <= King; pt++ {
		// piece type boards are pairwise disjoint
		for pt2 := pt + 1; pt2 <= King; pt2++ {
			assert.Equal(t, BbZero, p.pieceBb[pt]&p.pieceBb[pt2])
		}
		all |= p.pieceBb[pt]
	}
	assert.Equal(t, p.pieceBb[PtAll], all)
	assert.Equal(t, p.pieceBb[PtAll], p.colorBb[White]|p.colorBb[Black])
	assert.Equal(t, BbZero, p.colorBb[White]&p.colorBb[Black])
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.pieceOn[sq]
		if pc == PieceNone {
			assert.False(t, p.pieceBb[PtAll].Has(sq))
		} else {
			assert.True(t, p.pieceBb[pc.TypeOf()].Has(sq))
			assert.True(t, p.colorBb[pc.ColorOf()].Has(sq))
		}
	}
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
	assert.Equal(t, p.computeCheckers(), p.checkers)
}

func TestKeyConsistency(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assertKeysFromScratch(t, p)
		assertBoardConsistency(t, p)
	}
}

func TestRepetition(t *testing.T) {
	p := NewPosition()
	moves := []struct {
		from, to Square
		pc       Piece
	}{
		{SqG1, SqF3, WhiteKnight}, {SqG8, SqF6, BlackKnight},
		{SqF3, SqG1, WhiteKnight}, {SqF6, SqG8, BlackKnight},
		{SqG1, SqF3, WhiteKnight}, {SqG8, SqF6, BlackKnight},
		{SqF3, SqG1, WhiteKnight}, {SqF6, SqG8, BlackKnight},
	}
	assert.False(t, p.CheckRepetitions(1))
	for _, m := range moves {
		p.DoMove(CreateMove(m.from, m.to, m.pc, PieceNone, PieceNone, FlagNone))
	}
	// the start position has now occurred three times
	assert.True(t, p.CheckRepetitions(1))
	assert.True(t, p.CheckRepetitions(2))
	assert.False(t, p.CheckRepetitions(3))
}

func TestInsufficientMaterial(t *testing.T) {
	insufficient := []string{
		"8/8/8/4k3/8/3K4/8/8 w - - 0 1",        // KvK
		"8/8/8/4k3/8/3KB3/8/8 w - - 0 1",       // KBvK
		"8/8/8/4k3/8/3KN3/8/8 b - - 0 1",       // KNvK
		"8/8/8/4k3/8/2NKN3/8/8 b - - 0 1",      // KNNvK
	}
	sufficient := []string{
		StartFen,
		"8/8/8/4k3/8/3KQ3/8/8 w - - 0 1",
		"8/8/8/4k3/8/3KP3/8/8 w - - 0 1",
		"8/8/8/3bk3/8/3KB3/8/8 w - - 0 1", // KBvKB can help mate
	}
	for _, fen := range insufficient {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.True(t, p.HasInsufficientMaterial(), fen)
	}
	for _, fen := range sufficient {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.False(t, p.HasInsufficientMaterial(), fen)
	}
}

func TestIsAttacked(t *testing.T) {
	p := NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.True(t, p.IsAttacked(SqD6, White))  // by the e5 pawn
	assert.True(t, p.IsAttacked(SqF6, White))  // by the e5 pawn
	assert.False(t, p.IsAttacked(SqD5, White)) // nothing white reaches d5
	assert.True(t, p.IsAttacked(SqE4, Black))  // by the d5 pawn
	assert.True(t, p.IsAttacked(SqC4, Black))  // by the d5 pawn
	assert.False(t, p.IsAttacked(SqE5, Black))
	assert.True(t, p.IsAttacked(SqE2, White))  // own pieces attack/defend too
}
