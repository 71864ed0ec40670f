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

package evaluator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// mirrorFen mirrors a position across the horizontal axis with
// colors swapped
func mirrorFen(fen string) string {
	parts := strings.Split(fen, " ")

	// board - reverse the ranks and swap the piece cases
	ranks := strings.Split(parts[0], "/")
	mirrored := make([]string, len(ranks))
	for i, r := range ranks {
		mirrored[len(ranks)-1-i] = swapCase(r)
	}
	board := strings.Join(mirrored, "/")

	// side to move
	side := "w"
	if parts[1] == "w" {
		side = "b"
	}

	// castling rights
	castling := parts[2]
	if castling != "-" {
		castling = swapCase(castling)
	}

	// en passant square - mirror the rank
	ep := parts[3]
	if ep != "-" {
		ep = string(ep[0]) + string(rune('1'+'8'-ep[1]))
	}

	rest := ""
	if len(parts) > 4 {
		rest = " " + strings.Join(parts[4:], " ")
	}
	return board + " " + side + " " + castling + " " + ep + rest
}

func swapCase(s string) string {
	var os strings.Builder
	for _, c := range s {
		switch {
		case unicode.IsUpper(c):
			os.WriteRune(unicode.ToLower(c))
		case unicode.IsLower(c):
			os.WriteRune(unicode.ToUpper(c))
		default:
			os.WriteRune(c)
		}
	}
	return os.String()
}

// the evaluation from the side to move's point of view must not
// change when the position is mirrored with colors swapped
func TestEvaluationSymmetry(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		"4k3/8/8/3pP3/8/8/5N2/4K3 w - - 0 1",
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 4 4",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		m, err := position.NewPositionFen(mirrorFen(fen))
		require.NoError(t, err, "mirrored fen invalid: %s", mirrorFen(fen))

		e1 := NewEvaluator()
		e2 := NewEvaluator()
		assert.Equal(t, e1.Evaluate(p), e2.Evaluate(m), "eval asymmetry on %s", fen)
	}
}

func TestEvaluationStartPos(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()
	v := e.Evaluate(p)
	// the start position is symmetric - only the tempo bonus remains
	assert.Equal(t, Tempo, v)
}

// a big material advantage must show up in the evaluation
func TestEvaluationMaterial(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition("4k3/8/8/8/8/8/8/QQQQK3 w - - 0 1")
	assert.Greater(t, int(e.Evaluate(p)), 2000)
	// and be negative from the opponent's point of view
	p = position.NewPosition("4k3/8/8/8/8/8/8/QQQQK3 b - - 0 1")
	assert.Less(t, int(e.Evaluate(p)), -2000)
}

// the pawn cache must return exactly what a fresh computation
// returns
func TestPawnCache(t *testing.T) {
	e := NewEvaluator()
	fens := []string{
		position.StartFen,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)

		// first evaluation fills the cache
		e.Evaluate(p)
		entry := e.pawnCache.probe(p.PawnKey())
		require.Equal(t, p.PawnKey(), entry.key)

		score, passers := evaluatePawnStructure(p)
		assert.Equal(t, score, entry.eval, "cached pawn eval mismatch on %s", fen)
		assert.Equal(t, passers, entry.passedPawns, "cached passers mismatch on %s", fen)
	}
	hits, misses := e.PawnCacheStats()
	assert.NotZero(t, hits)
	assert.NotZero(t, misses)
}

func TestPassedPawns(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3pP3/8/8/5P2/4K3 w - - 0 1")
	require.NoError(t, err)
	_, passers := evaluatePawnStructure(p)
	// the e5 pawn is passed (the d5 pawn cannot stop it), the f2
	// pawn is not blocked by anything either - the d5 pawn is
	// passed for black
	assert.True(t, passers.Has(SqE5))
	assert.True(t, passers.Has(SqD5))
	assert.True(t, passers.Has(SqF2))
}

func TestWhitePovEvaluation(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition("4k3/8/8/8/8/8/8/QQQQK3 b - - 0 1")
	// white pov is positive no matter who moves
	assert.Greater(t, int(e.EvaluateWhitePov(p)), 2000)
}
