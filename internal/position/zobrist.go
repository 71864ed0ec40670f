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
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution.
type Key uint64

// Process wide immutable zobrist key material initialized once.
// pieceKeys[PieceNone][sq] is reused to hash the en passant square.
// pieceKeys[piece][count] is reused for the material key which hashes
// piece count multisets independent of piece placement.
var (
	pieceKeys  [PieceLength][SqLength]Key
	castleKeys [CastlingLength]Key
	sideKey    Key
)

// initZobrist initializes the zobrist key tables with pseudo
// random numbers. A fixed seed keeps keys reproducible between
// runs which simplifies debugging and testing.
func initZobrist() {
	rng := NewPrnG(1070372)
	for pc := 0; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			pieceKeys[pc][sq] = Key(rng.Rand64())
		}
	}
	for cr := 0; cr < CastlingLength; cr++ {
		castleKeys[cr] = Key(rng.Rand64())
	}
	sideKey = Key(rng.Rand64())
}
