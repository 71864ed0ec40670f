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
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// pawn structure term weights
var (
	pawnDoubled  = S(-11, -49)
	pawnDoubled2 = S(-7, -26)
	pawnIsolated = S(-8, -16)
	pawnSupport  = S(21, 16)
	pawnOpen     = S(-14, -19)

	pawnPhalanx = [RankLength + 1]Score{
		0, S(0, 0), S(8, -2), S(20, 12), S(48, 38), S(90, 103), S(231, 94), 0, 0,
	}
)

// evaluatePawnStructure computes the pawn only terms of the
// evaluation (doubled, isolated, supported, phalanx, open file)
// and the passed pawn bitboard of both colors from white's point
// of view. The result only depends on the pawn structure and is
// cached by the pawn key.
func evaluatePawnStructure(p *position.Position) (Score, Bitboard) {
	score := pawnStructure(p, White) - pawnStructure(p, Black)
	passers := passedPawns(p, White) | passedPawns(p, Black)
	return score, passers
}

// pawnStructure evaluates the pawns of one color
func pawnStructure(p *position.Position, c Color) Score {
	var score Score
	them := c.Flip()
	ownPawns := p.PiecesBb(c, Pawn)
	theirPawns := p.PiecesBb(them, Pawn)
	up := c.MoveDirection()

	pawns := ownPawns
	for pawns != 0 {
		sq := pawns.PopLsb()

		// doubled pawns - distinguish direct doubling from an own
		// pawn further up the file with a gap of any size
		if ahead := sq.ForwardFile(c) & ownPawns; ahead != 0 {
			if ahead.Has(Square(int8(sq) + int8(up))) {
				score += pawnDoubled
			} else {
				score += pawnDoubled2
			}
		}

		// isolated pawn - no own pawns on neighbour files
		if sq.NeighbourFiles()&ownPawns == 0 {
			score += pawnIsolated
		}

		// supported by an own pawn
		supporters := GetPawnAttacks(them, sq) & ownPawns
		score += pawnSupport * Score(supporters.PopCount())

		// phalanx - a pawn beside it on the same rank
		phalanx := (ShiftBitboard(sq.Bb(), West) | ShiftBitboard(sq.Bb(), East)) & ownPawns
		if phalanx != 0 {
			score += pawnPhalanx[sq.RelativeRank(c)]
		}

		// pawn on a file without enemy pawns ahead can be
		// attacked easily
		if sq.ForwardFile(c)&theirPawns == 0 && sq.PassedPawnMask(c)&theirPawns != 0 {
			score += pawnOpen
		}
	}
	return score
}

// passedPawns returns the bitboard of the passed pawns of the
// given color
func passedPawns(p *position.Position, c Color) Bitboard {
	passers := BbZero
	theirPawns := p.PiecesBb(c.Flip(), Pawn)
	pawns := p.PiecesBb(c, Pawn)
	for pawns != 0 {
		sq := pawns.PopLsb()
		if sq.PassedPawnMask(c)&theirPawns == 0 {
			passers.PushSquare(sq)
		}
	}
	return passers
}
