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
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// see performs a static exchange evaluation of the given capture
// move: the balance of material after both sides capture and
// recapture on the target square with their least valuable
// attackers. Used to prune losing captures in the quiescence
// search. Capture ordering in the move generator does not use it
// (MVV-LVA and capture history only).
func see(p *position.Position, m Move) Value {
	// en passant and castling are neutral exchanges for this purpose
	if m.IsEnPassant() || m.IsCastle() {
		return 0
	}

	// captured[i] is the value gained by the i-th capture on the
	// target square
	var captured [32]Value
	to := m.To()
	occupied := p.OccupiedAll()
	side := p.SideToMove()

	captured[0] = m.Captured().TypeOf().ValueOf()
	n := 1
	onTarget := m.Piece().TypeOf()
	fromBb := m.From().Bb()

	for n < len(captured) {
		occupied &^= fromBb
		side = side.Flip()
		// recomputing the attackers on the reduced occupancy also
		// reveals x-ray attackers behind the removed piece
		attackers := p.AttackersTo(to, occupied) & occupied & p.OccupiedBb(side)
		var attackerPt PieceType
		fromBb, attackerPt = leastValuableAttacker(p, attackers, side)
		if fromBb == 0 {
			break
		}
		// the piece currently on the target square gets captured
		captured[n] = onTarget.ValueOf()
		onTarget = attackerPt
		n++
	}

	// backward induction - each side only continues the exchange
	// when it does not lose material
	balance := ValueZero
	for i := n - 1; i >= 1; i-- {
		balance = captured[i] - balance
		if balance < 0 {
			balance = 0
		}
	}
	return captured[0] - balance
}

// leastValuableAttacker returns the bitboard of a single least
// valuable attacker of the given color out of the attackers set
// and its piece type
func leastValuableAttacker(p *position.Position, attackers Bitboard, c Color) (Bitboard, PieceType) {
	for pt := Pawn; pt <= King; pt++ {
		if set := attackers & p.PiecesBb(c, pt); set != 0 {
			return set.Lsb().Bb(), pt
		}
	}
	return BbZero, PtAll
}
