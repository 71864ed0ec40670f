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
	"github.com/Thomas-Neill/mariner/internal/assert"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// DoMove commits a move to the board. The move must be pseudo legal
// on the current position - there is no check if this move is legal.
// Legality needs to be verified afterwards with WasLegalMove() or
// beforehand with IsLegalMove().
//
// All incrementally maintained state (bitboards, hash keys, material,
// phase, checkers) is updated. A history entry is pushed before any
// mutation so UndoMove() can restore the position exactly.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())
		assert.Assert(p.pieceOn[m.From()] == m.Piece(), "DoMove: move piece not on from square %s", m.String())
		assert.Assert(m.Piece().ColorOf() == p.sideToMove, "DoMove: piece to move does not belong to side to move %s", m.String())
	}

	// save position state for undo
	hs := &p.history[p.histPly]
	hs.key = p.key
	hs.materialKey = p.materialKey
	hs.move = m
	hs.checkers = p.checkers
	hs.epSquare = p.epSquare
	hs.rule50 = p.rule50
	hs.castlingRights = p.castlingRights

	p.histPly++
	p.rule50++
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}

	from := m.From()
	to := m.To()
	us := p.sideToMove

	// hash out en passant if there was one, and unset it
	p.hashEnPassant()
	p.epSquare = SqNone

	// rehash the castling rights
	p.key ^= castleKeys[p.castlingRights]
	p.castlingRights &= p.castlePerm[from] & p.castlePerm[to]
	p.key ^= castleKeys[p.castlingRights]

	if m.IsCastle() {
		// clear the king first, then move the rook, then place the
		// king - this order also handles Chess960 where the squares
		// involved may overlap
		right := castleRightFor(to)
		p.clearPiece(from, true)
		p.movePiece(p.rookSquare[right], castleRookDest(right), true)
		p.addPiece(to, MakePiece(us, King), true)
	} else {
		if capt := m.Captured(); capt != PieceNone {
			if assert.DEBUG {
				assert.Assert(capt.TypeOf() != King, "DoMove: king cannot be captured %s", m.String())
			}
			p.clearPiece(to, true)
			p.rule50 = 0
		}

		p.movePiece(from, to, true)

		// pawn move specifics
		if p.pieceOn[to].TypeOf() == Pawn {
			p.rule50 = 0
			switch {
			case m.IsPawnDouble():
				// only set the en passant square when an enemy pawn
				// could actually capture
				epSq := to ^ 8
				if GetPawnAttacks(us, epSq)&p.PiecesBb(us.Flip(), Pawn) != 0 {
					p.epSquare = epSq
					p.hashEnPassant()
				}
			case m.IsEnPassant():
				// the captured pawn is one rank behind the target
				p.clearPiece(to^8, true)
			default:
				if promo := m.Promoted(); promo != PieceNone {
					p.clearPiece(to, true)
					p.addPiece(to, promo, true)
				}
			}
		}
	}

	// change side to move
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= sideKey

	p.checkers = p.computeCheckers()
	p.nodes++

	if assert.DEBUG {
		assert.Assert(p.positionOk(), "position not ok after DoMove %s", m.String())
	}
}

// UndoMove resets the position to the state before the last move.
// All incrementally maintained state is restored exactly - the
// partial hash keys through the symmetric piece updates, the rest
// from the history entry.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.histPly > 0, "UndoMove: cannot undo initial position")
	}

	p.histPly--
	p.sideToMove = p.sideToMove.Flip()
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}

	hs := &p.history[p.histPly]
	m := hs.move
	from := m.From()
	to := m.To()
	us := p.sideToMove

	switch {
	case m.IsEnPassant():
		p.addPiece(to^8, MakePiece(us.Flip(), Pawn), false)
		p.movePiece(to, from, false)
	case m.IsCastle():
		right := castleRightFor(to)
		p.clearPiece(to, false)
		p.movePiece(castleRookDest(right), p.rookSquare[right], false)
		p.addPiece(from, MakePiece(us, King), false)
	default:
		p.movePiece(to, from, false)
		if capt := m.Captured(); capt != PieceNone {
			p.addPiece(to, capt, false)
		}
		if m.Promoted() != PieceNone {
			p.clearPiece(from, false)
			p.addPiece(from, MakePiece(us, Pawn), false)
		}
	}

	p.key = hs.key
	p.materialKey = hs.materialKey
	p.checkers = hs.checkers
	p.epSquare = hs.epSquare
	p.rule50 = hs.rule50
	p.castlingRights = hs.castlingRights

	if assert.DEBUG {
		assert.Assert(p.positionOk(), "position not ok after UndoMove %s", m.String())
	}
}

// DoNullMove passes the turn without moving. Used for null move
// pruning in the search. The half move clock is reset and not
// restored by UndoNullMove - callers must not depend on 50-move
// state across a null move.
func (p *Position) DoNullMove() {
	hs := &p.history[p.histPly]
	hs.key = p.key
	hs.move = MoveNone
	hs.checkers = p.checkers
	hs.epSquare = p.epSquare
	hs.rule50 = p.rule50

	p.histPly++
	p.rule50 = 0
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= sideKey

	p.hashEnPassant()
	p.epSquare = SqNone

	// a null move is only made when the side to move is not in
	// check so the new side to move cannot be in check either
	p.checkers = 0
}

// UndoNullMove restores the state of the position to before the
// DoNullMove() call except for the half move clock (see DoNullMove).
// Castling rights cannot change through a null move and are left
// untouched.
func (p *Position) UndoNullMove() {
	p.histPly--
	p.sideToMove = p.sideToMove.Flip()
	hs := &p.history[p.histPly]
	p.key = hs.key
	p.checkers = hs.checkers
	p.epSquare = hs.epSquare
}

// KeyAfter computes the zobrist key of the position after the given
// move without making it. Castling, promotion and en passant details
// are ignored - the key is used to prime the transposition table
// lookup early and only needs to be right for the common case.
func (p *Position) KeyAfter(m Move) Key {
	k := p.key ^ sideKey
	pc := m.Piece()
	k ^= pieceKeys[pc][m.From()] ^ pieceKeys[pc][m.To()]
	if capt := m.Captured(); capt != PieceNone {
		k ^= pieceKeys[capt][m.To()]
	}
	return k
}

// ///////////////////////////////////////////////////////////
// Incremental piece updates
// ///////////////////////////////////////////////////////////

// pieceCount returns the number of pieces of the exact given piece
// (color and type) on the board
func (p *Position) pieceCount(pc Piece) int {
	return p.PiecesBb(pc.ColorOf(), pc.TypeOf()).PopCount()
}

// hashEnPassant XORs the current en passant square in or out
// of the main key
func (p *Position) hashEnPassant() {
	if p.epSquare != SqNone {
		p.key ^= pieceKeys[PieceNone][p.epSquare]
	}
}

// hashPartialKeys updates the partial keys for the given piece on
// the given square. The partial keys are always updated (also
// during undo) as they are not restored from history.
func (p *Position) hashPartialKeys(pc Piece, sq Square) {
	pt := pc.TypeOf()
	if pt == Pawn {
		p.pawnKey ^= pieceKeys[pc][sq]
		return
	}
	p.nonPawnKey[pc.ColorOf()] ^= pieceKeys[pc][sq]
	switch {
	case pt == King:
		p.minorKey ^= pieceKeys[pc][sq]
		p.majorKey ^= pieceKeys[pc][sq]
	case pt >= Rook:
		p.majorKey ^= pieceKeys[pc][sq]
	default:
		p.minorKey ^= pieceKeys[pc][sq]
	}
}

// clearPiece removes the piece from the given square
func (p *Position) clearPiece(sq Square, hash bool) {
	pc := p.pieceOn[sq]
	color := pc.ColorOf()
	pt := pc.TypeOf()

	if assert.DEBUG {
		assert.Assert(pc != PieceNone, "clearPiece: no piece on square %s", sq.String())
	}

	if hash {
		p.key ^= pieceKeys[pc][sq]
	}
	p.hashPartialKeys(pc, sq)

	p.pieceOn[sq] = PieceNone
	p.material -= PSQT[pc][sq]
	p.phaseValue -= pt.PhaseWeight()
	p.phase = UpdatePhase(p.phaseValue)
	if pt > Pawn && pt < King {
		p.nonPawnCount[color]--
	}

	p.pieceBb[PtAll] ^= sq.Bb()
	p.pieceBb[pt] ^= sq.Bb()
	p.colorBb[color] ^= sq.Bb()

	// hashed with the count after removal so that add and remove
	// use the same count for the same multiset
	p.materialKey ^= pieceKeys[pc][p.pieceCount(pc)]
}

// addPiece adds the given piece to the given square
func (p *Position) addPiece(sq Square, pc Piece, hash bool) {
	color := pc.ColorOf()
	pt := pc.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.pieceOn[sq] == PieceNone, "addPiece: square %s occupied", sq.String())
	}

	if hash {
		p.key ^= pieceKeys[pc][sq]
	}
	p.hashPartialKeys(pc, sq)

	p.materialKey ^= pieceKeys[pc][p.pieceCount(pc)]

	p.pieceOn[sq] = pc
	p.material += PSQT[pc][sq]
	p.phaseValue += pt.PhaseWeight()
	p.phase = UpdatePhase(p.phaseValue)
	if pt > Pawn && pt < King {
		p.nonPawnCount[color]++
	}

	p.pieceBb[PtAll] |= sq.Bb()
	p.pieceBb[pt] |= sq.Bb()
	p.colorBb[color] |= sq.Bb()
}

// movePiece moves a piece from one square to another
func (p *Position) movePiece(from Square, to Square, hash bool) {
	pc := p.pieceOn[from]
	color := pc.ColorOf()
	pt := pc.TypeOf()

	if assert.DEBUG {
		assert.Assert(pc != PieceNone, "movePiece: no piece on square %s", from.String())
	}

	if hash {
		p.key ^= pieceKeys[pc][from] ^ pieceKeys[pc][to]
	}
	p.hashPartialKeys(pc, from)
	p.hashPartialKeys(pc, to)

	p.pieceOn[from] = PieceNone
	p.pieceOn[to] = pc
	p.material += PSQT[pc][to] - PSQT[pc][from]

	p.pieceBb[PtAll] ^= from.Bb() ^ to.Bb()
	p.pieceBb[pt] ^= from.Bb() ^ to.Bb()
	p.colorBb[color] ^= from.Bb() ^ to.Bb()
}

// putPiece is used during board setup from a fen
func (p *Position) putPiece(pc Piece, sq Square) {
	p.key ^= pieceKeys[pc][sq]
	p.addPiece(sq, pc, false)
}
