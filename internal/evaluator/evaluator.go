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

// Package evaluator contains the tapered static evaluation of a
// chess position. Every term is a packed mid/end game score pair,
// the final value is blended by the game phase. Pawn structure
// terms are cached in a per thread pawn cache keyed by the pawn
// hash of the position.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/Thomas-Neill/mariner/internal/config"
	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

var log *logging.Logger

// term weights
var (
	// Tempo is a small bonus for the side to move
	Tempo = Value(15)

	bishopPair   = S(25, 94)
	nbBehindPawn = S(8, 29)
	bishopBadP   = S(-1, -5)
	openForward  = S(28, 11)
	semiForward  = S(11, 9)
	shelter      = S(30, -6)
	kingAtkPawn  = S(-16, 42)
	pawnThreat   = S(68, 29)
	pushThreat   = S(21, 5)

	// passed pawns
	pawnPassed = [RankLength + 1]Score{
		0, S(0, 0), S(-12, 20), S(-14, 42), S(10, 72), S(28, 129), S(109, 204), 0, 0,
	}
	passedDefended = [RankLength + 1]Score{
		0, S(0, 0), S(0, 0), S(3, -11), S(10, -5), S(22, 29), S(62, 84), 0, 0,
	}
	passedBlocked = [4]Score{
		S(1, -15), S(-6, -30), S(-13, -58), S(-48, -96),
	}
	passedFreeAdv = [4]Score{
		S(-4, 25), S(-11, 54), S(-17, 121), S(-42, 205),
	}
	passedDistUs = [4]Score{
		S(2, -10), S(0, -21), S(3, -29), S(1, -27),
	}
	passedDistThem = S(-2, 11)
	passedRookBack = S(16, 30)
	passedSquare   = S(-22, 260)

	// threats indexed by the type of the attacked piece
	threatByMinor = [PtLength]Score{
		0, S(15, 31), S(37, 34), S(40, 55), S(62, 33), S(52, 25), 0,
	}
	threatByRook = [PtLength]Score{
		0, S(11, 26), S(31, 38), S(33, 40), S(-17, 18), S(58, 22), 0,
	}

	// mobility bonus per piece type (N, B, R, Q) indexed by the
	// number of reachable squares in the mobility area
	mobility = [4][28]Score{
		// knight (0-8)
		{S(-59, -81), S(-24, -36), S(-4, -7), S(6, 18), S(16, 29), S(21, 42),
			S(28, 44), S(36, 43), S(46, 32)},
		// bishop (0-13)
		{S(-50, -74), S(-25, -34), S(-9, -7), S(0, 12), S(9, 25), S(16, 38),
			S(20, 48), S(23, 52), S(25, 58), S(28, 57), S(32, 55), S(47, 47),
			S(53, 49), S(60, 37)},
		// rook (0-14)
		{S(-61, -66), S(-28, -29), S(-14, -5), S(-12, 13), S(-8, 29), S(-5, 41),
			S(-2, 51), S(2, 56), S(8, 60), S(13, 65), S(17, 70), S(20, 73),
			S(24, 75), S(33, 69), S(42, 60)},
		// queen (0-27)
		{S(-62, -48), S(-29, -42), S(-16, -28), S(-9, -12), S(-4, 2), S(0, 14),
			S(3, 25), S(6, 34), S(9, 42), S(11, 49), S(13, 55), S(15, 60),
			S(16, 64), S(17, 67), S(18, 70), S(19, 72), S(20, 73), S(21, 74),
			S(23, 74), S(26, 72), S(30, 69), S(35, 64), S(40, 58), S(45, 51),
			S(49, 44), S(52, 37), S(55, 30), S(57, 25)},
	}

	// king line danger indexed by the number of open lines and
	// attacked squares around the king
	kingLineDanger = [28]Score{
		S(0, 0), S(0, 0), S(14, 0), S(9, 17), S(-6, 21), S(-14, 20), S(-19, 18),
		S(-25, 22), S(-33, 24), S(-48, 28), S(-55, 27), S(-65, 29), S(-74, 29),
		S(-85, 30), S(-95, 29), S(-104, 28), S(-114, 27), S(-121, 22), S(-129, 19),
		S(-139, 12), S(-146, 7), S(-152, 0), S(-161, -6), S(-168, -14), S(-177, -24),
		S(-185, -35), S(-193, -48), S(-201, -62),
	}
)

// Evaluator is the data structure for the static evaluation.
// Create a new instance with NewEvaluator(). Each search thread
// owns its own instance as the pawn cache is not shared.
type Evaluator struct {
	log       *logging.Logger
	pawnCache *pawnCache
}

// NewEvaluator creates a new instance of an Evaluator
func NewEvaluator() *Evaluator {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Evaluator{
		log:       log,
		pawnCache: newPawnCache(),
	}
}

// ResetPawnCache clears the evaluator's pawn cache (e.g. for a
// new game)
func (e *Evaluator) ResetPawnCache() {
	e.pawnCache.clear()
}

// Evaluate returns a static evaluation of the position from the
// point of view of the side to move
func (e *Evaluator) Evaluate(p *position.Position) Value {

	// material and piece square values are kept up to date by the
	// position itself (white's point of view)
	score := p.Material()

	// pawn structure - cached by pawn key
	pawnScore, passers := e.pawnStructure(p)
	score += pawnScore

	// all other terms depend on more than the pawn structure and
	// are computed every time
	score += e.evaluatePieces(p, White) - e.evaluatePieces(p, Black)
	score += e.evaluatePassers(p, White, passers) - e.evaluatePassers(p, Black, passers)
	if config.Settings.Eval.UseKingEval {
		score += e.evaluateKing(p, White) - e.evaluateKing(p, Black)
	}

	v := score.Taper(p.Phase())

	// side to move's point of view plus a small tempo bonus
	if p.SideToMove() == Black {
		v = -v
	}
	return v + Tempo
}

// EvaluateWhitePov returns a static evaluation of the position
// from white's point of view
func (e *Evaluator) EvaluateWhitePov(p *position.Position) Value {
	v := e.Evaluate(p)
	if p.SideToMove() == Black {
		return -v
	}
	return v
}

// PawnCacheStats returns hits and misses of the pawn cache
func (e *Evaluator) PawnCacheStats() (hits uint64, misses uint64) {
	return e.pawnCache.hits, e.pawnCache.misses
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// pawnStructure returns the cached pawn structure evaluation or
// computes and caches it
func (e *Evaluator) pawnStructure(p *position.Position) (Score, Bitboard) {
	if !config.Settings.Eval.UsePawnCache {
		return evaluatePawnStructure(p)
	}
	entry := e.pawnCache.probe(p.PawnKey())
	if entry.key == p.PawnKey() {
		return entry.eval, entry.passedPawns
	}
	score, passers := evaluatePawnStructure(p)
	entry.key = p.PawnKey()
	entry.eval = score
	entry.passedPawns = passers
	return score, passers
}

// evaluatePieces evaluates mobility, minor piece placement, rook
// files and threats for one color
func (e *Evaluator) evaluatePieces(p *position.Position, c Color) Score {
	var score Score
	them := c.Flip()
	occupied := p.OccupiedAll()
	ownPawns := p.PiecesBb(c, Pawn)
	theirPawns := p.PiecesBb(them, Pawn)
	down := them.MoveDirection()

	// squares not occupied by own pawns/king and not attacked by
	// enemy pawns
	theirPawnAttacks := ShiftBitboard(theirPawns, Direction(int8(down)+int8(West))) |
		ShiftBitboard(theirPawns, Direction(int8(down)+int8(East)))
	mobilityArea := ^(ownPawns | p.PiecesBb(c, King) | theirPawnAttacks)

	if p.PiecesBb(c, Bishop).PopCount() >= 2 {
		score += bishopPair
	}

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(c, pt)
		for pieces != 0 {
			sq := pieces.PopLsb()
			attacks := GetAttacksBb(pt, sq, occupied)

			if config.Settings.Eval.UseMobility {
				score += mobility[pt-Knight][(attacks & mobilityArea).PopCount()]
			}

			switch pt {
			case Knight, Bishop:
				// minor piece shielded by an own pawn
				if ownPawns.Has(Square(int8(sq) + int8(c.MoveDirection()))) {
					score += nbBehindPawn
				}
				if pt == Bishop {
					// own pawns on the bishop's square color hem it in
					score += bishopBadP * Score((sameColorSquares(sq) & ownPawns).PopCount())
				}
				if config.Settings.Eval.UseThreats {
					targets := attacks & p.OccupiedBb(them)
					for targets != 0 {
						score += threatByMinor[p.GetPiece(targets.PopLsb()).TypeOf()]
					}
				}
			case Rook:
				switch {
				case sq.ForwardFile(c)&(ownPawns|theirPawns) == 0:
					score += openForward
				case sq.ForwardFile(c)&ownPawns == 0:
					score += semiForward
				}
				if config.Settings.Eval.UseThreats {
					targets := attacks & p.OccupiedBb(them)
					for targets != 0 {
						score += threatByRook[p.GetPiece(targets.PopLsb()).TypeOf()]
					}
				}
			}
		}
	}

	if config.Settings.Eval.UseThreats {
		// pawns attacking enemy pieces
		ownPawnAttacks := ShiftBitboard(ownPawns, Direction(int8(c.MoveDirection())+int8(West))) |
			ShiftBitboard(ownPawns, Direction(int8(c.MoveDirection())+int8(East)))
		score += pawnThreat * Score((ownPawnAttacks & (p.OccupiedBb(them) &^ theirPawns)).PopCount())

		// pawn pushes threatening enemy pieces
		pushes := ShiftBitboard(ownPawns, c.MoveDirection()) &^ occupied
		pushAttacks := ShiftBitboard(pushes, Direction(int8(c.MoveDirection())+int8(West))) |
			ShiftBitboard(pushes, Direction(int8(c.MoveDirection())+int8(East)))
		score += pushThreat * Score((pushAttacks & (p.OccupiedBb(them) &^ theirPawns)).PopCount())
	}

	return score
}

// evaluatePassers evaluates the passed pawns of one color
func (e *Evaluator) evaluatePassers(p *position.Position, c Color, passers Bitboard) Score {
	var score Score
	them := c.Flip()
	up := c.MoveDirection()
	ownKing := p.KingSquare(c)
	theirKing := p.KingSquare(them)

	pawns := passers & p.OccupiedBb(c)
	for pawns != 0 {
		sq := pawns.PopLsb()
		relRank := sq.RelativeRank(c)

		score += pawnPassed[relRank]

		if GetPawnAttacks(them, sq)&p.PiecesBb(c, Pawn) != 0 {
			score += passedDefended[relRank]
		}

		// far advanced passers - differentiate between being
		// blocked and having a free path
		if relRank >= Rank4 {
			idx := int(relRank - Rank4)
			pushSq := Square(int8(sq) + int8(up))
			if p.OccupiedAll().Has(pushSq) {
				score += passedBlocked[idx]
			} else {
				score += passedFreeAdv[idx]
			}
			score += passedDistUs[idx] * Score(SquareDistance(pushSq, ownKing))
			score += passedDistThem * Score(SquareDistance(pushSq, theirKing))
		}

		// rook behind the passer
		if sq.ForwardFile(them)&p.PiecesBb(c, Rook) != 0 {
			score += passedRookBack
		}

		// rule of the square - the enemy king cannot catch the
		// pawn in a pawn endgame
		if p.NonPawnCount(them) == 0 {
			promoSq := SquareOf(sq.FileOf(), c.PromotionRank())
			pawnDist := SquareDistance(sq, promoSq)
			kingDist := SquareDistance(theirKing, promoSq)
			if p.SideToMove() == them {
				kingDist--
			}
			if pawnDist < kingDist {
				score += passedSquare
			}
		}
	}
	return score
}

// evaluateKing evaluates the king safety of one color
func (e *Evaluator) evaluateKing(p *position.Position, c Color) Score {
	var score Score
	them := c.Flip()
	kingSq := p.KingSquare(c)
	ownPawns := p.PiecesBb(c, Pawn)

	// pawn shelter in front of the king
	shelterZone := (kingSq.Bb() | kingSq.NeighbourFiles() | kingSq.FileOf().Bb()) &
		sameAndForwardRanks(kingSq, c)
	score += shelter * Score((shelterZone & ownPawns).PopCount())

	// king attacking enemy pawns is useful in the endgame
	if GetPseudoAttacks(King, kingSq)&p.PiecesBb(them, Pawn) != 0 {
		score += kingAtkPawn
	}

	// open lines and diagonals towards the king - queen attacks
	// from the king square on a board where only pawns and own
	// pieces block
	danger := GetAttacksBb(Queen, kingSq, p.OccupiedBb(c)|p.PieceTypeBb(Pawn)).PopCount()
	if danger > 27 {
		danger = 27
	}
	score += kingLineDanger[danger]

	return score
}

// sameColorSquares returns the bitboard of all squares with the
// same square color as the given square
func sameColorSquares(sq Square) Bitboard {
	const lightSquares Bitboard = 0x55AA55AA55AA55AA
	if lightSquares.Has(sq) {
		return lightSquares
	}
	return ^lightSquares
}

// sameAndForwardRanks returns the rank of the square plus all
// ranks ahead as seen from the given color
func sameAndForwardRanks(sq Square, c Color) Bitboard {
	return sq.RankOf().Bb() | sq.ForwardRanks(c)
}
