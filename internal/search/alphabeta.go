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
	"math"

	"github.com/Thomas-Neill/mariner/internal/config"
	"github.com/Thomas-Neill/mariner/internal/movegen"
	"github.com/Thomas-Neill/mariner/internal/transpositiontable"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// late move reduction table indexed by depth and number of moves
// searched
var lmrTable [MaxDepth + 1][MaxMoves]int8

func init() {
	for d := 1; d <= MaxDepth; d++ {
		for m := 1; m < MaxMoves; m++ {
			lmrTable[d][m] = int8(0.75 + math.Log(float64(d))*math.Log(float64(m))/2.25)
		}
	}
}

// alphabeta is the recursive part of the search. It returns the
// value of the position from the point of view of the side to
// move at the node.
func (s *Search) alphabeta(t *thread, depth int, ply int, alpha Value, beta Value, pvNode bool) Value {

	pos := &t.pos

	// the main thread polls the clock, helpers only observe the
	// abort signal
	if t.mainThread() && t.nodes.Load()&1023 == 0 {
		s.checkTime()
	}
	if s.abortSignal.Load() {
		return ValueDraw
	}

	if ply > t.selDepth {
		t.selDepth = ply
	}

	// leaf - enter quiescence
	if depth <= 0 {
		return s.qsearch(t, ply, alpha, beta)
	}

	if pvNode {
		t.pv[ply].Clear()
	}

	// draw by repetition, 50 moves rule or insufficient material.
	// With a full half move clock the position is only a draw when
	// the side to move is not being mated right here - in check we
	// need to search on.
	if pos.CheckRepetitions(1) || pos.HasInsufficientMaterial() ||
		(pos.Rule50() >= 100 && !pos.InCheck()) {
		return ValueDraw
	}
	if ply >= MaxDepth {
		return t.eval.Evaluate(pos)
	}

	// mate distance pruning - even a mate now cannot improve alpha
	if config.Settings.Search.UseMDP {
		alpha = maxValue(alpha, -ValueMate+Value(ply))
		beta = minValue(beta, ValueMate-Value(ply)-1)
		if alpha >= beta {
			return alpha
		}
	}

	us := pos.SideToMove()
	inCheck := pos.InCheck()

	// transposition table probe
	ttMove := MoveNone
	ttEntry, ttHit := s.tt.Probe(pos.Key())
	if ttHit {
		if movegen.MoveIsPseudoLegal(pos, ttEntry.Move()) {
			ttMove = ttEntry.Move()
		}
		ttValue := valueFromTT(ttEntry.Score(), ply)
		if !pvNode && ttEntry.Depth() >= depth && ttValue != ValueNA {
			switch ttEntry.Bound() {
			case transpositiontable.BoundExact:
				return ttValue
			case transpositiontable.BoundLower:
				if ttValue >= beta {
					return ttValue
				}
			case transpositiontable.BoundUpper:
				if ttValue <= alpha {
					return ttValue
				}
			}
		}
	}

	// static evaluation gates the pruning below. The correction
	// history refines the raw evaluation by what earlier searches
	// of similar pawn structures have shown.
	staticEval := ValueNA
	if !inCheck {
		staticEval = t.eval.Evaluate(pos) + t.history.Correction(us, uint64(pos.PawnKey()))
	}

	if !pvNode && !inCheck {
		// reverse futility pruning
		if config.Settings.Search.UseRFP && depth <= 6 &&
			staticEval-Value(90*depth) >= beta && !staticEval.IsCheckMateValue() {
			return staticEval
		}

		// razoring - when even a large margin cannot reach alpha
		// verify with a quiescence search
		if config.Settings.Search.UseRazoring && depth <= 2 &&
			staticEval+Value(200*depth) <= alpha {
			value := s.qsearch(t, ply, alpha, beta)
			if value <= alpha {
				return value
			}
		}

		// null move pruning - give the opponent a free move. Needs
		// non pawn material to avoid zugzwang positions and must
		// not be done twice in a row.
		if config.Settings.Search.UseNullMove &&
			depth >= config.Settings.Search.NmpDepth &&
			staticEval >= beta &&
			pos.NonPawnCount(us) > 0 &&
			pos.LastMove() != MoveNone {

			r := config.Settings.Search.NmpReduction + depth/5
			pos.DoNullMove()
			value := -s.alphabeta(t, depth-1-r, ply+1, -beta, -beta+1, false)
			pos.UndoNullMove()
			if s.abortSignal.Load() {
				return ValueDraw
			}
			if value >= beta {
				// do not return unproven mates from a null search
				if value.IsCheckMateValue() {
					value = beta
				}
				return value
			}
		}
	}

	// staged move generation - TT move first, then noisy moves,
	// killers, counter move and quiets. The generator is reset as
	// this node might be a re-search of the same position.
	mg := t.mg[ply]
	mg.ResetOnDemand()
	mg.SetPvMove(ttMove)
	mg.SetCounterMove(t.history.CounterMove(pos.LastMove()))

	bestValue := -ValueInfinite
	bestMove := MoveNone
	oldAlpha := alpha
	movesSearched := 0
	var quietsSearched []Move

	for m := mg.GetNextMove(pos, movegen.GenAll); m != MoveNone; m = mg.GetNextMove(pos, movegen.GenAll) {

		pos.DoMove(m)
		if !pos.WasLegalMove() {
			pos.UndoMove()
			continue
		}
		t.nodes.Add(1)
		movesSearched++
		givesCheck := pos.InCheck()

		// check extension
		newDepth := depth - 1
		if config.Settings.Search.UseCheckExt && givesCheck {
			newDepth++
		}

		var value Value
		if movesSearched == 1 {
			value = -s.alphabeta(t, newDepth, ply+1, -beta, -alpha, pvNode)
		} else {
			// late move reduction for quiet moves late in the list
			r := 0
			if config.Settings.Search.UseLmr &&
				depth >= config.Settings.Search.LmrDepth &&
				movesSearched > config.Settings.Search.LmrMovesSearched &&
				m.IsQuiet() && !inCheck && !givesCheck {
				r = int(lmrTable[depth][movesSearched])
				if r >= newDepth {
					r = newDepth - 1
				}
				if r < 0 {
					r = 0
				}
			}

			value = -s.alphabeta(t, newDepth-r, ply+1, -alpha-1, -alpha, false)
			if value > alpha && r > 0 {
				value = -s.alphabeta(t, newDepth, ply+1, -alpha-1, -alpha, false)
			}
			if value > alpha && value < beta {
				value = -s.alphabeta(t, newDepth, ply+1, -beta, -alpha, true)
			}
		}
		pos.UndoMove()

		if s.abortSignal.Load() {
			return ValueDraw
		}

		if m.IsQuiet() && len(quietsSearched) < 32 {
			quietsSearched = append(quietsSearched, m)
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				if pvNode {
					t.setPv(ply, m)
				}
				if value >= beta {
					// cutoff - update the ordering heuristics
					if m.IsQuiet() {
						mg.StoreKiller(m)
						t.history.UpdateQuiet(us, m, depth, quietsSearched)
						t.history.UpdateCounterMove(pos.LastMove(), m)
					} else if m.Captured() != PieceNone {
						t.history.UpdateCapture(m, depth, true)
					}
					s.tt.Put(pos.Key(), m, depth, valueToTT(value, ply), staticEval,
						transpositiontable.BoundLower)
					return value
				}
			}
		}
	}

	// no legal move - mate or stalemate
	if movesSearched == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	bound := transpositiontable.BoundUpper
	if alpha != oldAlpha {
		bound = transpositiontable.BoundExact
	}

	// correction history - remember how far the static eval was
	// off for this pawn structure
	if !inCheck && staticEval != ValueNA && !bestValue.IsCheckMateValue() &&
		(bestMove == MoveNone || bestMove.IsQuiet()) {
		t.history.UpdateCorrection(us, uint64(pos.PawnKey()), bestValue-staticEval, depth)
	}

	s.tt.Put(pos.Key(), bestMove, depth, valueToTT(bestValue, ply), staticEval, bound)

	return bestValue
}

// qsearch searches only noisy moves (captures and promotions) and
// check evasions until the position is quiet and returns the
// static evaluation as a fall through.
func (s *Search) qsearch(t *thread, ply int, alpha Value, beta Value) Value {

	pos := &t.pos

	if t.mainThread() && t.nodes.Load()&1023 == 0 {
		s.checkTime()
	}
	if s.abortSignal.Load() {
		return ValueDraw
	}

	if ply > t.selDepth {
		t.selDepth = ply
	}

	// a parent pv node may copy this ply's line - keep it clean
	t.pv[ply].Clear()

	if pos.CheckRepetitions(1) || pos.HasInsufficientMaterial() {
		return ValueDraw
	}

	inCheck := pos.InCheck()

	bestValue := -ValueInfinite
	if !inCheck {
		// stand pat
		bestValue = t.eval.Evaluate(pos) +
			t.history.Correction(pos.SideToMove(), uint64(pos.PawnKey()))
		if bestValue >= beta || ply >= MaxDepth {
			return bestValue
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	} else if ply >= MaxDepth {
		return ValueDraw
	}

	// in check all moves (evasions) are searched, otherwise only
	// noisy moves
	mode := movegen.GenNoisy
	if inCheck {
		mode = movegen.GenAll
	}

	mg := t.mg[ply]
	mg.ResetOnDemand()

	movesSearched := 0
	for m := mg.GetNextMove(pos, mode); m != MoveNone; m = mg.GetNextMove(pos, mode) {

		// prune captures which lose material
		if !inCheck && config.Settings.Search.UseSEE &&
			m.Captured() != PieceNone && see(pos, m) < 0 {
			continue
		}

		pos.DoMove(m)
		if !pos.WasLegalMove() {
			pos.UndoMove()
			continue
		}
		t.nodes.Add(1)
		movesSearched++

		value := -s.qsearch(t, ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.abortSignal.Load() {
			return ValueDraw
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				if value >= beta {
					break
				}
			}
		}
	}

	// mate detection - no evasion found
	if inCheck && movesSearched == 0 {
		return -ValueMate + Value(ply)
	}

	return bestValue
}

// setPv sets the pv of the given ply to the given move followed
// by the pv of the next ply
func (t *thread) setPv(ply int, m Move) {
	t.pv[ply].Clear()
	t.pv[ply].PushBack(m)
	next := t.pv[ply+1]
	for i := 0; i < next.Len(); i++ {
		t.pv[ply].PushBack(next.At(i))
	}
}

// valueToTT normalizes mate values to the distance from the
// current node before storing them in the transposition table
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value + Value(ply)
		}
		return value - Value(ply)
	}
	return value
}

// valueFromTT de-normalizes mate values from the transposition
// table to the distance from the root
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value - Value(ply)
		}
		return value + Value(ply)
	}
	return value
}
