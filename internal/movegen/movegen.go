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

// Package movegen contains functionality to create moves on a
// chess position. It implements several variants like
// generate pseudo legal moves, legal moves or staged
// generation of pseudo legal moves in quality order.
package movegen

import (
	"strings"

	"github.com/op/go-logging"

	"github.com/Thomas-Neill/mariner/internal/history"
	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/moveslice"
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

var log *logging.Logger

// GenMode generation modes for on demand move generation
type GenMode int

// GenMode generation modes for on demand move generation
const (
	GenZero   GenMode = 0b00
	GenNoisy  GenMode = 0b01
	GenQuiet  GenMode = 0b10
	GenAll    GenMode = 0b11
)

// staged generation stages
const (
	stageTT int8 = iota
	stageNoisyGen
	stageNoisy
	stageKiller1
	stageKiller2
	stageCounter
	stageQuietGen
	stageQuiet
	stageDone
)

type scoredMove struct {
	move  Move
	value int32
}

// Movegen data structure. Create new move generator via
//  movegen.NewMoveGen()
// Each instance holds its own buffers so search threads use
// one instance per ply.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice

	// staged generation state
	stage              int8
	currentIteratorKey position.Key
	pvMove             Move
	killerMoves        [2]Move
	counterMove        Move
	historyData        *history.History
	noisyMoves         []scoredMove
	quietMoves         []scoredMove
}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
		stage:            stageTT,
		noisyMoves:       make([]scoredMove, 0, MaxMoves),
		quietMoves:       make([]scoredMove, 0, MaxMoves),
	}
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GeneratePseudoLegalMoves generates pseudo moves for the side to
// move. Does not check if the king is left in check or if the king
// passes an attacked square when castling. Castling moves are the
// exception - they are only emitted when fully legal.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenNoisy != 0 {
		mg.generatePawnMoves(p, GenNoisy, mg.pseudoLegalMoves)
		mg.generatePieceMoves(p, GenNoisy, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenNoisy, mg.pseudoLegalMoves)
	}
	if mode&GenQuiet != 0 {
		mg.generatePawnMoves(p, GenQuiet, mg.pseudoLegalMoves)
		mg.generateCastling(p, mg.pseudoLegalMoves)
		mg.generatePieceMoves(p, GenQuiet, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenQuiet, mg.pseudoLegalMoves)
	}
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the side to move.
// Uses GeneratePseudoLegalMoves and filters out illegal moves.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(p, mode)
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		m := mg.pseudoLegalMoves.At(i)
		if p.IsLegalMove(m) {
			mg.legalMoves.PushBack(m)
		}
	}
	return mg.legalMoves
}

// HasLegalMove determines if the side to move has at least one
// legal move
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		if p.IsLegalMove(mg.pseudoLegalMoves.At(i)) {
			return true
		}
	}
	return false
}

// GetNextMove returns the next move of the staged generation in
// quality order: the PV/TT move first, noisy moves ordered by
// MVV-LVA and capture history, killer moves, counter move and
// finally quiet moves ordered by history. Returns MoveNone when
// no more moves are available.
//
// If the position changes between calls the generation restarts
// for the new position. To reuse the generator on the same position
// a call to ResetOnDemand() is necessary.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {
	if p.Key() != mg.currentIteratorKey {
		mg.resetStagedState()
		mg.currentIteratorKey = p.Key()
	}

	for {
		switch mg.stage {
		case stageTT:
			mg.stage = stageNoisyGen
			if mg.pvMove != MoveNone && MoveIsPseudoLegal(p, mg.pvMove) &&
				(mode&GenQuiet != 0 || mg.pvMove.IsNoisy()) {
				return mg.pvMove
			}

		case stageNoisyGen:
			mg.noisyMoves = mg.noisyMoves[:0]
			tmp := mg.pseudoLegalMoves
			tmp.Clear()
			mg.generatePawnMoves(p, GenNoisy, tmp)
			mg.generatePieceMoves(p, GenNoisy, tmp)
			mg.generateKingMoves(p, GenNoisy, tmp)
			for _, m := range *tmp {
				mg.noisyMoves = append(mg.noisyMoves, scoredMove{m, mg.scoreNoisy(m)})
			}
			mg.stage = stageNoisy

		case stageNoisy:
			if m := popBest(&mg.noisyMoves); m != MoveNone {
				if m == mg.pvMove {
					continue
				}
				return m
			}
			if mode&GenQuiet == 0 {
				mg.stage = stageDone
				return MoveNone
			}
			mg.stage = stageKiller1

		case stageKiller1:
			mg.stage = stageKiller2
			if m := mg.killerMoves[0]; mg.killerOk(p, m) {
				return m
			}

		case stageKiller2:
			mg.stage = stageCounter
			if m := mg.killerMoves[1]; mg.killerOk(p, m) {
				return m
			}

		case stageCounter:
			mg.stage = stageQuietGen
			m := mg.counterMove
			if m != MoveNone && m != mg.killerMoves[0] && m != mg.killerMoves[1] &&
				mg.killerOk(p, m) {
				return m
			}

		case stageQuietGen:
			mg.quietMoves = mg.quietMoves[:0]
			tmp := mg.pseudoLegalMoves
			tmp.Clear()
			mg.generatePawnMoves(p, GenQuiet, tmp)
			mg.generateCastling(p, tmp)
			mg.generatePieceMoves(p, GenQuiet, tmp)
			mg.generateKingMoves(p, GenQuiet, tmp)
			for _, m := range *tmp {
				mg.quietMoves = append(mg.quietMoves, scoredMove{m, mg.scoreQuiet(p, m)})
			}
			mg.stage = stageQuiet

		case stageQuiet:
			if m := popBest(&mg.quietMoves); m != MoveNone {
				if m == mg.pvMove || m == mg.killerMoves[0] || m == mg.killerMoves[1] ||
					m == mg.counterMove {
					continue
				}
				return m
			}
			mg.stage = stageDone

		default:
			return MoveNone
		}
	}
}

// ResetOnDemand resets the staged move generator to start fresh
// on the next GetNextMove call. Killer moves are kept - they are
// valid for the whole ply and only deleted by ClearKillers.
// Must be called when a node is entered again for the same
// position (e.g. a re-search with a different window).
func (mg *Movegen) ResetOnDemand() {
	mg.resetStagedState()
	mg.currentIteratorKey = 0
	mg.pvMove = MoveNone
	mg.counterMove = MoveNone
}

// ClearKillers deletes the stored killer moves (e.g. when the
// thread state is prepared for a new search)
func (mg *Movegen) ClearKillers() {
	mg.killerMoves[0] = MoveNone
	mg.killerMoves[1] = MoveNone
}

// SetPvMove sets a PV move which should be returned first by
// the staged move generator
func (mg *Movegen) SetPvMove(m Move) {
	mg.pvMove = m
}

// SetCounterMove sets a counter move which is tried directly after
// the killer moves
func (mg *Movegen) SetCounterMove(m Move) {
	mg.counterMove = m
}

// StoreKiller provides the staged move generator with a new
// killer move which is tried early in the quiet stage
func (mg *Movegen) StoreKiller(m Move) {
	if mg.killerMoves[0] == m {
		return
	}
	mg.killerMoves[1] = mg.killerMoves[0]
	mg.killerMoves[0] = m
}

// SetHistoryData provides the move generator with the search
// thread's history heuristics for quiet move ordering
func (mg *Movegen) SetHistoryData(h *history.History) {
	mg.historyData = h
}

// GetMoveFromUci generates all legal moves and matches the given
// UCI move string against them. If there is a match the actual
// move is returned. Otherwise MoveNone is returned. In Chess960
// castling is matched with the king-takes-own-rook convention.
//
// As this uses string creation and comparison this is not very
// efficient. Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	uciMove = strings.TrimSpace(strings.ToLower(uciMove))
	if len(uciMove) < 4 {
		return MoveNone
	}
	mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < mg.legalMoves.Len(); i++ {
		m := mg.legalMoves.At(i)
		if p.MoveUci(m) == uciMove || m.StringUci() == uciMove {
			return m
		}
	}
	return MoveNone
}

// MoveIsPseudoLegal tests if a move (e.g. from the transposition
// table) obeys piece motion and occupancy on the given position.
// The move may still be illegal (leave the own king in check).
func MoveIsPseudoLegal(p *position.Position, m Move) bool {
	if !m.IsValid() {
		return false
	}
	pc := m.Piece()
	us := p.SideToMove()
	if pc.ColorOf() != us || p.GetPiece(m.From()) != pc {
		return false
	}

	if m.IsCastle() {
		return pc.TypeOf() == King && p.CastleLegal(m.To())
	}

	if m.IsEnPassant() {
		return pc.TypeOf() == Pawn &&
			p.EnPassantSquare() == m.To() &&
			GetPawnAttacks(us, m.From()).Has(m.To())
	}

	// captured piece must match the board
	if p.GetPiece(m.To()) != m.Captured() {
		return false
	}
	// no captures of own pieces
	if m.Captured() != PieceNone && m.Captured().ColorOf() == us {
		return false
	}

	pt := pc.TypeOf()
	if pt != Pawn {
		if m.Promoted() != PieceNone || m.IsPawnDouble() {
			return false
		}
		return GetAttacksBb(pt, m.From(), p.OccupiedAll()).Has(m.To())
	}

	// pawn moves
	if (m.To().RankOf() == us.PromotionRank()) != (m.Promoted() != PieceNone) {
		return false
	}
	up := us.MoveDirection()
	delta := int(m.To()) - int(m.From())
	switch delta {
	case int(up):
		return !m.IsPawnDouble() && p.GetPiece(m.To()) == PieceNone
	case 2 * int(up):
		middle := Square(int(m.From()) + int(up))
		return m.IsPawnDouble() &&
			m.From().RelativeRank(us) == Rank2 &&
			p.GetPiece(middle) == PieceNone &&
			p.GetPiece(m.To()) == PieceNone
	default:
		return !m.IsPawnDouble() &&
			m.Captured() != PieceNone &&
			GetPawnAttacks(us, m.From()).Has(m.To())
	}
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

func (mg *Movegen) resetStagedState() {
	mg.stage = stageTT
	mg.noisyMoves = mg.noisyMoves[:0]
	mg.quietMoves = mg.quietMoves[:0]
}

// killerOk checks whether a killer/counter move candidate can be
// played on the position and is not returned twice
func (mg *Movegen) killerOk(p *position.Position, m Move) bool {
	return m != MoveNone && m != mg.pvMove && m.IsQuiet() && MoveIsPseudoLegal(p, m)
}

// scoreNoisy orders captures by most valuable victim / least
// valuable attacker refined by the capture history
func (mg *Movegen) scoreNoisy(m Move) int32 {
	value := int32(0)
	if capt := m.Captured(); capt != PieceNone {
		value += 10 * int32(capt.TypeOf().ValueOf())
	} else if m.IsEnPassant() {
		value += 10 * int32(Pawn.ValueOf())
	}
	if promo := m.Promoted(); promo != PieceNone {
		value += 10 * int32(promo.TypeOf().ValueOf())
	}
	value -= int32(m.Piece().TypeOf())
	if mg.historyData != nil && m.Captured() != PieceNone {
		value += mg.historyData.CaptureValue(m)
	}
	return value
}

// scoreQuiet orders quiet moves by their history value
func (mg *Movegen) scoreQuiet(p *position.Position, m Move) int32 {
	if mg.historyData == nil {
		return 0
	}
	return mg.historyData.QuietValue(p.SideToMove(), m)
}

// popBest removes and returns the best scored move of the list.
// Returns MoveNone when the list is empty. Selection on demand is
// cheaper than a full sort when a cutoff happens early.
func popBest(moves *[]scoredMove) Move {
	list := *moves
	if len(list) == 0 {
		return MoveNone
	}
	best := 0
	for i := 1; i < len(list); i++ {
		if list[i].value > list[best].value {
			best = i
		}
	}
	m := list[best].move
	list[best] = list[len(list)-1]
	*moves = list[:len(list)-1]
	return m
}

// ///////////////////////////////////////////////////////////
// Move generation
// ///////////////////////////////////////////////////////////

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, list *moveslice.MoveSlice) {
	us := p.SideToMove()
	them := us.Flip()
	pawns := p.PiecesBb(us, Pawn)
	occupied := p.OccupiedAll()
	opponents := p.OccupiedBb(them)
	up := us.MoveDirection()
	promoRankBb := us.PromotionRank().Bb()
	pawn := MakePiece(us, Pawn)

	if mode&GenNoisy != 0 {
		// captures to the west and east including capture promotions
		for _, side := range [2]Direction{West, East} {
			dir := Direction(int8(up) + int8(side))
			targets := ShiftBitboard(pawns, dir) & opponents
			for targets != 0 {
				to := targets.PopLsb()
				from := Square(int8(to) - int8(dir))
				capt := p.GetPiece(to)
				if promoRankBb.Has(to) {
					for pt := Queen; pt >= Knight; pt-- {
						list.PushBack(CreateMove(from, to, pawn, capt, MakePiece(us, pt), FlagNone))
					}
				} else {
					list.PushBack(CreateMove(from, to, pawn, capt, PieceNone, FlagNone))
				}
			}
		}

		// push promotions
		targets := ShiftBitboard(pawns, up) &^ occupied & promoRankBb
		for targets != 0 {
			to := targets.PopLsb()
			from := Square(int8(to) - int8(up))
			for pt := Queen; pt >= Knight; pt-- {
				list.PushBack(CreateMove(from, to, pawn, PieceNone, MakePiece(us, pt), FlagNone))
			}
		}

		// en passant
		if epSq := p.EnPassantSquare(); epSq != SqNone {
			// the attack pattern of the opponent from the en passant
			// square hits exactly our candidate pawns
			candidates := GetPawnAttacks(them, epSq) & pawns
			for candidates != 0 {
				from := candidates.PopLsb()
				list.PushBack(CreateMove(from, epSq, pawn, PieceNone, PieceNone, FlagEnPassant))
			}
		}
	}

	if mode&GenQuiet != 0 {
		doubleRankBb := us.PawnDoubleRank().Bb()
		// single pushes without promotions
		singles := ShiftBitboard(pawns, up) &^ occupied
		targets := singles &^ promoRankBb
		for targets != 0 {
			to := targets.PopLsb()
			from := Square(int8(to) - int8(up))
			list.PushBack(CreateMove(from, to, pawn, PieceNone, PieceNone, FlagNone))
		}
		// double pushes
		targets = ShiftBitboard(singles, up) &^ occupied & doubleRankBb
		for targets != 0 {
			to := targets.PopLsb()
			from := Square(int8(to) - 2*int8(up))
			list.PushBack(CreateMove(from, to, pawn, PieceNone, PieceNone, FlagPawnDouble))
		}
	}
}

func (mg *Movegen) generatePieceMoves(p *position.Position, mode GenMode, list *moveslice.MoveSlice) {
	us := p.SideToMove()
	occupied := p.OccupiedAll()
	opponents := p.OccupiedBb(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		pc := MakePiece(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			attacks := GetAttacksBb(pt, from, occupied)
			if mode&GenNoisy != 0 {
				targets := attacks & opponents
				for targets != 0 {
					to := targets.PopLsb()
					list.PushBack(CreateMove(from, to, pc, p.GetPiece(to), PieceNone, FlagNone))
				}
			}
			if mode&GenQuiet != 0 {
				targets := attacks &^ occupied
				for targets != 0 {
					to := targets.PopLsb()
					list.PushBack(CreateMove(from, to, pc, PieceNone, PieceNone, FlagNone))
				}
			}
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, list *moveslice.MoveSlice) {
	us := p.SideToMove()
	from := p.KingSquare(us)
	king := MakePiece(us, King)
	attacks := GetPseudoAttacks(King, from)
	if mode&GenNoisy != 0 {
		targets := attacks & p.OccupiedBb(us.Flip())
		for targets != 0 {
			to := targets.PopLsb()
			list.PushBack(CreateMove(from, to, king, p.GetPiece(to), PieceNone, FlagNone))
		}
	}
	if mode&GenQuiet != 0 {
		targets := attacks &^ p.OccupiedAll()
		for targets != 0 {
			to := targets.PopLsb()
			list.PushBack(CreateMove(from, to, king, PieceNone, PieceNone, FlagNone))
		}
	}
}

// generateCastling emits castling moves. Castling moves are only
// emitted when fully legal (CastleLegal) - this includes the
// Chess960 specific checks.
func (mg *Movegen) generateCastling(p *position.Position, list *moveslice.MoveSlice) {
	us := p.SideToMove()
	king := MakePiece(us, King)
	from := p.KingSquare(us)

	kingSide := KingSideRight(us)
	if p.CastlingRights().Has(kingSide) {
		to := SqG1
		if us == Black {
			to = SqG8
		}
		if p.CastleLegal(to) {
			list.PushBack(CreateMove(from, to, king, PieceNone, PieceNone, FlagCastle))
		}
	}
	queenSide := QueenSideRight(us)
	if p.CastlingRights().Has(queenSide) {
		to := SqC1
		if us == Black {
			to = SqC8
		}
		if p.CastleLegal(to) {
			list.PushBack(CreateMove(from, to, king, PieceNone, PieceNone, FlagCastle))
		}
	}
}
