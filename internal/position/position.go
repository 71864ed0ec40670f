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

// Package position represents data structures and functions for a chess board
// and its position.
// It uses a 8x8 piece board and bitboards, a stack for undo moves, several
// zobrist keys for transposition tables and evaluation caches, a material and
// game phase counter.
//
// Create a new instance with NewPosition(...) with no parameters to get the
// chess start position.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/Thomas-Neill/mariner/internal/assert"
	"github.com/Thomas-Neill/mariner/internal/config"
	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

var log *logging.Logger

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// history needs to hold a whole game plus the search path
const maxHistory int = 1024

// Position
// This struct represents the chess board and its position.
// It uses a 8x8 piece board and bitboards, a stack for undo moves,
// incrementally updated zobrist keys, material and game phase counters.
//
// Needs to be created with NewPosition() or NewPositionFen(fen)
type Position struct {

	// Board State
	// unique chess position (exception is 3-fold repetition
	// which is also not represented in a FEN string)
	pieceOn        [SqLength]Piece
	castlingRights CastlingRights
	epSquare       Square
	rule50         int
	sideToMove     Color

	// piece bitboards - pieceBb[PtAll] is the occupancy of all pieces
	pieceBb [PtLength]Bitboard
	colorBb [ColorLength]Bitboard

	// Incrementally maintained hash keys. The partial keys are
	// independent digests used to index auxiliary tables (pawn
	// cache, correction history) by a finer grained hash than key.
	key         Key
	pawnKey     Key
	nonPawnKey  [ColorLength]Key
	minorKey    Key
	majorKey    Key
	materialKey Key

	// Incrementally maintained evaluation state
	material     Score
	phaseValue   int
	phase        int
	nonPawnCount [ColorLength]int

	// pieces of the opponent attacking the king of the side to move
	checkers Bitboard

	// number of moves made on this position instance
	nodes uint64

	// history information for undo and repetition detection
	histPly        int
	fullMoveNumber int
	history        [maxHistory]historyState

	// castling geometry - supports Chess960 where the rook start
	// squares vary. Indexed by the single bit castling right.
	chess960   bool
	rookSquare [CastlingLength]Square
	castlePerm [SqLength]CastlingRights
	castlePath [CastlingLength]Bitboard
}

// the subset of fields needed to undo a move
type historyState struct {
	key            Key
	materialKey    Key
	move           Move
	checkers       Bitboard
	epSquare       Square
	rule50         int
	castlingRights CastlingRights
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position.
// When called without an argument the position will have the start position
// When a fen string is given it will create a position with based on this fen.
// Additional fens/strings are ignored
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a new position with the given fen string
// as board position
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// IsAttacked checks if the given square is attacked by a piece
// of the given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.pieceBb[PtAll]
	// non sliding
	if GetPawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 ||
		GetPseudoAttacks(Knight, sq)&p.PiecesBb(by, Knight) != 0 ||
		GetPseudoAttacks(King, sq)&p.PiecesBb(by, King) != 0 {
		return true
	}
	// sliding - reverse attack from the target square
	if GetAttacksBb(Bishop, sq, occ)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	return GetAttacksBb(Rook, sq, occ)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != 0
}

// AttackersTo returns a bitboard of all pieces of both colors
// attacking the given square on a board with the given occupancy.
func (p *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	return (GetPawnAttacks(Black, sq) & p.PiecesBb(White, Pawn)) |
		(GetPawnAttacks(White, sq) & p.PiecesBb(Black, Pawn)) |
		(GetPseudoAttacks(Knight, sq) & p.pieceBb[Knight]) |
		(GetPseudoAttacks(King, sq) & p.pieceBb[King]) |
		(GetAttacksBb(Bishop, sq, occupied) & (p.pieceBb[Bishop] | p.pieceBb[Queen])) |
		(GetAttacksBb(Rook, sq, occupied) & (p.pieceBb[Rook] | p.pieceBb[Queen]))
}

// computeCheckers returns the bitboard of all enemy pieces
// attacking the king of the side to move
func (p *Position) computeCheckers() Bitboard {
	kingSq := p.KingSquare(p.sideToMove)
	return p.AttackersTo(kingSq, p.pieceBb[PtAll]) & p.colorBb[p.sideToMove.Flip()]
}

// WasLegalMove tests if the last move was legal, e.g. if the king
// of the moving side can now be captured. Castling legality (king
// crossing attacked squares) is already ensured during generation
// by CastleLegal.
func (p *Position) WasLegalMove() bool {
	return !p.IsAttacked(p.KingSquare(p.sideToMove.Flip()), p.sideToMove)
}

// IsLegalMove tests a pseudo legal move if it is legal on the
// current position, e.g. the king is not left in check after the
// move.
func (p *Position) IsLegalMove(move Move) bool {
	if move.IsCastle() {
		return p.CastleLegal(move.To())
	}
	p.DoMove(move)
	legal := p.WasLegalMove()
	p.UndoMove()
	return legal
}

// CastleLegal checks legality of the castle move to the given king
// destination square on the current position: the castling right
// must be present, the king must not be in check, the path between
// king and rook must be empty, no square the king crosses may be
// attacked and in Chess960 the rook's removal must not uncover an
// attacker on the king destination.
func (p *Position) CastleLegal(to Square) bool {
	if assert.DEBUG {
		assert.Assert(to == SqC1 || to == SqG1 || to == SqC8 || to == SqG8,
			"invalid castling king target square %s", to.String())
	}

	c := White
	if to.RankOf() == Rank8 {
		c = Black
	}
	right := KingSideRight(c)
	if to.FileOf() == FileC {
		right = QueenSideRight(c)
	}

	if !p.castlingRights.Has(right) ||
		p.checkers != 0 ||
		p.pieceBb[PtAll]&p.castlePath[right] != 0 {
		return false
	}

	kingPath := Intermediate(p.KingSquare(c), to) | to.Bb()
	for kingPath != 0 {
		if p.IsAttacked(kingPath.PopLsb(), c.Flip()) {
			return false
		}
	}

	// the rook could have blocked a slider aiming at the king
	// destination square
	if p.chess960 {
		occ := p.pieceBb[PtAll] &^ p.rookSquare[right].Bb()
		return p.AttackersTo(to, occ)&p.colorBb[c.Flip()] == 0
	}
	return true
}

// CheckRepetitions returns true if the current position has
// occurred at least reps times before in the game/search history.
// Only positions since the last irreversible move (tracked by the
// half move clock) can repeat.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	for i := p.histPly - 2; i >= 0 && i >= p.histPly-p.rule50; i -= 2 {
		if p.history[i].key == p.key {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial returns true if no side has enough
// material to force a mate
func (p *Position) HasInsufficientMaterial() bool {
	if p.pieceBb[Pawn]|p.pieceBb[Rook]|p.pieceBb[Queen] != 0 {
		return false
	}
	// only kings and minor pieces left
	minors := (p.pieceBb[Knight] | p.pieceBb[Bishop]).PopCount()
	if minors <= 1 {
		return true
	}
	// two knights of one side cannot force a mate
	if minors == 2 && p.pieceBb[Bishop] == 0 &&
		((p.pieceBb[Knight]&p.colorBb[White]).PopCount() == 2 ||
			(p.pieceBb[Knight]&p.colorBb[Black]).PopCount() == 2) {
		return true
	}
	return false
}

// MoveUci returns the UCI string of the move in the context of this
// position. In Chess960 castling moves are printed with the king
// capturing its own rook as required by the protocol.
func (p *Position) MoveUci(m Move) string {
	if m == MoveNone {
		return "0000"
	}
	if p.chess960 && m.IsCastle() {
		c := m.Piece().ColorOf()
		right := KingSideRight(c)
		if m.To().FileOf() == FileC {
			right = QueenSideRight(c)
		}
		return m.From().String() + p.rookSquare[right].String()
	}
	return m.StringUci()
}

// String returns a string representing the board instance. This
// includes the fen, a board matrix, game phase and material value.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Side to move : %s\n", p.sideToMove.String()))
	os.WriteString(fmt.Sprintf("Game Phase   : %d\n", p.phase))
	os.WriteString(fmt.Sprintf("Material     : %s\n", p.material.String()))
	return os.String()
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.pieceOn[SquareOf(f, Rank8-r)].Char())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

func (p *Position) fen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.pieceOn[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	// side to move
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.String())
	// castling
	fen.WriteString(" ")
	fen.WriteString(p.stringCastlingRights())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.epSquare.String())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.rule50))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))
	return fen.String()
}

// castling rights in FEN form - Chess960 positions use the rook
// file letters (Shredder-FEN) to stay unambiguous
func (p *Position) stringCastlingRights() string {
	if p.castlingRights == CastlingNone {
		return "-"
	}
	if !p.chess960 {
		return p.castlingRights.String()
	}
	var os strings.Builder
	if p.castlingRights.Has(CastlingWhiteOO) {
		os.WriteString(strings.ToUpper(p.rookSquare[CastlingWhiteOO].FileOf().String()))
	}
	if p.castlingRights.Has(CastlingWhiteOOO) {
		os.WriteString(strings.ToUpper(p.rookSquare[CastlingWhiteOOO].FileOf().String()))
	}
	if p.castlingRights.Has(CastlingBlackOO) {
		os.WriteString(p.rookSquare[CastlingBlackOO].FileOf().String())
	}
	if p.castlingRights.Has(CastlingBlackOOO) {
		os.WriteString(p.rookSquare[CastlingBlackOOO].FileOf().String())
	}
	return os.String()
}

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid Position instance.
func (p *Position) setupBoard(fen string) error {

	p.chess960 = config.Settings.Search.Chess960
	p.epSquare = SqNone
	p.fullMoveNumber = 1

	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}

	// fen string starts at a8 and runs to h8
	// with / jumping to file A of next lower rank
	currentSquare := SqA8
	for _, c := range fenParts[0] {
		switch {
		case c >= '1' && c <= '8':
			currentSquare = Square(int8(currentSquare) + int8(c-'0'))
		case c == '/':
			currentSquare = Square(int8(currentSquare) - 16)
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			if !currentSquare.IsValid() {
				return errors.New("fen position runs out of the board")
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 { // after h1++ we reach a2 - a2 needs to be last current square
		return errors.New("not reached last square (h1) after reading fen")
	}

	// both sides need exactly one king
	if p.PiecesBb(White, King).PopCount() != 1 || p.PiecesBb(Black, King).PopCount() != 1 {
		return errors.New("fen position needs exactly one king per side")
	}

	// side to move
	if len(fenParts) >= 2 {
		switch fenParts[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
			p.key ^= sideKey
		default:
			return errors.New("fen side to move contains invalid characters")
		}
	}

	// castling rights
	if err := p.setupCastling(fenParts); err != nil {
		return err
	}
	p.key ^= castleKeys[p.castlingRights]

	// en passant
	if len(fenParts) >= 4 && fenParts[3] != "-" {
		sq := MakeSquare(fenParts[3])
		if sq == SqNone {
			return errors.New("fen en passant square invalid")
		}
		p.epSquare = sq
		p.key ^= pieceKeys[PieceNone][sq]
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		number, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.rule50 = number
	}

	// full move number
	if len(fenParts) >= 6 {
		number, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if number == 0 {
			number = 1
		}
		p.fullMoveNumber = number
	}

	p.checkers = p.computeCheckers()

	if assert.DEBUG {
		assert.Assert(p.positionOk(), "position not ok after fen setup: %s", fen)
	}

	return nil
}

// setupCastling parses the castling field of the fen and derives
// the rook start squares, the castle paths and the per square
// castling right masks. Accepts the standard KQkq letters and the
// Chess960 rook file letters (A-H/a-h).
func (p *Position) setupCastling(fenParts []string) error {
	for sq := SqA1; sq <= SqH8; sq++ {
		p.castlePerm[sq] = CastlingAny
	}
	for i := range p.rookSquare {
		p.rookSquare[i] = SqNone
	}
	if len(fenParts) < 3 || fenParts[2] == "-" {
		return nil
	}

	for _, c := range fenParts[2] {
		color := White
		backRank := Rank1
		if c >= 'a' && c <= 'z' {
			color = Black
			backRank = Rank8
		}
		kingSq := p.KingSquare(color)
		var right CastlingRights
		var rookSq Square

		switch {
		case c == 'K' || c == 'k':
			right = KingSideRight(color)
			rookSq = p.outermostRook(color, East)
		case c == 'Q' || c == 'q':
			right = QueenSideRight(color)
			rookSq = p.outermostRook(color, West)
		case (c >= 'A' && c <= 'H') || (c >= 'a' && c <= 'h'):
			file := File(strings.ToLower(string(c))[0] - 'a')
			rookSq = SquareOf(file, backRank)
			if file > kingSq.FileOf() {
				right = KingSideRight(color)
			} else {
				right = QueenSideRight(color)
			}
		default:
			return errors.New("fen castling rights contain invalid characters")
		}

		if rookSq == SqNone || p.pieceOn[rookSq] != MakePiece(color, Rook) ||
			kingSq.RankOf() != backRank {
			return errors.New("fen castling rights do not match the position")
		}

		p.castlingRights.Add(right)
		p.rookSquare[right] = rookSq
		p.castlePerm[kingSq] &^= KingSideRight(color) | QueenSideRight(color)
		p.castlePerm[rookSq] &^= right

		kingDest := castleKingDest(right)
		rookDest := castleRookDest(right)
		p.castlePath[right] = (Intermediate(kingSq, kingDest) |
			Intermediate(rookSq, rookDest) |
			kingDest.Bb() | rookDest.Bb()) &^ (kingSq.Bb() | rookSq.Bb())
	}
	return nil
}

// outermostRook returns the rook of the given color on the back
// rank which is furthest away from the king in the given direction
func (p *Position) outermostRook(c Color, d Direction) Square {
	backRank := Rank1
	if c == Black {
		backRank = Rank8
	}
	rooks := p.PiecesBb(c, Rook) & backRank.Bb()
	kingSq := p.KingSquare(c)
	found := SqNone
	for rooks != 0 {
		sq := rooks.PopLsb()
		if d == East && sq > kingSq {
			found = sq // keep the last (outermost) one
		}
		if d == West && sq < kingSq && found == SqNone {
			found = sq // the first found is the outermost
		}
	}
	return found
}

// king and rook destination squares by castling right
func castleKingDest(right CastlingRights) Square {
	switch right {
	case CastlingWhiteOO:
		return SqG1
	case CastlingWhiteOOO:
		return SqC1
	case CastlingBlackOO:
		return SqG8
	}
	return SqC8
}

func castleRookDest(right CastlingRights) Square {
	switch right {
	case CastlingWhiteOO:
		return SqF1
	case CastlingWhiteOOO:
		return SqD1
	case CastlingBlackOO:
		return SqF8
	}
	return SqD8
}

// castleRightFor returns the castling right matching the king
// destination square of a castling move
func castleRightFor(to Square) CastlingRights {
	switch to {
	case SqG1:
		return CastlingWhiteOO
	case SqC1:
		return CastlingWhiteOOO
	case SqG8:
		return CastlingBlackOO
	}
	return CastlingBlackOOO
}

// positionOk validates the invariants of the position. Only used
// in debug assertions.
func (p *Position) positionOk() bool {
	// bitboard consistency
	all := BbZero
	for pt := Pawn; pt <= King; pt++ {
		all |= p.pieceBb[pt]
	}
	if all != p.pieceBb[PtAll] || all != p.colorBb[White]|p.colorBb[Black] {
		return false
	}
	// board and bitboards agree
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.pieceOn[sq]
		if pc == PieceNone {
			if p.pieceBb[PtAll].Has(sq) {
				return false
			}
			continue
		}
		if !p.pieceBb[pc.TypeOf()].Has(sq) || !p.colorBb[pc.ColorOf()].Has(sq) {
			return false
		}
	}
	// one king each
	if p.PiecesBb(White, King).PopCount() != 1 || p.PiecesBb(Black, King).PopCount() != 1 {
		return false
	}
	// checkers agree
	return p.checkers == p.computeCheckers()
}

// //////////////////////////////////////////////////////
// // Getter and Setter functions
// //////////////////////////////////////////////////////

// Key returns the current zobrist key for this position
func (p *Position) Key() Key {
	return p.key
}

// PawnKey returns the zobrist key of the pawn structure
func (p *Position) PawnKey() Key {
	return p.pawnKey
}

// MaterialKey returns the zobrist key of the piece count multiset
func (p *Position) MaterialKey() Key {
	return p.materialKey
}

// MinorKey returns the zobrist key of minor pieces and kings
func (p *Position) MinorKey() Key {
	return p.minorKey
}

// MajorKey returns the zobrist key of major pieces and kings
func (p *Position) MajorKey() Key {
	return p.majorKey
}

// NonPawnKey returns the zobrist key of all non pawn pieces
// of the given color
func (p *Position) NonPawnKey(c Color) Key {
	return p.nonPawnKey[c]
}

// SideToMove returns the color which makes the next move
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// GetPiece returns the piece on the given square. Empty
// squares are initialized with PieceNone and return the same.
func (p *Position) GetPiece(sq Square) Piece {
	return p.pieceOn[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieceBb[pt] & p.colorBb[c]
}

// PieceTypeBb returns the Bitboard for the given piece type of both colors
func (p *Position) PieceTypeBb(pt PieceType) Bitboard {
	return p.pieceBb[pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board
func (p *Position) OccupiedAll() Bitboard {
	return p.pieceBb[PtAll]
}

// OccupiedBb returns a Bitboard of all pieces of Color c
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.colorBb[c]
}

// KingSquare returns the current square of the king of color c
func (p *Position) KingSquare(c Color) Square {
	return (p.pieceBb[King] & p.colorBb[c]).Lsb()
}

// EnPassantSquare returns the en passant square or SqNone if not set
func (p *Position) EnPassantSquare() Square {
	return p.epSquare
}

// CastlingRights returns the castling rights of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// RookSquare returns the rook start square for the given single
// castling right (relevant for Chess960)
func (p *Position) RookSquare(right CastlingRights) Square {
	return p.rookSquare[right]
}

// Rule50 returns the positions half move clock
func (p *Position) Rule50() int {
	return p.rule50
}

// HistPly returns the number of moves (null moves included) made on
// this position instance and not yet taken back
func (p *Position) HistPly() int {
	return p.histPly
}

// Checkers returns the bitboard of all enemy pieces attacking the
// king of the side to move
func (p *Position) Checkers() Bitboard {
	return p.checkers
}

// InCheck returns true when the king of the side to move is attacked
func (p *Position) InCheck() bool {
	return p.checkers != 0
}

// Material returns the accumulated packed material/positional value
// of the position from white's point of view
func (p *Position) Material() Score {
	return p.material
}

// Phase returns the tapered game phase of the position in [0, MidGame]
func (p *Position) Phase() int {
	return p.phase
}

// PhaseValue returns the sum of the phase weights of all pieces
// on the board
func (p *Position) PhaseValue() int {
	return p.phaseValue
}

// NonPawnCount returns the number of knights, bishops, rooks and
// queens of the given color
func (p *Position) NonPawnCount(c Color) int {
	return p.nonPawnCount[c]
}

// Nodes returns the number of moves made on this position instance
func (p *Position) Nodes() uint64 {
	return p.nodes
}

// Chess960 returns true when the position was set up as a
// Chess960 position
func (p *Position) Chess960() bool {
	return p.chess960
}

// LastMove returns the last move made on the position or
// MoveNone if the position has no history of earlier moves.
func (p *Position) LastMove() Move {
	if p.histPly <= 0 {
		return MoveNone
	}
	return p.history[p.histPly-1].move
}
