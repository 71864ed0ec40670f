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

package types

import (
	"fmt"
	"strings"
)

// Move is a 32-bit unsigned int type for encoding chess moves
// as a primitive data type. 27 bits are used.
//
//  0000 0000 0000 0000 0000 0000 0011 1111  from       <<  0
//  0000 0000 0000 0000 0000 1111 1100 0000  to         <<  6
//  0000 0000 0000 0000 1111 0000 0000 0000  piece      << 12
//  0000 0000 0000 1111 0000 0000 0000 0000  captured   << 16
//  0000 0000 1111 0000 0000 0000 0000 0000  promotion  << 20
//  0000 0001 0000 0000 0000 0000 0000 0000  en passant << 24
//  0000 0010 0000 0000 0000 0000 0000 0000  pawn double<< 25
//  0000 0100 0000 0000 0000 0000 0000 0000  castle     << 26
//
// The layout makes the common move classifications cheap zero
// tests of field masks.
type Move uint32

const (
	// MoveNone empty non valid move
	MoveNone Move = 0
)

// field masks and shifts
const (
	moveFromMask  Move = 0x3F
	moveToMask    Move = 0x3F << moveToShift
	movePieceMask Move = 0xF << movePieceShift
	moveCaptMask  Move = 0xF << moveCaptShift
	movePromoMask Move = 0xF << movePromoShift
	moveFlagsMask Move = 0x7 << 24

	moveToShift    uint = 6
	movePieceShift uint = 12
	moveCaptShift  uint = 16
	movePromoShift uint = 20
)

// special move flags
const (
	FlagNone       Move = 0
	FlagEnPassant  Move = 0x1000000
	FlagPawnDouble Move = 0x2000000
	FlagCastle     Move = 0x4000000
)

// CreateMove returns an encoded Move instance
func CreateMove(from Square, to Square, pc Piece, captured Piece, promoted Piece, flag Move) Move {
	return Move(from) |
		Move(to)<<moveToShift |
		Move(pc)<<movePieceShift |
		Move(captured)<<moveCaptShift |
		Move(promoted)<<movePromoShift |
		flag
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// Piece returns the moving piece
func (m Move) Piece() Piece {
	return Piece((m & movePieceMask) >> movePieceShift)
}

// Captured returns the captured piece or PieceNone.
// En passant captures encode PieceNone here and are
// identified by the en passant flag instead.
func (m Move) Captured() Piece {
	return Piece((m & moveCaptMask) >> moveCaptShift)
}

// Promoted returns the piece the pawn promotes
// to or PieceNone
func (m Move) Promoted() Piece {
	return Piece((m & movePromoMask) >> movePromoShift)
}

// IsEnPassant returns true when this is an en passant capture
func (m Move) IsEnPassant() bool {
	return m&FlagEnPassant != 0
}

// IsPawnDouble returns true when this is a pawn double move
func (m Move) IsPawnDouble() bool {
	return m&FlagPawnDouble != 0
}

// IsCastle returns true when this is a castling move
func (m Move) IsCastle() bool {
	return m&FlagCastle != 0
}

// IsCapture returns true when the move captures a piece
// (including en passant)
func (m Move) IsCapture() bool {
	return m&(moveCaptMask|FlagEnPassant) != 0
}

// IsPromotion returns true when this is a pawn promotion
func (m Move) IsPromotion() bool {
	return m&movePromoMask != 0
}

// IsNoisy returns true when the move is a capture, promotion
// or en passant capture
func (m Move) IsNoisy() bool {
	return m&(moveCaptMask|movePromoMask|FlagEnPassant) != 0
}

// IsQuiet returns true when the move is not noisy
func (m Move) IsQuiet() bool {
	return !m.IsNoisy()
}

// IsValid checks if the move has valid squares and a valid
// moving piece. MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.Piece().IsValid()
}

// StringUci returns a string representation of the move in UCI
// format (e.g. e2e4, e7e8q). Castling moves of a Chess960 game
// need the position to determine the rook square and are
// converted in the position package.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if promoted := m.Promoted(); promoted != PieceNone {
		os.WriteString(strings.ToLower(promoted.TypeOf().Char()))
	}
	return os.String()
}

// String returns a string with details of a move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	flags := ""
	switch {
	case m.IsEnPassant():
		flags = "ep"
	case m.IsPawnDouble():
		flags = "double"
	case m.IsCastle():
		flags = "castle"
	}
	return fmt.Sprintf("Move: { %-5s  piece:%s capt:%s prom:%s %s (%d) }",
		m.StringUci(), m.Piece().Char(), m.Captured().Char(), m.Promoted().Char(), flags, uint32(m))
}
