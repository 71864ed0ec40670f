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

// Package types contains all necessary data types and their functions
// for the chess engine. E.g. Bitboard, Move, Piece, Square, etc.
// All bitboard tables and magic bitboards are pre computed during
// package initialization.
package types

import (
	"fmt"
	"strings"
)

// engine wide constants
const (
	// MaxDepth max search depth and max ply in the search tree
	MaxDepth = 128

	// MaxMoves max number of moves in a chess position
	MaxMoves = 256

	// KB = 1.024 bytes
	KB uint64 = 1024

	// MB = KB * KB
	MB = KB * KB
)

var initialized = false

// init initializes pre computed data structures e.g. bitboards,
// magic bitboards, piece square tables, etc.
func init() {
	if !initialized {
		initBb()
		initMagicBitboards()
		initPosValues()
		initialized = true
	}
}

// //////////////////////////////////////////////////////
// Color
// //////////////////////////////////////////////////////

// Color represents the two chess colors
type Color int8

// Color constants
const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if the color is a valid color value
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// MoveDirection returns the direction of pawn moves for the color
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRank returns the rank on which the color promotes pawns
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnDoubleRank returns the rank to which the color can make a
// pawn double move
func (c Color) PawnDoubleRank() Rank {
	if c == White {
		return Rank4
	}
	return Rank5
}

// String returns a string representation of color as "w" or "b"
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// //////////////////////////////////////////////////////
// File
// //////////////////////////////////////////////////////

// File represents a chess board file a-h
type File int8

// File constants
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
	FileLength int = 8
)

// IsValid checks if f is a valid file
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

// Bb returns a Bitboard of the file
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// String returns a string letter of the file (e.g. a or h)
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}

// //////////////////////////////////////////////////////
// Rank
// //////////////////////////////////////////////////////

// Rank represents a chess board rank 1-8
type Rank int8

// Rank constants
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
	RankLength int = 8
)

// IsValid checks if r is a valid rank
func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

// Bb returns a Bitboard of the rank
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// String returns a string letter of the rank (e.g. 1 or 8)
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + r))
}

// //////////////////////////////////////////////////////
// Direction
// //////////////////////////////////////////////////////

// Direction is a positional delta on the board.
// The 64 squares are numbered A1=0 ... H8=63 so north is +8.
type Direction int8

// Direction constants
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast = North + East
	Southeast = South + East
	Southwest = South + West
	Northwest = North + West
)

// //////////////////////////////////////////////////////
// Square
// //////////////////////////////////////////////////////

// Square represent exactly on square on a chess board
type Square int8

// Square constants
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength int = 64
)

// IsValid checks a value of type square if it is a valid
// square on a chess board (e.g. not SqNone).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// RelativeRank returns the rank of the square as seen from
// the given color. E.g. Rank2 for a White pawn on its start
// square and Rank2 for a Black pawn on its start square.
func (sq Square) RelativeRank(c Color) Rank {
	if c == White {
		return sq.RankOf()
	}
	return Rank8 - sq.RankOf()
}

// Mirror mirrors the square on the horizontal axis
// e.g. a1 becomes a8, h3 becomes h6
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// To returns the square one step into the given direction.
// Returns SqNone if the step would leave the board.
func (sq Square) To(d Direction) Square {
	t := Square(int8(sq) + int8(d))
	if t < SqA1 || t > SqH8 {
		return SqNone
	}
	// a step of one into any direction never moves
	// more than one file - otherwise we wrapped around
	if FileDistance(sq.FileOf(), t.FileOf()) > 1 {
		return SqNone
	}
	return t
}

// SquareOf returns a square from file and rank
func SquareOf(f File, r Rank) Square {
	return Square(int8(r)<<3 | int8(f))
}

// MakeSquare returns a square from a string representation
// like "e4". Returns SqNone for invalid strings.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns a string of the square in algebraic form (e.g. e4)
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// //////////////////////////////////////////////////////
// PieceType
// //////////////////////////////////////////////////////

// PieceType is a set of constants for piece types in chess.
// PtAll is used as the index for the all-pieces occupancy
// bitboard of a position.
type PieceType int8

// PieceType constants
const (
	PtAll PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength int = 7
)

// IsValid checks whether the piece type is a valid
// piece type for a piece (positive test - PtAll is not valid)
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// piece type phase weights to determine the game phase
// by the pieces left on the board
var phaseWeight = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// PhaseWeight returns the game phase weight of the piece type
func (pt PieceType) PhaseWeight() int {
	return phaseWeight[pt]
}

// scalar piece type values - used for static exchange
// evaluation and capture ordering
var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 10000}

// ValueOf returns a scalar value of the piece type
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var ptChars = []string{"-", "P", "N", "B", "R", "Q", "K"}

// Char returns a single upper case letter for the piece type
func (pt PieceType) Char() string {
	return ptChars[pt]
}

// String returns the piece type letter
func (pt PieceType) String() string {
	return pt.Char()
}

// //////////////////////////////////////////////////////
// Piece
// //////////////////////////////////////////////////////

// Piece is a set of constants for pieces in chess.
// A piece combines color and piece type in 4 bits:
// bit 3 is the color, bits 0-2 the piece type.
type Piece int8

// Piece constants
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6
	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14
	PieceLength int   = 16
)

// MakePiece creates a piece from color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// ColorOf returns the color of the piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid checks whether the piece is a valid piece
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid() && (p>>3) <= 1
}

const pieceToChar = " PNBRQK  pnbrqk"

// Char returns a string with a single letter for the piece
// following the FEN convention (upper case for white pieces,
// lower case for black pieces)
func (p Piece) Char() string {
	if p == PieceNone {
		return " "
	}
	return string(pieceToChar[p])
}

// String returns the piece letter
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar returns the piece corresponding to the given
// character. If no piece matches returns PieceNone.
func PieceFromChar(s string) Piece {
	index := strings.Index(pieceToChar, s)
	if index == -1 || index == 0 || s == " " {
		return PieceNone
	}
	return Piece(index)
}

// //////////////////////////////////////////////////////
// Value
// //////////////////////////////////////////////////////

// Value represents the positional value of a chess position
// in 1/100 of a pawn unit (centipawns)
type Value int16

// Value constants
const (
	ValueZero          Value = 0
	ValueDraw          Value = 0
	ValueInfinite      Value = 15000
	ValueNA            Value = -ValueInfinite - 1
	ValueMate          Value = 10000
	ValueCheckMateThreshold = ValueMate - Value(2*MaxDepth)
)

// IsValid checks if value is a valid value for a search
func (v Value) IsValid() bool {
	return v >= -ValueInfinite && v <= ValueInfinite
}

// IsCheckMateValue returns true if the value is above the
// check mate threshold (mate distance encoded into the value)
func (v Value) IsCheckMateValue() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > ValueCheckMateThreshold && abs <= ValueMate
}

// MateIn returns the number of full moves to the mate
// encoded in this value. Negative when getting mated.
func (v Value) MateIn() int {
	if v > 0 {
		return int(ValueMate-v+1) / 2
	}
	return -int(ValueMate+v+1) / 2
}

// String returns a string representation of the value
// as a number
func (v Value) String() string {
	return fmt.Sprintf("%d", v)
}

// StringUci returns a string representation of the value
// as required by the UCI protocol ("cp 52", "mate 2")
func (v Value) StringUci() string {
	if v.IsCheckMateValue() {
		return fmt.Sprintf("mate %d", v.MateIn())
	}
	return fmt.Sprintf("cp %d", v)
}
