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
	"math/bits"
	"strings"
)

// Bitboard is a set of squares as a 64-bit word. Bit 0 is
// square A1, bit 63 is square H8.
type Bitboard uint64

// Bitboard constants
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)
)

// Bb returns the Bitboard of the square
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Has tests if a square is set on the bitboard
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= sq.Bb()
	return *b
}

// Lsb returns the least significant bit of the 64-bit Bitboard.
// This translates directly to the Square which is returned.
// Must not be called on an empty bitboard.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant bit of the 64-bit Bitboard.
// Must not be called on an empty bitboard.
func (b Bitboard) Msb() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant bit of the 64-bit Bitboard
// and removes it from the bitboard.
// Must not be called on an empty bitboard.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// PopCount returns the number of one bits ("population count") in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts all bits of a bitboard in the given direction.
// Bits shifted over the a- or h-file are dropped.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) << 9
	case Northwest:
		return (b &^ FileA_Bb) << 7
	case Southeast:
		return (b &^ FileH_Bb) >> 7
	case Southwest:
		return (b &^ FileA_Bb) >> 9
	}
	return b
}

// FileDistance returns the absolute distance in files
func FileDistance(f1 File, f2 File) int {
	d := int(f1) - int(f2)
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute distance in ranks
func RankDistance(r1 Rank, r2 Rank) int {
	d := int(r1) - int(r2)
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns the max of file and rank distance of
// the two squares
func SquareDistance(s1 Square, s2 Square) int {
	return sqDistance[s1][s2]
}

// GetAttacksBb returns the attack bitboard of the piece type on the
// given square with the given board occupation. Sliding pieces use
// magic bitboard lookups, knight and king use pre computed tables.
// Not valid for pawns - use GetPawnAttacks instead.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	}
	return pseudoAttacksBb[pt][sq]
}

// GetPseudoAttacks returns the attacks of the piece type from the
// given square on an otherwise empty board
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacksBb[pt][sq]
}

// GetPawnAttacks returns the attacked squares of a pawn of the
// given color on the given square
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksBb[c][sq]
}

// Intermediate returns the bitboard of squares strictly between the
// two squares if they are on a common rank, file or diagonal.
// Otherwise the empty bitboard.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediateBb[sq1][sq2]
}

// NeighbourFiles returns the bitboard of the files adjacent to
// the file of the square
func (sq Square) NeighbourFiles() Bitboard {
	return neighbourFilesBb[sq.FileOf()]
}

// ForwardFile returns the bitboard of the squares ahead of the
// square on the same file as seen from the given color
func (sq Square) ForwardFile(c Color) Bitboard {
	return forwardFileBb[c][sq]
}

// ForwardRanks returns the bitboard of all ranks strictly ahead
// of the square's rank as seen from the given color
func (sq Square) ForwardRanks(c Color) Bitboard {
	return forwardRanksBb[c][sq.RankOf()]
}

// PassedPawnMask returns the bitboard of all squares an enemy pawn
// would have to occupy to stop a pawn of the given color on the
// given square from being a passed pawn
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMaskBb[c][sq]
}

// String returns a string representation of the 64 bits of the bitboard
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the bitboard
// as a board matrix
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// ///////////////////////////////////////////////////////////
// Pre computed tables
// ///////////////////////////////////////////////////////////

var (
	sqBb             [SqLength]Bitboard
	fileBb           [FileLength]Bitboard
	rankBb           [RankLength]Bitboard
	sqDistance       [SqLength][SqLength]int
	pawnAttacksBb    [ColorLength][SqLength]Bitboard
	pseudoAttacksBb  [PtLength][SqLength]Bitboard
	intermediateBb   [SqLength][SqLength]Bitboard
	neighbourFilesBb [FileLength]Bitboard
	forwardRanksBb   [ColorLength][RankLength]Bitboard
	forwardFileBb    [ColorLength][SqLength]Bitboard
	passedPawnMaskBb [ColorLength][SqLength]Bitboard
)

var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
)

// initBb pre computes all bitboard tables except the magic
// bitboards which are initialized in initMagicBitboards.
func initBb() {
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = BbOne << sq
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileA_Bb << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * r)
	}

	squareDistancePreCompute()
	pawnAttacksPreCompute()
	pseudoAttacksPreCompute()
	intermediatePreCompute()
	pawnMasksPreCompute()
}

func squareDistancePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			fd := FileDistance(s1.FileOf(), s2.FileOf())
			rd := RankDistance(s1.RankOf(), s2.RankOf())
			if fd > rd {
				sqDistance[s1][s2] = fd
			} else {
				sqDistance[s1][s2] = rd
			}
		}
	}
}

func pawnAttacksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.Bb()
		pawnAttacksBb[White][sq] = ShiftBitboard(b, Northwest) | ShiftBitboard(b, Northeast)
		pawnAttacksBb[Black][sq] = ShiftBitboard(b, Southwest) | ShiftBitboard(b, Southeast)
	}
}

var knightSteps = [8]Direction{17, 15, 10, 6, -17, -15, -10, -6}
var kingSteps = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

func pseudoAttacksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		// knight
		for _, d := range knightSteps {
			t := Square(int8(sq) + int8(d))
			if t.IsValid() && FileDistance(sq.FileOf(), t.FileOf()) <= 2 {
				pseudoAttacksBb[Knight][sq].PushSquare(t)
			}
		}
		// king
		for _, d := range kingSteps {
			if t := sq.To(d); t != SqNone {
				pseudoAttacksBb[King][sq].PushSquare(t)
			}
		}
		// sliders on empty board
		pseudoAttacksBb[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacksBb[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacksBb[Queen][sq] = pseudoAttacksBb[Bishop][sq] | pseudoAttacksBb[Rook][sq]
	}
}

func intermediatePreCompute() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			if s1 == s2 {
				continue
			}
			for _, dirs := range [2]*[4]Direction{&rookDirections, &bishopDirections} {
				for i := 0; i < 4; i++ {
					between := BbZero
					t := s1
					for {
						t = t.To(dirs[i])
						if t == SqNone {
							break
						}
						if t == s2 {
							intermediateBb[s1][s2] = between
							break
						}
						between.PushSquare(t)
					}
				}
			}
		}
	}
}

func pawnMasksPreCompute() {
	for f := FileA; f <= FileH; f++ {
		if f > FileA {
			neighbourFilesBb[f] |= fileBb[f-1]
		}
		if f < FileH {
			neighbourFilesBb[f] |= fileBb[f+1]
		}
	}
	for r := Rank1; r <= Rank8; r++ {
		for i := r + 1; i <= Rank8; i++ {
			forwardRanksBb[White][r] |= rankBb[i]
		}
		for i := Rank1; i < r; i++ {
			forwardRanksBb[Black][r] |= rankBb[i]
		}
	}
	for c := White; c <= Black; c++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			forwardFileBb[c][sq] = forwardRanksBb[c][sq.RankOf()] & fileBb[sq.FileOf()]
			passedPawnMaskBb[c][sq] = forwardRanksBb[c][sq.RankOf()] &
				(fileBb[sq.FileOf()] | neighbourFilesBb[sq.FileOf()])
		}
	}
}
