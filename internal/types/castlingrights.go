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

import "strings"

// CastlingRights encodes the castling state of a game as 4 bits
type CastlingRights uint8

// CastlingRights constants
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack
	CastlingLength   int            = 16
)

// Has checks if the state has the bit for the given castling right set
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Add adds the given castling right
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// Remove removes the given castling right
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// KingSideRight returns the king side castling right of the color
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

// QueenSideRight returns the queen side castling right of the color
func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// String returns a string representation of the castling
// rights as used in a FEN (KQkq)
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}
