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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
	"github.com/Thomas-Neill/mariner/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft is a data structure to hold the results of a perft test.
// Perft is the standard correctness oracle for the move generator
// and the make/unmake protocol - the number of leaf nodes at a
// given depth from a reference position must match the published
// values exactly.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine
// to stop the currently running perft test
func (pft *Perft) Stop() {
	pft.stopFlag = true
}

// StartPerft runs a perft test from the given fen to the given
// depth and prints a report when print is true
func (pft *Perft) StartPerft(fen string, depth int, print bool) {
	pft.stopFlag = false
	pft.resetCounter()

	p, err := position.NewPositionFen(fen)
	if err != nil {
		if log == nil {
			log = myLogging.GetLog()
		}
		log.Errorf("perft can't be started - invalid fen: %s", fen)
		return
	}

	// one movegen per depth level
	mgList := make([]*Movegen, depth+1)
	for i := range mgList {
		mgList[i] = NewMoveGen()
	}
	start := time.Now()
	pft.miniMax(p, mgList, depth)
	elapsed := time.Since(start)

	if print {
		out.Printf("Performing PERFT Test for Depth %d\n", depth)
		out.Printf("-----------------------------------------\n")
		out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
		out.Printf("NPS          : %d nps\n", util.Nps(pft.Nodes, elapsed))
		out.Printf("Results:\n")
		out.Printf("   Nodes     : %d\n", pft.Nodes)
		out.Printf("   Captures  : %d\n", pft.CaptureCounter)
		out.Printf("   EnPassant : %d\n", pft.EnpassantCounter)
		out.Printf("   Checks    : %d\n", pft.CheckCounter)
		out.Printf("   CheckMates: %d\n", pft.CheckMateCounter)
		out.Printf("   Castles   : %d\n", pft.CastleCounter)
		out.Printf("   Promotions: %d\n", pft.PromotionCounter)
		out.Printf("-----------------------------------------\n")
		out.Printf("Finished PERFT Test for Depth %d\n", depth)
	}
}

func (pft *Perft) resetCounter() {
	pft.Nodes = 0
	pft.CheckCounter = 0
	pft.CheckMateCounter = 0
	pft.CaptureCounter = 0
	pft.EnpassantCounter = 0
	pft.CastleCounter = 0
	pft.PromotionCounter = 0
}

// miniMax counts the leaf nodes of the legal move tree. At the
// leaves the moves are classified for the auxiliary counters.
func (pft *Perft) miniMax(p *position.Position, mgList []*Movegen, depth int) {
	if pft.stopFlag {
		return
	}

	mg := mgList[depth]
	moves := *mg.GeneratePseudoLegalMoves(p, GenAll)

	for _, m := range moves {
		if !p.IsLegalMove(m) {
			continue
		}
		if depth > 1 {
			p.DoMove(m)
			pft.miniMax(p, mgList, depth-1)
			p.UndoMove()
			continue
		}
		// leaf - count and classify
		pft.Nodes++
		if m.IsCapture() {
			pft.CaptureCounter++
		}
		if m.IsEnPassant() {
			pft.EnpassantCounter++
		}
		if m.IsCastle() {
			pft.CastleCounter++
		}
		if m.Promoted() != PieceNone {
			pft.PromotionCounter++
		}
		p.DoMove(m)
		if p.InCheck() {
			pft.CheckCounter++
			if !mgList[0].HasLegalMove(p) {
				pft.CheckMateCounter++
			}
		}
		p.UndoMove()
	}
}
