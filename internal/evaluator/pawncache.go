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

package evaluator

import (
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

// PawnCacheEntries is the number of entries of the pawn cache.
// Power of two so the hash can be a simple mask.
const PawnCacheEntries = 128 * 1024

// pawnEntry caches the result of the pawn structure evaluation
// keyed by the position's pawn key
type pawnEntry struct {
	key         position.Key
	passedPawns Bitboard
	eval        Score
}

// pawnCache is a simple direct mapped cache for pawn structure
// evaluations. It is owned by a single evaluator/search thread and
// therefore needs no synchronization. It does not need to survive
// across searches.
type pawnCache struct {
	data   []pawnEntry
	hits   uint64
	misses uint64
}

func newPawnCache() *pawnCache {
	return &pawnCache{
		data: make([]pawnEntry, PawnCacheEntries),
	}
}

// probe returns the entry for the given pawn key. The caller
// checks entry.key against the probed key to detect a hit.
func (pc *pawnCache) probe(key position.Key) *pawnEntry {
	e := &pc.data[uint64(key)%PawnCacheEntries]
	if e.key == key {
		pc.hits++
	} else {
		pc.misses++
	}
	return e
}

// clear resets all entries of the pawn cache
func (pc *pawnCache) clear() {
	pc.data = make([]pawnEntry, PawnCacheEntries)
	pc.hits = 0
	pc.misses = 0
}
