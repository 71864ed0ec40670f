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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The table is shared between all search threads. Reads and writes
// are not guarded - a slot's validity fragment must match the
// probed key before an entry is used so torn entries are simply
// ignored. Resize and Clear must not be called while searching.
package transpositiontable

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/position"
	. "github.com/Thomas-Neill/mariner/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of the tt
	MaxSizeInMB = 65_536
)

// TtTable is the transposition table object holding data and state.
// Create with NewTtTable()
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	generation         uint8
}

// NewTtTable creates a new TtTable with the given size in MB as the
// maximum of memory usage. The actual size is the number of entries
// fitting into this size rounded down to a power of 2 for efficient
// addressing via bit masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{
		log: myLogging.GetLog(),
	}
	if err := tt.Resize(sizeInMByte); err != nil {
		tt.log.Error(err.Error())
	}
	return tt
}

// Resize resizes the tt table. All entries will be cleared.
// Not thread safe - must not be called during a search.
// Either the new table is live or the old one remains.
func (tt *TtTable) Resize(sizeInMByte int) error {
	if sizeInMByte > MaxSizeInMB {
		return fmt.Errorf("requested size of %d MB exceeds max of %d MB", sizeInMByte, MaxSizeInMB)
	}

	sizeInByte := uint64(sizeInMByte) * MB
	maxNumberOfEntries := uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInByte/TtEntrySize))))
	if sizeInByte == 0 {
		maxNumberOfEntries = 0
	}

	tt.maxNumberOfEntries = maxNumberOfEntries
	tt.hashKeyMask = maxNumberOfEntries - 1
	tt.sizeInByte = maxNumberOfEntries * TtEntrySize
	tt.data = make([]TtEntry, maxNumberOfEntries)
	tt.generation = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	return nil
}

// AgeEntries bumps the table's generation. Entries of earlier
// searches are preferentially overwritten. Called once before
// each new search.
func (tt *TtTable) AgeEntries() {
	tt.generation = (tt.generation + 1) & 0b11_1111
}

// Probe returns a copy of the entry for the given key and true
// when the entry's validation fragment matches. Otherwise an
// empty entry and false.
func (tt *TtTable) Probe(key position.Key) (TtEntry, bool) {
	if tt.maxNumberOfEntries == 0 {
		return TtEntry{}, false
	}
	e := tt.data[tt.hash(key)]
	if e.key32 == keyFragment(key) && e.Bound() != BoundNone {
		return e, true
	}
	return TtEntry{}, false
}

// Put stores the search result for the given key. Replacement
// policy: empty and stale-generation slots are always taken,
// occupied fresh slots of a different position are only replaced
// by an equal or higher draft. The same position is always updated - an
// existing move is preserved when storing with MoveNone.
func (tt *TtTable) Put(key position.Key, move Move, depth int, score Value, eval Value, bound Bound) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	fragment := keyFragment(key)

	switch {
	case e.Bound() == BoundNone || e.generation() != tt.generation:
		// empty or stale - always replace
	case e.key32 != fragment:
		// same slot, different position - keep the deeper entry
		if depth < e.Depth() {
			return
		}
	default:
		// same position - always update but preserve an existing
		// move when storing without one
		if move == MoveNone {
			move = e.Move()
		}
	}

	e.key32 = fragment
	e.move = uint32(move)
	e.score = int16(score)
	e.eval = int16(eval)
	e.depth = int8(depth)
	e.genBound = tt.generation<<2 | uint8(bound)
}

// Clear clears all entries of the tt.
// Not thread safe - must not be called during a search.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.generation = 0
}

// Hashfull returns an approximation of how full the transposition
// table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	samples := uint64(1000)
	if samples > tt.maxNumberOfEntries {
		samples = tt.maxNumberOfEntries
	}
	filled := 0
	for i := uint64(0); i < samples; i++ {
		e := &tt.data[i]
		if e.Bound() != BoundNone && e.generation() == tt.generation {
			filled++
		}
	}
	return filled * 1000 / int(samples)
}

// Len returns the maximum number of entries of the tt
func (tt *TtTable) Len() uint64 {
	return tt.maxNumberOfEntries
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes hashfull %d",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.Hashfull())
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the index into the data array for a key
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// keyFragment returns the upper 32 bits of the key used to
// validate a probed slot
func keyFragment(key position.Key) uint32 {
	return uint32(uint64(key) >> 32)
}
