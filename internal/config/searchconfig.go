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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Threads and chess variant
	Threads  int
	Chess960 bool

	// Transposition Table
	UseTT  bool
	TTSize int

	// Quiescence search
	UseQuiescence bool
	UseSEE        bool

	// Prunings pre move gen
	UseMDP       bool
	UseRFP       bool
	UseRazoring  bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// Aspiration windows
	UseAspiration    bool
	AspirationDepth  int
	AspirationWindow int

	// extensions of search depth
	UseCheckExt bool

	// prunings after move generation but before making move
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.Threads = 1
	Settings.Search.Chess960 = false

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = true
	Settings.Search.UseRazoring = true
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 3

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationDepth = 4
	Settings.Search.AspirationWindow = 16

	Settings.Search.UseCheckExt = true

	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3
}
