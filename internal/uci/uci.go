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

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Thomas-Neill/mariner/internal/logging"
	"github.com/Thomas-Neill/mariner/internal/movegen"
	"github.com/Thomas-Neill/mariner/internal/position"
	"github.com/Thomas-Neill/mariner/internal/search"
	. "github.com/Thomas-Neill/mariner/internal/types"
	"github.com/Thomas-Neill/mariner/internal/uciInterface"
	"github.com/Thomas-Neill/mariner/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// UciHandler handles all communication with the chess ui via UCI
// and controls options and search.
// Create an instance with NewUciHandler()
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position
	myPerft    *movegen.Perft
	uciLog     *logging.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGen(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myPerft:    movegen.NewPerft(),
		uciLog:     myLogging.GetUciLog(),
	}
	var uciDriver uciInterface.UciDriver = u
	u.mySearch.SetUciHandler(uciDriver)
	return u
}

// Loop starts the main loop to receive commands through
// input stream (pipe or user)
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			// quit command received
			return
		}
	}
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendReadyOk tells the UciDriver to send the uci response "readyok" to the UCI user interface
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends an arbitrary string to the UCI user interface
func (u *UciHandler) SendInfoString(info string) {
	u.send(fmt.Sprintf("info string %s", info))
}

// SendIterationEndInfo sends information about the last completed
// search depth iteration to the UCI ui
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64,
	nps uint64, time time.Duration, hashfull int, tbHits uint64, pv string) {
	u.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d hashfull %d tbhits %d pv %s",
		depth, seldepth, value.StringUci(), nodes, nps, time.Milliseconds(), hashfull, tbHits, pv))
}

// SendSearchUpdate sends a periodic update about search stats to the UCI ui
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64,
	time time.Duration, hashfull int) {
	u.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, time.Milliseconds(), hashfull))
}

// SendResult sends the search result to the UCI ui after the search
// has ended or has been stopped
func (u *UciHandler) SendResult(bestMove string, ponderMove string) {
	var resultStr strings.Builder
	resultStr.WriteString("bestmove ")
	if bestMove == "" {
		bestMove = "0000"
	}
	resultStr.WriteString(bestMove)
	if ponderMove != "" {
		resultStr.WriteString(" ponder ")
		resultStr.WriteString(ponderMove)
	}
	u.send(resultStr.String())
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uciLog.Infof("<< %s", cmd)

	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		u.mySearch.StopSearch()
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "perft":
		u.perftCommand(tokens)
	case "noop":
	default:
		log.Warningf("Error: Unknown command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name " + version.AppName() + " " + version.Version())
	u.send("id author Frank Kopp, Germany")
	for _, o := range uciOptions {
		u.send(o.uciString())
	}
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.mySearch.IsReady()
}

func (u *UciHandler) uciNewGameCommand() {
	u.mySearch.NewGame()
	u.myPosition = position.NewPosition()
}

func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
	u.myPerft.Stop()
}

// position [startpos | fen <fen>] [moves <moves>...]
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		msg := "Command 'position' malformed"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenParts []string
		for i < len(tokens) && tokens[i] != "moves" {
			fenParts = append(fenParts, tokens[i])
			i++
		}
		fen = strings.Join(fenParts, " ")
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		msg := out.Sprintf("Command 'position' malformed fen: %s", fen)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		for i++; i < len(tokens); i++ {
			move := u.myMoveGen.GetMoveFromUci(p, tokens[i])
			if move == MoveNone {
				msg := out.Sprintf("Command 'position' malformed move: %s", tokens[i])
				u.SendInfoString(msg)
				log.Warning(msg)
				return
			}
			p.DoMove(move)
		}
	}
	u.myPosition = p
	log.Debugf("New position: %s", p.StringFen())
}

// go with its many options starts the search
func (u *UciHandler) goCommand(tokens []string) {
	sl := search.NewSearchLimits()

	for i := 1; i < len(tokens); i++ {
		var err error
		switch tokens[i] {
		case "infinite":
			sl.Infinite = true
		case "ponder":
			// pondering is not supported - search infinite instead
			sl.Infinite = true
		case "wtime":
			i++
			sl.WhiteTime, err = parseMilliseconds(tokens, i)
			sl.TimeControl = true
		case "btime":
			i++
			sl.BlackTime, err = parseMilliseconds(tokens, i)
			sl.TimeControl = true
		case "winc":
			i++
			sl.WhiteInc, err = parseMilliseconds(tokens, i)
		case "binc":
			i++
			sl.BlackInc, err = parseMilliseconds(tokens, i)
		case "movetime":
			i++
			sl.MoveTime, err = parseMilliseconds(tokens, i)
			sl.TimeControl = true
		case "movestogo":
			i++
			sl.MovesToGo, err = parseIntToken(tokens, i)
		case "depth":
			i++
			sl.Depth, err = parseIntToken(tokens, i)
		case "nodes":
			i++
			var nodes int
			nodes, err = parseIntToken(tokens, i)
			sl.Nodes = uint64(nodes)
		case "mate":
			i++
			sl.Mate, err = parseIntToken(tokens, i)
		case "moves", "searchmoves":
			for i++; i < len(tokens); i++ {
				move := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
				if move == MoveNone {
					break
				}
				sl.Moves.PushBack(move)
			}
			i--
		}
		if err != nil {
			msg := out.Sprintf("Command 'go' malformed: %s", err)
			u.SendInfoString(msg)
			log.Warning(msg)
			return
		}
	}

	// sanity - no limit at all means search infinite
	if !sl.TimeControl && sl.Depth == 0 && sl.Nodes == 0 && sl.Mate == 0 {
		sl.Infinite = true
	}

	u.mySearch.StartSearch(*u.myPosition, *sl)
}

// perft <depth> - not part of the uci protocol but a useful
// debugging command
func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	go u.myPerft.StartPerft(u.myPosition.StringFen(), depth, true)
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	name, value := "", ""
	i := 1
	if i < len(tokens) && tokens[i] == "name" {
		var parts []string
		for i++; i < len(tokens) && tokens[i] != "value"; i++ {
			parts = append(parts, tokens[i])
		}
		name = strings.Join(parts, " ")
	}
	if i < len(tokens) && tokens[i] == "value" {
		var parts []string
		for i++; i < len(tokens); i++ {
			parts = append(parts, tokens[i])
		}
		value = strings.Join(parts, " ")
	}
	if name == "" {
		msg := "Command 'setoption' is malformed"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	o, found := uciOptions[name]
	if !found {
		msg := out.Sprintf("Command 'setoption': unknown option: %s", name)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	o.handler(u, value)
	log.Debugf("Set option %s = %s", name, value)
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

func parseIntToken(tokens []string, i int) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.Atoi(tokens[i])
}

func parseMilliseconds(tokens []string, i int) (time.Duration, error) {
	ms, err := parseIntToken(tokens, i)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
