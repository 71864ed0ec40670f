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

package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Thomas-Neill/mariner/internal/config"
)

// optionHandler is a function to handle a setoption command
type optionHandler func(*UciHandler, string)

type uciOption struct {
	nameID       string
	handlerFunc  optionHandler
	optionType   string
	defaultValue string
	minValue     string
	maxValue     string
	currentValue string
}

func (o *uciOption) uciString() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.nameID)
	os.WriteString(" type ")
	os.WriteString(o.optionType)
	if o.optionType != "button" {
		os.WriteString(" default ")
		os.WriteString(o.defaultValue)
	}
	if o.optionType == "spin" {
		os.WriteString(fmt.Sprintf(" min %s max %s", o.minValue, o.maxValue))
	}
	return os.String()
}

func (o *uciOption) handler(u *UciHandler, value string) {
	o.currentValue = value
	o.handlerFunc(u, value)
}

// uciOptions is the table of options the engine understands
var uciOptions = map[string]*uciOption{
	"Threads": {
		nameID: "Threads", optionType: "spin", defaultValue: "1", minValue: "1", maxValue: "128",
		handlerFunc: func(u *UciHandler, value string) {
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				config.Settings.Search.Threads = n
				u.mySearch.InitThreads(n)
			}
		}},
	"Hash": {
		nameID: "Hash", optionType: "spin", defaultValue: "64", minValue: "0", maxValue: "65536",
		handlerFunc: func(u *UciHandler, value string) {
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Settings.Search.TTSize = n
				u.mySearch.ResizeCache()
			}
		}},
	"Clear Hash": {
		nameID: "Clear Hash", optionType: "button",
		handlerFunc: func(u *UciHandler, value string) {
			u.mySearch.ClearHash()
		}},
	"UCI_Chess960": {
		nameID: "UCI_Chess960", optionType: "check", defaultValue: "false",
		handlerFunc: func(u *UciHandler, value string) {
			config.Settings.Search.Chess960 = value == "true"
		}},
	"MultiPV": {
		nameID: "MultiPV", optionType: "spin", defaultValue: "1", minValue: "1", maxValue: "1",
		handlerFunc: func(u *UciHandler, value string) {
			// only a single pv is reported
		}},
	"Minimal": {
		nameID: "Minimal", optionType: "check", defaultValue: "false",
		handlerFunc: func(u *UciHandler, value string) {
			u.mySearch.SetMinimal(value == "true")
		}},
}
