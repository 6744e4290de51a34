// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// BufferSize is the (default) size of buffers. Some methods create buffered
	// channels, this parameter controls how big such buffers might be.
	// Usually such buffers store no big data (ints, bools etc.).
	BufferSize = 1000

	// ErrSizeSyntax is returned by ParseSize for malformed input.
	ErrSizeSyntax = errors.New("Expects inputs like \"4x4\"")
)

// ProgressFunc is a function that is used to inform a caller about the progress
// of a called function.
// For example if we match thousands of tiles we might wish to know
// how far the call is and give feedback to the user.
// The called method calls the process function after each iteration.
type ProgressFunc func(num int)

// ProgressIgnore is a ProgressFunc that does nothing.
func ProgressIgnore(num int) {}

// LoggerProgressFunc is a parameterized ProgressFunc that logs to log.
// The output describes the progress (how many of how many objects processed).
// Log messages may have an addition prefix. max is the total number of elements
// to process and step describes how often to print to the log (for example
// step = 100 every 100 items).
func LoggerProgressFunc(prefix string, max, step int) ProgressFunc {
	return func(num int) {
		if percent, ok := progressPercent(num, max, step); ok {
			if prefix == "" {
				log.Infof("Progress: %d of %d (%.1f%%)", num, max, percent)
			} else {
				log.Infof("%s: %d of %d (%.1f%%)", prefix, num, max, percent)
			}
		}
	}
}

// StdProgressFunc is a parameterized ProgressFunc that writes to the
// specified writer.
// The output describes the progress (how many of how many objects processed).
// See LoggerProgressFunc for the meaning of the arguments.
func StdProgressFunc(w io.Writer, prefix string, max, step int) ProgressFunc {
	return func(num int) {
		if percent, ok := progressPercent(num, max, step); ok {
			if prefix == "" {
				fmt.Fprintf(w, "Progress: %d of %d (%.1f%%)\n", num, max, percent)
			} else {
				fmt.Fprintf(w, "%s: %d of %d (%.1f%%)\n", prefix, num, max, percent)
			}
		}
	}
}

func progressPercent(num, max, step int) (float64, bool) {
	if step == 0 || max == 0 {
		return 0, false
	}
	// always report the last element
	if !(step < 0 || num%step == 0 || num == max) {
		return 0, false
	}
	percent := (float64(num) / float64(max)) * 100.0
	if percent > 100.0 {
		percent = 100.0
	}
	return percent, true
}

// ParseSize parses a string of the form "AxB" where A and B are non-negative
// integers, each optionally prefixed by "+". Whether the components must be
// ≥ 1 is checked by the consumer (see ValidateTileSize), so "0x0" is accepted
// here.
//
// All syntax errors are reported as ErrSizeSyntax.
func ParseSize(s string) (Size, error) {
	first, second, found := strings.Cut(s, "x")
	if !found {
		return Size{}, ErrSizeSyntax
	}
	x, xErr := parseComponent(first)
	y, yErr := parseComponent(second)
	if xErr != nil || yErr != nil {
		return Size{}, ErrSizeSyntax
	}
	return NewVec2(uint(x), uint(y)), nil
}

// parseComponent parses a non-negative integer with an optional leading "+".
func parseComponent(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 0)
}
