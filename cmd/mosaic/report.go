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

package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives the final status messages of a run. The outcome of the
// run itself is the exit code returned by run.
type Reporter interface {
	Success(msg string)
	Failure(msg string)
}

// TerminalReporter prints success messages in green and failures in red.
// Colors are only used if the writer is a terminal.
type TerminalReporter struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

// NewTerminalReporter returns a reporter writing to out.
func NewTerminalReporter(out io.Writer) *TerminalReporter {
	renderer := lipgloss.NewRenderer(out)
	return &TerminalReporter{
		out:     out,
		success: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Success prints msg in green followed by a newline.
func (r *TerminalReporter) Success(msg string) {
	fmt.Fprintln(r.out, r.success.Render(msg))
}

// Failure prints msg in red followed by a newline.
func (r *TerminalReporter) Failure(msg string) {
	fmt.Fprintln(r.out, r.failure.Render(msg))
}
