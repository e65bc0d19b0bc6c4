// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package printer renders a stream of line alignment records as a compact, human-readable diff.
//
// Unchanged lines are collapsed into skip regions that show a limited amount of context around
// changes. A removed line that is immediately followed by an added line is refined into a
// character level rendering.
package printer

import (
	"fmt"
	"io"

	"znkr.io/outdiff/align"
	"znkr.io/outdiff/internal/config"
)

// Printer renders line alignment records. It's created for a single diff, fed every record in
// order with [Printer.Process] and finalized once with [Printer.Finish].
type Printer struct {
	lineWriter
	styles  *styles
	aligner align.Aligner
	context int

	started  bool      // a change was printed, skip regions need leading context
	skipped  []string  // unchanged lines since the last change
	pending  lookahead // removed line that may pair with the next added line
	finished bool
}

// New creates a printer that writes to w.
func New(w io.Writer, cfg config.Config) *Printer {
	return &Printer{
		lineWriter: lineWriter{w: w},
		styles:     newStyles(w, cfg),
		aligner:    cfg.Aligner,
		context:    cfg.Context,
	}
}

// Warn writes an advisory message.
func (p *Printer) Warn(msg string) {
	p.writeLine(p.styles.paint(warning, msg))
}

// Process consumes the next alignment record.
func (p *Printer) Process(e align.Edit[string]) {
	if p.finished {
		panic("printer: Process called after Finish")
	}
	switch e.Op {
	case align.Delete:
		p.flushSkipped()
		p.flushPending()
		p.pending.hold(e.X)
	case align.Match:
		p.flushPending()
		p.skipped = append(p.skipped, e.X)
	case align.Insert:
		if l, ok := p.pending.take(); ok {
			p.writeLines(renderPair(p.styles, p.aligner, l, e.Y))
			return
		}
		p.flushSkipped()
		p.writeLine(p.styles.paint(added, "+"+e.Y))
	default:
		panic("never reached")
	}
}

// Finish flushes all buffered lines and terminates the diff with an empty line. It returns the
// first error encountered while writing.
func (p *Printer) Finish() error {
	if p.finished {
		panic("printer: Finish called twice")
	}
	p.finished = true
	p.flushPending()
	p.printRun()
	p.skipped = nil
	p.writeLine("")
	if p.err != nil {
		return fmt.Errorf("writing diff: %w", p.err)
	}
	return nil
}

// flushPending prints a held removed line that didn't pair with an added line.
func (p *Printer) flushPending() {
	if l, ok := p.pending.take(); ok {
		p.writeLine(p.styles.paint(removed, "-"+l))
	}
}

// flushSkipped prints the unchanged lines before a change.
func (p *Printer) flushSkipped() {
	if !p.started {
		// Nothing was printed before, only the context right before the change is useful.
		p.started = true
		cut := max(0, len(p.skipped)-p.context)
		p.printSummary(p.skipped[:cut])
		p.printContext(p.skipped[cut:])
	} else {
		p.printRun()
	}
	p.skipped = p.skipped[:0]
}

// printRun prints unchanged lines between two changes, or after the last change: Context after
// the previous change, a summary of the rest, and context before the next change.
func (p *Printer) printRun() {
	c, n := p.context, len(p.skipped)
	if n <= 2*c {
		// A summary wouldn't save any lines.
		p.printContext(p.skipped)
		return
	}
	p.printContext(p.skipped[:c])
	p.printSummary(p.skipped[c : n-c])
	p.printContext(p.skipped[n-c:])
}

// printSummary prints a message in place of omitted lines.
func (p *Printer) printSummary(omitted []string) {
	switch len(omitted) {
	case 0:
	case 1:
		// The message is never shorter than the line itself.
		p.printContext(omitted)
	default:
		p.writeLine(fmt.Sprintf("... %d lines skipped ...", len(omitted)))
	}
}

func (p *Printer) printContext(lines []string) {
	for _, l := range lines {
		p.writeLine(" " + l)
	}
}

// lookahead holds at most one removed line until it's known whether it pairs with an added line.
type lookahead struct {
	line string
	held bool
}

func (l *lookahead) hold(line string) {
	if l.held {
		panic("never reached: lookahead already holds a line")
	}
	l.line, l.held = line, true
}

func (l *lookahead) take() (string, bool) {
	line, ok := l.line, l.held
	*l = lookahead{}
	return line, ok
}

// lineWriter writes whole lines. The first error is retained and stops all further writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) writeLine(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func (lw *lineWriter) writeLines(lines []string) {
	for _, s := range lines {
		lw.writeLine(s)
	}
}
