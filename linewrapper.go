package jpoet

import (
	"io"
	"strings"
)

// flushType is the pending decision for a previously requested wrap point.
type flushType int

const (
	flushNone flushType = iota
	// Emit a newline followed by indentation.
	flushWrap
	// Emit a single space.
	flushSpace
	// Emit nothing.
	flushEmpty
)

// lineWrapper decides lazily whether a requested wrap point becomes a space,
// nothing, or a newline plus indentation, based on whether the text that
// follows fits within the column limit. The decision cannot be made at the
// time the wrap point is requested, so subsequent text is buffered until the
// line either fits or overflows.
//
// I/O errors are sticky: the first error is recorded and all later writes
// become no-ops. Callers check err() once at the end of a render pass.
type lineWrapper struct {
	out         io.Writer
	indent      string
	columnLimit int

	buffer      strings.Builder
	column      int
	indentLevel int
	nextFlush   flushType
	lastWritten byte
	closed      bool
	err         error
}

func newLineWrapper(out io.Writer, indent string, columnLimit int) *lineWrapper {
	if columnLimit <= 0 {
		panic("column limit must be positive")
	}
	return &lineWrapper{
		out:         out,
		indent:      indent,
		columnLimit: columnLimit,
		indentLevel: -1,
	}
}

// lastChar returns the last character actually written to the underlying
// writer, not counting buffered text.
func (w *lineWrapper) lastChar() byte { return w.lastWritten }

// append writes s, resolving any pending wrap decision first if s cannot be
// buffered within the column limit.
func (w *lineWrapper) append(s string) {
	if w.closed {
		panic("write after close")
	}

	if w.nextFlush != flushNone {
		nextNewline := strings.IndexByte(s, '\n')

		// If s doesn't cause the current line to cross the limit, buffer it.
		// The wrap-or-space decision is made on a later write.
		if nextNewline == -1 && w.column+len(s) <= w.columnLimit {
			w.buffer.WriteString(s)
			w.column += len(s)
			return
		}

		// Wrap if appending s up to its first newline would overflow.
		wrap := nextNewline == -1 || w.column+nextNewline > w.columnLimit
		if wrap {
			w.flush(flushWrap)
		} else {
			w.flush(w.nextFlush)
		}
	}

	w.write(s)
	if lastNewline := strings.LastIndexByte(s, '\n'); lastNewline != -1 {
		w.column = len(s) - lastNewline - 1
	} else {
		w.column += len(s)
	}
}

// wrappingSpace registers a wrap point that renders as a space if the line
// fits, or as a newline plus indentLevel indents if it does not.
func (w *lineWrapper) wrappingSpace(indentLevel int) {
	if w.closed {
		panic("write after close")
	}
	if w.nextFlush != flushNone {
		w.flush(w.nextFlush)
	}
	// The space is deferred to the next flush but still occupies a column.
	w.column++
	w.nextFlush = flushSpace
	w.indentLevel = indentLevel
}

// zeroWidthSpace registers a wrap point that renders as nothing if the line
// fits. It never forces a break at the start of a line.
func (w *lineWrapper) zeroWidthSpace(indentLevel int) {
	if w.closed {
		panic("write after close")
	}
	if w.column == 0 {
		return
	}
	if w.nextFlush != flushNone {
		w.flush(w.nextFlush)
	}
	w.nextFlush = flushEmpty
	w.indentLevel = indentLevel
}

// close flushes any pending decision and forbids further writes.
func (w *lineWrapper) close() {
	if w.nextFlush != flushNone {
		w.flush(w.nextFlush)
	}
	w.closed = true
}

func (w *lineWrapper) flush(ft flushType) {
	switch ft {
	case flushWrap:
		w.write("\n")
		for i := 0; i < w.indentLevel; i++ {
			w.write(w.indent)
		}
		w.column = w.indentLevel*len(w.indent) + w.buffer.Len()
	case flushSpace:
		w.write(" ")
	case flushEmpty:
	}
	if w.buffer.Len() > 0 {
		w.write(w.buffer.String())
		w.buffer.Reset()
	}
	w.indentLevel = -1
	w.nextFlush = flushNone
}

func (w *lineWrapper) write(s string) {
	if s == "" {
		return
	}
	if w.err == nil {
		_, w.err = io.WriteString(w.out, s)
	}
	w.lastWritten = s[len(s)-1]
}
