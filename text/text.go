// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package text provides a ready-made position tracker over in-memory
// strings, plus the character-level leaf parsers hand-written grammars
// start from.
package text

import (
	"unicode/utf8"

	"code.hybscloud.com/komb"
)

// State is an immutable snapshot of a position in a string input,
// implementing komb.State. Snapshots are plain values: Advance returns
// a moved copy and never mutates, so backtracking branches can hold
// independent positions safely.
type State struct {
	src   string
	off   int
	trace bool
	aux   any
}

// Option configures the starting state built by [New].
type Option func(*State)

// WithTracing enables scope-trail recording on hard errors. Off by
// default, keeping the bookkeeping away from hot paths.
func WithTracing() Option {
	return func(s *State) { s.trace = true }
}

// WithAux attaches a caller-defined payload carried unchanged by every
// snapshot derived from this one. The engine never looks at it.
func WithAux(v any) Option {
	return func(s *State) { s.aux = v }
}

// New returns a state at the start of src.
func New(src string, opts ...Option) State {
	s := State{src: src}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Input returns the complete source text.
func (s State) Input() string { return s.src }

// Offset returns the current byte offset.
func (s State) Offset() int { return s.off }

// Loc returns the offset as the diagnostic location.
func (s State) Loc() komb.Loc { return komb.Loc(s.off) }

// Tracing reports whether scope trails are recorded.
func (s State) Tracing() bool { return s.trace }

// Advance returns a snapshot moved forward by n bytes.
func (s State) Advance(n int) State {
	s.off += n
	return s
}

// Aux returns the payload attached with [WithAux], or nil.
func (s State) Aux() any { return s.aux }

// Rest returns the unconsumed remainder of the input.
func (s State) Rest() string { return s.src[s.off:] }

// AtEnd reports whether the whole input has been consumed.
func (s State) AtEnd() bool { return s.off >= len(s.src) }

// LineCol converts a byte offset in src into 1-based line and column,
// counting columns in runes. Offsets past the end report the position
// just after the final byte.
func LineCol(src string, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	line = 1
	start := 0
	for i := range off {
		if src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, 1 + utf8.RuneCountInString(src[start:off])
}
