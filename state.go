// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Loc is a totally ordered input location. Concrete states usually put
// a byte offset here; the engine only ever compares locations, so any
// monotonic scale works.
type Loc int

// State is the position contract parsers are generic over.
//
// A State value is an immutable snapshot of one point in an input: the
// source text, the current byte offset, a comparable [Loc] for
// diagnostics, and a tracing flag gating scope-trail bookkeeping (see
// [Scope]). Advance returns a new snapshot moved forward; an
// implementation must never mutate a snapshot in place, so backtracking
// branches can each hold their own position safely.
//
// The parameter is F-bounded (S State[S]) so Advance returns the
// concrete type and positions stay fully typed through the engine.
// Caller-defined auxiliary payload belongs on the concrete type; this
// package never touches it.
type State[S State[S]] interface {
	// Input returns the complete source text.
	Input() string
	// Offset returns the current byte offset into Input.
	Offset() int
	// Loc returns the location used in failure reports and error races.
	Loc() Loc
	// Tracing reports whether scope labels are recorded on hard errors.
	Tracing() bool
	// Advance returns a copy of the state moved forward by n bytes.
	Advance(n int) S
}
