// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"fmt"
	"strings"
)

// Renderer turns a structured diagnostic into human-readable text. The
// engine treats it as an opaque formatting service: [RunWith] wires one
// into the diagnostics it returns, and the fallback used otherwise
// prints a compact plain form.
type Renderer interface {
	Render(*Diag) string
}

// Diag is the failure report [Run] returns, flattened from whichever
// soft failure or hard error survived the merge and priority rules. It
// implements error.
type Diag struct {
	// At is the furthest location the losing parse reached.
	At Loc
	// Msg is the primary message; empty means absent.
	Msg string
	// Notes holds auxiliary explanatory lines.
	Notes []string
	// Expected lists the alternative descriptions accumulated at At.
	Expected []string
	// Trail is the scope trail, outermost region first; empty unless
	// tracing was enabled on the position.
	Trail []Mark

	render Renderer
}

// Error renders the diagnostic with the wired renderer, falling back to
// the plain form.
func (d *Diag) Error() string {
	if d.render != nil {
		return d.render.Render(d)
	}
	return d.Plain()
}

// Summary renders the primary line without location: the message, the
// expected list, or both. Renderers build their header from it.
func (d *Diag) Summary() string {
	return failBody(d.Msg, d.Expected)
}

// Plain renders the fallback form: location and primary line, then
// notes and scope trail one per line. Only [Loc] is available here, so
// positions print as offsets; renderers with access to the source can
// do better (line/column, excerpts).
func (d *Diag) Plain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse failed at offset %d: %s", int(d.At), d.Summary())
	for _, n := range d.Notes {
		b.WriteString("\n  note: ")
		b.WriteString(n)
	}
	for _, m := range d.Trail {
		fmt.Fprintf(&b, "\n  in %s (offset %d)", m.Label, int(m.At))
	}
	return b.String()
}

// Run applies p to the initial position and supply and drives every
// suspended layer to completion. Success returns the resulting position
// and value; failure returns a *Diag and the position p started from.
func Run[S State[S], A any](p Parser[S, A], st S, sup Supply) (S, A, error) {
	return RunWith(p, st, sup, nil)
}

// RunWith is [Run] with an explicit renderer wired into the returned
// diagnostic.
func RunWith[S State[S], A any](p Parser[S, A], st S, sup Supply, r Renderer) (S, A, error) {
	switch v := drive(p.run(st, sup)).(type) {
	case *stay[S]:
		return st, v.v.(A), nil
	case *move[S]:
		return v.next, v.v.(A), nil
	case *miss[S]:
		var zero A
		return st, zero, &Diag{
			At:       st.Loc(),
			Msg:      v.fl.Msg,
			Notes:    v.fl.Notes,
			Expected: v.fl.Expected,
			render:   r,
		}
	case *halt[S]:
		var zero A
		return st, zero, &Diag{
			At:       v.ft.At,
			Msg:      v.ft.Msg,
			Notes:    v.ft.Notes,
			Expected: v.ft.Expected,
			Trail:    v.ft.Trail,
			render:   r,
		}
	}
	panic("komb: unknown result shape")
}
