// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"fmt"
	"strings"
)

// Failure describes a soft failure: nothing was consumed, and sibling
// alternatives may still run. Values are treated as immutable once
// built; combinators derive new failures instead of editing in place.
type Failure struct {
	// Msg is the primary message; empty means absent.
	Msg string
	// Notes holds auxiliary explanatory lines.
	Notes []string
	// Expected collects alternative-branch descriptions accumulated
	// while the failure propagated through choice combinators.
	Expected []string
}

// Fault describes a hard error: a failure after consumption, which
// ordinary alternation must not retry. Only [Attempt] and [Handle]
// demote it back to a soft failure.
type Fault struct {
	// At is the location the parse had reached when it failed.
	At Loc
	// Msg is the primary message; empty means absent.
	Msg string
	// Notes holds auxiliary explanatory lines.
	Notes []string
	// Expected carries the alternative descriptions accumulated before
	// the failure, folded in when a post-consumption soft failure was
	// promoted hard.
	Expected []string
	// Trail is the stack of scope frames recorded on the way out.
	// Each enclosing scope prepends its frame, so the outermost region
	// comes first. Populated only under tracing (see [Scope]).
	Trail []Mark
}

// Mark is one scope frame on a fault trail: where the labeled grammar
// region began.
type Mark struct {
	At    Loc
	Label string
}

// Flaw is the payload handed to the recovery function of [Handle]:
// either a *Failure or a *Fault. Recovery code type-switches on it.
type Flaw interface {
	flaw()
}

func (*Failure) flaw() {}
func (*Fault) flaw()   {}

// String renders the failure as a compact single line.
func (f *Failure) String() string {
	return failBody(f.Msg, f.Expected)
}

// String renders the fault as a compact single line.
func (f *Fault) String() string {
	return fmt.Sprintf("at offset %d: %s", int(f.At), failBody(f.Msg, f.Expected))
}

// failBody renders the primary line shared by failures, faults and
// diagnostics.
func failBody(msg string, expected []string) string {
	switch {
	case msg != "" && len(expected) > 0:
		return msg + ", expected " + listJoin(expected, ", ", "or")
	case msg != "":
		return msg
	case len(expected) > 0:
		return "expected " + listJoin(expected, ", ", "or")
	}
	return "no match"
}

// listJoin joins items with sep, switching to lastSep before the final
// item: "a, b or c".
func listJoin(list []string, sep, lastSep string) string {
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0]
	default:
		return strings.Join(list[:len(list)-1], sep) + " " + lastSep + " " + list[len(list)-1]
	}
}

// mergeFailure combines two soft failures met left to right: the first
// message found wins, notes and description sets union in first-seen
// order. Either side may be nil.
func mergeFailure(l, r *Failure) *Failure {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	}
	m := &Failure{Msg: l.Msg}
	if m.Msg == "" {
		m.Msg = r.Msg
	}
	m.Notes = unionStrings(l.Notes, r.Notes)
	m.Expected = unionStrings(l.Expected, r.Expected)
	return m
}

// betterFault resolves a race between two hard errors: the furthest
// location wins, ties keep the left (first-attempted) branch.
func betterFault(l, r *Fault) *Fault {
	if r.At > l.At {
		return r
	}
	return l
}

// promote turns a soft failure that followed consumption into a hard
// error at loc, folding in the descriptions accumulated before it.
func promote(at Loc, exp []string, fl *Failure) *Fault {
	return &Fault{
		At:       at,
		Msg:      fl.Msg,
		Notes:    fl.Notes,
		Expected: unionStrings(exp, fl.Expected),
	}
}

// withLabel derives a failure with label added to the description set.
func (f *Failure) withLabel(label string) *Failure {
	g := *f
	g.Expected = appendUnique(f.Expected, label)
	return &g
}

// withMark derives a fault with m prepended to the trail.
func (f *Fault) withMark(m Mark) *Fault {
	g := *f
	g.Trail = make([]Mark, 0, len(f.Trail)+1)
	g.Trail = append(g.Trail, m)
	g.Trail = append(g.Trail, f.Trail...)
	return &g
}

// unionStrings unions two description sets, keeping first-seen order
// and dropping duplicates. Aliases an input when the other is empty.
func unionStrings(a, b []string) []string {
	switch {
	case len(b) == 0:
		return a
	case len(a) == 0:
		return b
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// appendUnique adds one entry to a description set unless present,
// copying so the original set stays shared safely.
func appendUnique(set []string, s string) []string {
	for _, have := range set {
		if have == s {
			return set
		}
	}
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	return append(out, s)
}

// mergeExpected folds a pending failure's description set into an
// already accumulated one. The pending side may be nil.
func mergeExpected(exp []string, pend *Failure) []string {
	if pend == nil {
		return exp
	}
	return unionStrings(exp, pend.Expected)
}
